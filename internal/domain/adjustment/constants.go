package adjustment

const (
	RoleManager = "manager"
	RoleHQ      = "hq"

	RuleAfterLeaderSubmit     = "after_leader_submit"
	RuleAfterLeaderAdjustment = "after_leader_adjustment"
	RuleAnytime               = "anytime"

	ReasonAfterLeaderAdjustment = "팀장 보정 후 가능"
	ReasonAfterLeaderSubmit     = "팀장 평가 완료 후 가능"
)
