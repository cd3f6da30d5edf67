package evaluation

const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	TypeSelf       = "self"
	TypePeer       = "peer"
	TypeLeadership = "leadership"

	PeriodFirstHalf  = "first_half"
	PeriodSecondHalf = "second_half"
	PeriodAnnual     = "annual"
	PeriodAdHoc      = "ad_hoc"
)
