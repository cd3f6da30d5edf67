package adjustment

import "evalhub/internal/domain/campaign"

// CheckPermission decides whether an adjustment layer may currently be edited
// for the evaluatee. The manager layer is gated purely by caller role, which
// the transport enforces, so it is always open here. The HQ layer depends on
// the campaign rule and the leader's progress:
//
//   - anytime: open.
//   - after_leader_adjustment: open once the manager layer has a value,
//     vacuously open when the evaluatee has no leader assignment.
//   - after_leader_submit (default): open once every leader assignment is
//     submitted, vacuously open without leader assignments.
//
// allowOverride=false closes the HQ layer unconditionally.
func CheckPermission(summary campaign.EvaluateeSummary, role, rule string, allowOverride bool) Decision {
	if role != RoleHQ {
		return Decision{Allowed: true}
	}

	hasLeader := summary.LeaderAssignmentCount > 0
	allowed := false
	switch rule {
	case RuleAnytime:
		allowed = true
	case RuleAfterLeaderAdjustment:
		allowed = !hasLeader || summary.HasManagerAdjustment
	default:
		allowed = !hasLeader || summary.LeaderSubmitted
	}
	if !allowOverride {
		allowed = false
	}
	if allowed {
		return Decision{Allowed: true}
	}

	decision := Decision{}
	if hasLeader {
		if rule == RuleAfterLeaderAdjustment {
			decision.Reason = ReasonAfterLeaderAdjustment
		} else {
			decision.Reason = ReasonAfterLeaderSubmit
		}
	}
	return decision
}

// ValidateValue bounds-checks an adjustment before it is persisted. A nil
// bound means the campaign runs unconstrained.
func ValidateValue(value float64, bound *float64) error {
	if bound == nil {
		return nil
	}
	if value < -*bound || value > *bound {
		return ErrValueOutOfRange
	}
	return nil
}

// PreviewAdjustment shows the effect of the value under edit for one layer.
func PreviewAdjustment(baseScore, value float64) float64 {
	return baseScore + value
}

// Apply fills a summary's adjustment fields from the campaign's saved
// adjustments. The two layers are additive and independent:
// final = base + manager + hq. A summary without a base score keeps a nil
// final score even when adjustments exist.
func Apply(summary campaign.EvaluateeSummary, adjustments []Adjustment) campaign.EvaluateeSummary {
	for _, a := range adjustments {
		if a.EvaluateeID != summary.ID {
			continue
		}
		value := a.Value
		switch a.Role {
		case RoleManager:
			summary.ManagerAdjustment = &value
			summary.HasManagerAdjustment = true
		case RoleHQ:
			summary.HQAdjustment = &value
		}
	}
	if summary.BaseScore != nil {
		final := *summary.BaseScore
		if summary.ManagerAdjustment != nil {
			final += *summary.ManagerAdjustment
		}
		if summary.HQAdjustment != nil {
			final += *summary.HQAdjustment
		}
		summary.FinalScore = &final
	}
	return summary
}
