package adjustment

import (
	"errors"
	"testing"

	"evalhub/internal/domain/campaign"
)

func TestCheckPermissionManagerLayerAlwaysOpen(t *testing.T) {
	summary := campaign.EvaluateeSummary{LeaderAssignmentCount: 1}
	if d := CheckPermission(summary, RoleManager, RuleAfterLeaderSubmit, true); !d.Allowed {
		t.Fatalf("expected manager layer open, got %+v", d)
	}
}

func TestCheckPermissionAfterLeaderSubmit(t *testing.T) {
	summary := campaign.EvaluateeSummary{LeaderAssignmentCount: 1, LeaderSubmitted: false}
	d := CheckPermission(summary, RoleHQ, RuleAfterLeaderSubmit, true)
	if d.Allowed {
		t.Fatal("expected hq gate closed before leader submit")
	}
	if d.Reason != ReasonAfterLeaderSubmit {
		t.Fatalf("expected submit reason, got %q", d.Reason)
	}

	summary.LeaderSubmitted = true
	if d := CheckPermission(summary, RoleHQ, RuleAfterLeaderSubmit, true); !d.Allowed {
		t.Fatalf("expected hq gate open after leader submit, got %+v", d)
	}
}

func TestCheckPermissionAfterLeaderAdjustment(t *testing.T) {
	summary := campaign.EvaluateeSummary{LeaderAssignmentCount: 1, LeaderSubmitted: true}
	d := CheckPermission(summary, RoleHQ, RuleAfterLeaderAdjustment, true)
	if d.Allowed {
		t.Fatal("expected hq gate closed before manager adjustment")
	}
	if d.Reason != ReasonAfterLeaderAdjustment {
		t.Fatalf("expected adjustment reason, got %q", d.Reason)
	}

	summary.HasManagerAdjustment = true
	if d := CheckPermission(summary, RoleHQ, RuleAfterLeaderAdjustment, true); !d.Allowed {
		t.Fatalf("expected hq gate open after manager adjustment, got %+v", d)
	}
}

func TestCheckPermissionNoLeaderAssignmentOpensEveryRule(t *testing.T) {
	summary := campaign.EvaluateeSummary{LeaderAssignmentCount: 0, LeaderSubmitted: true}
	for _, rule := range []string{RuleAnytime, RuleAfterLeaderSubmit, RuleAfterLeaderAdjustment} {
		if d := CheckPermission(summary, RoleHQ, rule, true); !d.Allowed {
			t.Fatalf("expected hq gate open for rule %s without leader rows, got %+v", rule, d)
		}
	}
}

func TestCheckPermissionOverrideDisabledClosesGate(t *testing.T) {
	summary := campaign.EvaluateeSummary{LeaderAssignmentCount: 0, LeaderSubmitted: true}
	if d := CheckPermission(summary, RoleHQ, RuleAnytime, false); d.Allowed {
		t.Fatal("expected hq gate hard-closed when final override is off")
	}

	summary.LeaderAssignmentCount = 1
	d := CheckPermission(summary, RoleHQ, RuleAnytime, false)
	if d.Allowed {
		t.Fatal("expected hq gate hard-closed when final override is off")
	}
	if d.Reason != ReasonAfterLeaderSubmit {
		t.Fatalf("expected default reason with leader rows, got %q", d.Reason)
	}
}

func TestValidateValueBounds(t *testing.T) {
	bound := 5.0
	if err := ValidateValue(5, &bound); err != nil {
		t.Fatalf("expected +5 inside bound, got %v", err)
	}
	if err := ValidateValue(-5, &bound); err != nil {
		t.Fatalf("expected -5 inside bound, got %v", err)
	}
	if err := ValidateValue(5.5, &bound); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
	if err := ValidateValue(1000, nil); err != nil {
		t.Fatalf("expected nil bound unconstrained, got %v", err)
	}
}

func TestPreviewAdjustment(t *testing.T) {
	if got := PreviewAdjustment(72, -3); got != 69 {
		t.Fatalf("expected preview 69, got %v", got)
	}
}

func TestApplyAdditiveLayers(t *testing.T) {
	base := 70.0
	summary := campaign.EvaluateeSummary{ID: "e1", BaseScore: &base}
	adjustments := []Adjustment{
		{EvaluateeID: "e1", Role: RoleManager, Value: 4},
		{EvaluateeID: "e1", Role: RoleHQ, Value: -2},
		{EvaluateeID: "other", Role: RoleManager, Value: 99},
	}

	got := Apply(summary, adjustments)
	if !got.HasManagerAdjustment {
		t.Fatal("expected manager adjustment flagged")
	}
	if got.FinalScore == nil || *got.FinalScore != 72 {
		t.Fatalf("expected final 72, got %v", got.FinalScore)
	}
}

func TestApplyWithoutBaseScoreKeepsNilFinal(t *testing.T) {
	summary := campaign.EvaluateeSummary{ID: "e1"}
	got := Apply(summary, []Adjustment{{EvaluateeID: "e1", Role: RoleHQ, Value: 3}})
	if got.FinalScore != nil {
		t.Fatalf("expected nil final without base score, got %v", *got.FinalScore)
	}
	if got.HQAdjustment == nil || *got.HQAdjustment != 3 {
		t.Fatalf("expected hq adjustment recorded, got %v", got.HQAdjustment)
	}
}
