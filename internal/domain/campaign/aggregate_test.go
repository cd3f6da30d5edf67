package campaign

import (
	"testing"
	"time"
)

func TestAggregateEvaluateeMergesResultsIntoAssignments(t *testing.T) {
	assignments := []Assignment{
		{ID: "a1", EvaluatorID: "m1", EvaluateeID: "e1", Relation: RelationLeader, Status: AssignmentStatusPending},
		{ID: "a2", EvaluatorID: "m2", EvaluateeID: "e1", Relation: RelationPeer, Status: AssignmentStatusInProgress, Progress: 50},
		{ID: "a3", EvaluatorID: "m3", EvaluateeID: "e2", Relation: RelationPeer, Status: AssignmentStatusPending},
	}
	results := []Result{
		{ID: "r1", AssignmentID: "a1", EvaluatorID: "m1", EvaluateeID: "e1", TotalScore: 90, SubmittedAt: time.Now()},
	}

	summary := AggregateEvaluatee(assignments, results, "e1", MeanPolicy{})
	if summary.AssignmentCount != 2 {
		t.Fatalf("expected 2 rows for e1, got %d", summary.AssignmentCount)
	}
	if summary.SubmittedCount != 1 {
		t.Fatalf("expected 1 submitted, got %d", summary.SubmittedCount)
	}
	if summary.Rows[0].Status != AssignmentStatusSubmitted {
		t.Fatalf("expected pending row promoted to submitted, got %s", summary.Rows[0].Status)
	}
	if summary.Rows[0].Result == nil || summary.Rows[0].Result.TotalScore != 90 {
		t.Fatalf("expected result attached to first row, got %+v", summary.Rows[0].Result)
	}
	if summary.BaseScore == nil || *summary.BaseScore != 90 {
		t.Fatalf("expected base score 90, got %v", summary.BaseScore)
	}
}

func TestAggregateEvaluateeSynthesizesOrphanResultRow(t *testing.T) {
	results := []Result{
		{ID: "r1", AssignmentID: "ghost", EvaluatorID: "m9", EvaluateeID: "e1", TotalScore: 75, SubmittedAt: time.Now()},
	}

	summary := AggregateEvaluatee(nil, results, "e1", MeanPolicy{})
	if summary.AssignmentCount != 1 || summary.SubmittedCount != 1 {
		t.Fatalf("expected one synthesized submitted row, got %+v", summary)
	}
	row := summary.Rows[0]
	if row.Relation != RelationPeer {
		t.Fatalf("expected defaulted PEER relation, got %s", row.Relation)
	}
	if row.Status != AssignmentStatusSubmitted || row.Progress != 100 {
		t.Fatalf("expected submitted row at 100%%, got status=%s progress=%v", row.Status, row.Progress)
	}
}

func TestAggregateEvaluateeLeaderGate(t *testing.T) {
	assignments := []Assignment{
		{ID: "a1", EvaluateeID: "e1", Relation: RelationLeader, Status: AssignmentStatusInProgress},
		{ID: "a2", EvaluateeID: "e1", Relation: RelationLeader, Status: AssignmentStatusSubmitted},
		{ID: "a3", EvaluateeID: "e1", Relation: RelationPeer, Status: AssignmentStatusSubmitted},
	}

	summary := AggregateEvaluatee(assignments, nil, "e1", nil)
	if summary.LeaderAssignmentCount != 2 {
		t.Fatalf("expected 2 leader assignments, got %d", summary.LeaderAssignmentCount)
	}
	if summary.LeaderSubmitted {
		t.Fatal("expected leaderSubmitted false while one leader row is open")
	}
}

func TestAggregateEvaluateeLeaderGateVacuouslyTrue(t *testing.T) {
	assignments := []Assignment{
		{ID: "a1", EvaluateeID: "e1", Relation: RelationPeer, Status: AssignmentStatusPending},
	}

	summary := AggregateEvaluatee(assignments, nil, "e1", nil)
	if summary.LeaderAssignmentCount != 0 {
		t.Fatalf("expected no leader assignments, got %d", summary.LeaderAssignmentCount)
	}
	if !summary.LeaderSubmitted {
		t.Fatal("expected leaderSubmitted vacuously true without leader rows")
	}
	if summary.BaseScore != nil {
		t.Fatalf("expected nil base score without submissions, got %v", *summary.BaseScore)
	}
}
