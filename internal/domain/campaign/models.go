package campaign

import (
	"encoding/json"
	"time"
)

type Assignment struct {
	ID           string     `json:"id"`
	EvaluationID string     `json:"evaluationId"`
	EvaluatorID  string     `json:"evaluatorId"`
	EvaluateeID  string     `json:"evaluateeId"`
	Relation     string     `json:"relation"`
	Status       string     `json:"status"`
	Progress     float64    `json:"progress"`
	SubmittedAt  *time.Time `json:"submittedAt"`
}

type Result struct {
	ID           string          `json:"id"`
	AssignmentID string          `json:"assignmentId"`
	EvaluationID string          `json:"evaluationId"`
	EvaluatorID  string          `json:"evaluatorId"`
	EvaluateeID  string          `json:"evaluateeId"`
	TotalScore   float64         `json:"totalScore"`
	Answers      json.RawMessage `json:"answers,omitempty"`
	SubmittedAt  time.Time       `json:"submittedAt"`
}

// SubmissionRow is one line of the materialized merge view keyed by
// assignment id: an assignment with its result attached when one has arrived.
type SubmissionRow struct {
	AssignmentID string     `json:"assignmentId"`
	EvaluatorID  string     `json:"evaluatorId"`
	Relation     string     `json:"relation"`
	Status       string     `json:"status"`
	Progress     float64    `json:"progress"`
	SubmittedAt  *time.Time `json:"submittedAt"`
	Result       *Result    `json:"result"`
}

// EvaluateeSummary is derived, never stored: a pure function of the
// assignment, result and adjustment snapshots it was computed from.
type EvaluateeSummary struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Team                  string          `json:"team"`
	AssignmentCount       int             `json:"assignmentCount"`
	SubmittedCount        int             `json:"submittedCount"`
	LeaderAssignmentCount int             `json:"leaderAssignmentCount"`
	LeaderSubmitted       bool            `json:"leaderSubmitted"`
	HasManagerAdjustment  bool            `json:"hasManagerAdjustment"`
	BaseScore             *float64        `json:"baseScore"`
	ManagerAdjustment     *float64        `json:"managerAdjustment"`
	HQAdjustment          *float64        `json:"hqAdjustment"`
	FinalScore            *float64        `json:"finalScore"`
	Rows                  []SubmissionRow `json:"rows,omitempty"`
}
