package adjustment

import "time"

// Adjustment is one layer's correction for an evaluatee. At most one active
// value exists per (evaluatee, role) pair within a campaign; a resave
// overwrites rather than accumulates.
type Adjustment struct {
	EvaluationID string    `json:"evaluationId"`
	EvaluateeID  string    `json:"evaluateeId"`
	Role         string    `json:"role"`
	Value        float64   `json:"value"`
	Note         string    `json:"note"`
	AdjustedBy   string    `json:"adjustedBy"`
	Timestamp    time.Time `json:"timestamp"`
}

// Decision is a normal negative result, not an error: the gate being closed is
// expected state, reported with a human-readable reason.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
