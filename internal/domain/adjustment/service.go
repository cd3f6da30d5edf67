package adjustment

import (
	"context"
	"time"
)

// Service owns bounds validation and persistence for both adjustment layers.
// Bound is the configured half-range; nil disables the check. Summary
// recomputation after a save is the caller's responsibility.
type Service struct {
	store StoreAPI
	Bound *float64
	now   func() time.Time
}

func NewService(store StoreAPI, bound *float64) *Service {
	return &Service{store: store, Bound: bound, now: time.Now}
}

func (s *Service) Save(ctx context.Context, a Adjustment) error {
	if a.Role != RoleManager && a.Role != RoleHQ {
		return ErrUnknownRole
	}
	if err := ValidateValue(a.Value, s.Bound); err != nil {
		return err
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = s.now().UTC()
	}
	return s.store.Save(ctx, a)
}

func (s *Service) ListByEvaluation(ctx context.Context, evaluationID string) ([]Adjustment, error) {
	return s.store.ListByEvaluation(ctx, evaluationID)
}
