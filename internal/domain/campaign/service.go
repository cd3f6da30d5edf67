package campaign

import "context"

type Service struct {
	store  StoreAPI
	policy BaseScorePolicy
}

func NewService(store StoreAPI, policy BaseScorePolicy) *Service {
	if policy == nil {
		policy = MeanPolicy{}
	}
	return &Service{store: store, policy: policy}
}

func (s *Service) Policy() BaseScorePolicy {
	return s.policy
}

func (s *Service) Assignments(ctx context.Context, evaluationID string) ([]Assignment, error) {
	return s.store.ListAssignments(ctx, evaluationID)
}

func (s *Service) Results(ctx context.Context, evaluationID string) ([]Result, error) {
	return s.store.ListResults(ctx, evaluationID)
}

func (s *Service) EvaluateeIDs(ctx context.Context, evaluationID string) ([]string, error) {
	return s.store.ListEvaluateeIDs(ctx, evaluationID)
}

func (s *Service) PendingEvaluators(ctx context.Context, evaluationID string) ([]string, error) {
	return s.store.ListPendingEvaluators(ctx, evaluationID)
}

func (s *Service) LaggingEvaluators(ctx context.Context, withinDays int) ([]string, error) {
	return s.store.ListLaggingEvaluators(ctx, withinDays)
}

// Summarize aggregates one evaluatee from snapshots already loaded for the
// campaign, under the service's configured base-score policy.
func (s *Service) Summarize(assignments []Assignment, results []Result, evaluateeID string) EvaluateeSummary {
	return AggregateEvaluatee(assignments, results, evaluateeID, s.policy)
}
