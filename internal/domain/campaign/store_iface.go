package campaign

import "context"

type StoreAPI interface {
	ListAssignments(ctx context.Context, evaluationID string) ([]Assignment, error)
	ListResults(ctx context.Context, evaluationID string) ([]Result, error)
	ListEvaluateeIDs(ctx context.Context, evaluationID string) ([]string, error)
	ListPendingEvaluators(ctx context.Context, evaluationID string) ([]string, error)
	ListLaggingEvaluators(ctx context.Context, withinDays int) ([]string, error)
}
