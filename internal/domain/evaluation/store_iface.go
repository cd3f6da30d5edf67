package evaluation

import "context"

type StoreAPI interface {
	Get(ctx context.Context, evaluationID string) (Evaluation, error)
	ListForSubject(ctx context.Context, subjectID string, limit, offset int) ([]Evaluation, error)
	ListForSubjectYear(ctx context.Context, subjectID string, year int) ([]Evaluation, error)
}
