package evaluation

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Service) Get(ctx context.Context, evaluationID string) (Evaluation, error) {
	e, err := s.store.Get(ctx, evaluationID)
	if err != nil {
		return Evaluation{}, err
	}
	e.Status = ClassifyStatus(e, s.today())
	return e, nil
}

// List returns a subject's evaluations with the display status re-derived on
// every read, so a window that lapsed since the stored status was written
// still renders correctly.
func (s *Service) List(ctx context.Context, subjectID string, limit, offset int) ([]Evaluation, error) {
	evals, err := s.store.ListForSubject(ctx, subjectID, limit, offset)
	if err != nil {
		return nil, err
	}
	today := s.today()
	for i := range evals {
		evals[i].Status = ClassifyStatus(evals[i], today)
	}
	return evals, nil
}

func (s *Service) AnnualComposite(ctx context.Context, subjectID string, year int, weights WeightConfig) (Composite, error) {
	evals, err := s.store.ListForSubjectYear(ctx, subjectID, year)
	if err != nil {
		return Composite{}, err
	}
	today := s.today()
	for i := range evals {
		evals[i].Status = ClassifyStatus(evals[i], today)
	}
	return ComputeAnnualComposite(evals, weights), nil
}
