package evaluation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const evaluationColumns = `id, name, eval_type, period, status, start_date, end_date, score, progress, hq_adjustment_rule, allow_hq_final_override`

func (s *Store) Get(ctx context.Context, evaluationID string) (Evaluation, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+evaluationColumns+`
    FROM evaluations
    WHERE id = $1
  `, evaluationID)

	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrEvaluationNotFound
	}
	return e, err
}

func (s *Store) ListForSubject(ctx context.Context, subjectID string, limit, offset int) ([]Evaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+evaluationColumns+`
    FROM evaluations
    WHERE subject_id = $1
    ORDER BY start_date DESC, name
    LIMIT $2 OFFSET $3
  `, subjectID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

func (s *Store) ListForSubjectYear(ctx context.Context, subjectID string, year int) ([]Evaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+evaluationColumns+`
    FROM evaluations
    WHERE subject_id = $1 AND eval_year = $2
    ORDER BY start_date, name
  `, subjectID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvaluation(row rowScanner) (Evaluation, error) {
	var e Evaluation
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.Period, &e.Status, &e.StartDate, &e.EndDate, &e.Score, &e.Progress, &e.HQAdjustmentRule, &e.AllowHQFinalOverride)
	return e, err
}

func scanEvaluations(rows pgx.Rows) ([]Evaluation, error) {
	var out []Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
