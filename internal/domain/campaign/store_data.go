package campaign

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListAssignments(ctx context.Context, evaluationID string) ([]Assignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, evaluation_id, evaluator_id, evaluatee_id, relation, status, progress, submitted_at
    FROM assignments
    WHERE evaluation_id = $1
    ORDER BY created_at, id
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.ID, &a.EvaluationID, &a.EvaluatorID, &a.EvaluateeID, &a.Relation, &a.Status, &a.Progress, &a.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) ListResults(ctx context.Context, evaluationID string) ([]Result, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, assignment_id, evaluation_id, evaluator_id, evaluatee_id, total_score, answers_json, submitted_at
    FROM results
    WHERE evaluation_id = $1
    ORDER BY submitted_at, id
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.AssignmentID, &r.EvaluationID, &r.EvaluatorID, &r.EvaluateeID, &r.TotalScore, &r.Answers, &r.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListEvaluateeIDs unions evaluatees from both collections, so an evaluatee
// whose only trace is an orphan result still shows up on the dashboard.
func (s *Store) ListEvaluateeIDs(ctx context.Context, evaluationID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT evaluatee_id FROM assignments WHERE evaluation_id = $1
    UNION
    SELECT evaluatee_id FROM results WHERE evaluation_id = $1
    ORDER BY evaluatee_id
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDs(rows)
}

func (s *Store) ListPendingEvaluators(ctx context.Context, evaluationID string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT evaluator_id
    FROM assignments
    WHERE evaluation_id = $1 AND status <> 'SUBMITTED'
    ORDER BY evaluator_id
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDs(rows)
}

// ListLaggingEvaluators finds evaluators with open assignments on in-progress
// evaluations ending within the given number of days. Used by the periodic
// reminder sweep.
func (s *Store) ListLaggingEvaluators(ctx context.Context, withinDays int) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT a.evaluator_id
    FROM assignments a
    JOIN evaluations e ON a.evaluation_id = e.id
    WHERE a.status <> 'SUBMITTED'
      AND e.status <> 'completed'
      AND e.end_date <> ''
      AND e.end_date >= to_char(now(), 'YYYY-MM-DD')
      AND e.end_date <= to_char(now() + make_interval(days => $1), 'YYYY-MM-DD')
    ORDER BY a.evaluator_id
  `, withinDays)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanIDs(rows)
}

func scanIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
