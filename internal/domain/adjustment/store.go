package adjustment

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreAPI interface {
	Save(ctx context.Context, a Adjustment) error
	ListByEvaluation(ctx context.Context, evaluationID string) ([]Adjustment, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Save upserts the single active value for the (evaluatee, role) pair.
func (s *Store) Save(ctx context.Context, a Adjustment) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO adjustments (evaluation_id, evaluatee_id, role, value, note, adjusted_by, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    ON CONFLICT (evaluation_id, evaluatee_id, role)
    DO UPDATE SET value = EXCLUDED.value, note = EXCLUDED.note, adjusted_by = EXCLUDED.adjusted_by, updated_at = EXCLUDED.updated_at
  `, a.EvaluationID, a.EvaluateeID, a.Role, a.Value, a.Note, a.AdjustedBy, a.Timestamp)
	return err
}

func (s *Store) ListByEvaluation(ctx context.Context, evaluationID string) ([]Adjustment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT evaluation_id, evaluatee_id, role, value, note, adjusted_by, updated_at
    FROM adjustments
    WHERE evaluation_id = $1
    ORDER BY evaluatee_id, role
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Adjustment
	for rows.Next() {
		var a Adjustment
		if err := rows.Scan(&a.EvaluationID, &a.EvaluateeID, &a.Role, &a.Value, &a.Note, &a.AdjustedBy, &a.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
