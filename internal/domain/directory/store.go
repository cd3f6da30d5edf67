package directory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

type StoreAPI interface {
	Get(ctx context.Context, memberID string) (Member, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Get(ctx context.Context, memberID string) (Member, error) {
	var m Member
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, team
    FROM members
    WHERE id = $1
  `, memberID).Scan(&m.ID, &m.Name, &m.Team)
	return m, err
}
