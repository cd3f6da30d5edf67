package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	MemberID     string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash, role, member_id
    FROM users
    WHERE email = $1
  `, email)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser tolerates a NULL member link; seeded operator accounts have no
// member row of their own.
func scanUser(row rowScanner) (User, error) {
	var u User
	var memberID *string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &memberID); err != nil {
		return User{}, err
	}
	if memberID != nil {
		u.MemberID = *memberID
	}
	return u, nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, userID string) error {
	_, err := s.DB.Exec(ctx, "UPDATE users SET last_login = now() WHERE id = $1", userID)
	return err
}
