package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"evalhub/internal/domain/auth"
	"evalhub/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if strings.TrimSpace(cfg.SeedAdminEmail) == "" {
		return nil
	}
	return ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var existing string
	if err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, password_hash, role)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO NOTHING
  `, email, hash, auth.RoleSuperAdmin)
	return err
}
