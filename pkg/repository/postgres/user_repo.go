package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvstudio/pkg/auth"
)

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	r := &UserRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, u auth.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)
`, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, email, password_hash, created_at FROM users WHERE email = $1
`, email)
	var u auth.User
	var created time.Time
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	u.CreatedAt = created.UTC()
	return u, nil
}
