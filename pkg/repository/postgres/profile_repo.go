package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvstudio/pkg/profile"
)

// ProfileRepository persists profile records; the structured profile itself
// is stored as one JSONB payload.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	job_field TEXT NOT NULL DEFAULT '',
	template TEXT NOT NULL DEFAULT 'classic',
	source_text TEXT NOT NULL DEFAULT '',
	payload JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS profiles_owner_idx ON profiles (owner_id, created_at DESC);
`)
	return err
}

func (r *ProfileRepository) Create(ctx context.Context, rec profile.Record) error {
	payload, err := json.Marshal(rec.Profile)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO profiles (id, owner_id, job_field, template, source_text, payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, rec.ID, rec.OwnerID, rec.JobField, rec.Template, rec.SourceText, payload, rec.CreatedAt, rec.UpdatedAt)
	return err
}

func (r *ProfileRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, job_field, template, source_text, payload, created_at, updated_at
FROM profiles WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanRecord(row)
}

func (r *ProfileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]profile.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, job_field, template, source_text, payload, created_at, updated_at
FROM profiles WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []profile.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) Update(ctx context.Context, rec profile.Record) error {
	payload, err := json.Marshal(rec.Profile)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE profiles
SET job_field = $3, template = $4, source_text = $5, payload = $6, updated_at = $7
WHERE id = $1 AND owner_id = $2
`, rec.ID, rec.OwnerID, rec.JobField, rec.Template, rec.SourceText, payload, rec.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM profiles WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (profile.Record, error) {
	var rec profile.Record
	var payload []byte
	var created, updated time.Time
	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.JobField, &rec.Template, &rec.SourceText, &payload, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	if err := json.Unmarshal(payload, &rec.Profile); err != nil {
		return profile.Record{}, err
	}
	rec.CreatedAt = created.UTC()
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
