package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvstudio/pkg/document"
)

// DocumentRepository persists metadata of uploaded source documents.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

func NewDocumentRepository(pool *pgxpool.Pool) (*DocumentRepository, error) {
	r := &DocumentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DocumentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS documents (
	id UUID PRIMARY KEY,
	profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	size_bytes BIGINT NOT NULL,
	storage_uri TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS documents_profile_idx ON documents (profile_id, created_at);
`)
	return err
}

func (r *DocumentRepository) Create(ctx context.Context, d document.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO documents (id, profile_id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, d.ID, d.ProfileID, d.OwnerID, d.Filename, d.MimeType, d.Size, d.StorageURI, d.CreatedAt)
	return err
}

func (r *DocumentRepository) ListByProfile(ctx context.Context, ownerID, profileID uuid.UUID) ([]document.Document, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, profile_id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM documents WHERE profile_id = $1 AND owner_id = $2
ORDER BY created_at
`, profileID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []document.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *DocumentRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (document.Document, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, profile_id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
FROM documents WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanDocument(row)
}

// DeleteForOwner removes the row and returns the deleted metadata so the
// caller can clean up the stored file.
func (r *DocumentRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (document.Document, error) {
	row := r.pool.QueryRow(ctx, `
DELETE FROM documents WHERE id = $1 AND owner_id = $2
RETURNING id, profile_id, owner_id, filename, mime_type, size_bytes, storage_uri, created_at
`, id, ownerID)
	return scanDocument(row)
}

func scanDocument(row pgx.Row) (document.Document, error) {
	var d document.Document
	var created time.Time
	if err := row.Scan(&d.ID, &d.ProfileID, &d.OwnerID, &d.Filename, &d.MimeType, &d.Size, &d.StorageURI, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		return document.Document{}, err
	}
	d.CreatedAt = created.UTC()
	return d, nil
}
