package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Record is the persisted session entity: the editable profile plus the
// accumulated raw text of every uploaded source document.
type Record struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	JobField   string    `json:"jobField"`
	Template   string    `json:"template"`
	SourceText string    `json:"-"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Repository is the persistence port for profile records.
type Repository interface {
	Create(ctx context.Context, rec Record) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
