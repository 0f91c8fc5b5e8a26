package document

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("document not found")

// Document stores metadata of an uploaded source file (CV or supporting doc).
type Document struct {
	ID         uuid.UUID `json:"id"`
	ProfileID  uuid.UUID `json:"profileId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mimeType"`
	Size       int64     `json:"size"`
	StorageURI string    `json:"storageUri,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository is the persistence port for uploaded documents.
type Repository interface {
	Create(ctx context.Context, d Document) error
	ListByProfile(ctx context.Context, ownerID, profileID uuid.UUID) ([]Document, error)
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Document, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) (Document, error)
}
