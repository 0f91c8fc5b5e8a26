package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extractor is the port to the text extraction engine. It keeps the use case
// free of heuristic details.
type Extractor interface {
	// Prefill fills empty fields of p from raw source text without
	// overwriting user-entered content.
	Prefill(p Profile, text string) Profile
	// Improve applies the tone/normalization pass over the whole profile.
	Improve(p Profile) Profile
}

// UseCase describes the profile record scenarios.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, jobField, template string) (Record, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p Profile, jobField, template string) (Record, error)
	Reset(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// AttachSource appends decoded document text to the record's source
	// corpus and runs the extraction prefill over the accumulated text.
	AttachSource(ctx context.Context, ownerID, id uuid.UUID, text string) (Record, error)
	// Improve rewrites summary and bullets in place.
	Improve(ctx context.Context, ownerID, id uuid.UUID) (Record, error)
}

type service struct {
	repo      Repository
	extractor Extractor
}

func NewService(repo Repository, extractor Extractor) UseCase {
	return &service{repo: repo, extractor: extractor}
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, jobField, template string) (Record, error) {
	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		JobField:  jobField,
		Template:  template,
		Profile:   New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if rec.Template == "" || !ValidTemplate(rec.Template) {
		rec.Template = DefaultTemplate
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Record, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, p Profile, jobField, template string) (Record, error) {
	rec, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Record{}, err
	}
	rec.Profile = p
	if jobField != "" {
		rec.JobField = jobField
	}
	if template != "" && ValidTemplate(template) {
		rec.Template = template
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Reset replaces the record wholesale with a fresh empty profile, dropping
// the accumulated source text as well.
func (s *service) Reset(ctx context.Context, ownerID, id uuid.UUID) (Record, error) {
	rec, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Record{}, err
	}
	rec.Profile = New()
	rec.JobField = ""
	rec.Template = DefaultTemplate
	rec.SourceText = ""
	rec.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}

func (s *service) AttachSource(ctx context.Context, ownerID, id uuid.UUID, text string) (Record, error) {
	rec, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Record{}, err
	}
	if strings.TrimSpace(text) != "" {
		if rec.SourceText == "" {
			rec.SourceText = text
		} else {
			rec.SourceText += "\n" + text
		}
	}
	rec.Profile = s.extractor.Prefill(rec.Profile, rec.SourceText)
	rec.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *service) Improve(ctx context.Context, ownerID, id uuid.UUID) (Record, error) {
	rec, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Record{}, err
	}
	rec.Profile = s.extractor.Improve(rec.Profile)
	rec.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
