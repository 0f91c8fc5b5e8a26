package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	records map[uuid.UUID]Record
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]Record)}
}

func (m *memRepo) Create(_ context.Context, rec Record) error {
	m.records[rec.ID] = rec
	return nil
}

func (m *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Record, error) {
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != ownerID {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]Record, error) {
	var out []Record
	for _, rec := range m.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, rec Record) error {
	if _, ok := m.records[rec.ID]; !ok {
		return ErrNotFound
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *memRepo) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	rec, ok := m.records[id]
	if !ok || rec.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// uppercaseExtractor marks calls so tests can tell which path ran.
type uppercaseExtractor struct{}

func (uppercaseExtractor) Prefill(p Profile, text string) Profile {
	if p.Summary == "" {
		p.Summary = strings.ToUpper(text)
	}
	return p
}

func (uppercaseExtractor) Improve(p Profile) Profile {
	p.Summary = "improved: " + p.Summary
	return p
}

func TestServiceCreateDefaults(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()

	rec, err := svc.Create(context.Background(), owner, "General", "")
	require.NoError(t, err)
	assert.Equal(t, owner, rec.OwnerID)
	assert.Equal(t, "General", rec.JobField)
	assert.Equal(t, DefaultTemplate, rec.Template)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	require.Len(t, rec.Profile.Experiences, 1)

	rec, err = svc.Create(context.Background(), owner, "", "actor")
	require.NoError(t, err)
	assert.Equal(t, "actor", rec.Template)

	rec, err = svc.Create(context.Background(), owner, "", "no-such-template")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate, rec.Template)
}

func TestServiceGetEnforcesOwnership(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "", "")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestServiceUpdate(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "General", "")
	require.NoError(t, err)

	p := rec.Profile
	p.Summary = "edited by hand"
	got, err := svc.Update(context.Background(), owner, rec.ID, p, "Design", "slate")
	require.NoError(t, err)
	assert.Equal(t, "edited by hand", got.Profile.Summary)
	assert.Equal(t, "Design", got.JobField)
	assert.Equal(t, "slate", got.Template)

	// Blank or invalid field/template keep the stored values.
	got, err = svc.Update(context.Background(), owner, rec.ID, p, "", "bogus")
	require.NoError(t, err)
	assert.Equal(t, "Design", got.JobField)
	assert.Equal(t, "slate", got.Template)
}

func TestServiceReset(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "Design", "slate")
	require.NoError(t, err)

	_, err = svc.AttachSource(context.Background(), owner, rec.ID, "some source text")
	require.NoError(t, err)

	got, err := svc.Reset(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.JobField)
	assert.Equal(t, DefaultTemplate, got.Template)
	assert.Equal(t, "", got.SourceText)
	assert.Equal(t, "", got.Profile.Summary)

	// A later attach starts from an empty corpus again.
	got, err = svc.AttachSource(context.Background(), owner, rec.ID, "fresh text")
	require.NoError(t, err)
	assert.Equal(t, "fresh text", got.SourceText)
}

func TestServiceAttachSourceAccumulates(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "", "")
	require.NoError(t, err)

	got, err := svc.AttachSource(context.Background(), owner, rec.ID, "first document")
	require.NoError(t, err)
	assert.Equal(t, "first document", got.SourceText)
	assert.Equal(t, "FIRST DOCUMENT", got.Profile.Summary)

	got, err = svc.AttachSource(context.Background(), owner, rec.ID, "second document")
	require.NoError(t, err)
	assert.Equal(t, "first document\nsecond document", got.SourceText)
	// Prefill runs over the whole corpus but never overwrites the summary
	// it already produced.
	assert.Equal(t, "FIRST DOCUMENT", got.Profile.Summary)

	// Blank uploads do not grow the corpus.
	got, err = svc.AttachSource(context.Background(), owner, rec.ID, "   \n ")
	require.NoError(t, err)
	assert.Equal(t, "first document\nsecond document", got.SourceText)
}

func TestServiceImprove(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "", "")
	require.NoError(t, err)

	got, err := svc.Improve(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.Profile.Summary, "improved:"))

	// Improve persists: a fresh read sees the rewritten profile.
	again, err := svc.Get(context.Background(), owner, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Profile.Summary, again.Profile.Summary)
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(newMemRepo(), uppercaseExtractor{})
	owner := uuid.New()
	rec, err := svc.Create(context.Background(), owner, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, rec.ID))
	_, err = svc.Get(context.Background(), owner, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), owner, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
