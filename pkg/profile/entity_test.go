package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsBlankEntries(t *testing.T) {
	p := New()

	assert.Equal(t, []string{""}, p.Skills)
	require.Len(t, p.Experiences, 1)
	assert.Equal(t, []string{""}, p.Experiences[0].Bullets)
	require.Len(t, p.Education, 1)
	assert.Equal(t, []string{""}, p.Education[0].Details)
	require.Len(t, p.Projects, 1)
	require.Len(t, p.Certifications, 1)
	require.Len(t, p.Languages, 1)
	assert.NotNil(t, p.CustomSections)
	assert.Empty(t, p.CustomSections)
}

func TestNewEntryIDsAreUnique(t *testing.T) {
	p := New()
	ids := []string{
		p.Experiences[0].ID,
		p.Education[0].ID,
		p.Projects[0].ID,
		p.Certifications[0].ID,
		p.Languages[0].ID,
	}
	seen := make(map[string]struct{})
	for _, id := range ids {
		assert.NotEmpty(t, id)
		_, dup := seen[id]
		assert.False(t, dup, id)
		seen[id] = struct{}{}
	}
}

func TestValidTemplate(t *testing.T) {
	for _, tpl := range Templates {
		assert.True(t, ValidTemplate(tpl.ID), tpl.ID)
	}
	assert.True(t, ValidTemplate(DefaultTemplate))
	assert.False(t, ValidTemplate("gothic"))
	assert.False(t, ValidTemplate(""))
}
