package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	text := "Led a platform team of twelve engineers across two sites. " +
		"Cut costs. " +
		"Migrated the payment stack to an event-driven architecture without downtime!"
	got := Sentences(text, 3)
	assert.Len(t, got, 2)
	assert.Equal(t, "Led a platform team of twelve engineers across two sites.", got[0])
	assert.Equal(t, "Migrated the payment stack to an event-driven architecture without downtime!", got[1])
}

func TestSentencesLimit(t *testing.T) {
	text := "First sentence with enough words to pass the filter. " +
		"Second sentence with enough words to pass the filter. " +
		"Third sentence with enough words to pass the filter."
	assert.Len(t, Sentences(text, 2), 2)
}

func TestSentencesCollapsesWhitespace(t *testing.T) {
	text := "Shipped   the\n\treporting   service used by every enterprise customer."
	got := Sentences(text, 1)
	assert.Equal(t, []string{"Shipped the reporting service used by every enterprise customer."}, got)
}

func TestSentencesShortFragmentsDropped(t *testing.T) {
	assert.Empty(t, Sentences("Too short. Also short. Tiny.", 3))
}
