package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRecogniser_RecogniseTags tests candidate matching
func TestRecogniser_RecogniseTags(t *testing.T) {
	recogniser := NewRecogniser(func() []string {
		return []string{"phone", "Bill", "tax", "a"}
	})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"matches are case-insensitive", "Your PHONE bill for May", []string{"phone", "bill"}},
		{"no candidates present", "completely unrelated", nil},
		{"single match", "income tax return", []string{"tax"}},
		{"one-letter candidates ignored", "a a a a", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recogniser.RecogniseTags(tt.text))
		})
	}
}

// TestRecogniser_LiveCandidates tests that the provider is consulted each call
func TestRecogniser_LiveCandidates(t *testing.T) {
	candidates := []string{"phone"}
	recogniser := NewRecogniser(func() []string { return candidates })

	assert.Equal(t, []string{"phone"}, recogniser.RecogniseTags("phone bill"))

	candidates = []string{"phone", "bill"}
	assert.Equal(t, []string{"phone", "bill"}, recogniser.RecogniseTags("phone bill"))
}

// TestRecogniser_NilProvider tests graceful behaviour without candidates
func TestRecogniser_NilProvider(t *testing.T) {
	recogniser := NewRecogniser(nil)

	assert.Nil(t, recogniser.RecogniseTags("phone bill"))
}
