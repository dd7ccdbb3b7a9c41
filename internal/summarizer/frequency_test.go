package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	s := NewFrequencySummarizer()

	t.Run("Ranks by frequency then alphabetically", func(t *testing.T) {
		tokens := []string{"tea", "coffee", "tea", "the", "milk", "coffee", "tea", ",", "'s"}

		assert.Equal(t, []string{"tea", "coffee", "milk"}, s.Keywords(tokens, 5))
		assert.Equal(t, []string{"tea"}, s.Keywords(tokens, 1))
	})

	t.Run("Stopwords only", func(t *testing.T) {
		assert.Empty(t, s.Keywords([]string{"i", "the", "and"}, 3))
	})

	t.Run("Non positive n", func(t *testing.T) {
		assert.Nil(t, s.Keywords([]string{"tea"}, 0))
	})
}
