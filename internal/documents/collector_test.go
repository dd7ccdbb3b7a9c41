package documents

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opinions/internal/domain"
	"opinions/internal/store/memory"
	"opinions/internal/summarizer"
	"opinions/internal/tokenizer"
)

func writeDoc(t *testing.T, dir, name, text string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".txt"), []byte(text), 0o644))
}

func TestCompute(t *testing.T) {
	t.Run("Counts standalone i tokens", func(t *testing.T) {
		s := Compute("Alice", []string{"i", "like", "i", "tea"})

		assert.Equal(t, 4, s.WordCount)
		assert.Equal(t, 2, s.ICount)
	})

	t.Run("Substrings do not count", func(t *testing.T) {
		s := Compute("Bob", []string{"in", "it", "hi", "'i"})

		assert.Equal(t, 0, s.ICount)
	})
}

func TestCollector(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Alice", "I like i tea")
	writeDoc(t, dir, "Bob", "Tea, tea and more tea. I'm done!")
	c := NewCollector(dir, tokenizer.NewWordTokenizer(), summarizer.NewFrequencySummarizer(), 2)

	t.Run("Case insensitive i count", func(t *testing.T) {
		s, err := c.Collect("Alice")

		require.NoError(t, err)
		assert.Equal(t, "Alice", s.Name)
		assert.Equal(t, []string{"i", "like", "i", "tea"}, s.Tokens)
		assert.Equal(t, 4, s.WordCount)
		assert.Equal(t, 2, s.ICount)
		assert.Equal(t, 1, s.Sentences)
	})

	t.Run("Punctuation and clitics are tokens", func(t *testing.T) {
		s, err := c.Collect("Bob")

		require.NoError(t, err)
		assert.Equal(t, 11, s.WordCount)
		assert.Equal(t, 1, s.ICount)
		assert.Equal(t, 2, s.Sentences)
		assert.Equal(t, []string{"tea", "done"}, s.Keywords)
	})

	t.Run("Missing document", func(t *testing.T) {
		_, err := c.Collect("Nobody")

		var nf *domain.DocumentNotFoundError
		require.True(t, errors.As(err, &nf), "Expected DocumentNotFoundError, got %v", err)
		assert.Equal(t, "Nobody", nf.Name)
		assert.Equal(t, filepath.Join(dir, "Nobody.txt"), nf.Path)
	})

	t.Run("CollectAll fails fast", func(t *testing.T) {
		_, err := c.CollectAll([]string{"Alice", "Nobody", "Bob"})

		var nf *domain.DocumentNotFoundError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("CollectAll keeps order", func(t *testing.T) {
		got, err := c.CollectAll([]string{"Bob", "Alice"})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Bob", got[0].Name)
		assert.Equal(t, "Alice", got[1].Name)
	})
}

func TestAttach(t *testing.T) {
	respondents := []domain.Respondent{{Name: "Alice"}, {Name: "Bob"}, {Name: "Alice"}}

	t.Run("Labels every respondent by name", func(t *testing.T) {
		st := memory.NewStorage()
		require.NoError(t, st.Put(respondents))
		stats := []domain.DocumentStats{{Name: "Bob", WordCount: 7}, {Name: "Alice", WordCount: 4}}

		require.NoError(t, Attach(st, stats))

		all := st.All()
		assert.Equal(t, "Word Count: 4", all[0].Label)
		assert.Equal(t, "Word Count: 7", all[1].Label)
		assert.Equal(t, "Word Count: 4", all[2].Label)
	})

	t.Run("Missing and extra names", func(t *testing.T) {
		st := memory.NewStorage()
		require.NoError(t, st.Put(respondents))
		stats := []domain.DocumentStats{{Name: "Alice"}, {Name: "Carol"}}

		err := Attach(st, stats)

		var jm *domain.JoinMismatchError
		require.True(t, errors.As(err, &jm), "Expected JoinMismatchError, got %v", err)
		assert.Equal(t, []string{"Bob"}, jm.Missing)
		assert.Equal(t, []string{"Carol"}, jm.Extra)
		assert.Equal(t, "", st.All()[0].Label, "Expected no label on failure")
	})
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Word Count: 12", Label(domain.DocumentStats{WordCount: 12}))
}
