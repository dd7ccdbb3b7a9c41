package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordTokenizer(t *testing.T) {
	tk := NewWordTokenizer()

	t.Run("Lowercases words", func(t *testing.T) {
		assert.Equal(t, []string{"i", "like", "i", "tea"}, tk.Tokenize("I like i tea"))
	})

	t.Run("Punctuation is tokenized separately", func(t *testing.T) {
		assert.Equal(t, []string{"hello", ",", "world", "!"}, tk.Tokenize("Hello, world!"))
	})

	t.Run("Clitics are split off", func(t *testing.T) {
		assert.Equal(t, []string{"i", "'m", "sure", "it", "'s", "fine"}, tk.Tokenize("I'm sure it’s fine"))
		assert.Equal(t, []string{"we", "do", "n't"}, tk.Tokenize("We don't"))
	})

	t.Run("Numbers keep their separators", func(t *testing.T) {
		assert.Equal(t, []string{"3.14", "and", "1,000"}, tk.Tokenize("3.14 and 1,000"))
	})

	t.Run("Empty text", func(t *testing.T) {
		assert.Nil(t, tk.Tokenize("   \n"))
	})
}

func TestSentences(t *testing.T) {
	tk := NewWordTokenizer()

	assert.Equal(t, 3, tk.Sentences("One. Two? Three!"))
	assert.Equal(t, 2, tk.Sentences("One. And a tail"))
	assert.Equal(t, 1, tk.Sentences("no terminator"))
	assert.Equal(t, 0, tk.Sentences(""))
}
