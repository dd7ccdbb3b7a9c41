package tokenizer

import (
	"regexp"
	"strings"
)

// WordTokenizer splits text into lowercase word tokens following the
// Penn Treebank conventions closely enough for counting: clitics are split
// off ("i'm" -> "i", "'m"; "don't" -> "do", "n't") and every punctuation
// character is its own token.
type WordTokenizer struct {
	tokenPattern    *regexp.Regexp
	sentencePattern *regexp.Regexp
}

// NewWordTokenizer creates a tokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{
		tokenPattern:    regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+(?:[.,]\p{N}+)*|[^\s\p{L}\p{N}]`),
		sentencePattern: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Name returns the identifier used in config.
func (t *WordTokenizer) Name() string { return "word" }

// Tokenize returns the lowercase tokens of text in order.
func (t *WordTokenizer) Tokenize(text string) []string {
	raw := t.tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		out = append(out, splitClitic(tok)...)
	}
	return out
}

// Sentences counts sentences terminated by . ! or ?. Trailing text without
// a terminator counts as one more sentence.
func (t *WordTokenizer) Sentences(text string) int {
	spans := t.sentencePattern.FindAllStringIndex(text, -1)
	n := len(spans)
	rest := text
	if n > 0 {
		rest = text[spans[n-1][1]:]
	}
	if strings.TrimSpace(rest) != "" {
		n++
	}
	return n
}

func splitClitic(tok string) []string {
	tok = strings.ReplaceAll(tok, "’", "'")
	i := strings.IndexByte(tok, '\'')
	if i < 0 {
		return []string{tok}
	}
	if strings.HasSuffix(tok, "n't") && len(tok) > 3 && i == len(tok)-2 {
		return []string{tok[:len(tok)-3], "n't"}
	}
	return []string{tok[:i], tok[i:]}
}
