package documents

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"opinions/internal/domain"
	"opinions/internal/store"
)

// Keyworder extracts the top n keywords from a token stream.
type Keyworder interface {
	Keywords(tokens []string, n int) []string
}

// SentenceCounter is implemented by tokenizers that can count sentences.
type SentenceCounter interface {
	Sentences(text string) int
}

// Collector reads <dir>/<name>.txt for each respondent and computes
// document statistics.
type Collector struct {
	dir         string
	tokenizer   domain.Tokenizer
	keywords    Keyworder
	maxKeywords int
}

// NewCollector creates a collector. keywords may be nil.
func NewCollector(dir string, tokenizer domain.Tokenizer, keywords Keyworder, maxKeywords int) *Collector {
	return &Collector{dir: dir, tokenizer: tokenizer, keywords: keywords, maxKeywords: maxKeywords}
}

// Path returns the document path for name.
func (c *Collector) Path(name string) string {
	return filepath.Join(c.dir, name+".txt")
}

// Collect reads and tokenizes the document for name.
func (c *Collector) Collect(name string) (domain.DocumentStats, error) {
	path := c.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DocumentStats{}, &domain.DocumentNotFoundError{Name: name, Path: path, Err: err}
		}
		return domain.DocumentStats{}, fmt.Errorf("read document %s: %w", path, err)
	}
	text := string(data)
	stats := Compute(name, c.tokenizer.Tokenize(text))
	if sc, ok := c.tokenizer.(SentenceCounter); ok {
		stats.Sentences = sc.Sentences(text)
	}
	if c.keywords != nil {
		stats.Keywords = c.keywords.Keywords(stats.Tokens, c.maxKeywords)
	}
	return stats, nil
}

// CollectAll collects every name in order and stops at the first failure.
func (c *Collector) CollectAll(names []string) ([]domain.DocumentStats, error) {
	out := make([]domain.DocumentStats, 0, len(names))
	for _, n := range names {
		s, err := c.Collect(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Compute derives word and "i" token counts from already lowercased tokens.
func Compute(name string, tokens []string) domain.DocumentStats {
	s := domain.DocumentStats{Name: name, Tokens: tokens, WordCount: len(tokens)}
	for _, t := range tokens {
		if t == "i" {
			s.ICount++
		}
	}
	return s
}

// Label formats the annotation attached to a respondent.
func Label(s domain.DocumentStats) string {
	return fmt.Sprintf("Word Count: %d", s.WordCount)
}

// Attach joins stats to the stored respondents by name and sets their
// labels. Every respondent name needs a stats record and every record must
// name a stored respondent; nothing is changed otherwise. Repeated names use
// the first record.
func Attach(st store.Storage, stats []domain.DocumentStats) error {
	byName := make(map[string]domain.DocumentStats, len(stats))
	var extra []string
	for _, s := range stats {
		if _, dup := byName[s.Name]; dup {
			continue
		}
		byName[s.Name] = s
		if len(st.ByName(s.Name)) == 0 {
			extra = append(extra, s.Name)
		}
	}
	var missing []string
	for _, n := range st.Names() {
		if _, ok := byName[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return &domain.JoinMismatchError{Missing: missing, Extra: extra}
	}
	for _, n := range st.Names() {
		label := Label(byName[n])
		st.Update(n, func(r *domain.Respondent) { r.Label = label })
	}
	return nil
}
