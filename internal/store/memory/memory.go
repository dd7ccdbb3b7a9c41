package memory

import (
	"errors"
	"sync"

	"opinions/internal/domain"
)

// Storage is an in-memory respondent store. Duplicate names are kept as
// separate records that share one index entry.
type Storage struct {
	mu          sync.RWMutex
	respondents []domain.Respondent
	index       map[string][]int
	names       []string
}

func NewStorage() *Storage { return &Storage{index: make(map[string][]int)} }

func (s *Storage) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respondents = nil
	s.names = nil
	s.index = make(map[string][]int)
	return nil
}

func (s *Storage) Put(respondents []domain.Respondent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range respondents {
		if r.Name == "" {
			return errors.New("respondent without a name")
		}
	}
	for _, r := range respondents {
		if _, ok := s.index[r.Name]; !ok {
			s.names = append(s.names, r.Name)
		}
		s.index[r.Name] = append(s.index[r.Name], len(s.respondents))
		s.respondents = append(s.respondents, r)
	}
	return nil
}

// All returns a copy of the respondents in insertion order.
func (s *Storage) All() []domain.Respondent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Respondent, len(s.respondents))
	copy(out, s.respondents)
	return out
}

func (s *Storage) ByName(name string) []domain.Respondent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idxs := s.index[name]
	out := make([]domain.Respondent, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, s.respondents[i])
	}
	return out
}

// Names returns the distinct names in first-seen order.
func (s *Storage) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.respondents)
}

// Update applies fn to every respondent called name and reports how many
// were changed.
func (s *Storage) Update(name string, fn func(*domain.Respondent)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	idxs := s.index[name]
	for _, i := range idxs {
		fn(&s.respondents[i])
	}
	return len(idxs)
}
