package store

import "opinions/internal/domain"

// Storage holds respondents in input order and indexes them by name.
type Storage interface {
	Init() error
	Put(respondents []domain.Respondent) error
	All() []domain.Respondent
	ByName(name string) []domain.Respondent
	Names() []string
	Len() int
	Update(name string, fn func(*domain.Respondent)) int
}
