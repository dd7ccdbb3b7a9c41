package domain

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed line in a coordinate or name file.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: field %q: %v", e.Path, e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyInputError is returned when a respondent has no coordinates.
type EmptyInputError struct {
	Name string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("respondent %q has no coordinates", e.Name)
}

// DocumentNotFoundError is returned when a respondent's document is missing.
type DocumentNotFoundError struct {
	Name string
	Path string
	Err  error
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document for %q not found at %s", e.Name, e.Path)
}

func (e *DocumentNotFoundError) Unwrap() error { return e.Err }

// JoinMismatchError lists names present on one side of the
// respondent/document join but not the other.
type JoinMismatchError struct {
	Missing []string // respondents without a document
	Extra   []string // documents without a respondent
}

func (e *JoinMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "no document for "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "no respondent for "+strings.Join(e.Extra, ", "))
	}
	return "join mismatch: " + strings.Join(parts, "; ")
}
