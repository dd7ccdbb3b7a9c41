package survey

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"opinions/internal/domain"
)

var (
	errPointArity = errors.New("expected two comma-separated values")
	errBadName    = errors.New("name must not contain path separators")
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

func newScanner(r io.Reader) *bufio.Scanner {
	sc := newScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// LoadRespondents reads the coordinate file at path.
func LoadRespondents(path string) ([]domain.Respondent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRespondents(f, path)
}

// ParseRespondents reads lines of the form "name x1,y1 x2,y2 ...".
// Blank lines are skipped; source is only used in error messages.
func ParseRespondents(r io.Reader, source string) ([]domain.Respondent, error) {
	var out []domain.Respondent
	sc := newScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		points := make([]orb.Point, 0, len(fields)-1)
		for _, field := range fields[1:] {
			p, err := parsePoint(field)
			if err != nil {
				return nil, &domain.ParseError{Path: source, Line: line, Field: field, Err: err}
			}
			points = append(points, p)
		}
		resp, err := NewRespondent(fields[0], points)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		out = append(out, resp)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.ParseError{Path: source, Line: line + 1, Err: err}
	}
	return out, nil
}

func parsePoint(field string) (orb.Point, error) {
	parts := strings.Split(field, ",")
	if len(parts) != 2 {
		return orb.Point{}, errPointArity
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return orb.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x, y}, nil
}

// LoadNames reads the name file at path.
func LoadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseNames(f, path)
}

// ParseNames returns the first whitespace-delimited token of each
// non-empty line. The coordinate file is a valid name file.
func ParseNames(r io.Reader, source string) ([]string, error) {
	var names []string
	sc := newScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return nil, &domain.ParseError{Path: source, Line: line, Field: name, Err: errBadName}
		}
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.ParseError{Path: source, Line: line + 1, Err: err}
	}
	return names, nil
}
