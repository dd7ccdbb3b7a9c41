package survey

import (
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/stat"

	"opinions/internal/domain"
)

// Centroid returns the independent mean of the x and y values.
func Centroid(points []orb.Point) (orb.Point, error) {
	if len(points) == 0 {
		return orb.Point{}, &domain.EmptyInputError{}
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X()
		ys[i] = p.Y()
	}
	return orb.Point{stat.Mean(xs, nil), stat.Mean(ys, nil)}, nil
}

// NewRespondent builds a respondent and computes its centroid.
// The points are copied so later changes by the caller cannot
// desynchronise the centroid.
func NewRespondent(name string, points []orb.Point) (domain.Respondent, error) {
	c, err := Centroid(points)
	if err != nil {
		return domain.Respondent{}, &domain.EmptyInputError{Name: name}
	}
	coords := make([]orb.Point, len(points))
	copy(coords, points)
	return domain.Respondent{Name: name, Coordinates: coords, Centroid: c}, nil
}

// Centroids extracts the centroid of every respondent, in order.
func Centroids(respondents []domain.Respondent) []orb.Point {
	out := make([]orb.Point, len(respondents))
	for i, r := range respondents {
		out[i] = r.Centroid
	}
	return out
}
