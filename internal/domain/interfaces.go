package domain

import (
	"image/color"

	"github.com/paulmach/orb"
)

// Respondent is a survey participant with their raw opinion points.
// Centroid is computed once at construction and must match Coordinates.
type Respondent struct {
	Name        string
	Coordinates []orb.Point
	Centroid    orb.Point
	Label       string
}

// Ring returns the respondent's polygon, closed by repeating the first point.
func (r Respondent) Ring() orb.Ring {
	if len(r.Coordinates) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(r.Coordinates)+1)
	ring = append(ring, r.Coordinates...)
	return append(ring, r.Coordinates[0])
}

// Annotation is the text drawn next to the respondent's centroid.
func (r Respondent) Annotation() string {
	return r.Name + " " + r.Label
}

// DocumentStats holds statistics over a respondent's free-text document.
// ICount counts tokens equal to "i", not occurrences of the letter.
type DocumentStats struct {
	Name      string
	Tokens    []string
	WordCount int
	ICount    int
	Sentences int
	Keywords  []string
}

// ClusterAssignment maps respondent index to cluster id in [0, K).
type ClusterAssignment struct {
	K         int
	Centroids []orb.Point
	Labels    []int
}

// RGB is a colour with float channels. Channels are not clamped.
type RGB struct {
	R, G, B float64
}

// NRGBA converts to an opaque image colour, clamping each channel to [0,1].
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}

// MarkerShape selects the glyph used for markers.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerCross
)

// Figure is a rendered canvas.
type Figure struct {
	Name string
	Path string
}

// Tokenizer splits free text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Clusterer partitions points into k groups.
type Clusterer interface {
	Name() string
	Cluster(points []orb.Point, k int) (ClusterAssignment, error)
}

// Canvas is a named drawing target owned by whoever created it.
type Canvas interface {
	Name() string
	Line(points []orb.Point, c RGB) error
	Markers(points []orb.Point, c RGB, shape MarkerShape) error
	Annotate(at orb.Point, text string) error
	OriginLines() error
}

// Surface creates canvases and renders all of them on Flush.
type Surface interface {
	NewCanvas(name string) (Canvas, error)
	Flush() ([]Figure, error)
}

// Display presents rendered figures and blocks until dismissed.
type Display interface {
	Show(figures []Figure) error
}
