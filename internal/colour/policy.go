package colour

import (
	"github.com/paulmach/orb"

	"opinions/internal/domain"
)

// Default scale used for both halves of the plane.
const DefaultScale = 20.0

var (
	Red     = domain.RGB{R: 1}
	Green   = domain.RGB{G: 1}
	Blue    = domain.RGB{B: 1}
	Yellow  = domain.RGB{R: 1, G: 1}
	Magenta = domain.RGB{R: 1, B: 1}
	Cyan    = domain.RGB{G: 1, B: 1}
	Black   = domain.RGB{}
)

// Palette colours clusters by id.
var Palette = [...]domain.RGB{Red, Green, Blue, Yellow, Magenta, Cyan}

// Policy colours a point by which side of the x+y=0 diagonal it falls on.
// Points with x+y > 0 are green with red fading in towards the origin,
// points with x+y < 0 are red with green fading in, and points on the
// diagonal are black. Channels are not clamped.
func Policy(p orb.Point, maxScale, minScale float64) domain.RGB {
	var c domain.RGB
	t := p.X() + p.Y()
	switch {
	case t > 0:
		c.G = 1
		c.R = 1 - t/maxScale
	case t < 0:
		c.R = 1
		c.G = 1 + t/minScale
	}
	return c
}

// Scales holds the two normalisation scales of Policy.
type Scales struct {
	Max float64
	Min float64
}

// DefaultScales returns 20/20.
func DefaultScales() Scales { return Scales{Max: DefaultScale, Min: DefaultScale} }

// Of applies Policy with these scales.
func (s Scales) Of(p orb.Point) domain.RGB { return Policy(p, s.Max, s.Min) }

// ForCluster returns the palette colour of a cluster id.
func ForCluster(id int) domain.RGB {
	return Palette[id%len(Palette)]
}
