package plot

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"opinions/internal/domain"
)

// Config configures where and how canvases are saved.
type Config struct {
	OutputDir string
	Format    string // png, svg, pdf, jpg
	Width     float64
	Height    float64
}

// Surface renders canvases to image files with gonum/plot.
type Surface struct {
	cfg      Config
	canvases []*Canvas
}

// NewSurface validates cfg and returns an empty surface.
func NewSurface(cfg Config) (*Surface, error) {
	switch strings.ToLower(cfg.Format) {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps":
	default:
		return nil, fmt.Errorf("unsupported plot format %q", cfg.Format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("plot size must be positive")
	}
	return &Surface{cfg: cfg}, nil
}

// NewCanvas creates a named canvas. Names must map to distinct file names
// per surface.
func (s *Surface) NewCanvas(name string) (domain.Canvas, error) {
	slug := Slug(name)
	for _, c := range s.canvases {
		if Slug(c.name) == slug {
			return nil, fmt.Errorf("canvas %q collides with %q", name, c.name)
		}
	}
	p := gplot.New()
	p.Title.Text = name
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	c := &Canvas{name: name, plot: p}
	s.canvases = append(s.canvases, c)
	return c, nil
}

// Flush saves every canvas in creation order and returns the files written.
func (s *Surface) Flush() ([]domain.Figure, error) {
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}
	figures := make([]domain.Figure, 0, len(s.canvases))
	for _, c := range s.canvases {
		if err := c.finish(); err != nil {
			return nil, fmt.Errorf("canvas %q: %w", c.name, err)
		}
		path := filepath.Join(s.cfg.OutputDir, Slug(c.name)+"."+strings.ToLower(s.cfg.Format))
		if err := c.plot.Save(vg.Points(s.cfg.Width), vg.Points(s.cfg.Height), path); err != nil {
			return nil, fmt.Errorf("save %s: %w", path, err)
		}
		figures = append(figures, domain.Figure{Name: c.name, Path: path})
	}
	return figures, nil
}

// Canvas is a single gonum plot. The bound of everything drawn is tracked
// so origin lines can span the data once drawing is finished.
type Canvas struct {
	name   string
	plot   *gplot.Plot
	bound  orb.Bound
	drawn  bool
	origin bool
}

func (c *Canvas) Name() string { return c.name }

func (c *Canvas) Line(points []orb.Point, col domain.RGB) error {
	if len(points) == 0 {
		return nil
	}
	l, err := plotter.NewLine(c.xys(points))
	if err != nil {
		return err
	}
	l.LineStyle.Color = col.NRGBA()
	l.LineStyle.Width = vg.Points(1)
	c.plot.Add(l)
	return nil
}

func (c *Canvas) Markers(points []orb.Point, col domain.RGB, shape domain.MarkerShape) error {
	if len(points) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(c.xys(points))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = col.NRGBA()
	s.GlyphStyle.Radius = vg.Points(3)
	switch shape {
	case domain.MarkerCross:
		s.GlyphStyle.Shape = draw.CrossGlyph{}
	default:
		s.GlyphStyle.Shape = draw.CircleGlyph{}
	}
	c.plot.Add(s)
	return nil
}

func (c *Canvas) Annotate(at orb.Point, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    c.xys([]orb.Point{at}),
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	l.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
	c.plot.Add(l)
	return nil
}

// OriginLines requests axis lines through (0,0); they are added on flush.
func (c *Canvas) OriginLines() error {
	c.origin = true
	c.extend(orb.Point{0, 0})
	return nil
}

func (c *Canvas) finish() error {
	if !c.origin {
		return nil
	}
	b := c.bound.Pad(1)
	axes := []plotter.XYs{
		{{X: b.Min.X(), Y: 0}, {X: b.Max.X(), Y: 0}},
		{{X: 0, Y: b.Min.Y()}, {X: 0, Y: b.Max.Y()}},
	}
	for _, xy := range axes {
		l, err := plotter.NewLine(xy)
		if err != nil {
			return err
		}
		l.LineStyle.Color = color.Black
		c.plot.Add(l)
	}
	c.origin = false
	return nil
}

func (c *Canvas) xys(points []orb.Point) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i].X, out[i].Y = p.X(), p.Y()
		c.extend(p)
	}
	return out
}

func (c *Canvas) extend(p orb.Point) {
	if !c.drawn {
		c.bound = p.Bound()
		c.drawn = true
		return
	}
	c.bound = c.bound.Extend(p)
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a figure name into a file name stem.
func Slug(name string) string {
	s := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" {
		return "figure"
	}
	return s
}
