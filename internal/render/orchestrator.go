package render

import (
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"

	"opinions/internal/cluster"
	"opinions/internal/colour"
	"opinions/internal/domain"
)

// Orchestrator draws the three survey views onto canvases it creates on
// its surface. Views may be drawn in any order; Show renders them all.
type Orchestrator struct {
	surface   domain.Surface
	scales    colour.Scales
	clusterer domain.Clusterer
	logger    *slog.Logger
}

func NewOrchestrator(surface domain.Surface, scales colour.Scales, clusterer domain.Clusterer, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{surface: surface, scales: scales, clusterer: clusterer, logger: logger}
}

// Opinions draws every respondent's closed polygon and annotated centroid.
func (o *Orchestrator) Opinions(name string, respondents []domain.Respondent) error {
	c, err := o.surface.NewCanvas(name)
	if err != nil {
		return err
	}
	for _, r := range respondents {
		col := o.scales.Of(r.Centroid)
		if err := c.Line(r.Ring(), col); err != nil {
			return fmt.Errorf("%s: polygon for %s: %w", name, r.Name, err)
		}
		if err := o.centroid(c, r, col); err != nil {
			return err
		}
	}
	o.logger.Debug("drew view", "view", name, "respondents", len(respondents))
	return c.OriginLines()
}

// AverageOpinions draws only the annotated centroids.
func (o *Orchestrator) AverageOpinions(name string, respondents []domain.Respondent) error {
	c, err := o.surface.NewCanvas(name)
	if err != nil {
		return err
	}
	if err := c.OriginLines(); err != nil {
		return err
	}
	for _, r := range respondents {
		if err := o.centroid(c, r, o.scales.Of(r.Centroid)); err != nil {
			return err
		}
	}
	o.logger.Debug("drew view", "view", name, "respondents", len(respondents))
	return nil
}

// Clusters groups the centroids into at most six clusters and draws each
// point in its cluster colour, linked to its cluster centre. Centres are
// black crosses.
func (o *Orchestrator) Clusters(name string, respondents []domain.Respondent, k int) (domain.ClusterAssignment, error) {
	a, err := cluster.Assign(o.clusterer, respondents, k)
	if err != nil {
		return domain.ClusterAssignment{}, err
	}
	if a.K < k {
		o.logger.Info("reduced cluster count", "requested", k, "used", a.K)
	}
	c, err := o.surface.NewCanvas(name)
	if err != nil {
		return domain.ClusterAssignment{}, err
	}
	if err := c.OriginLines(); err != nil {
		return domain.ClusterAssignment{}, err
	}
	for i, r := range respondents {
		id := a.Labels[i]
		col := colour.ForCluster(id)
		if err := c.Markers([]orb.Point{r.Centroid}, col, domain.MarkerCircle); err != nil {
			return domain.ClusterAssignment{}, err
		}
		if err := c.Annotate(r.Centroid, r.Name); err != nil {
			return domain.ClusterAssignment{}, err
		}
		if err := c.Line([]orb.Point{r.Centroid, a.Centroids[id]}, col); err != nil {
			return domain.ClusterAssignment{}, err
		}
	}
	if err := c.Markers(a.Centroids, colour.Black, domain.MarkerCross); err != nil {
		return domain.ClusterAssignment{}, err
	}
	o.logger.Debug("drew view", "view", name, "clusters", a.K)
	return a, nil
}

// Show renders every open canvas and hands the figures to d, which may
// block until the user dismisses it.
func (o *Orchestrator) Show(d domain.Display) ([]domain.Figure, error) {
	figures, err := o.surface.Flush()
	if err != nil {
		return nil, err
	}
	for _, f := range figures {
		o.logger.Info("rendered figure", "name", f.Name, "path", f.Path)
	}
	if err := d.Show(figures); err != nil {
		return figures, err
	}
	return figures, nil
}

func (o *Orchestrator) centroid(c domain.Canvas, r domain.Respondent, col domain.RGB) error {
	if err := c.Markers([]orb.Point{r.Centroid}, col, domain.MarkerCircle); err != nil {
		return fmt.Errorf("%s: marker for %s: %w", c.Name(), r.Name, err)
	}
	return c.Annotate(r.Centroid, r.Annotation())
}
