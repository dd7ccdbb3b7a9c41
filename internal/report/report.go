package report

import (
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"opinions/internal/domain"
)

// Point is a YAML friendly orb.Point.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Entry summarises one respondent.
type Entry struct {
	Name      string   `yaml:"name"`
	Centroid  Point    `yaml:"centroid"`
	Label     string   `yaml:"label,omitempty"`
	WordCount int      `yaml:"word_count"`
	ICount    int      `yaml:"i_count"`
	Sentences int      `yaml:"sentences"`
	Keywords  []string `yaml:"keywords,omitempty"`
	Cluster   *int     `yaml:"cluster,omitempty"`
}

// Report is the document written by Write.
type Report struct {
	Respondents []Entry  `yaml:"respondents"`
	Centres     []Point  `yaml:"cluster_centres,omitempty"`
	Figures     []string `yaml:"figures,omitempty"`
}

// Build assembles a report. assignment may be nil when clustering was skipped.
func Build(respondents []domain.Respondent, stats map[string]domain.DocumentStats, assignment *domain.ClusterAssignment, figures []domain.Figure) Report {
	var r Report
	for i, resp := range respondents {
		e := Entry{Name: resp.Name, Centroid: toPoint(resp.Centroid), Label: resp.Label}
		if s, ok := stats[resp.Name]; ok {
			e.WordCount, e.ICount, e.Sentences, e.Keywords = s.WordCount, s.ICount, s.Sentences, s.Keywords
		}
		if assignment != nil && i < len(assignment.Labels) {
			id := assignment.Labels[i]
			e.Cluster = &id
		}
		r.Respondents = append(r.Respondents, e)
	}
	if assignment != nil {
		for _, c := range assignment.Centroids {
			r.Centres = append(r.Centres, toPoint(c))
		}
	}
	for _, f := range figures {
		r.Figures = append(r.Figures, f.Path)
	}
	return r
}

// Write saves r as YAML at path, creating parent directories.
func Write(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func toPoint(p orb.Point) Point { return Point{X: p.X(), Y: p.Y()} }
