package render

import (
	"log/slog"

	"opinions/internal/domain"
)

// LogDisplay only reports where the figures were written. Used when no
// terminal viewer is wanted.
type LogDisplay struct {
	logger *slog.Logger
}

func NewLogDisplay(logger *slog.Logger) *LogDisplay { return &LogDisplay{logger: logger} }

func (d *LogDisplay) Show(figures []domain.Figure) error {
	for _, f := range figures {
		d.logger.Info("figure ready", "name", f.Name, "path", f.Path)
	}
	return nil
}
