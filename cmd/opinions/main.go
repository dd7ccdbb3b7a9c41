package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"opinions/internal/cluster"
	"opinions/internal/colour"
	"opinions/internal/config"
	"opinions/internal/documents"
	"opinions/internal/domain"
	"opinions/internal/logging"
	"opinions/internal/plot"
	"opinions/internal/render"
	"opinions/internal/report"
	"opinions/internal/service"
	"opinions/internal/store/memory"
	"opinions/internal/summarizer"
	"opinions/internal/tokenizer"
	"opinions/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./config.yaml or ~/.config/opinions/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, cfgPath, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if args := flag.Args(); len(args) > 0 {
		cfg.Dataset.CoordinatesPath = args[0]
		if cfg.Dataset.NamesPath == "" {
			cfg.Dataset.NamesPath = args[0]
		}
	}

	logger := logging.New(os.Stderr, cfg.Log.Level)
	logger.Debug("config loaded", "path", cfgPath)
	if err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	var tk domain.Tokenizer
	switch cfg.Tokenizer.Type {
	case "word", "":
		tk = tokenizer.NewWordTokenizer()
	default:
		return fmt.Errorf("unknown tokenizer: %s", cfg.Tokenizer.Type)
	}

	var cl domain.Clusterer
	switch cfg.Clustering.Type {
	case "kmeans", "":
		seed := cfg.Clustering.ResolveSeed()
		logger.Debug("clustering seed", "seed", seed)
		cl = cluster.NewKMeans(seed, cfg.Clustering.MaxIterations)
	default:
		return fmt.Errorf("unknown clusterer: %s", cfg.Clustering.Type)
	}

	collector := documents.NewCollector(cfg.Dataset.DocumentsDir, tk, summarizer.NewFrequencySummarizer(), cfg.Tokenizer.Keywords)
	svc := service.NewAnalysisService(collector, memory.NewStorage(), logger)
	ds, err := svc.Load(cfg.Dataset.CoordinatesPath, cfg.Dataset.ResolvedNamesPath())
	if err != nil {
		return err
	}

	surface, err := plot.NewSurface(plot.Config{
		OutputDir: cfg.Plot.OutputDir,
		Format:    cfg.Plot.Format,
		Width:     cfg.Plot.Width,
		Height:    cfg.Plot.Height,
	})
	if err != nil {
		return err
	}
	scales := colour.Scales{Max: cfg.Colour.MaxScale, Min: cfg.Colour.MinScale}
	orch := render.NewOrchestrator(surface, scales, cl, logger)

	if err := orch.Opinions("Opinions", ds.Respondents); err != nil {
		return err
	}
	if err := orch.AverageOpinions("Average Opinions", ds.Respondents); err != nil {
		return err
	}
	assignment, err := orch.Clusters("Clusters", ds.Respondents, cfg.Clustering.Clusters)
	if err != nil {
		return err
	}

	var display domain.Display
	switch cfg.Display.Type {
	case "tui", "":
		display = tui.NewDisplay("Opinion Plot", viewerEntries(ds, scales, assignment))
	case "none":
		display = render.NewLogDisplay(logger)
	default:
		return fmt.Errorf("unknown display: %s", cfg.Display.Type)
	}

	// The report is written before the viewer blocks.
	figures, err := orch.Show(reportingDisplay{
		next: display,
		write: func(figures []domain.Figure) error {
			if !cfg.Report.Enabled {
				return nil
			}
			path := filepath.Join(cfg.Plot.OutputDir, cfg.Report.File)
			if err := report.Write(path, report.Build(ds.Respondents, ds.Stats, &assignment, figures)); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Info("wrote report", "path", path)
			return nil
		},
	})
	if err != nil {
		return err
	}
	logger.Debug("done", "figures", len(figures))
	return nil
}

type reportingDisplay struct {
	next  domain.Display
	write func([]domain.Figure) error
}

func (d reportingDisplay) Show(figures []domain.Figure) error {
	if err := d.write(figures); err != nil {
		return err
	}
	return d.next.Show(figures)
}

func viewerEntries(ds *service.Dataset, scales colour.Scales, a domain.ClusterAssignment) []tui.Entry {
	out := make([]tui.Entry, len(ds.Respondents))
	for i, r := range ds.Respondents {
		stats, _ := ds.StatsFor(r.Name)
		id := -1
		if i < len(a.Labels) {
			id = a.Labels[i]
		}
		out[i] = tui.Entry{Respondent: r, Stats: stats, Colour: scales.Of(r.Centroid), Cluster: id}
	}
	return out
}
