package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeSeed in clustering.seed asks for a clock-derived seed.
const TimeSeed int64 = -1

// DatasetConfig locates the input files.
type DatasetConfig struct {
	CoordinatesPath string `yaml:"coordinates_path"`
	// NamesPath defaults to CoordinatesPath; only the first token per line is used.
	NamesPath    string `yaml:"names_path"`
	DocumentsDir string `yaml:"documents_dir"`
}

// ColourConfig holds the scales of the quadrant colour policy.
type ColourConfig struct {
	MaxScale float64 `yaml:"max_scale"`
	MinScale float64 `yaml:"min_scale"`
}

// ClusteringConfig selects and configures the clusterer.
type ClusteringConfig struct {
	Type          string `yaml:"type"`
	Clusters      int    `yaml:"clusters"`
	Seed          int64  `yaml:"seed"`
	MaxIterations int    `yaml:"max_iterations"`
}

// TokenizerConfig selects the tokenizer used for documents.
type TokenizerConfig struct {
	Type     string `yaml:"type"`
	Keywords int    `yaml:"keywords"`
}

// PlotConfig configures figure output.
type PlotConfig struct {
	OutputDir string  `yaml:"output_dir"`
	Format    string  `yaml:"format"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// DisplayConfig selects how rendered figures are shown.
type DisplayConfig struct {
	Type string `yaml:"type"`
}

// ReportConfig toggles the YAML report written next to the figures.
type ReportConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Colour     ColourConfig     `yaml:"colour"`
	Clustering ClusteringConfig `yaml:"clustering"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Plot       PlotConfig       `yaml:"plot"`
	Display    DisplayConfig    `yaml:"display"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/opinions/config.yaml.
// If neither exists, it writes defaults to ~/.config/opinions/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ResolveSeed turns TimeSeed into a clock-derived seed.
func (c ClusteringConfig) ResolveSeed() int64 {
	if c.Seed == TimeSeed {
		return time.Now().UnixNano()
	}
	return c.Seed
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "opinions", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Dataset:    DatasetConfig{CoordinatesPath: "testData.txt", DocumentsDir: "cvs"},
		Colour:     ColourConfig{MaxScale: 20, MinScale: 20},
		Clustering: ClusteringConfig{Type: "kmeans", Clusters: 3, Seed: 42, MaxIterations: 300},
		Tokenizer:  TokenizerConfig{Type: "word", Keywords: 5},
		Plot:       PlotConfig{OutputDir: "plots", Format: "png", Width: 480, Height: 480},
		Display:    DisplayConfig{Type: "tui"},
		Report:     ReportConfig{Enabled: true, File: "report.yaml"},
		Log:        LogConfig{Level: "info"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Dataset.CoordinatesPath == "" {
		cfg.Dataset.CoordinatesPath = def.Dataset.CoordinatesPath
	}
	if cfg.Dataset.DocumentsDir == "" {
		cfg.Dataset.DocumentsDir = def.Dataset.DocumentsDir
	}
	if cfg.Colour.MaxScale <= 0 {
		cfg.Colour.MaxScale = def.Colour.MaxScale
	}
	if cfg.Colour.MinScale <= 0 {
		cfg.Colour.MinScale = def.Colour.MinScale
	}
	if cfg.Clustering.Clusters == 0 {
		cfg.Clustering.Clusters = def.Clustering.Clusters
	}
	if cfg.Clustering.MaxIterations <= 0 {
		cfg.Clustering.MaxIterations = def.Clustering.MaxIterations
	}
	if cfg.Plot.OutputDir == "" {
		cfg.Plot.OutputDir = def.Plot.OutputDir
	}
	if cfg.Plot.Format == "" {
		cfg.Plot.Format = def.Plot.Format
	}
	if cfg.Plot.Width <= 0 {
		cfg.Plot.Width = def.Plot.Width
	}
	if cfg.Plot.Height <= 0 {
		cfg.Plot.Height = def.Plot.Height
	}
	if cfg.Report.File == "" {
		cfg.Report.File = def.Report.File
	}
}

// applyEnvOverrides lets OPINIONS_* variables (also read from .env) win over the file.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("OPINIONS_DATASET"); v != "" {
		cfg.Dataset.CoordinatesPath = v
	}
	if v := os.Getenv("OPINIONS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("OPINIONS_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Clustering.Seed = seed
		}
	}
}

// ResolvedNamesPath returns the name file, falling back to the coordinate file.
func (d DatasetConfig) ResolvedNamesPath() string {
	if d.NamesPath != "" {
		return d.NamesPath
	}
	return d.CoordinatesPath
}
