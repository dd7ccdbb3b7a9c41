package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "testData.txt", cfg.Dataset.CoordinatesPath)
		assert.Equal(t, "cvs", cfg.Dataset.DocumentsDir)
		assert.Equal(t, 20.0, cfg.Colour.MaxScale)
		assert.Equal(t, 20.0, cfg.Colour.MinScale)
		assert.Equal(t, "kmeans", cfg.Clustering.Type)
		assert.Equal(t, 3, cfg.Clustering.Clusters)
		assert.Equal(t, int64(42), cfg.Clustering.Seed)
		assert.Equal(t, "tui", cfg.Display.Type)
		assert.True(t, cfg.Report.Enabled)
	})

	t.Run("Partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := "dataset:\n  coordinates_path: survey.txt\nclustering:\n  clusters: 5\n  seed: 7\ncolour:\n  max_scale: 0\nreport:\n  enabled: false\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "survey.txt", cfg.Dataset.CoordinatesPath)
		assert.Equal(t, "survey.txt", cfg.Dataset.ResolvedNamesPath())
		assert.Equal(t, 5, cfg.Clustering.Clusters)
		assert.Equal(t, int64(7), cfg.Clustering.Seed)
		assert.Equal(t, 20.0, cfg.Colour.MaxScale)
		assert.Equal(t, "png", cfg.Plot.Format)
		assert.False(t, cfg.Report.Enabled)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0o644))

		_, err := Load(path)

		assert.Error(t, err)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("OPINIONS_DATASET", "other.txt")
		t.Setenv("OPINIONS_SEED", "99")
		t.Setenv("OPINIONS_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "other.txt", cfg.Dataset.CoordinatesPath)
		assert.Equal(t, int64(99), cfg.Clustering.Seed)
		assert.Equal(t, "debug", cfg.Log.Level)
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Dataset.NamesPath = "names.txt"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(5), ClusteringConfig{Seed: 5}.ResolveSeed())
	assert.NotEqual(t, TimeSeed, ClusteringConfig{Seed: TimeSeed}.ResolveSeed())
}
