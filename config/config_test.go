package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.yaml", `
data:
  path: ticks.csv
sweep:
  workers: 4
  strategies: [sma, vwap]
  top: 5
journal:
  type: sqlite
  db_path: sweeps.sqlite
log:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ticks.csv", cfg.Data.Path)
	assert.Equal(t, 4, cfg.Sweep.Workers)
	assert.Equal(t, []string{"sma", "vwap"}, cfg.Sweep.Strategies)
	assert.Equal(t, 5, cfg.Sweep.Top)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "config.json", `{
  "data": {"path": "ticks.csv"},
  "sweep": {"workers": 2, "top": 3},
  "journal": {"type": "csv", "results_file": "r.csv", "trades_file": "t.csv"}
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Sweep.Workers)
	assert.Equal(t, "csv", cfg.Journal.Type)
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		path := writeConfig(t, "bad.yaml", "{{{not config")
		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("unknown family", func(t *testing.T) {
		cfg := Default()
		cfg.Sweep.Strategies = []string{"martingale"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("csv journal needs both files", func(t *testing.T) {
		cfg := Default()
		cfg.Journal = JournalConfig{Type: "csv", ResultsFile: "r.csv"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("sqlite journal needs db path", func(t *testing.T) {
		cfg := Default()
		cfg.Journal = JournalConfig{Type: "sqlite"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad journal type", func(t *testing.T) {
		cfg := Default()
		cfg.Journal.Type = "parquet"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative workers", func(t *testing.T) {
		cfg := Default()
		cfg.Sweep.Workers = -1
		assert.Error(t, cfg.Validate())
	})
}
