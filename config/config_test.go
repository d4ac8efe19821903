package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "csv", cfg.Journal.Type)
	assert.Equal(t, "./poker_log.csv", cfg.Journal.Path)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "auto", cfg.Chart.Viewer)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "valid sqlite",
			mutate: func(c *Config) { c.Journal = JournalConfig{Type: "sqlite", DBPath: "poker.db"} },
		},
		{
			name:    "unknown journal type",
			mutate:  func(c *Config) { c.Journal.Type = "xlsx" },
			wantErr: true,
			errMsg:  "journal.type must be 'csv' or 'sqlite'",
		},
		{
			name:    "csv without path",
			mutate:  func(c *Config) { c.Journal.Path = "" },
			wantErr: true,
			errMsg:  "journal path required for CSV type",
		},
		{
			name:    "sqlite without db path",
			mutate:  func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} },
			wantErr: true,
			errMsg:  "journal db_path required for SQLite type",
		},
		{
			name:    "missing chart output",
			mutate:  func(c *Config) { c.Chart.Output = "" },
			wantErr: true,
			errMsg:  "chart.output is required",
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Chart.Width = 0 },
			wantErr: true,
			errMsg:  "chart width and height must be positive",
		},
		{
			name:    "unknown currency",
			mutate:  func(c *Config) { c.Currency = "DOUBLOON" },
			wantErr: true,
			errMsg:  "unknown currency",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankroll.yaml")

	cfg := Default()
	cfg.Journal.Type = "sqlite"
	cfg.Journal.DBPath = "/tmp/poker.db"
	cfg.Currency = "EUR"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bankroll.json")

	cfg := Default()
	cfg.Chart.Viewer = "none"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  path: ./mine.csv\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./mine.csv", cfg.Journal.Path)
	assert.Equal(t, "csv", cfg.Journal.Type)
	assert.Equal(t, 1200, cfg.Chart.Width)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("currency: DOUBLOON\n"), 0644))
	_, err = LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
