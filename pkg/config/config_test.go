package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gngenes/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gngenes"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gngenes", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gngenes", "config.yaml"),
		},
		{
			msg: "species file",
			fn:  config.SpeciesFilePath,
			res: filepath.Join(tempHome, ".config", "gngenes", "species.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "input", cfg.Extract.InputDir)
		assert.Equal(t, "output", cfg.Extract.OutputDir)
		assert.Equal(t,
			"Go_termnIDs_and_file_names.xlsx", cfg.Extract.CatalogFile)
		assert.Equal(t, 10_000, cfg.Extract.GroupRows)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Empty(t, cfg.Species)
		assert.Empty(t, cfg.HomeDir)
	})
}

func TestUpdate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSpecies("SW"),
		config.OptInputDir("deseq_results"),
		config.OptOutputDir("reports"),
		config.OptCatalogFile("terms.xlsx"),
		config.OptGroupRows(500),
		config.OptLogLevel("debug"),
		config.OptHomeDir("/home/someone"),
	})

	assert.Equal(t, "SW", cfg.Species)
	assert.Equal(t, "deseq_results", cfg.Extract.InputDir)
	assert.Equal(t, "reports", cfg.Extract.OutputDir)
	assert.Equal(t, "terms.xlsx", cfg.Extract.CatalogFile)
	assert.Equal(t, 500, cfg.Extract.GroupRows)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/home/someone", cfg.HomeDir)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir("  "),
		config.OptGroupRows(-5),
		config.OptLogLevel("loud"),
		config.OptLogDestination("syslog"),
	})

	// config stays at valid defaults
	assert.Equal(t, "input", cfg.Extract.InputDir)
	assert.Equal(t, 10_000, cfg.Extract.GroupRows)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputDir("in"),
		config.OptOutputDir("out"),
		config.OptGroupRows(42),
		config.OptLogFormat("text"),
		config.OptSpecies("A"),
		config.OptHomeDir("/home/someone"),
	})

	res := config.New()
	res.Update(cfg.ToOptions())

	assert.Equal(t, "in", res.Extract.InputDir)
	assert.Equal(t, "out", res.Extract.OutputDir)
	assert.Equal(t, 42, res.Extract.GroupRows)
	assert.Equal(t, "text", res.Log.Format)

	// runtime-only fields do not round-trip
	assert.Empty(t, res.Species)
	assert.Empty(t, res.HomeDir)
}
