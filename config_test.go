package houtveilig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "icons", cfg.OutputDir)
	assert.Equal(t, []int{72, 96, 128, 144, 152, 192, 384, 512}, cfg.Sizes)
	assert.Equal(t, 1, cfg.Workers)

	pal, err := cfg.Palette.Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), pal)

	// The defaults must not share the package level slice.
	cfg.Sizes[0] = 1
	assert.Equal(t, 72, DefaultSizes[0])
}

func TestConfig_LoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: public/icons
sizes: [48, 96]
workers: 2
verify: true
palette:
  warning: "#ff0000"
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "public/icons", cfg.OutputDir)
	assert.Equal(t, []int{48, 96}, cfg.Sizes)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Verify)

	pal, err := cfg.Palette.Parse()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), pal.Warning.G)
	assert.Equal(t, DefaultPalette().GradientTop, pal.GradientTop)
}

func TestConfig_LoadWithoutFile(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [72, oops"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvOutputDir, "/tmp/houtveilig")
	t.Setenv(EnvSizes, "192, 512")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/houtveilig", cfg.OutputDir)
	assert.Equal(t, []int{192, 512}, cfg.Sizes)

	t.Setenv(EnvSizes, "192,big")
	_, err = LoadConfig("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_ParseSizes(t *testing.T) {
	sizes, err := ParseSizes("72,96, 128,")
	require.NoError(t, err)
	assert.Equal(t, []int{72, 96, 128}, sizes)

	_, err = ParseSizes("72;96")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"zero size", func(c *Config) { c.Sizes = []int{72, 0} }},
		{"negative size", func(c *Config) { c.Sizes = []int{-1} }},
		{"duplicate size", func(c *Config) { c.Sizes = []int{72, 96, 72} }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad color", func(c *Config) { c.Palette.GradientTop = "#12345" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	cfg := DefaultConfig()
	cfg.Sizes = []int{0}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidSize)
}
