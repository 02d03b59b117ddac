package houtveilig

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvOutputDir = "HOUTVEILIG_ICONS_DIR"
	EnvSizes     = "HOUTVEILIG_ICON_SIZES"
)

// DefaultSizes are the icon sizes referenced by the web app manifest.
var DefaultSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

// PaletteConfig is the hex representation of a Palette as found in configuration files.
type PaletteConfig struct {
	Foliage        string `yaml:"foliage"`
	Warning        string `yaml:"warning"`
	Exclamation    string `yaml:"exclamation"`
	GradientTop    string `yaml:"gradient_top"`
	GradientBottom string `yaml:"gradient_bottom"`
}

// Config holds every option of an icon generation run.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Sizes     []int         `yaml:"sizes"`
	Palette   PaletteConfig `yaml:"palette"`
	Workers   int           `yaml:"workers"`
	Verify    bool          `yaml:"verify"`
	LogFile   string        `yaml:"log_file"`
	Debug     bool          `yaml:"debug"`
}

// DefaultConfig returns the configuration producing the stock icon set in ./icons.
func DefaultConfig() *Config {
	pal := DefaultPalette()
	return &Config{
		OutputDir: "icons",
		Sizes:     append([]int(nil), DefaultSizes...),
		Palette: PaletteConfig{
			Foliage:        HexColor(pal.Foliage),
			Warning:        HexColor(pal.Warning),
			Exclamation:    HexColor(pal.Exclamation),
			GradientTop:    HexColor(pal.GradientTop),
			GradientBottom: HexColor(pal.GradientBottom),
		},
		Workers: 1,
	}
}

// LoadConfig builds the configuration from the defaults, the YAML file at path
// (skipped when path is empty) and finally the environment. A .env file in the
// working directory is loaded into the environment when present.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read the config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load the .env file: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if dir, ok := os.LookupEnv(EnvOutputDir); ok && dir != "" {
		c.OutputDir = dir
	}
	if v, ok := os.LookupEnv(EnvSizes); ok && v != "" {
		sizes, err := ParseSizes(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSizes, err)
		}
		c.Sizes = sizes
	}
	return nil
}

// ParseSizes parses a comma separated list of icon sizes, e.g. "72,96,128".
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: size %q is not a number", ErrInvalidConfig, f)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// Validate checks the configuration for values the generator cannot honor.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: the output directory should not be empty", ErrInvalidConfig)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one icon size is required", ErrInvalidConfig)
	}
	seen := make(map[int]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrInvalidSize, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: duplicate icon size %d", ErrInvalidConfig, s)
		}
		seen[s] = true
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers should not be negative", ErrInvalidConfig)
	}
	_, err := c.Palette.Parse()
	return err
}

// Parse converts the hex colors into a Palette.
// Empty entries fall back to the default palette.
func (pc PaletteConfig) Parse() (Palette, error) {
	pal := DefaultPalette()
	fields := []struct {
		hex string
		dst *color.NRGBA
	}{
		{pc.Foliage, &pal.Foliage},
		{pc.Warning, &pal.Warning},
		{pc.Exclamation, &pal.Exclamation},
		{pc.GradientTop, &pal.GradientTop},
		{pc.GradientBottom, &pal.GradientBottom},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, err
		}
		*f.dst = c
	}
	return pal, nil
}
