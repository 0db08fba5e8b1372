// Package config provides configuration loading and validation for scene generation.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/garden/growth"
	"github.com/pthm-cable/garden/rng"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene generation parameters.
type Config struct {
	Seed      string          `yaml:"seed"`
	Grid      GridConfig      `yaml:"grid"`
	Plants    PlantsConfig    `yaml:"plants"`
	Buildings BuildingsConfig `yaml:"buildings"`
	Animation AnimationConfig `yaml:"animation"`
	Export    ExportConfig    `yaml:"export"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// GridConfig holds lattice dimensions and category weights.
type GridConfig struct {
	MapSize  int           `yaml:"map_size"`  // Cells per side
	CellSize float64       `yaml:"cell_size"` // World units between cell centers
	Weights  WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the relative density of each cell category.
// Weights at or below 0.01 never produce a cell of that category.
type WeightsConfig struct {
	Building float64 `yaml:"building"`
	Flower   float64 `yaml:"flower"`
	Empty    float64 `yaml:"empty"`
}

// PlantsConfig holds stem, root and flower head parameters.
type PlantsConfig struct {
	HeightMin        float64 `yaml:"height_min"`
	HeightMax        float64 `yaml:"height_max"`
	LateralAmplitude float64 `yaml:"lateral_amplitude"` // Max sideways sway of a control point
	RadiusMin        float64 `yaml:"radius_min"`
	RadiusMax        float64 `yaml:"radius_max"`
	HeadScale        float64 `yaml:"head_scale"` // Flower head scale = radius * this
	Roots            bool    `yaml:"roots"`
	RootDepth        float64 `yaml:"root_depth"`  // Root depth as a fraction of stem height
	Attachments      int     `yaml:"attachments"` // Leaves per stem
}

// BuildingsConfig holds building block parameters.
type BuildingsConfig struct {
	HeightMin    float64 `yaml:"height_min"`
	HeightMax    float64 `yaml:"height_max"`
	FootprintMin float64 `yaml:"footprint_min"` // Footprint scale relative to cell size
	FootprintMax float64 `yaml:"footprint_max"`
}

// AnimationConfig holds growth timeline parameters.
type AnimationConfig struct {
	DelayMax      float64 `yaml:"delay_max"` // Seconds; each plant starts after rand*delay_max
	Duration      float64 `yaml:"duration"`  // Seconds from sprout to fully grown
	Easing        string  `yaml:"easing"`    // linear | out_quart
	SwayAmplitude float64 `yaml:"sway_amplitude"`
}

// ExportConfig holds headless export parameters.
type ExportConfig struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Seed   uint32        // Numeric seed parsed from Seed
	Easing growth.Easing // Parsed Animation.Easing
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a copy of the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	cfg.computeDerived()
	return cfg
}

// Load loads configuration from a YAML or TOML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. Only keys present in the
// file override defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := overlay(cfg, path, data); err != nil {
			return nil, err
		}
	}

	cfg.computeDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overlay unmarshals data over cfg. TOML is converted to a generic map and
// routed through YAML so both formats share the same keys and merge rules.
func overlay(cfg *Config, path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
		data, err = yaml.Marshal(tree.ToMap())
		if err != nil {
			return fmt.Errorf("converting toml config: %w", err)
		}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Seed = rng.ParseSeed(c.Seed)
	// Unknown names are reported by Validate.
	c.Derived.Easing, _ = growth.ParseEasing(c.Animation.Easing)
}

// WithSeed returns a copy of the config using seed.
func (c *Config) WithSeed(seed string) *Config {
	out := *c
	out.Seed = seed
	out.computeDerived()
	return &out
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
