// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the simulation boundary dimensions in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds solver parameters.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`
	SubSteps     int     `yaml:"sub_steps"`
	GravityY     float64 `yaml:"gravity_y"`
	CellSize     float64 `yaml:"cell_size"`
	Cohesion     float64 `yaml:"cohesion"`
	Damping      float64 `yaml:"damping"`
	AntiPressure bool    `yaml:"anti_pressure"`
	Workers      int     `yaml:"workers"`
}

// SpawnConfig holds emitter parameters.
type SpawnConfig struct {
	MaxBodies     int     `yaml:"max_bodies"`
	Streams       int     `yaml:"streams"`
	IntervalTicks int     `yaml:"interval_ticks"`
	OriginX       float64 `yaml:"origin_x"`
	OriginY       float64 `yaml:"origin_y"`
	Spacing       float64 `yaml:"spacing"`
	Speed         float64 `yaml:"speed"`
	Angle         float64 `yaml:"angle"`
	Radius        float64 `yaml:"radius"`
	PaletteImage  string  `yaml:"palette_image"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`
	StatsWindow int `yaml:"stats_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	MaxRadius float32 // largest radius the spawner produces
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// WriteYAML saves the configuration to a file.
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

// validate rejects configurations the solver cannot honor.
func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	if c.Physics.SubSteps < 1 {
		return fmt.Errorf("physics.sub_steps must be at least 1, got %d", c.Physics.SubSteps)
	}
	if c.Spawn.Radius <= 0 {
		return fmt.Errorf("spawn.radius must be positive, got %g", c.Spawn.Radius)
	}
	if c.Physics.CellSize < 2*c.Spawn.Radius {
		return fmt.Errorf("physics.cell_size %g smaller than body diameter %g", c.Physics.CellSize, 2*c.Spawn.Radius)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.MaxRadius = float32(c.Spawn.Radius)
}
