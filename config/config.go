// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Population PopulationConfig `yaml:"population"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Agent      AgentConfig      `yaml:"agent"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds arena selection and sizing parameters.
// Shape and Size force a fixed arena; empty means random per run.
type ArenaConfig struct {
	Shape        string  `yaml:"shape"`         // square, circle, hexagon, triangle, "" = random
	Size         string  `yaml:"size"`          // small, medium, large, "" = random
	BaseFraction float64 `yaml:"base_fraction"` // Base extent as fraction of the shorter surface side
}

// PopulationConfig holds population seeding parameters.
type PopulationConfig struct {
	PerColor     int     `yaml:"per_color"`     // Agents seeded per color
	SpreadRadius float64 `yaml:"spread_radius"` // Scatter radius around each group anchor
}

// PhysicsConfig holds force field and motion parameters.
type PhysicsConfig struct {
	CruiseSpeed       float64 `yaml:"cruise_speed"`       // Base speed, px per tick
	SpeedLimitFactor  float64 `yaml:"speed_limit_factor"` // Velocity clamp as multiple of cruise speed
	InteractionRadius float64 `yaml:"interaction_radius"` // Force field range, px
	MaxForce          float64 `yaml:"max_force"`          // Force magnitude at zero distance
	GridCellSize      float64 `yaml:"grid_cell_size"`     // Spatial grid cell size (0 = interaction radius)
}

// AgentConfig holds per-agent parameters.
type AgentConfig struct {
	Size        float64 `yaml:"size"`         // Diameter, px
	SpawnOffset float64 `yaml:"spawn_offset"` // Clone placement offset from the winner
	SpawnJitter float64 `yaml:"spawn_jitter"` // Velocity jitter added to a clone
}

// ParticlesConfig holds transient effect particle parameters.
type ParticlesConfig struct {
	CollisionBurst int     `yaml:"collision_burst"` // Sparks per collision
	SplitBurst     int     `yaml:"split_burst"`     // Sparks per split spawn
	Gravity        float64 `yaml:"gravity"`         // Per-tick downward velocity gain
	Damping        float64 `yaml:"damping"`         // Per-tick velocity multiplier, <1
	Max            int     `yaml:"max"`             // Hard particle cap
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window length in simulation seconds
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	MaxSpeed  float32 // CruiseSpeed * SpeedLimitFactor
	CellSize  float32 // Effective spatial grid cell size
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.MaxSpeed = float32(c.Physics.CruiseSpeed * c.Physics.SpeedLimitFactor)

	cell := c.Physics.GridCellSize
	if cell <= 0 {
		cell = c.Physics.InteractionRadius
	}
	c.Derived.CellSize = float32(cell)
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
