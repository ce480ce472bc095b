package config

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

// Config holds the terrain configuration.
type Config struct {
	Width       int     `json:"width"`
	Length      int     `json:"length"`
	MaxHeight   float64 `json:"max_height"`
	Scale       float64 `json:"scale"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
	Lacunarity  float64 `json:"lacunarity"`
	Seed        int64   `json:"seed"`
	Noise       string  `json:"noise"` // registered noise source name

	MaxSlope    float64 `json:"max_slope"`    // degrees; steeper samples get no props
	BrushRadius float64 `json:"brush_radius"` // raise/lower brush radius
	BrushHeight float64 `json:"brush_height"` // raise/lower brush strength

	Workers int `json:"workers"` // synthesis goroutines, 0 or 1 = sequential
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:       100,
		Length:      100,
		MaxHeight:   20,
		Scale:       0.1,
		Octaves:     6,
		Persistence: 0.7,
		Lacunarity:  2.8,
		Noise:       "simplex",
		MaxSlope:    30,
		BrushRadius: 20,
		BrushHeight: 1,
	}
}

// Params returns the noise parameters of cfg.
func (c *Config) Params() heightfield.NoiseParameters {
	return heightfield.NoiseParameters{
		Scale:       c.Scale,
		Octaves:     c.Octaves,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
	}
}

// Validate checks everything synthesis and editing will reject, so a bad
// config fails before any work is done.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Length <= 0 {
		errs = append(errs, fmt.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Length))
	}
	if !(c.MaxHeight > 0) {
		errs = append(errs, fmt.Errorf("max_height must be > 0, got %v", c.MaxHeight))
	}
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if !(c.BrushRadius > 0) {
		errs = append(errs, fmt.Errorf("brush_radius must be > 0, got %v", c.BrushRadius))
	}
	if _, err := noise.New(c.Noise, c.Seed); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["length"] {
		cfg.Length = fromFile.Length
	}
	if !explicitFlags["max-height"] {
		cfg.MaxHeight = fromFile.MaxHeight
	}
	if !explicitFlags["scale"] {
		cfg.Scale = fromFile.Scale
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["lacunarity"] {
		cfg.Lacunarity = fromFile.Lacunarity
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["max-slope"] {
		cfg.MaxSlope = fromFile.MaxSlope
	}
	if !explicitFlags["brush-radius"] {
		cfg.BrushRadius = fromFile.BrushRadius
	}
	if !explicitFlags["brush-height"] {
		cfg.BrushHeight = fromFile.BrushHeight
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
}
