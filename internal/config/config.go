// Package config handles stage generator configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all generator settings.
type Config struct {
	Stage   StageConfig   `yaml:"stage"`
	Noise   NoiseConfig   `yaml:"noise"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// StageConfig holds the size and shape of each generated chunk.
type StageConfig struct {
	Width        int        `yaml:"width"`
	Depth        int        `yaml:"depth"`
	ChunksX      int        `yaml:"chunks_x"` // Chunks generated along X, starting at offset 0
	ChunksZ      int        `yaml:"chunks_z"`
	Scale        [3]float32 `yaml:"scale"` // base frequency, amplitude frequency, amplitude magnitude
	PlaceObjects bool       `yaml:"place_objects"`

	// ObjectBands picks a decoration per column height when PlaceObjects is set.
	ObjectBands []ObjectBand `yaml:"object_bands"`
}

// ObjectBand assigns a prototype to an inclusive height range.
type ObjectBand struct {
	Min       int `yaml:"min"`
	Max       int `yaml:"max"`
	Prototype int `yaml:"prototype"`
}

// NoiseConfig holds the fractal noise parameters.
type NoiseConfig struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// OutputConfig controls geometry export.
type OutputConfig struct {
	Dir        string `yaml:"dir"` // Empty disables export
	WithBounds bool   `yaml:"with_bounds"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Stage: StageConfig{
			Width:   16,
			Depth:   16,
			ChunksX: 1,
			ChunksZ: 1,
			Scale:   [3]float32{0.05, 0.5, 16},
			ObjectBands: []ObjectBand{
				{Min: 3, Max: 6, Prototype: 1},
				{Min: 7, Max: 11, Prototype: 2},
			},
		},
		Noise: NoiseConfig{
			Seed:    0,
			Alpha:   2,
			Beta:    2,
			Octaves: 4,
		},
		Output: OutputConfig{
			Dir:        "",
			WithBounds: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that would make generation fail.
func (c *Config) Validate() error {
	var errs []error
	if c.Stage.Width <= 0 {
		errs = append(errs, fmt.Errorf("stage.width must be positive, got %d", c.Stage.Width))
	}
	if c.Stage.Depth <= 0 {
		errs = append(errs, fmt.Errorf("stage.depth must be positive, got %d", c.Stage.Depth))
	}
	if c.Stage.ChunksX <= 0 || c.Stage.ChunksZ <= 0 {
		errs = append(errs, fmt.Errorf("stage.chunks_x and stage.chunks_z must be positive, got %dx%d", c.Stage.ChunksX, c.Stage.ChunksZ))
	}
	for i, b := range c.Stage.ObjectBands {
		if b.Min > b.Max {
			errs = append(errs, fmt.Errorf("stage.object_bands[%d]: min %d exceeds max %d", i, b.Min, b.Max))
		}
	}
	if c.Noise.Octaves <= 0 {
		errs = append(errs, fmt.Errorf("noise.octaves must be positive, got %d", c.Noise.Octaves))
	}
	return errors.Join(errs...)
}
