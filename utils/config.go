package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Turbo               int           `json:"turbo"`
	Workers             int           `json:"workers"`
	Edges               string        `json:"edges"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	Pattern             string        `json:"pattern"`
	CenterPattern       bool          `json:"center_pattern"`
	PatternX            int           `json:"pattern_x"`
	PatternY            int           `json:"pattern_y"`
	BrushRadius         int           `json:"brush_radius"`
	MaxGenerations      int           `json:"max_generations"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Turbo:               1,
		Workers:             0, // one band per CPU
		Edges:               model.EdgeBounded.String(),
		RandomDensity:       0.15,
		Seed:                42,
		CenterPattern:       true,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file. Keys missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimensions, "[Config.Validate] %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Config.Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	if c.Turbo < 0 {
		return errors.Errorf("[Config.Validate] turbo must be >= 0, got %d", c.Turbo)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(model.ErrInvalidDensity, "[Config.Validate] random_density %v", c.RandomDensity)
	}
	if _, err := model.ParseEdgePolicy(c.Edges); err != nil {
		return errors.Wrap(err, "[Config.Validate]")
	}
	if c.BrushRadius < 0 {
		return errors.Errorf("[Config.Validate] brush_radius must be >= 0, got %d", c.BrushRadius)
	}
	return nil
}

// EdgePolicy returns the parsed edge policy; call Validate first.
func (c Config) EdgePolicy() model.EdgePolicy {
	edges, _ := model.ParseEdgePolicy(c.Edges)
	return edges
}
