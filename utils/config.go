package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive a board
var ErrInvalidConfig = errors.New("invalid config")

// SeedCell is a cell brought to life before the first generation
type SeedCell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// Edit is a scripted user edit applied right before Generation is advanced.
// Generation counts from the start of the run and keeps counting across
// restarts, so an edit after a restart lands on the freshly seeded board.
// Kill forces the cell dead, otherwise the cell is toggled with Color.
type Edit struct {
	Generation int    `json:"generation"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Color      string `json:"color"`
	Kill       bool   `json:"kill"`
}

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	UseBoundedGrid      bool          `json:"use_bounded_grid"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Palette             []string      `json:"palette"`
	Seed                int64         `json:"seed"`
	Seeds               []SeedCell    `json:"seeds"`
	Edits               []Edit        `json:"edits"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		UseBoundedGrid:      true, // Enable active region optimization
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Palette:             []string{"#ff5555", "#50fa7b", "#8be9fd", "#f1fa8c", "#bd93f9"},
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the board cannot be built from
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be in [0, 1], got %v", c.RandomDensity)
	case len(c.Palette) == 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] palette must not be empty")
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.Wrap(ErrInvalidConfig, "[Validate] thresholds and counts must not be negative")
	}
	return nil
}

// EditsFor returns the scripted edits due before the given generation is advanced
func (c Config) EditsFor(generation int) []Edit {
	var due []Edit
	for _, e := range c.Edits {
		if e.Generation == generation {
			due = append(due, e)
		}
	}
	return due
}
