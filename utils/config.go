package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// FallbackRows and FallbackCols size the board when the terminal cannot be queried
	FallbackRows = 10
	FallbackCols = 10
)

// Config holds the configuration for the game
type Config struct {
	Cols           int      `json:"cols"`
	Rows           int      `json:"rows"`
	WrapRows       bool     `json:"wrap_rows"`
	WrapCols       bool     `json:"wrap_cols"`
	FramePeriod    Duration `json:"frame_period"`
	FullFrameEvery int      `json:"full_frame_every"`
	Density        float64  `json:"density"`
	Seed           int64    `json:"seed"`
	Pattern        string   `json:"pattern"`
	MaxGenerations int      `json:"max_generations"`
	Workers        int      `json:"workers"`
}

// Duration reads either a Go duration string ("10ms") or integer nanoseconds from JSON
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] invalid duration: %+v", s)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] invalid duration: %s", data)
	}
	*d = Duration(n)
	return nil
}

// DefaultConfig returns sensible defaults, the board size is left to the terminal
func DefaultConfig() Config {
	return Config{
		WrapRows:       true,
		WrapCols:       true,
		FramePeriod:    Duration(10 * time.Millisecond),
		FullFrameEvery: 256,
		Density:        0.15,
		Pattern:        "random",
		Workers:        1,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
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

// Validate checks the config, patterns lists the accepted seed names
func (c Config) Validate(patterns []string) error {
	if c.Cols < 1 || c.Rows < 1 {
		return errors.Wrapf(ErrBadArgument, "[Validate] board must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	}
	if c.FullFrameEvery < 1 {
		return errors.Wrapf(ErrBadArgument, "[Validate] full frame period must be positive, got %d", c.FullFrameEvery)
	}
	if c.Density <= 0 || c.Density >= 1 {
		return errors.Wrapf(ErrBadArgument, "[Validate] density must be between 0 and 1, got %v", c.Density)
	}
	if c.FramePeriod < 0 {
		return errors.Wrapf(ErrBadArgument, "[Validate] frame period must not be negative, got %v", time.Duration(c.FramePeriod))
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrBadArgument, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrBadArgument, "[Validate] workers must be positive, got %d", c.Workers)
	}
	for _, p := range patterns {
		if p == c.Pattern {
			return nil
		}
	}
	return errors.Wrapf(ErrBadArgument, "[Validate] unknown pattern: %+v", c.Pattern)
}
