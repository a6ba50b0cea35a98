package life

import (
	"fmt"
	"math"
	"strconv"
)

// Config holds the parameters for a Life engine.
type Config struct {
	Width  int
	Height int
	// Density is the probability used by Reset when seeding a random soup.
	Density float64
	// Seed drives the engine RNG. Zero picks a time-based seed.
	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 60, Density: 0.25}
}

// Validate checks dimensions and density.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return newError("config", KindInvalidDimensions, "%dx%d", c.Width, c.Height)
	}
	if !validProbability(c.Density) {
		return newError("config", KindInvalidProbability, "density %v", c.Density)
	}
	return nil
}

// FromMap populates a Config from a string map, starting from the defaults
// for missing keys. Values that do not parse, or that Validate rejects, are
// returned as errors.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, newError("config", KindInvalidDimensions, "w=%q", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, newError("config", KindInvalidDimensions, "h=%q", v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, newError("config", KindInvalidProbability, "density=%q", v)
		}
		c.Density = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("life: config: seed=%q: %w", v, err)
		}
		c.Seed = parsed
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
