package app

import (
	"flag"
	"fmt"
	"strings"

	"toruslife/pkg/sims/life"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Scale   int
	TPS     int
	Panel   int
	Pattern string
	Debug   bool
	LogFile string

	// Sim holds engine settings in FromMap form (w, h, density, seed).
	Sim map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 10, TPS: 10, Panel: 220, Pattern: "glider", Sim: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern placed by the place key")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file instead of stderr")
	for _, key := range []string{"w", "h", "density", "seed"} {
		fs.Func(key, "engine "+key, func(v string) error {
			c.Sim[key] = v
			return nil
		})
	}
	fs.Func("set", "engine override in key=value form (repeatable)", func(v string) error {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		c.Sim[key] = value
		return nil
	})
}

// LifeConfig converts the engine settings into a validated life.Config.
func (c *Config) LifeConfig() (life.Config, error) {
	for key := range c.Sim {
		switch key {
		case "w", "h", "density", "seed":
		default:
			return life.Config{}, fmt.Errorf("unknown engine setting %q", key)
		}
	}
	cfg, err := life.FromMap(c.Sim)
	if err != nil {
		return life.Config{}, err
	}
	if _, err := life.LookupPattern(c.Pattern); err != nil {
		return life.Config{}, err
	}
	return cfg, nil
}
