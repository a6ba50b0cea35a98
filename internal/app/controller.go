package app

import (
	"strconv"

	"toruslife/pkg/sims/life"

	"go.uber.org/zap"
)

// Controller applies host input to an engine between ticks and owns the
// paused flag. Hosts call it from a single goroutine.
type Controller struct {
	sim     *life.Life
	log     *zap.Logger
	paused  bool
	pattern string
}

// NewController wraps sim. A nil logger disables logging.
func NewController(sim *life.Life, pattern string, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{sim: sim, log: log, pattern: pattern}
}

// Sim returns the controlled engine.
func (c *Controller) Sim() *life.Life { return c.sim }

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Pattern returns the pattern placed by Place.
func (c *Controller) Pattern() string { return c.pattern }

// TogglePause flips the paused flag.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if c.paused {
		c.log.Info("paused")
	} else {
		c.log.Info("running")
	}
}

// Tick steps the engine when due and not paused, or when force is set
// (single-step while paused). It reports whether a step happened.
func (c *Controller) Tick(due, force bool) bool {
	if force || (due && !c.paused) {
		c.sim.Step()
		return true
	}
	return false
}

// Randomize refills the grid at the engine's current density.
func (c *Controller) Randomize() {
	if err := c.sim.Randomize(c.sim.Density()); err != nil {
		c.log.Warn("randomize failed", zap.Error(err))
		return
	}
	c.log.Info("grid randomized", zap.Float64("density", c.sim.Density()), zap.Int("alive", c.sim.AliveCount()))
}

// Clear kills every cell.
func (c *Controller) Clear() {
	c.sim.Clear()
	c.log.Info("grid cleared")
}

// SelectPattern changes the pattern used by Place.
func (c *Controller) SelectPattern(name string) error {
	if _, err := life.LookupPattern(name); err != nil {
		return err
	}
	c.pattern = name
	c.log.Info("pattern selected", zap.String("pattern", name))
	return nil
}

// Place stamps the named pattern with its top-left corner at (x, y). An
// empty name uses the selected pattern.
func (c *Controller) Place(name string, x, y int) error {
	if name == "" {
		name = c.pattern
	}
	p, err := life.LookupPattern(name)
	if err != nil {
		return err
	}
	c.sim.SetPattern(p, x, y)
	c.log.Info("pattern placed", zap.String("pattern", name), zap.Int("x", x), zap.Int("y", y))
	return nil
}

// Toggle flips a single cell.
func (c *Controller) Toggle(x, y int) error {
	s, err := c.sim.Toggle(x, y)
	if err != nil {
		return err
	}
	c.log.Debug("cell toggled", zap.Int("x", x), zap.Int("y", y), zap.Stringer("state", s))
	return nil
}

// AdjustDensity moves the randomize density one control step in direction.
func (c *Controller) AdjustDensity(direction int) (float64, bool) {
	return c.AdjustParameter("density", direction)
}

// AdjustParameter moves the named float control one step in direction and
// returns the resulting value. The boolean is false when nothing changed.
func (c *Controller) AdjustParameter(key string, direction int) (float64, bool) {
	for _, ctrl := range c.sim.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		current, ok := c.parameterValue(key)
		if !ok {
			return 0, false
		}
		target, ok := ctrl.Adjust(current, direction)
		if !ok || !c.sim.SetFloatParameter(key, target) {
			return current, false
		}
		c.log.Info("parameter changed", zap.String("key", key), zap.Float64("value", target))
		return target, true
	}
	return 0, false
}

func (c *Controller) parameterValue(key string) (float64, bool) {
	p, ok := c.sim.Parameters().Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	return v, err == nil
}
