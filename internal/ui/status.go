package ui

import (
	"fmt"
	"strconv"

	"toruslife/pkg/core"
)

// AdjustFunc steps the control named key in direction and returns the new
// value, or false when nothing changed.
type AdjustFunc func(key string, direction int) (float64, bool)

// StatusLine formats the per-tick counters shown by every host.
func StatusLine(generation, alive int, paused bool) string {
	s := fmt.Sprintf("Gen: %d  Alive: %d", generation, alive)
	if paused {
		s += "  [PAUSED]"
	}
	return s
}

// FormatControlValue renders a parameter value with a precision matching
// the control's step size.
func FormatControlValue(ctrl core.ParameterControl, value float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(value))
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// ControlValue reads the current value of ctrl from a parameter snapshot.
func ControlValue(snap core.ParameterSnapshot, ctrl core.ParameterControl) (float64, bool) {
	p, ok := snap.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
