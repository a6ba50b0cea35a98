//go:build !ebiten

package ui

import "toruslife/pkg/sims/life"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*life.Life, int, AdjustFunc) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, bool, string) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
