package app

import (
	"fmt"

	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"
)

// Controls lists the GUI key bindings, printed at startup.
var Controls = []string{
	"SPACE: Pause/Resume",
	"N: Single step",
	"R: Randomize grid",
	"C: Clear grid",
	"G: Place pattern at mouse",
	fmt.Sprintf("1-%d: Select library pattern", PatternDigitCount(life.PatternNames())),
	"Click: Toggle cell",
	"Q/ESC: Quit",
}

// ScreenToCell maps a pixel position to grid coordinates. The boolean is
// false when the position lies outside the grid.
func ScreenToCell(px, py, scale int, size core.Size) (int, int, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y := px/scale, py/scale
	if !size.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// PatternDigitCount is the number of digit keys bound to patterns: one per
// library entry, at most nine.
func PatternDigitCount(names []string) int {
	return min(len(names), 9)
}

// PatternForDigit maps '1'..'9' to the library pattern at that position in
// sorted name order.
func PatternForDigit(names []string, r rune) (string, bool) {
	i := int(r - '1')
	if i < 0 || i >= PatternDigitCount(names) {
		return "", false
	}
	return names[i], true
}
