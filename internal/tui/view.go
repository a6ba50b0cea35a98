package tui

import (
	"fmt"
	"strings"

	"toruslife/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E8B57")).
			Padding(0, 1)

	aliveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4"))

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	aliveGlyph = "██"
	deadGlyph  = "  "
)

// View renders the grid, status line and key help.
func (m *Model) View() string {
	sim := m.ctl.Sim()
	size := sim.Size()
	cells := sim.Cells()

	rows := make([]string, size.H)
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		if y != m.cy {
			rows[y] = aliveStyle.Render(glyphs(row))
			continue
		}
		rows[y] = aliveStyle.Render(glyphs(row[:m.cx])) +
			cursorStyle.Inherit(aliveStyle).Render(glyphs(row[m.cx:m.cx+1])) +
			aliveStyle.Render(glyphs(row[m.cx+1:]))
	}

	status := ui.StatusLine(sim.Generation(), sim.AliveCount(), m.ctl.Paused())
	details := fmt.Sprintf("Cursor: (%d,%d)  Pattern: %s  Density: %.2f", m.cx, m.cy, m.ctl.Pattern(), sim.Density())

	parts := []string{
		titleStyle.Render("Conway's Game of Life"),
		gridStyle.Render(strings.Join(rows, "\n")),
		status,
		details,
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}
	parts = append(parts, helpStyle.Render("space pause • n step • r randomize • c clear • arrows move • enter toggle • g place • 1-5 pattern • +/- density • q quit"))
	return strings.Join(parts, "\n")
}

func glyphs(cells []uint8) string {
	var b strings.Builder
	b.Grow(len(cells) * len(aliveGlyph))
	for _, c := range cells {
		if c != 0 {
			b.WriteString(aliveGlyph)
			continue
		}
		b.WriteString(deadGlyph)
	}
	return b.String()
}
