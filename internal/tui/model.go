package tui

import (
	"time"

	"toruslife/internal/app"
	"toruslife/pkg/sims/life"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// Model drives a Life engine from a Bubble Tea program. A cursor stands in
// for the mouse of the GUI host.
type Model struct {
	ctl      *app.Controller
	interval time.Duration
	names    []string

	cx, cy int
	err    error
}

// New returns a model stepping ctl at tps generations per second.
func New(ctl *app.Controller, tps int) *Model {
	if tps <= 0 {
		tps = 10
	}
	size := ctl.Sim().Size()
	return &Model{
		ctl:      ctl,
		interval: time.Second / time.Duration(tps),
		names:    life.PatternNames(),
		cx:       size.W / 2,
		cy:       size.H / 2,
	}
}

// Cursor returns the cursor cell.
func (m *Model) Cursor() (int, int) { return m.cx, m.cy }

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles ticks and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.ctl.Tick(true, false)
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.err = nil
	size := m.ctl.Sim().Size()
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case " ", "space":
		m.ctl.TogglePause()
	case "n":
		m.ctl.Tick(false, true)
	case "r":
		m.ctl.Randomize()
	case "c":
		m.ctl.Clear()
	case "up", "k":
		m.cy = (m.cy + size.H - 1) % size.H
	case "down", "j":
		m.cy = (m.cy + 1) % size.H
	case "left", "h":
		m.cx = (m.cx + size.W - 1) % size.W
	case "right", "l":
		m.cx = (m.cx + 1) % size.W
	case "enter", "x":
		m.err = m.ctl.Toggle(m.cx, m.cy)
	case "g":
		m.err = m.ctl.Place("", m.cx, m.cy)
	case "+", "=":
		m.ctl.AdjustDensity(1)
	case "-", "_":
		m.ctl.AdjustDensity(-1)
	default:
		if len(key) == 1 {
			if name, ok := app.PatternForDigit(m.names, rune(key[0])); ok {
				m.err = m.ctl.SelectPattern(name)
			}
		}
	}
	return nil
}
