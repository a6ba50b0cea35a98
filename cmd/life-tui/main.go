package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"toruslife/internal/app"
	"toruslife/internal/tui"
	"toruslife/pkg/sims/life"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "life-tui:", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	fitToTerminal(cfg)

	logger := zap.NewNop()
	if cfg.LogFile != "" {
		var err error
		logger, err = app.NewLogger(cfg.Debug, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer logger.Sync()
	}

	lc, err := cfg.LifeConfig()
	if err != nil {
		return err
	}
	sim, err := life.NewWithConfig(lc)
	if err != nil {
		return err
	}
	sim.SetLogger(logger)
	if err := sim.Randomize(lc.Density); err != nil {
		return err
	}

	ctl := app.NewController(sim, cfg.Pattern, logger)
	if _, err := tea.NewProgram(tui.New(ctl, cfg.TPS), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// fitToTerminal sizes the grid to the terminal when -w/-h are not given.
// Each cell takes two columns; borders and the status lines take 7 rows.
func fitToTerminal(cfg *app.Config) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if _, ok := cfg.Sim["w"]; !ok && cols > 10 {
		cfg.Sim["w"] = strconv.Itoa((cols - 2) / 2)
	}
	if _, ok := cfg.Sim["h"]; !ok && rows > 14 {
		cfg.Sim["h"] = strconv.Itoa(rows - 7)
	}
}
