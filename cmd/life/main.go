//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"toruslife/internal/app"
	"toruslife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := app.NewLogger(cfg.Debug, cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	lc, err := cfg.LifeConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	sim, err := life.NewWithConfig(lc)
	if err != nil {
		logger.Fatal("create engine", zap.Error(err))
	}
	sim.SetLogger(logger)
	if err := sim.Randomize(lc.Density); err != nil {
		logger.Fatal("seed grid", zap.Error(err))
	}

	fmt.Println("Controls:")
	for _, line := range app.Controls {
		fmt.Println("  " + line)
	}

	game := app.New(sim, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", zap.Error(err))
	}
}
