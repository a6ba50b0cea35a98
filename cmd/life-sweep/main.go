package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"toruslife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density float64
	seed    int64
}

type scenarioResult struct {
	scenario
	initialAlive int
	finalAlive   int
	peakAlive    int
	// extinctAt is the generation at which the population hit zero, or -1.
	extinctAt int
}

type densitySummary struct {
	density   float64
	runs      int
	meanStart float64
	meanFinal float64
	meanPeak  float64
	extinct   int
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per soup")
	runs := flag.Int("runs", 8, "random soups per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 64, "grid height")
	seed := flag.Int64("seed", 1, "base seed; soup i of a density uses seed+i")
	from := flag.Float64("from", 0.05, "first density")
	to := flag.Float64("to", 0.95, "last density")
	step := flag.Float64("step", 0.1, "density increment")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := life.DefaultConfig()
	base.Width = *width
	base.Height = *height

	var scenarios []scenario
	for _, d := range densities(*from, *to, *step) {
		for i := 0; i < *runs; i++ {
			scenarios = append(scenarios, scenario{density: d, seed: *seed + int64(i)})
		}
	}

	fmt.Printf("Sweeping %d soups on %dx%d (%d workers, %d steps)\n", len(scenarios), *width, *height, *workers, *steps)

	start := time.Now()
	results, err := sweep(ctx, base, scenarios, *steps, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, "life-sweep:", err)
		os.Exit(1)
	}

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, s := range summarize(results) {
		fmt.Printf("density=%.2f runs=%d start=%.1f final=%.1f peak=%.1f extinct=%d/%d\n",
			s.density, s.runs, s.meanStart, s.meanFinal, s.meanPeak, s.extinct, s.runs)
	}
}

func densities(from, to, step float64) []float64 {
	if step <= 0 {
		return []float64{from}
	}
	var out []float64
	for d := from; d <= to+1e-9; d += step {
		if d >= 1 {
			out = append(out, 1)
			break
		}
		out = append(out, d)
	}
	return out
}

// sweep runs every scenario on its own engine using a bounded pool of
// workers. Results are returned in scenario order.
func sweep(ctx context.Context, base life.Config, scenarios []scenario, steps, workers int) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]scenarioResult, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, base, sc, steps)
			if err != nil {
				return fmt.Errorf("density %.2f seed %d: %w", sc.density, sc.seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, base life.Config, sc scenario, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Density = sc.density
	cfg.Seed = sc.seed
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	sim.Reset(sc.seed)

	res := scenarioResult{scenario: sc, initialAlive: sim.AliveCount(), extinctAt: -1}
	res.peakAlive = res.initialAlive
	for i := 0; i < steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return scenarioResult{}, err
			}
		}
		sim.Step()
		alive := sim.AliveCount()
		if alive > res.peakAlive {
			res.peakAlive = alive
		}
		if alive == 0 {
			res.extinctAt = sim.Generation()
			break
		}
	}
	res.finalAlive = sim.AliveCount()
	return res, nil
}

func summarize(results []scenarioResult) []densitySummary {
	byDensity := map[float64]*densitySummary{}
	for _, r := range results {
		s, ok := byDensity[r.density]
		if !ok {
			s = &densitySummary{density: r.density}
			byDensity[r.density] = s
		}
		s.runs++
		s.meanStart += float64(r.initialAlive)
		s.meanFinal += float64(r.finalAlive)
		s.meanPeak += float64(r.peakAlive)
		if r.extinctAt >= 0 {
			s.extinct++
		}
	}
	out := make([]densitySummary, 0, len(byDensity))
	for _, s := range byDensity {
		n := float64(s.runs)
		s.meanStart /= n
		s.meanFinal /= n
		s.meanPeak /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].density < out[j].density })
	return out
}
