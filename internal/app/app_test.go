package app

import (
	"errors"
	"flag"
	"io"
	"math"
	"slices"
	"testing"

	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func parseFlags(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, fs.Parse(args)
}

func TestConfigFlags(t *testing.T) {
	cfg, err := parseFlags(t, "-w", "40", "-h=30", "-set", "density=0.5", "-seed", "7", "-scale", "4", "-pattern", "toad")
	if err != nil {
		t.Fatal(err)
	}
	lc, err := cfg.LifeConfig()
	if err != nil {
		t.Fatal(err)
	}
	if lc.Width != 40 || lc.Height != 30 || lc.Density != 0.5 || lc.Seed != 7 {
		t.Fatalf("LifeConfig = %+v", lc)
	}
	if cfg.Scale != 4 || cfg.Pattern != "toad" || cfg.TPS != 10 {
		t.Fatalf("Config = %+v", cfg)
	}
}

func TestConfigFlagErrors(t *testing.T) {
	if _, err := parseFlags(t, "-set", "density"); err == nil {
		t.Fatal("expected malformed -set to fail")
	}

	cfg, err := parseFlags(t, "-set", "speed=3")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LifeConfig(); err == nil {
		t.Fatal("expected unknown engine key to be rejected")
	}

	cfg, err = parseFlags(t, "-w", "0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LifeConfig(); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("-w 0: %v", err)
	}

	cfg, err = parseFlags(t, "-density", "2")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LifeConfig(); !errors.Is(err, life.ErrInvalidProbability) {
		t.Fatalf("-density 2: %v", err)
	}

	cfg, err = parseFlags(t, "-pattern", "spaceship")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LifeConfig(); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("expected unknown pattern, got %v", err)
	}
}

func TestScreenToCell(t *testing.T) {
	size := core.Size{W: 8, H: 6}
	tests := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{79, 59, 7, 5, true},
		{25, 31, 2, 3, true},
		{80, 10, 0, 0, false},
		{10, 60, 0, 0, false},
		{-1, 5, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := ScreenToCell(tt.px, tt.py, 10, size)
		if x != tt.x || y != tt.y || ok != tt.ok {
			t.Fatalf("ScreenToCell(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tt.px, tt.py, x, y, ok, tt.x, tt.y, tt.ok)
		}
	}
	if _, _, ok := ScreenToCell(5, 5, 0, size); ok {
		t.Fatal("zero scale should never map to a cell")
	}
}

func TestPatternForDigit(t *testing.T) {
	names := life.PatternNames()
	if name, ok := PatternForDigit(names, '1'); !ok || name != names[0] {
		t.Fatalf("digit 1 = %q, %v", name, ok)
	}
	if name, ok := PatternForDigit(names, '5'); !ok || name != names[4] {
		t.Fatalf("digit 5 = %q, %v", name, ok)
	}
	for _, r := range []rune{'0', '6', 'x'} {
		if _, ok := PatternForDigit(names, r); ok {
			t.Fatalf("digit %q should not map to a pattern", r)
		}
	}
}

func TestPatternDigits(t *testing.T) {
	names := life.PatternNames()
	if n := PatternDigitCount(names); n != len(names) {
		t.Fatalf("PatternDigitCount = %d, want %d", n, len(names))
	}
	many := make([]string, 12)
	if n := PatternDigitCount(many); n != 9 {
		t.Fatalf("PatternDigitCount(12 names) = %d", n)
	}
	if _, ok := PatternForDigit(names[:2], '3'); ok {
		t.Fatal("digit past the library should not map")
	}
	if !slices.Contains(Controls, "1-5: Select library pattern") {
		t.Fatalf("Controls = %q", Controls)
	}
}

func newController(t *testing.T) (*Controller, *observer.ObservedLogs) {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = 12, 12, 3
	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	obs, logs := observer.New(zapcore.DebugLevel)
	return NewController(sim, "glider", zap.New(obs)), logs
}

func TestControllerTick(t *testing.T) {
	ctl, logs := newController(t)
	if !ctl.Tick(true, false) || ctl.Sim().Generation() != 1 {
		t.Fatal("due tick should step while running")
	}
	if ctl.Tick(false, false) {
		t.Fatal("tick without a due step should not advance")
	}
	ctl.TogglePause()
	if ctl.Tick(true, false) {
		t.Fatal("paused controller stepped")
	}
	if !ctl.Tick(false, true) || ctl.Sim().Generation() != 2 {
		t.Fatal("forced tick should step while paused")
	}
	ctl.TogglePause()
	if logs.FilterMessage("paused").Len() != 1 || logs.FilterMessage("running").Len() != 1 {
		t.Fatal("pause transitions were not logged")
	}
}

func TestControllerMutations(t *testing.T) {
	ctl, logs := newController(t)
	if err := ctl.Place("", 2, 2); err != nil {
		t.Fatal(err)
	}
	if ctl.Sim().AliveCount() != 5 {
		t.Fatalf("glider placement alive=%d", ctl.Sim().AliveCount())
	}
	if err := ctl.SelectPattern("blinker"); err != nil {
		t.Fatal(err)
	}
	if err := ctl.SelectPattern("nope"); !errors.Is(err, life.ErrUnknownPattern) {
		t.Fatalf("SelectPattern(nope) = %v", err)
	}
	if ctl.Pattern() != "blinker" {
		t.Fatalf("Pattern = %q", ctl.Pattern())
	}
	if err := ctl.Toggle(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := ctl.Toggle(12, 0); !errors.Is(err, life.ErrOutOfBounds) {
		t.Fatalf("off-grid toggle = %v", err)
	}
	if ctl.Sim().AliveCount() != 6 {
		t.Fatalf("alive after toggle = %d", ctl.Sim().AliveCount())
	}

	ctl.Clear()
	if ctl.Sim().AliveCount() != 0 {
		t.Fatal("Clear left live cells")
	}
	if logs.FilterMessage("grid cleared").Len() != 1 || logs.FilterMessage("pattern placed").Len() != 1 {
		t.Fatal("mutations were not logged")
	}
}

func TestControllerDensity(t *testing.T) {
	ctl, _ := newController(t)
	for i := 0; i < 30; i++ {
		ctl.AdjustDensity(1)
	}
	if d := ctl.Sim().Density(); d != 1 {
		t.Fatalf("density should clamp at 1, got %v", d)
	}
	if _, ok := ctl.AdjustDensity(1); ok {
		t.Fatal("adjusting past the max should report no change")
	}
	ctl.Randomize()
	if ctl.Sim().AliveCount() != 144 {
		t.Fatalf("randomize at density 1 alive=%d", ctl.Sim().AliveCount())
	}
}

func TestControllerAdjustParameter(t *testing.T) {
	ctl, logs := newController(t)
	v, ok := ctl.AdjustParameter("density", -1)
	if !ok || math.Abs(v-0.2) > 1e-9 || math.Abs(ctl.Sim().Density()-0.2) > 1e-9 {
		t.Fatalf("AdjustParameter(density, -1) = %v, %v", v, ok)
	}
	changed := logs.FilterMessage("parameter changed").All()
	if len(changed) != 1 || changed[0].Level != zapcore.InfoLevel {
		t.Fatalf("parameter change logs = %+v", changed)
	}
	if changed[0].ContextMap()["key"] != "density" {
		t.Fatalf("logged fields = %v", changed[0].ContextMap())
	}

	if _, ok := ctl.AdjustParameter("speed", 1); ok {
		t.Fatal("unknown parameter should not change")
	}
	if logs.FilterMessage("parameter changed").Len() != 1 {
		t.Fatal("rejected adjustment was logged")
	}
}
