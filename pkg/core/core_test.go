package core

import (
	"math"
	"testing"
)

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, -1, 3, 2},
		{4, 3, 0, 0},
		{-5, 7, 3, 1},
		{9, -4, 1, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestByteGridCountAndClear(t *testing.T) {
	g := NewByteGrid(3, 3)
	cells := g.Cells()
	cells[g.Index(2, 1)] = 1
	cells[g.Index(0, 2)] = 1
	if got := g.Count(); got != 2 {
		t.Fatalf("Count = %d, expected 2", got)
	}
	if got := g.At(-1, 1); got != 1 {
		t.Fatalf("At(-1,1) = %d, expected wrapped read of (2,1)", got)
	}
	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("Count after Clear = %d", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 5, H: 2}
	if !s.Contains(4, 1) || s.Contains(5, 0) || s.Contains(0, -1) {
		t.Fatal("Contains returned wrong bounds")
	}
	if s.Area() != 10 {
		t.Fatalf("Area = %d", s.Area())
	}
}

func TestRNGFillBernoulliExtremes(t *testing.T) {
	rng := NewRNG(7)
	buf := make([]uint8, 256)
	rng.FillBernoulli(buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0 produced live cell at %d", i)
		}
	}
	rng.FillBernoulli(buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1 produced dead cell at %d", i)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(42).FillBernoulli(a, 0.5)
	NewRNG(42).FillBernoulli(b, 0.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}

func TestParameterControlAdjust(t *testing.T) {
	density := ParameterControl{Key: "density", Type: ParamTypeFloat, Step: 0.05, HasMin: true, Min: 0, HasMax: true, Max: 1}
	tests := []struct {
		name      string
		ctrl      ParameterControl
		current   float64
		direction int
		want      float64
		changed   bool
	}{
		{"up", density, 0.25, 1, 0.30, true},
		{"down", density, 0.25, -1, 0.20, true},
		{"clamp max", density, 0.98, 1, 1, true},
		{"at max", density, 1, 1, 1, false},
		{"at min", density, 0, -1, 0, false},
		{"no direction", density, 0.5, 0, 0.5, false},
		{"int default step", ParameterControl{Type: ParamTypeInt}, 3, 1, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.ctrl.Adjust(tt.current, tt.direction)
			if changed != tt.changed || math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Adjust(%v,%d) = (%v,%v), expected (%v,%v)", tt.current, tt.direction, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Value: "80"}}},
		{Name: "Seeding", Params: []Parameter{{Key: "density", Value: "0.25"}}},
	}}
	p, ok := snap.Lookup("density")
	if !ok || p.Value != "0.25" {
		t.Fatalf("Lookup(density) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}
