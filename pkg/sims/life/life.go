package life

import (
	"time"

	"toruslife/pkg/core"

	"go.uber.org/zap"
)

// State is the value of a single cell.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Life implements Conway's Game of Life (B3/S23) on a toroidal grid.
//
// A Life value is not safe for concurrent use; hosts must serialize calls.
type Life struct {
	w, h       int
	cur, nxt   *core.ByteGrid
	generation int
	density    float64
	rng        *core.RNG
	logger     *zap.Logger
}

// New returns an all-dead Life engine with the provided dimensions.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life engine configured from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Life{
		w:       cfg.Width,
		h:       cfg.Height,
		cur:     core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:     core.NewByteGrid(cfg.Width, cfg.Height),
		density: cfg.Density,
		rng:     core.NewRNG(seed),
		logger:  zap.NewNop(),
	}, nil
}

// SetLogger replaces the engine logger. A nil logger disables logging.
func (l *Life) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l.logger = logger.Named("life")
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values in row-major order (1 alive, 0
// dead). The slice is owned by the engine and is replaced on Step.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps since the last Clear or Randomize.
func (l *Life) Generation() int { return l.generation }

// Density returns the probability Reset uses for random soups.
func (l *Life) Density() float64 { return l.density }

// Reset reseeds the RNG and fills the grid with a random soup at the
// configured density.
func (l *Life) Reset(seed int64) {
	l.rng = core.NewRNG(seed)
	// density is validated on every write, so this cannot fail.
	_ = l.Randomize(l.density)
}

// Randomize sets every cell alive independently with probability p and
// resets the generation counter.
func (l *Life) Randomize(p float64) error {
	if !validProbability(p) {
		return newError("randomize", KindInvalidProbability, "%v not in [0,1]", p)
	}
	l.rng.FillBernoulli(l.cur.Cells(), p)
	l.generation = 0
	l.logger.Debug("grid randomized", zap.Float64("probability", p), zap.Int("alive", l.AliveCount()))
	return nil
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
	l.logger.Debug("grid cleared")
}

// SetPattern copies p into the grid with its top-left corner at (x, y).
// Placement does not wrap: cells falling outside the grid are dropped.
func (l *Life) SetPattern(p Pattern, x, y int) {
	size := l.Size()
	cells := l.cur.Cells()
	clipped := 0
	for py := 0; py < p.Height(); py++ {
		for px := 0; px < p.Width(); px++ {
			gx, gy := x+px, y+py
			if !size.Contains(gx, gy) {
				clipped++
				continue
			}
			cells[l.cur.Index(gx, gy)] = uint8(p.At(px, py))
		}
	}
	if clipped > 0 {
		l.logger.Debug("pattern clipped",
			zap.String("pattern", p.Name()),
			zap.Int("x", x),
			zap.Int("y", y),
			zap.Int("dropped", clipped))
	}
}

// CountNeighbors returns the number of live cells among the eight
// neighbors of (x, y), wrapping around the grid edges.
func (l *Life) CountNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(l.cur.At(x+dx, y+dy))
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		rows := [3]int{((y+h-1)%h) * w, y * w, ((y + 1) % h) * w}
		for x := 0; x < w; x++ {
			left := (x + w - 1) % w
			right := (x + 1) % w
			idx := y*w + x
			neighbors := -int(cur[idx])
			for _, r := range rows {
				neighbors += int(cur[r+left]) + int(cur[r+x]) + int(cur[r+right])
			}
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// AliveCount returns the number of live cells.
func (l *Life) AliveCount() int { return l.cur.Count() }

// Cell returns the state at (x, y). Coordinates are not wrapped.
func (l *Life) Cell(x, y int) (State, error) {
	if !l.Size().Contains(x, y) {
		return Dead, l.outOfBounds("cell", x, y)
	}
	return State(l.cur.Cells()[l.cur.Index(x, y)]), nil
}

// SetCell overwrites the state at (x, y). Coordinates are not wrapped.
func (l *Life) SetCell(x, y int, s State) error {
	if !l.Size().Contains(x, y) {
		return l.outOfBounds("set cell", x, y)
	}
	v := uint8(0)
	if s != Dead {
		v = 1
	}
	l.cur.Cells()[l.cur.Index(x, y)] = v
	return nil
}

// Toggle flips the state at (x, y) and returns the new state.
func (l *Life) Toggle(x, y int) (State, error) {
	s, err := l.Cell(x, y)
	if err != nil {
		return Dead, err
	}
	next := Alive
	if s == Alive {
		next = Dead
	}
	return next, l.SetCell(x, y, next)
}

func (l *Life) outOfBounds(op string, x, y int) error {
	return newError(op, KindOutOfBounds, "(%d,%d) outside %dx%d", x, y, l.w, l.h)
}
