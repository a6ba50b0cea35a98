package life

import (
	"slices"
	"sort"
)

// Pattern is an immutable rectangular stencil of cell states.
type Pattern struct {
	name string
	w, h int
	data []uint8
}

// NewPattern builds a pattern from rows of 0/1 values. Rows must be non-empty
// and of equal length; any non-zero value counts as alive.
func NewPattern(name string, rows [][]uint8) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, newError("pattern", KindInvalidDimensions, "%q has no cells", name)
	}
	w := len(rows[0])
	data := make([]uint8, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return Pattern{}, newError("pattern", KindInvalidDimensions, "%q row %d has width %d, expected %d", name, i, len(row), w)
		}
		for _, v := range row {
			if v != 0 {
				v = 1
			}
			data = append(data, v)
		}
	}
	return Pattern{name: name, w: w, h: len(rows), data: data}, nil
}

func mustPattern(name string, rows [][]uint8) Pattern {
	p, err := NewPattern(name, rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the pattern identifier.
func (p Pattern) Name() string { return p.name }

// Width returns the number of columns.
func (p Pattern) Width() int { return p.w }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.h }

// At reports the state at column x, row y of the stencil.
func (p Pattern) At(x, y int) State {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		return Dead
	}
	return State(p.data[y*p.w+x])
}

// Rows returns a copy of the stencil as rows.
func (p Pattern) Rows() [][]uint8 {
	rows := make([][]uint8, p.h)
	for y := range rows {
		rows[y] = slices.Clone(p.data[y*p.w : (y+1)*p.w])
	}
	return rows
}

// Population returns the number of live cells in the stencil.
func (p Pattern) Population() int {
	n := 0
	for _, v := range p.data {
		n += int(v)
	}
	return n
}

var patterns = map[string]Pattern{
	"glider": mustPattern("glider", [][]uint8{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}),
	"blinker": mustPattern("blinker", [][]uint8{
		{1, 1, 1},
	}),
	"toad": mustPattern("toad", [][]uint8{
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	}),
	"beacon": mustPattern("beacon", [][]uint8{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}),
	"pulsar": mustPattern("pulsar", [][]uint8{
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1, 0, 0},
	}),
}

// LookupPattern returns the library pattern registered under name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, newError("lookup", KindUnknownPattern, "%q", name)
	}
	return p, nil
}

// PatternNames lists the library pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
