package life

import (
	"cmp"
	"slices"
)

// Cell is a coordinate on the unbounded lattice.
type Cell struct {
	X, Y int32
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int32) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// CellSet holds the live cells of one generation. Absence means dead.
//
// A CellSet is never modified after it has been handed out: every helper in
// this package returns a new set.
type CellSet struct {
	m map[Cell]struct{}
}

// NewCellSet returns a set containing the given cells.
func NewCellSet(cells ...Cell) CellSet {
	m := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return CellSet{m: m}
}

// Len returns the live population.
func (s CellSet) Len() int { return len(s.m) }

// IsAlive reports whether c is in s.
func IsAlive(s CellSet, c Cell) bool {
	_, ok := s.m[c]
	return ok
}

// WithAlive returns s with c added.
func WithAlive(s CellSet, c Cell) CellSet {
	out := s.clone(len(s.m) + 1)
	out.m[c] = struct{}{}
	return out
}

// WithDead returns s with c removed.
func WithDead(s CellSet, c Cell) CellSet {
	out := s.clone(len(s.m))
	delete(out.m, c)
	return out
}

func (s CellSet) clone(hint int) CellSet {
	m := make(map[Cell]struct{}, hint)
	for c := range s.m {
		m[c] = struct{}{}
	}
	return CellSet{m: m}
}

// Cells returns the live cells ordered by row, then column.
func (s CellSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s.m))
	for c := range s.m {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}

// Each calls fn for every live cell in unspecified order.
func (s CellSet) Each(fn func(Cell)) {
	for c := range s.m {
		fn(c)
	}
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s.m) != len(o.m) {
		return false
	}
	for c := range s.m {
		if _, ok := o.m[c]; !ok {
			return false
		}
	}
	return true
}

// Bounds returns the inclusive corners of the smallest rectangle holding
// every live cell. ok is false for an empty set.
func (s CellSet) Bounds() (lo, hi Cell, ok bool) {
	for c := range s.m {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, ok
}

// Translate returns s shifted by (dx, dy).
func (s CellSet) Translate(dx, dy int32) CellSet {
	m := make(map[Cell]struct{}, len(s.m))
	for c := range s.m {
		m[c.Add(dx, dy)] = struct{}{}
	}
	return CellSet{m: m}
}
