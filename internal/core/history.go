package core

import "lifeee/pkg/life"

// History keeps the most recent generations, newest first, for drawing fade
// trails. It never holds more than its depth.
type History struct {
	depth int
	gens  []life.CellSet
}

// NewHistory returns an empty history bounded to depth generations.
func NewHistory(depth int) *History {
	if depth < 0 {
		depth = 0
	}
	return &History{depth: depth, gens: make([]life.CellSet, 0, depth)}
}

// Push records s as the newest generation, dropping the oldest when full.
func (h *History) Push(s life.CellSet) {
	if h.depth == 0 {
		return
	}
	if len(h.gens) == h.depth {
		h.gens = h.gens[:h.depth-1]
	}
	h.gens = append(h.gens, life.CellSet{})
	copy(h.gens[1:], h.gens)
	h.gens[0] = s
}

// Len returns the number of retained generations.
func (h *History) Len() int { return len(h.gens) }

// Depth returns the retention bound.
func (h *History) Depth() int { return h.depth }

// At returns the i'th most recent generation; 0 is the newest.
func (h *History) At(i int) life.CellSet { return h.gens[i] }

// SetDepth changes the retention bound, discarding the oldest entries if
// needed.
func (h *History) SetDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	h.depth = depth
	if len(h.gens) > depth {
		h.gens = h.gens[:depth]
	}
}

// Clear forgets every generation.
func (h *History) Clear() {
	clear(h.gens)
	h.gens = h.gens[:0]
}
