package life

// neighborhood lists the eight Moore offsets.
var neighborhood = [8][2]int32{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Tick returns the generation following s under B3/S23. It only reads s, so
// independent sets may be ticked concurrently.
func Tick(s CellSet) CellSet {
	if s.Len() == 0 {
		return CellSet{m: map[Cell]struct{}{}}
	}

	// Only live cells and their neighbours can be alive next generation.
	candidates := make(map[Cell]struct{}, 9*len(s.m))
	for c := range s.m {
		candidates[c] = struct{}{}
		for _, d := range neighborhood {
			candidates[c.Add(d[0], d[1])] = struct{}{}
		}
	}

	next := make(map[Cell]struct{}, len(s.m))
	for c := range candidates {
		n := liveNeighbors(s, c)
		if n == 3 || (n == 2 && IsAlive(s, c)) {
			next[c] = struct{}{}
		}
	}
	return CellSet{m: next}
}

// Run applies Tick n times.
func Run(s CellSet, n int) CellSet {
	for i := 0; i < n; i++ {
		s = Tick(s)
	}
	return s
}

func liveNeighbors(s CellSet, c Cell) int {
	n := 0
	for _, d := range neighborhood {
		if IsAlive(s, c.Add(d[0], d[1])) {
			n++
		}
	}
	return n
}
