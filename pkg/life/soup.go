package life

import "math/rand/v2"

// Soup returns a random w by h pattern with its top-left corner at the
// origin. Each cell is alive with probability density. The same seed always
// gives the same soup.
func Soup(seed int64, w, h int32, density float64) CellSet {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	m := make(map[Cell]struct{})
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if r.Float64() < density {
				m[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return CellSet{m: m}
}
