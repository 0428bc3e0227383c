package render

import (
	"strings"

	"lifeee/pkg/life"
)

// ASCII draws the bounding box of s as rows of '*' (alive) and '.' (dead),
// each terminated by a newline. An empty set yields "".
func ASCII(s life.CellSet) string {
	lo, hi, ok := s.Bounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for y := int64(lo.Y); y <= int64(hi.Y); y++ {
		for x := int64(lo.X); x <= int64(hi.X); x++ {
			if life.IsAlive(s, life.Cell{X: int32(x), Y: int32(y)}) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
