package render

import "image/color"

// Fade range used for trails: the newest past generation is drawn darkest.
const (
	trailFrom = 0.80
	trailTo   = 0.99
)

var (
	// LiveColor fills the current generation.
	LiveColor = color.RGBA{A: 0xff}
	// BackgroundColor fills empty space.
	BackgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// GridColor draws the lines between cells.
	GridColor = Grey(0.9)
)

// Grey returns an opaque grey where 0 is black and 1 is white. Out of range
// values are clamped.
func Grey(coeff float64) color.RGBA {
	coeff = min(max(coeff, 0), 1)
	v := uint8(coeff * 255)
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// TrailColor returns the colour of the i'th most recent of n past
// generations.
func TrailColor(i, n int) color.RGBA {
	if n <= 0 {
		return BackgroundColor
	}
	return Grey(float64(i)*(trailTo-trailFrom)/float64(n) + trailFrom)
}
