package render

import (
	"math"

	"lifeee/internal/core"
	"lifeee/pkg/life"
)

// Viewport maps lattice cells to screen pixels. Offset is the screen
// position of the grid line left of and above cell (0, 0).
type Viewport struct {
	OffsetX, OffsetY float64
	Zoom             float64
	CellSize         float64
	GridWidth        float64
}

// NewViewport returns a viewport at the origin using the given settings.
func NewViewport(s core.Settings) Viewport {
	return Viewport{Zoom: s.Zoom, CellSize: s.CellSize, GridWidth: s.GridWidth}
}

// Pitch returns the distance in pixels between neighbouring cells.
func (v Viewport) Pitch() float64 { return v.Zoom*v.CellSize + v.GridWidth }

// CellRect returns the top-left corner and side length of the filled part of
// cell c.
func (v Viewport) CellRect(c life.Cell) (x, y, size float64) {
	p := v.Pitch()
	x = v.OffsetX + v.GridWidth + p*float64(c.X)
	y = v.OffsetY + v.GridWidth + p*float64(c.Y)
	return x, y, v.Zoom * v.CellSize
}

// CellAt returns the cell under screen point (px, py).
func (v Viewport) CellAt(px, py float64) life.Cell {
	p := v.Pitch()
	return life.Cell{
		X: toCoord(math.Floor((px - v.OffsetX) / p)),
		Y: toCoord(math.Floor((py - v.OffsetY) / p)),
	}
}

// Visible returns the inclusive range of cells that may intersect a w by h
// screen, with a margin of one cell on each side.
func (v Viewport) Visible(w, h int) (lo, hi life.Cell) {
	p := v.Pitch()
	lo = life.Cell{
		X: toCoord(math.Floor(-v.OffsetX/p) - 1),
		Y: toCoord(math.Floor(-v.OffsetY/p) - 1),
	}
	hi = life.Cell{
		X: toCoord(math.Ceil((float64(w)-v.OffsetX)/p) + 1),
		Y: toCoord(math.Ceil((float64(h)-v.OffsetY)/p) + 1),
	}
	return lo, hi
}

// ShowGrid reports whether grid lines are worth drawing at this zoom.
func (v Viewport) ShowGrid() bool { return v.Zoom > 0.3 }

// Pan moves the view by (dx, dy) pixels.
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt changes the zoom factor keeping the point (x, y) fixed on screen.
func (v *Viewport) ZoomAt(x, y, zoom float64) {
	zoom = core.ZoomControl.Clamp(zoom)
	prev := v.Zoom
	v.Zoom = zoom
	if prev == 0 {
		return
	}
	v.OffsetX -= (x - v.OffsetX) * (zoom/prev - 1)
	v.OffsetY -= (y - v.OffsetY) * (zoom/prev - 1)
}

// Wheel applies a mouse wheel movement at (x, y); positive dy zooms in.
func (v *Viewport) Wheel(x, y, dy float64) {
	v.ZoomAt(x, y, v.Zoom+core.ZoomControl.Step*dy)
}

// Center positions a pattern of w by h cells in the middle of a screen of
// width by height pixels.
func (v *Viewport) Center(width, height int, w, h int32) {
	span := v.Zoom * (v.CellSize + v.GridWidth)
	v.OffsetX = float64(width)/2 - float64(w)*span/2
	v.OffsetY = float64(height)/2 - float64(h)*span/2
}

// Contains reports whether c lies within the inclusive range lo..hi.
func Contains(lo, hi, c life.Cell) bool {
	return c.X >= lo.X && c.X <= hi.X && c.Y >= lo.Y && c.Y <= hi.Y
}

func toCoord(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(f)
}
