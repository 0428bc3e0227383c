package render

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"lifeee/internal/core"
	"lifeee/pkg/life"
)

func testViewport() Viewport {
	return NewViewport(core.Settings{CellSize: 20, GridWidth: 0.5, Zoom: 1})
}

func TestCellRectAndCellAt(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	v.Pan(100, 50)

	x, y, size := v.CellRect(life.Cell{X: 2, Y: -1})
	c.Assert(x, qt.Equals, 100+0.5+20.5*2)
	c.Assert(y, qt.Equals, 50+0.5-20.5)
	c.Assert(size, qt.Equals, 20.0)

	for _, cell := range []life.Cell{{X: 0, Y: 0}, {X: 2, Y: -1}, {X: -7, Y: 13}} {
		x, y, size := v.CellRect(cell)
		c.Assert(v.CellAt(x+size/2, y+size/2), qt.Equals, cell)
	}
}

func TestVisible(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	lo, hi := v.Visible(205, 41)
	c.Assert(lo, qt.Equals, life.Cell{X: -1, Y: -1})
	c.Assert(hi, qt.Equals, life.Cell{X: 11, Y: 3})

	v.Pan(-205, 410)
	lo, hi = v.Visible(205, 41)
	c.Assert(lo, qt.Equals, life.Cell{X: 9, Y: -21})
	c.Assert(hi, qt.Equals, life.Cell{X: 21, Y: -17})

	c.Assert(Contains(lo, hi, life.Cell{X: 10, Y: -20}), qt.IsTrue)
	c.Assert(Contains(lo, hi, life.Cell{X: 8, Y: -20}), qt.IsFalse)
}

func TestVisibleExtremeOffsets(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	v.Pan(1e15, -1e15)
	lo, hi := v.Visible(100, 100)
	c.Assert(lo.X, qt.Equals, int32(math.MinInt32))
	c.Assert(hi.Y, qt.Equals, int32(math.MaxInt32))
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	v.GridWidth = 0
	v.Pan(30, 40)

	px, py := 130.0, 240.0
	before := v.CellAt(px, py)
	bx := (px - v.OffsetX) / v.Pitch()
	v.ZoomAt(px, py, 2)
	c.Assert(v.Zoom, qt.Equals, 2.0)
	c.Assert(v.CellAt(px, py), qt.Equals, before)
	c.Assert(math.Abs((px-v.OffsetX)/v.Pitch()-bx) < 1e-9, qt.IsTrue)
}

func TestZoomClamped(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	v.ZoomAt(0, 0, 50)
	c.Assert(v.Zoom, qt.Equals, 5.0)
	v.ZoomAt(0, 0, 0)
	c.Assert(v.Zoom, qt.Equals, 0.1)
	c.Assert(v.ShowGrid(), qt.IsFalse)
}

func TestWheel(t *testing.T) {
	c := qt.New(t)
	v := testViewport()
	v.Wheel(0, 0, 1)
	c.Assert(math.Abs(v.Zoom-1.1) < 1e-9, qt.IsTrue)
	v.Wheel(0, 0, -2)
	c.Assert(math.Abs(v.Zoom-0.9) < 1e-9, qt.IsTrue)
}

func TestCenter(t *testing.T) {
	c := qt.New(t)
	v := Viewport{Zoom: 2, CellSize: 9, GridWidth: 1}
	v.Center(800, 600, 3, 5)
	c.Assert(v.OffsetX, qt.Equals, 400.0-3*20/2)
	c.Assert(v.OffsetY, qt.Equals, 300.0-5*20/2)
}
