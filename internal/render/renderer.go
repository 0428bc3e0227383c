//go:build ebiten

package render

import (
	"image/color"

	"lifeee/internal/core"
	"lifeee/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a simulation, its fade trail and the grid onto an image.
type GridPainter struct {
	ShowGrid bool
}

// NewGridPainter returns a painter with the grid enabled.
func NewGridPainter() *GridPainter {
	return &GridPainter{ShowGrid: true}
}

// Draw renders sim as seen through v onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, v Viewport, sim core.Sim) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	dst.Fill(BackgroundColor)
	lo, hi := v.Visible(w, h)

	if gp.ShowGrid && v.ShowGrid() && v.GridWidth > 0 {
		gp.drawGrid(dst, v, lo, hi, w, h)
	}

	// Oldest first so newer generations paint over older ones.
	hist := sim.History()
	n := hist.Len()
	for i := n - 1; i >= 0; i-- {
		gp.drawCells(dst, v, lo, hi, hist.At(i), TrailColor(i, n))
	}
	gp.drawCells(dst, v, lo, hi, sim.Cells(), LiveColor)
}

func (gp *GridPainter) drawGrid(dst *ebiten.Image, v Viewport, lo, hi life.Cell, w, h int) {
	p := v.Pitch()
	gw := float32(v.GridWidth)
	for i := int64(lo.X); i <= int64(hi.X); i++ {
		x := v.OffsetX + float64(i)*p
		vector.DrawFilledRect(dst, float32(x), 0, gw, float32(h), GridColor, false)
	}
	for j := int64(lo.Y); j <= int64(hi.Y); j++ {
		y := v.OffsetY + float64(j)*p
		vector.DrawFilledRect(dst, 0, float32(y), float32(w), gw, GridColor, false)
	}
}

func (gp *GridPainter) drawCells(dst *ebiten.Image, v Viewport, lo, hi life.Cell, cells life.CellSet, clr color.Color) {
	cells.Each(func(c life.Cell) {
		if !Contains(lo, hi, c) {
			return
		}
		x, y, size := v.CellRect(c)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(size), float32(size), clr, false)
	})
}
