//go:build ebiten

package ui

import (
	"image/color"

	"lifeee/internal/core"
	"lifeee/internal/render"
	"lifeee/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional visuals on top of the lattice: the cell under the
// cursor, the bounding box of the live cells and the key bindings.
type Overlay struct {
	sim        core.Sim
	showHelp   bool
	showBounds bool
}

// NewOverlay constructs a new overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBounds = !o.showBounds
	}
}

var (
	hoverColor  = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	boundsColor = color.RGBA{R: 60, G: 120, B: 220, A: 255}
	helpBG      = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	helpFG      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// Draw renders the overlay onto a view of the given width.
func (o *Overlay) Draw(screen *ebiten.Image, v render.Viewport, width int) {
	if o.showBounds {
		if lo, hi, ok := o.sim.Cells().Bounds(); ok {
			x0, y0, _ := v.CellRect(lo)
			x1, y1, size := v.CellRect(hi)
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1+size-x0), float32(y1+size-y0), 1, boundsColor, false)
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && mx < width {
		c := v.CellAt(float64(mx), float64(my))
		x, y, size := v.CellRect(c)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, hoverColor, false)
		face := basicfont.Face7x13
		label := hoverLabel(c, life.IsAlive(o.sim.Cells(), c))
		text.Draw(screen, label, face, 8, screen.Bounds().Dy()-8, hoverColor)
	}

	if o.showHelp {
		o.drawHelp(screen)
	}
}

func (o *Overlay) drawHelp(screen *ebiten.Image) {
	const lineH = 16
	h := float32(len(KeyHelp)*lineH + 16)
	vector.DrawFilledRect(screen, 8, 8, 260, h, helpBG, false)
	face := basicfont.Face7x13
	for i, line := range KeyHelp {
		text.Draw(screen, line, face, 16, 8+lineH*(i+1), helpFG)
	}
}
