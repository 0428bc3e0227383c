//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifeee/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel is what the HUD displays and adjusts.
type Panel interface {
	Parameters() core.ParameterSnapshot
	// Adjust moves the parameter with the given key by steps and reports
	// whether the value changed.
	Adjust(key string, steps int) bool
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	src      Panel
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	title    string
	status   string

	controls     []hudControl
	panelOffsetX int

	pixel *ebiten.Image
}

type hudControl struct {
	control   core.ParameterControl
	value     string
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for src with the given panel width. The speed and
// zoom controls get buttons.
func NewHUD(src Panel, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, ctrl := range []core.ParameterControl{core.SpeedControl, core.ZoomControl} {
		h.controls = append(h.controls, hudControl{control: ctrl, value: "--"})
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the panel. It reports
// whether the cursor is over the panel so the caller can ignore the click.
func (h *HUD) Update(panelOffsetX int, title, status string) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.title = title
	h.status = status
	h.snapshot = h.src.Parameters()
	for i := range h.controls {
		st := &h.controls[i]
		st.value = "--"
		if p, ok := h.snapshot.Lookup(st.control.Key); ok {
			st.value = p.Value
		}
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px := mx - h.panelOffsetX
		for i := range h.controls {
			st := &h.controls[i]
			if pointInRect(px, my, st.minusRect) {
				h.src.Adjust(st.control.Key, -1)
				break
			}
			if pointInRect(px, my, st.plusRect) {
				h.src.Adjust(st.control.Key, 1)
				break
			}
		}
	}
	return true
}

// Draw paints the HUD panel at offsetX, spanning the full screen height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	headerColor = color.RGBA{R: 140, G: 170, B: 220, A: 255}
)

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += rowHeight
	text.Draw(h.panel, h.status, face, panelPadding, y, dimColor)
	y += rowHeight
	for _, r := range Rows(h.snapshot) {
		y += rowHeight
		if r.Header {
			y += rowHeight / 2
			text.Draw(h.panel, r.Label, face, panelPadding, y, headerColor)
			continue
		}
		text.Draw(h.panel, r.Label, face, panelPadding, y, labelColor)
		b := text.BoundString(face, r.Value)
		text.Draw(h.panel, r.Value, face, h.width-panelPadding-b.Dx(), y, labelColor)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		st := &h.controls[i]
		labelY := st.top + labelBaseline
		text.Draw(h.panel, st.control.Label, face, panelPadding, labelY, labelColor)
		b := text.BoundString(face, st.value)
		text.Draw(h.panel, st.value, face, st.minusRect.Min.X-buttonGap-b.Dx(), labelY, labelColor)
		h.drawButton(st.minusRect, "-")
		h.drawButton(st.plusRect, "+")
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// Controls start at a fixed offset below the parameter rows.
func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	rowHeight      = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = 300
)
