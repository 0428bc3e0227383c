//go:build ebiten

package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/juju/loggo"

	"lifeee/internal/core"
	"lifeee/internal/render"
	"lifeee/internal/ui"
	"lifeee/pkg/lexicon"
)

var logger = loggo.GetLogger("lifeee.app")

const (
	hudWidth = 220
	soupSize = 32
)

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	session  *core.Session
	settings core.Settings
	view     render.Viewport
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	picker   *ui.Picker
	ticker   *core.FixedStep

	paused   bool
	tickOnce bool

	dragging     bool
	lastX, lastY int

	width, height int
	pending       *lexicon.Term
	last          *lexicon.Term
}

// New constructs a paused Game over the given catalog. If pattern names a
// populated term it is applied once the window size is known.
func New(lex *lexicon.Lexicon, s core.Settings, pattern string) *Game {
	g := &Game{
		session:  core.NewSession(s.History),
		settings: s,
		view:     render.NewViewport(s),
		painter:  render.NewGridPainter(),
		picker:   ui.NewPicker(lex),
		ticker:   core.NewFixedStep(s.Speed),
		paused:   true,
	}
	g.hud = ui.NewHUD(g, hudWidth)
	g.overlay = ui.NewOverlay(g.session)
	if pattern != "" {
		if g.picker.Select(pattern) {
			t, _ := g.picker.Selected()
			g.pending = &t
		} else {
			logger.Warningf("no pattern named %q in the catalog", pattern)
		}
	}
	return g
}

// Parameters implements ui.Panel.
func (g *Game) Parameters() core.ParameterSnapshot {
	s := g.settings
	s.Zoom = g.view.Zoom
	return g.session.Parameters().Merge(s.Parameters())
}

// Adjust implements ui.Panel.
func (g *Game) Adjust(key string, steps int) bool {
	switch key {
	case core.SpeedControl.Key:
		speed := int(core.SpeedControl.Nudge(float64(g.settings.Speed), steps))
		if speed == g.settings.Speed {
			return false
		}
		g.settings.Speed = speed
		g.ticker.SetSpeed(speed)
		logger.Debugf("speed %d (%v per generation)", speed, g.ticker.Interval())
		return true
	case core.ZoomControl.Key:
		zoom := core.ZoomControl.Nudge(g.view.Zoom, steps)
		if zoom == g.view.Zoom {
			return false
		}
		g.view.ZoomAt(float64(g.viewWidth())/2, float64(g.height)/2, zoom)
		return true
	}
	return false
}

// Apply replaces the cells with the term and centres it in the view.
func (g *Game) Apply(t lexicon.Term) {
	g.last = &t
	g.session.Apply(t)
	w, h := t.Size()
	g.view.Center(g.viewWidth(), g.height, w, h)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.pending != nil && g.width > 0 {
		g.Apply(*g.pending)
		g.pending = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()
	overPanel := g.hud.Update(g.viewWidth(), g.picker.Label(), g.status())
	if !overPanel {
		g.handleMouse()
	} else {
		g.dragging = false
	}

	switch {
	case g.tickOnce:
		g.session.Step()
		g.tickOnce = false
	case !g.paused && g.ticker.ShouldStep(time.Now()):
		g.session.Step()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.ticker.Restart()
		}
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.picker.Prev()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.picker.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if t, ok := g.picker.Selected(); ok {
			g.Apply(t)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.Adjust(core.SpeedControl.Key, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.Adjust(core.SpeedControl.Key, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Apply(SoupTerm(time.Now().UnixNano(), soupSize))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.last != nil {
		g.Apply(*g.last)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.painter.ShowGrid = !g.painter.ShowGrid
	}
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.Wheel(float64(x), float64(y), dy)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		c := g.view.CellAt(float64(x), float64(y))
		alive := g.session.Toggle(c)
		logger.Debugf("toggled (%d, %d) alive=%v", c.X, c.Y, alive)
	}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = true
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.view.Pan(float64(x-g.lastX), float64(y-g.lastY))
	default:
		g.dragging = false
	}
	g.lastX, g.lastY = x, y
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return ui.GenerationLabel(g.session.Generation()) + "  " + state
}

func (g *Game) viewWidth() int {
	return max(g.width-g.hud.Width(), 0)
}

// Draw renders the lattice, the overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.viewWidth()
	if w > 0 {
		view := screen.SubImage(image.Rect(0, 0, w, screen.Bounds().Dy())).(*ebiten.Image)
		g.painter.Draw(view, g.view, g.session)
		g.overlay.Draw(view, g.view, w)
	}
	g.hud.Draw(screen, w)
}

// Layout tracks the window size; the screen is not scaled.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
