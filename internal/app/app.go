//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"backdrop/internal/core"
	"backdrop/internal/render"
	"backdrop/internal/ui"
)

const hudWidth = 260

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a core.Controller to the ebiten.Game interface.
type Game struct {
	ctrl     *core.Controller
	clock    *core.FrameClock
	renderer *render.Renderer
	raster   *render.Raster
	painter  *render.Painter
	menu     *ui.Menu
	hud      *ui.HUD

	anim     core.Animation
	scale    int
	tps      int
	showHUD  bool
	tickOnce bool
}

// New constructs a Game driving ctrl.
func New(ctrl *core.Controller, cfg *Config) *Game {
	g := &Game{
		ctrl:     ctrl,
		clock:    core.NewFrameClock(),
		renderer: render.NewRenderer(render.CameraFor(ctrl.Kind())),
		raster:   render.NewRaster(cfg.Width, cfg.Height),
		painter:  render.NewPainter(cfg.Width, cfg.Height),
		menu:     ui.NewMenu(),
		scale:    cfg.Scale,
		tps:      cfg.TPS,
	}
	g.syncActive()
	return g
}

// Update handles input and advances the active animation by the measured frame time.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.SetPaused(!g.clock.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.ctrl.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.menu.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	kinds := core.Kinds()
	for i, key := range digitKeys {
		if i < len(kinds) && inpututil.IsKeyJustPressed(key) {
			_ = g.ctrl.Select(kinds[i])
		}
	}

	dt := g.clock.Tick()
	if g.tickOnce {
		dt = 1 / float64(g.tps)
		g.tickOnce = false
	}
	if kind, ok := g.menu.Update(float32(1 / float64(g.tps))); ok {
		_ = g.ctrl.Select(kind)
	}
	if g.showHUD {
		g.hud.Update(g.screenWidth() - g.hud.Width())
	}

	g.ctrl.Step(dt)
	g.syncActive()
	return nil
}

// Draw renders the active animation, the menu and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.ctrl.Active(), g.raster)
	g.painter.Blit(screen, g.raster, g.scale)
	g.menu.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.screenWidth()-g.hud.Width())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.raster.W * g.scale, g.raster.H * g.scale
}

func (g *Game) screenWidth() int { return g.raster.W * g.scale }

// syncActive rebuilds the per-animation collaborators after a switch or restart.
func (g *Game) syncActive() {
	active := g.ctrl.Active()
	if active == g.anim {
		return
	}
	g.anim = active
	g.renderer.SetCamera(render.CameraFor(g.ctrl.Kind()))
	g.hud = ui.NewHUD(active, hudWidth)
	g.menu.SetActive(g.ctrl.Kind())
}
