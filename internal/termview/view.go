// Package termview previews the animations in a terminal. Each cell shows two
// raster rows as an upper half block with separate foreground and background
// colors.
package termview

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
	"backdrop/internal/render"
)

const halfBlock = '▀'

// View drives a controller and paints it onto a tcell screen.
type View struct {
	screen   tcell.Screen
	ctrl     *core.Controller
	clock    *core.FrameClock
	renderer *render.Renderer
	raster   *render.Raster
	anim     core.Animation
	paused   bool
}

// New builds a view sized to the screen.
func New(screen tcell.Screen, ctrl *core.Controller) *View {
	v := &View{
		screen:   screen,
		ctrl:     ctrl,
		clock:    core.NewFrameClock(),
		renderer: render.NewRenderer(render.CameraFor(ctrl.Kind())),
	}
	v.resize()
	v.sync()
	return v
}

// Raster exposes the offscreen buffer painted by the last Frame.
func (v *View) Raster() *render.Raster { return v.raster }

// Paused reports whether stepping is suspended.
func (v *View) Paused() bool { return v.paused }

// HandleEvent applies one input event. It returns false when the user asked
// to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			v.ctrl.Next()
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}
	return true
}

func (v *View) handleRune(r rune) bool {
	switch {
	case r == 'q' || r == 'Q':
		return false
	case r == ' ':
		v.paused = !v.paused
		v.clock.SetPaused(v.paused)
	case r == 'r' || r == 'R':
		v.ctrl.Restart()
	case r >= '1' && r <= '9':
		kinds := core.Kinds()
		if i := int(r - '1'); i < len(kinds) {
			_ = v.ctrl.Select(kinds[i])
		}
	}
	return true
}

// Frame advances the animation by dt seconds and paints it.
func (v *View) Frame(dt float64) {
	v.ctrl.Step(dt)
	v.sync()
	v.renderer.Draw(v.ctrl.Active(), v.raster)
	Paint(v.screen, v.raster)
	v.screen.Show()
}

// Run polls input on a separate goroutine and renders at fps until the user
// quits or ctx is done. Controller access stays on the calling goroutine.
func (v *View) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(done, v.screen.PollEvent, 64)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Frame(v.clock.Tick())
		}
	}
}

// pollEvents forwards poll results until poll returns nil or done is closed.
// The returned channel is closed when the poller exits.
func pollEvents(done <-chan struct{}, poll func() tcell.Event, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

func (v *View) resize() {
	w, h := v.screen.Size()
	v.raster = render.NewRaster(w, 2*h)
}

func (v *View) sync() {
	if active := v.ctrl.Active(); active != v.anim {
		v.anim = active
		v.renderer.SetCamera(render.CameraFor(v.ctrl.Kind()))
	}
}

// Paint copies r onto screen, two raster rows per cell.
func Paint(screen tcell.Screen, r *render.Raster) {
	cols, rows := screen.Size()
	for cy := 0; cy < rows && 2*cy < r.H; cy++ {
		for x := 0; x < cols && x < r.W; x++ {
			top := r.At(x, 2*cy)
			bottom := r.At(x, 2*cy+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
