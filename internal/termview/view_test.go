package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"backdrop/internal/core"
	"backdrop/internal/render"
	_ "backdrop/internal/sims/flow"
	_ "backdrop/internal/sims/rain"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newView(t *testing.T) *View {
	t.Helper()
	ctrl, err := core.NewController(core.KindFlow, map[core.Kind]map[string]string{
		core.KindFlow: {"count": "50"},
		core.KindRain: {"count": "50"},
	}, 3)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return New(newScreen(t, 20, 10), ctrl)
}

func TestPaintUsesHalfBlocks(t *testing.T) {
	screen := newScreen(t, 2, 1)
	r := render.NewRaster(2, 2)
	r.Plot(0, 0, colorful.Color{R: 1}, 1)
	r.Plot(0, 1, colorful.Color{B: 1}, 1)

	Paint(screen, r)
	screen.Show()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("fg=%v bg=%v, want red over blue", fg, bg)
	}
}

func TestRasterMatchesScreen(t *testing.T) {
	v := newView(t)
	if v.Raster().W != 20 || v.Raster().H != 20 {
		t.Fatalf("raster = %dx%d, want 20x20", v.Raster().W, v.Raster().H)
	}
}

func TestHandleEventKeys(t *testing.T) {
	v := newView(t)

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)) {
		t.Fatal("digit key quit the view")
	}
	v.Frame(0.016)
	if v.ctrl.Kind() != core.KindRain {
		t.Fatalf("kind = %s after pressing 2, want rain", v.ctrl.Kind())
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !v.Paused() {
		t.Fatal("space did not pause")
	}

	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q did not quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape did not quit")
	}
}

func TestRestartRebuildsAnimation(t *testing.T) {
	v := newView(t)
	before := v.ctrl.Active()
	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	v.Frame(0)
	if v.ctrl.Active() == before {
		t.Fatal("restart kept the old animation")
	}
	if v.ctrl.Kind() != core.KindFlow {
		t.Fatalf("kind = %s after restart, want flow", v.ctrl.Kind())
	}
}

func TestFramePaintsBackground(t *testing.T) {
	v := newView(t)
	v.Frame(0.016)
	screen := v.screen.(tcell.SimulationScreen)
	mainc, _, _, _ := screen.GetContent(19, 9)
	if mainc != halfBlock {
		t.Fatalf("corner cell = %q, want a painted half block", mainc)
	}
}

func TestPollEventsStopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	key := func() tcell.Event { return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone) }
	events := pollEvents(done, key, 1)
	close(done)

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("poller kept running after done was closed")
		}
	}
}

func TestPollEventsClosesOnNil(t *testing.T) {
	n := 0
	poll := func() tcell.Event {
		if n == 3 {
			return nil
		}
		n++
		return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	got := 0
	for range pollEvents(make(chan struct{}), poll, 8) {
		got++
	}
	if got != 3 {
		t.Fatalf("forwarded %d events, want 3", got)
	}
}
