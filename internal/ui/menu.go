//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"backdrop/internal/core"
)

// Menu lists the animation kinds and fades in and out on toggle.
type Menu struct {
	fade   *Fade
	kinds  []core.Kind
	rects  []image.Rectangle
	active core.Kind
	pixel  *ebiten.Image
}

// NewMenu builds a visible menu listing every registered kind.
func NewMenu() *Menu {
	m := &Menu{fade: NewFade(0.25, true), kinds: core.Kinds()}
	m.rects = MenuLayout(len(m.kinds), image.Pt(menuMargin, menuMargin))
	m.pixel = ebiten.NewImage(1, 1)
	m.pixel.Fill(color.White)
	return m
}

// Toggle shows or hides the menu.
func (m *Menu) Toggle() { m.fade.Toggle() }

// SetActive highlights kind.
func (m *Menu) SetActive(kind core.Kind) { m.active = kind }

// Update advances the fade and returns the kind clicked this frame, if any.
func (m *Menu) Update(dt float32) (core.Kind, bool) {
	m.fade.Update(dt)
	if !m.fade.Shown() || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return "", false
	}
	x, y := ebiten.CursorPosition()
	if i := HitTest(m.rects, x, y); i >= 0 {
		return m.kinds[i], true
	}
	return "", false
}

// Draw paints the menu with the current fade applied.
func (m *Menu) Draw(screen *ebiten.Image) {
	alpha := m.fade.Value()
	if alpha <= 0 {
		return
	}
	face := basicfont.Face7x13
	for i, r := range m.rects {
		bg := color.RGBA{R: 30, G: 32, B: 40, A: 200}
		if m.kinds[i] == m.active {
			bg = color.RGBA{R: 70, G: 90, B: 130, A: 220}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		op.ColorScale.ScaleWithColor(bg)
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(m.pixel, op)

		label := string(m.kinds[i])
		if i < 9 {
			label = string(rune('1'+i)) + "  " + label
		}
		fg := color.NRGBA{R: 230, G: 232, B: 240, A: uint8(255 * alpha)}
		text.Draw(screen, label, face, r.Min.X+10, r.Min.Y+17, fg)
	}
}
