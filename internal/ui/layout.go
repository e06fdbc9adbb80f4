package ui

import "image"

const (
	menuItemWidth  = 140
	menuItemHeight = 26
	menuItemGap    = 6
	menuMargin     = 16
)

// MenuLayout returns the button rectangles for n stacked menu items whose
// top-left corner sits at origin.
func MenuLayout(n int, origin image.Point) []image.Rectangle {
	rects := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		top := origin.Y + i*(menuItemHeight+menuItemGap)
		rects = append(rects, image.Rect(origin.X, top, origin.X+menuItemWidth, top+menuItemHeight))
	}
	return rects
}

// HitTest returns the index of the rectangle containing (x, y), or -1.
func HitTest(rects []image.Rectangle, x, y int) int {
	p := image.Pt(x, y)
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
