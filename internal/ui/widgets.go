// Package ui holds the engine-independent parts of the wheel's controls:
// hit areas, button state, the segment editor layout and the native dialogs
// used to edit segments.
package ui

import (
	"math"

	"github.com/iburimskiy/lucky-wheel/internal/config"
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Button tracks hover and press state across frames.
type Button struct {
	Rect
	Label    string
	Disabled bool
	Hovered  bool
	Pressed  bool
}

// Update feeds one frame of mouse input and reports whether the button was
// clicked, i.e. pressed and released while hovered.
func (b *Button) Update(mouseX, mouseY int, justPressed, justReleased bool) bool {
	b.Hovered = b.Contains(mouseX, mouseY)
	if b.Disabled {
		b.Pressed = false
		return false
	}
	if b.Hovered && justPressed {
		b.Pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}

// SegmentRow is the hit layout of one editor row.
type SegmentRow struct {
	Index     int
	Fill      Rect
	TextColor Rect
	Label     Rect
	Remove    Rect
}

// EditorLayout is the segment editor panel for a given list length and
// scroll offset.
type EditorLayout struct {
	Panel   Rect
	Add     Rect
	Rows    []SegmentRow
	Visible int
	Scroll  int
}

const (
	editorHeader  = 48
	editorPadding = 12
	addWidth      = 130
	addHeight     = 30
	removeWidth   = 32
)

// NewEditorLayout lays out rows for n segments starting at row scroll.
// scroll is clamped to the valid range.
func NewEditorLayout(n, scroll int) EditorLayout {
	panel := Rect{
		X: config.PanelX,
		Y: config.PanelY,
		W: config.PanelWidth,
		H: config.WindowHeight - config.PanelY - 20,
	}
	visible := (panel.H - editorHeader - editorPadding) / config.PanelRowHeight
	scroll = ClampScroll(scroll, n, visible)

	l := EditorLayout{
		Panel: panel,
		Add: Rect{
			X: panel.X + panel.W - addWidth - editorPadding,
			Y: panel.Y + editorPadding,
			W: addWidth,
			H: addHeight,
		},
		Visible: visible,
		Scroll:  scroll,
	}

	x := panel.X + editorPadding
	right := panel.X + panel.W - editorPadding
	for i := scroll; i < n && i < scroll+visible; i++ {
		y := panel.Y + editorHeader + (i-scroll)*config.PanelRowHeight
		l.Rows = append(l.Rows, SegmentRow{
			Index:     i,
			Fill:      Rect{X: x, Y: y, W: config.SwatchSize, H: config.SwatchSize},
			TextColor: Rect{X: x + config.SwatchSize + 6, Y: y, W: config.SwatchSize, H: config.SwatchSize},
			Label: Rect{
				X: x + 2*config.SwatchSize + 16,
				Y: y - 2,
				W: right - removeWidth - 8 - (x + 2*config.SwatchSize + 16),
				H: config.SwatchSize + 4,
			},
			Remove: Rect{X: right - removeWidth, Y: y - 2, W: removeWidth, H: config.SwatchSize + 4},
		})
	}
	return l
}

// ClampScroll keeps a scroll offset within [0, n-visible].
func ClampScroll(scroll, n, visible int) int {
	maxScroll := n - visible
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// Scroller turns mouse wheel deltas into whole row steps. Trackpads report
// fractional deltas, so the remainder carries over to the next call.
type Scroller struct {
	rest float64
}

// Steps adds dy and returns the whole rows scrolled so far.
func (s *Scroller) Steps(dy float64) int {
	s.rest += dy
	n := math.Trunc(s.rest)
	s.rest -= n
	return int(n)
}
