package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lucky-wheel/internal/config"
	"github.com/iburimskiy/lucky-wheel/internal/ui"
	"github.com/iburimskiy/lucky-wheel/internal/wheel"
)

var (
	gradientTop    = color.RGBA{R: 0x93, G: 0x33, B: 0xea, A: 0xff}
	gradientMiddle = color.RGBA{R: 0xec, G: 0x48, B: 0x99, A: 0xff}
	gradientBottom = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}

	cardFill   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	textDark   = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	textMuted  = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	inputEdge  = color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff}
	swatchEdge = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}

	spinFill    = color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	editorFill  = color.RGBA{R: 0x4f, G: 0x46, B: 0xe5, A: 0xff}
	addFill     = color.RGBA{R: 0x22, G: 0xc5, B: 0x5e, A: 0xff}
	removeFill  = color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	buttonLabel = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		var c color.RGBA
		if ratio < 0.5 {
			c = lerpColor(gradientTop, gradientMiddle, ratio*2)
		} else {
			c = lerpColor(gradientMiddle, gradientBottom, (ratio-0.5)*2)
		}
		vector.StrokeLine(screen, 0, float32(y), float32(config.WindowWidth), float32(y), 1, c, false)
	}

	// wheel card
	vector.DrawFilledRect(screen, config.CanvasX-30, config.CanvasY-20,
		config.CanvasSize+60, config.WindowHeight-config.CanvasY+20, cardFill, true)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	drawText(screen, "Lucky Wheel", g.fonts.title, cx, 36, buttonLabel, text.AlignCenter)
	drawText(screen, "Spin to win!", g.fonts.small, cx, 70, withAlpha(buttonLabel, 0.9), text.AlignCenter)
}

// drawButton draws b shaded by its hover and pressed state.
func (g *Game) drawButton(screen *ebiten.Image, b *ui.Button, base color.RGBA) {
	fill := base
	switch {
	case b.Disabled:
		fill = lerpColor(base, cardFill, 0.5)
	case b.Pressed:
		fill = lerpColor(base, color.RGBA{A: 0xff}, 0.25)
	case b.Hovered:
		fill = lerpColor(base, color.RGBA{A: 0xff}, 0.12)
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2,
		lerpColor(fill, cardFill, 0.3), true)
	drawText(screen, b.Label, g.fonts.button,
		float64(b.X)+float64(b.W)/2, float64(b.Y)+float64(b.H)/2, buttonLabel, text.AlignCenter)
}

// drawWinner shows the last winner in a pulsing banner.
func (g *Game) drawWinner(screen *ebiten.Image) {
	winner := g.wheel.Winner()
	if winner == "" {
		return
	}

	x, y, w, h := float32(config.PanelX), float32(config.CanvasY-20), float32(config.PanelWidth), float32(90)
	pulse := 0.5 + 0.5*math.Sin(g.time*math.Pi)
	r, gv, b := hsvToRgb(45-15*pulse, 0.85, 1)
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: r, G: gv, B: b, A: 0xff}, true)

	cx := float64(x + w/2)
	drawText(screen, "Winner!", g.fonts.small, cx, float64(y)+22, buttonLabel, text.AlignCenter)
	drawText(screen, winner, g.fonts.banner, cx, float64(y)+58, buttonLabel, text.AlignCenter)
}

func (g *Game) drawEditor(screen *ebiten.Image) {
	segs := g.wheel.Segments()
	l := ui.NewEditorLayout(len(segs), g.editorScroll)

	p := l.Panel
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), cardFill, true)
	drawText(screen, "Customize Segments", g.fonts.button,
		float64(p.X)+12, float64(g.addButton.Y+g.addButton.H/2), textDark, text.AlignStart)
	g.drawButton(screen, &g.addButton, addFill)

	canRemove := len(segs) > wheel.MinSegments
	for _, row := range l.Rows {
		seg := segs[row.Index]
		drawSwatch(screen, row.Fill, seg.FillColor(sliceFill))
		drawSwatch(screen, row.TextColor, seg.LabelColor())

		lb := row.Label
		vector.StrokeRect(screen, float32(lb.X), float32(lb.Y), float32(lb.W), float32(lb.H), 2, inputEdge, true)
		label, clr := seg.Text, color.Color(textDark)
		if label == "" {
			label, clr = "Prize name", textMuted
		}
		drawText(screen, label, g.fonts.small, float64(lb.X)+8, float64(lb.Y)+float64(lb.H)/2, clr, text.AlignStart)

		rm := row.Remove
		alpha := 1.0
		if !canRemove {
			alpha = 0.3
		}
		vector.DrawFilledRect(screen, float32(rm.X), float32(rm.Y), float32(rm.W), float32(rm.H), withAlpha(removeFill, alpha), true)
		drawText(screen, "X", g.fonts.button, float64(rm.X)+float64(rm.W)/2, float64(rm.Y)+float64(rm.H)/2,
			withAlpha(buttonLabel, alpha), text.AlignCenter)
	}

	if len(segs) > l.Visible {
		status := fmt.Sprintf("%d-%d of %d (scroll)", l.Scroll+1, l.Scroll+len(l.Rows), len(segs))
		drawText(screen, status, g.fonts.small, float64(p.X+p.W)-12, float64(p.Y+p.H)-10, textMuted, text.AlignEnd)
	}
}

func drawSwatch(screen *ebiten.Image, r ui.Rect, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, swatchEdge, true)
}
