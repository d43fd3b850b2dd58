package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lucky-wheel/internal/config"
	"github.com/iburimskiy/lucky-wheel/internal/wheel"
)

var (
	pinFill     = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
	pinStroke   = color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 0xff}
	hubFill     = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	sliceStroke = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	sliceFill   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

	pointerFill   = color.RGBA{R: 0xff, G: 0xe1, A: 0xff}
	pointerAccent = color.RGBA{R: 0xff, G: 0xa2, A: 0xff}
)

// wheelRenderer redraws the whole wheel from segments and rotation.
type wheelRenderer struct {
	painter *painter
	face    text.Face
}

func (r *wheelRenderer) draw(canvas *ebiten.Image, segments wheel.Segments, rotation float64) {
	if canvas == nil {
		return
	}
	canvas.Clear()

	size := float64(canvas.Bounds().Dx())
	l := wheel.NewLayout(size, len(segments), rotation)
	cx, cy, radius := float32(l.CenterX), float32(l.CenterY), float32(l.Radius)

	for _, s := range l.Slices {
		seg := segments[s.Index]

		var path vector.Path
		path.MoveTo(cx, cy)
		path.Arc(cx, cy, radius, float32(s.StartAngle), float32(s.EndAngle), vector.Clockwise)
		path.Close()
		r.painter.fill(canvas, &path, seg.FillColor(sliceFill))
		r.painter.stroke(canvas, &path, 3, sliceStroke)

		r.drawLabel(canvas, seg, s, l)
	}

	for _, s := range l.Slices {
		vector.DrawFilledCircle(canvas, float32(s.PinX), float32(s.PinY), 8, pinFill, true)
		vector.StrokeCircle(canvas, float32(s.PinX), float32(s.PinY), 8, 2, pinStroke, true)
	}

	vector.DrawFilledCircle(canvas, cx, cy, 15, hubFill, true)
}

// drawLabel draws the segment text along the slice bisector.
func (r *wheelRenderer) drawLabel(canvas *ebiten.Image, seg wheel.Segment, s wheel.Slice, l wheel.Layout) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(math.Hypot(s.LabelX-l.CenterX, s.LabelY-l.CenterY), 0)
	op.GeoM.Rotate(s.LabelAngle)
	op.GeoM.Translate(l.CenterX, l.CenterY)
	op.ColorScale.ScaleWithColor(seg.LabelColor())
	text.Draw(canvas, seg.Text, r.face, op)
}

// drawPointer draws the triangle below the wheel pointing up into it,
// rotated about its tip by offset degrees. glow in [0,1] adds a halo.
func drawPointer(dst *ebiten.Image, p *painter, tipX, tipY, offset, glow float64) {
	if glow > 0.01 {
		halo := withAlpha(pointerFill, 0.2+0.6*glow)
		vector.DrawFilledCircle(dst, float32(tipX), float32(tipY+config.PointerHeight/2),
			float32(config.PointerHeight/2+20*glow), halo, true)
	}

	sin, cos := math.Sincos(offset * math.Pi / 180)
	polygon := func(pts [][2]float64) *vector.Path {
		var path vector.Path
		for i, pt := range pts {
			// points are relative to the top-left of a PointerWidth box
			x := pt[0] - config.PointerWidth/2
			y := pt[1]
			rx := tipX + x*cos - y*sin
			ry := tipY + x*sin + y*cos
			if i == 0 {
				path.MoveTo(float32(rx), float32(ry))
				continue
			}
			path.LineTo(float32(rx), float32(ry))
		}
		path.Close()
		return &path
	}

	outer := polygon([][2]float64{{20, 0}, {40, 35}, {0, 35}})
	p.fill(dst, outer, pointerFill)
	p.stroke(dst, outer, 2, pointerAccent)
	p.fill(dst, polygon([][2]float64{{20, 3}, {35, 30}, {5, 30}}), pointerAccent)
}
