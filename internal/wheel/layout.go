package wheel

import "math"

const (
	labelRadius = 0.65
	pinInset    = 5
	rimMargin   = 10
)

// Slice is the geometry of one segment on a square canvas. Angles are in
// radians, measured clockwise from the positive x axis.
type Slice struct {
	Index      int
	StartAngle float64
	EndAngle   float64

	// label anchor and the rotation the label is drawn at
	LabelX, LabelY float64
	LabelAngle     float64

	// boundary pin at StartAngle
	PinX, PinY float64
}

// Layout is the full geometry of a wheel drawn on a canvas of edge size.
type Layout struct {
	CenterX, CenterY float64
	Radius           float64
	Slices           []Slice
}

// NewLayout computes slice geometry for n segments at rotation degrees.
func NewLayout(size float64, n int, rotation float64) Layout {
	cx, cy := size/2, size/2
	radius := math.Min(cx, cy) - rimMargin
	sa := 2 * math.Pi / float64(n)
	rot := rotation * math.Pi / 180

	l := Layout{CenterX: cx, CenterY: cy, Radius: radius, Slices: make([]Slice, n)}
	for i := range l.Slices {
		start := float64(i)*sa + rot
		mid := start + sa/2
		l.Slices[i] = Slice{
			Index:      i,
			StartAngle: start,
			EndAngle:   start + sa,
			LabelX:     cx + math.Cos(mid)*radius*labelRadius,
			LabelY:     cy + math.Sin(mid)*radius*labelRadius,
			LabelAngle: mid,
			PinX:       cx + math.Cos(start)*(radius-pinInset),
			PinY:       cy + math.Sin(start)*(radius-pinInset),
		}
	}
	return l
}
