package wheel

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/lucky-wheel/internal/config"
)

func TestSegmentAnglesSumToFullTurn(t *testing.T) {
	t.Parallel()

	for n := MinSegments; n <= 64; n++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += SegmentAngle(n)
		}
		require.InDelta(t, 360, sum, 1e-9, "n=%d", n)
	}
}

func TestAddSegment(t *testing.T) {
	t.Parallel()

	s := DefaultSegments()
	out := s.Add()
	require.Len(t, s, 8)
	require.Len(t, out, 9)
	require.Equal(t, "Prize 9", out[8].Text)
	require.Equal(t, config.Palette[0], out[8].Color)
	require.Empty(t, out[8].TextColor)

	out = out.Add()
	require.Equal(t, "Prize 10", out[9].Text)
	require.Equal(t, config.Palette[1], out[9].Color)
}

func TestAddDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := make(Segments, 2, 8)
	base[0] = Segment{Text: "a"}
	base[1] = Segment{Text: "b"}
	one := base.Add()
	two := base.Add()
	one[2].Text = "changed"
	require.Equal(t, "Prize 3", two[2].Text)
}

func TestRemoveSegment(t *testing.T) {
	t.Parallel()

	s := DefaultSegments()
	out, ok := s.Remove(0)
	require.True(t, ok)
	require.Len(t, out, 7)
	require.Equal(t, "Prize 2", out[0].Text)
	require.Equal(t, "Prize 1", s[0].Text)

	_, ok = s.Remove(8)
	require.False(t, ok)
	_, ok = s.Remove(-1)
	require.False(t, ok)
}

func TestRemoveRejectedAtMinimum(t *testing.T) {
	t.Parallel()

	w := New(DefaultSegments()[:2], &seqRand{vals: []float64{0}})
	require.False(t, w.RemoveSegment(0))
	require.False(t, w.RemoveSegment(1))
	require.Len(t, w.Segments(), 2)
}

func TestUpdateSegment(t *testing.T) {
	t.Parallel()

	s := DefaultSegments()
	out, ok := s.Update(3, FieldText, "")
	require.True(t, ok)
	require.Empty(t, out[3].Text)
	require.Equal(t, "Prize 4", s[3].Text)

	out, ok = out.Update(3, FieldColor, "#123456")
	require.True(t, ok)
	require.Equal(t, "#123456", out[3].Color)

	out, ok = out.Update(3, FieldTextColor, "#fff")
	require.True(t, ok)
	require.Equal(t, "#fff", out[3].TextColor)

	_, ok = out.Update(99, FieldText, "x")
	require.False(t, ok)
	_, ok = out.Update(0, Field(42), "x")
	require.False(t, ok)
}

func TestFieldString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "text", FieldText.String())
	require.Equal(t, "color", FieldColor.String())
	require.Equal(t, "textColor", FieldTextColor.String())
	require.Equal(t, "Field(7)", Field(7).String())
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := map[string]color.NRGBA{
		"#4ECDC4":   {R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff},
		"#2f0404ff": {R: 0x2f, G: 0x04, B: 0x04, A: 0xff},
		"#fff":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"#0008":     {A: 0x88},
		"A8E6CF":    {R: 0xa8, G: 0xe6, B: 0xcf, A: 0xff},
	}
	for in, want := range cases {
		got, err := ParseHex(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "#12", "#12345", "#zzzzzz", "#ééé"} {
		_, err := ParseHex(bad)
		require.Error(t, err, bad)
	}
}

func TestFormatHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#4ECDC4", FormatHex(color.NRGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}))
	require.Equal(t, "#00000080", FormatHex(color.NRGBA{A: 0x80}))

	c, err := ParseHex(FormatHex(color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}))
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, c)
}

func TestSegmentColors(t *testing.T) {
	t.Parallel()

	fallback := color.NRGBA{R: 9, A: 0xff}
	require.Equal(t, fallback, Segment{Color: "nope"}.FillColor(fallback))
	require.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, Segment{Color: "#f00"}.FillColor(fallback))
	require.Equal(t, DefaultTextColor, Segment{}.LabelColor())
	require.Equal(t, DefaultTextColor, Segment{TextColor: "nope"}.LabelColor())
	require.Equal(t, DefaultTextColor, Segment{TextColor: "#zz"}.LabelColor())
	// the leading # is optional
	require.Equal(t, color.NRGBA{R: 0xbb, G: 0xaa, B: 0xdd, A: 0xff}, Segment{TextColor: "bad"}.LabelColor())
	require.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, Segment{TextColor: "#0f0"}.LabelColor())
}

func TestLayout(t *testing.T) {
	t.Parallel()

	l := NewLayout(config.CanvasSize, 4, 0)
	require.Equal(t, 200.0, l.CenterX)
	require.Equal(t, 190.0, l.Radius)
	require.Len(t, l.Slices, 4)

	first := l.Slices[0]
	require.InDelta(t, 0, first.StartAngle, 1e-12)
	require.InDelta(t, math.Pi/2, first.EndAngle, 1e-12)
	require.InDelta(t, 200+185, first.PinX, 1e-9)
	require.InDelta(t, 200, first.PinY, 1e-9)

	// label sits at 65% of the radius on the slice bisector
	dx, dy := first.LabelX-l.CenterX, first.LabelY-l.CenterY
	require.InDelta(t, 0.65*190, math.Hypot(dx, dy), 1e-9)
	require.InDelta(t, math.Pi/4, first.LabelAngle, 1e-12)

	rotated := NewLayout(config.CanvasSize, 4, 90)
	require.InDelta(t, math.Pi/2, rotated.Slices[0].StartAngle, 1e-12)
	require.InDelta(t, 200, rotated.Slices[0].PinX, 1e-9)
	require.InDelta(t, 385, rotated.Slices[0].PinY, 1e-9)
}
