package wheel

import (
	"fmt"

	"github.com/iburimskiy/lucky-wheel/internal/config"
)

// MinSegments is the smallest number of segments a wheel may have.
const MinSegments = 2

// Segment is one wedge of the wheel. Colors are hex strings; an empty
// TextColor means the default text color.
type Segment struct {
	Text      string
	Color     string
	TextColor string
}

// Field names an editable Segment field.
type Field int

const (
	FieldText Field = iota
	FieldColor
	FieldTextColor
)

func (f Field) String() string {
	switch f {
	case FieldText:
		return "text"
	case FieldColor:
		return "color"
	case FieldTextColor:
		return "textColor"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Segments is an ordered list of wheel segments. Every method returns a new
// slice and never writes through the receiver.
type Segments []Segment

// DefaultSegments returns the eight segments a new wheel starts with.
func DefaultSegments() Segments {
	return Segments{
		{Text: "Prize 1", Color: "#000000ff", TextColor: "#FFFFFFFF"},
		{Text: "Prize 2", Color: "#4ECDC4", TextColor: "#FFFFFFFF"},
		{Text: "Prize 3", Color: "#FFE66D", TextColor: "#000000ff"},
		{Text: "Prize 4", Color: "#95E1D3", TextColor: "#000000ff"},
		{Text: "Prize 5", Color: "#F38181", TextColor: "#000000ff"},
		{Text: "Prize 6", Color: "#AA96DA", TextColor: "#000000ff"},
		{Text: "Prize 7", Color: "#FCBAD3", TextColor: "#000000ff"},
		{Text: "Prize 8", Color: "#A8E6CF", TextColor: "#000000ff"},
	}
}

// SegmentAngle is the angular width in degrees of each of n slices.
func SegmentAngle(n int) float64 {
	return 360 / float64(n)
}

// Add appends an auto-labelled segment colored from the palette.
func (s Segments) Add() Segments {
	n := len(s)
	out := make(Segments, n, n+1)
	copy(out, s)
	return append(out, Segment{
		Text:  fmt.Sprintf("Prize %d", n+1),
		Color: config.Palette[n%len(config.Palette)],
	})
}

// Remove deletes the segment at index. It reports false and returns the
// receiver unchanged when the index is out of range or the wheel would drop
// below MinSegments.
func (s Segments) Remove(index int) (Segments, bool) {
	if len(s) <= MinSegments || index < 0 || index >= len(s) {
		return s, false
	}
	out := make(Segments, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, true
}

// Update sets one field of the segment at index.
func (s Segments) Update(index int, field Field, value string) (Segments, bool) {
	if index < 0 || index >= len(s) {
		return s, false
	}
	seg := s[index]
	switch field {
	case FieldText:
		seg.Text = value
	case FieldColor:
		seg.Color = value
	case FieldTextColor:
		seg.TextColor = value
	default:
		return s, false
	}
	out := make(Segments, len(s))
	copy(out, s)
	out[index] = seg
	return out, true
}
