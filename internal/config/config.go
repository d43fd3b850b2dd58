package config

import "time"

const (
	WindowWidth  = 960
	WindowHeight = 600

	// Wheel canvas, square
	CanvasSize = 400
	CanvasX    = 60
	CanvasY    = 110

	// Spin
	SpinDuration   = 4000 * time.Millisecond
	MinSpinTurns   = 5
	ExtraSpinTurns = 5

	// Pointer tick
	PointerTickAngle = 15
	PointerTickReset = 100 * time.Millisecond
	PointerWidth     = 40
	PointerHeight    = 35

	// Spin button dimensions
	SpinButtonWidth  = 180
	SpinButtonHeight = 48

	// Segment editor panel
	PanelX         = 520
	PanelY         = 210
	PanelWidth     = 400
	PanelRowHeight = 36
	SwatchSize     = 24

	// Audio
	SampleRate   = 44100
	MeterWindow  = 4096
	TickFreq     = 1800
	TickDuration = 25 * time.Millisecond
)

// Palette is cycled by index when a segment is added.
var Palette = []string{
	"#2f0404ff", "#4ECDC4", "#FFE66D", "#95E1D3",
	"#F38181", "#AA96DA", "#FCBAD3", "#A8E6CF",
}
