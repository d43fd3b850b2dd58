package wheel

import (
	"math"
	"time"

	"github.com/iburimskiy/lucky-wheel/internal/config"
)

// Rand is the source of randomness for a spin. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
}

// session is a single spin. It exists only while the wheel is turning.
type session struct {
	start         time.Time
	startRotation float64
	totalRotation float64
	duration      time.Duration

	// segments as they were when the spin started
	segments Segments
}

func newSession(now time.Time, startRotation float64, segments Segments, rnd Rand) *session {
	turns := config.MinSpinTurns + rnd.Float64()*config.ExtraSpinTurns
	extra := rnd.Float64() * 360
	return &session{
		start:         now,
		startRotation: startRotation,
		totalRotation: turns*360 + extra,
		duration:      config.SpinDuration,
		segments:      segments,
	}
}

// progress returns the elapsed fraction of the spin, capped at 1.
func (s *session) progress(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(s.start)
	return math.Max(0, math.Min(float64(elapsed)/float64(s.duration), 1))
}

// rotation returns the un-normalized wheel angle at progress p.
func (s *session) rotation(p float64) float64 {
	return s.startRotation + s.totalRotation*EaseOutCubic(p)
}

// EaseOutCubic maps linear progress in [0,1] to a decelerating curve.
func EaseOutCubic(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// Normalize folds an angle in degrees into [0,360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// WinnerIndex returns which of n segments sits under the bottom pointer
// when the wheel is at rotation degrees.
func WinnerIndex(rotation float64, n int) int {
	finalAngle := math.Mod(360-Normalize(rotation)+90, 360)
	return sliceAt(finalAngle, n)
}

// PinIndex returns the boundary index used to detect pointer ticks.
func PinIndex(rotation float64, n int) int {
	return sliceAt(math.Mod(270-Normalize(rotation)+360, 360), n)
}

func sliceAt(angle float64, n int) int {
	idx := int(math.Floor(angle / SegmentAngle(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
