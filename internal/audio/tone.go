// Package audio synthesizes the wheel's sound effects and taps the output
// for visual feedback.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone returns a sine burst at freq Hz that decays to silence over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < total; i++ {
			env := 1 - float64(pos)/float64(total)
			v := gain * env * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}

// Chime is the rising three-note jingle played for a winner.
func Chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		Tone(sr, 660, 120*time.Millisecond, 0.3),
		Tone(sr, 880, 120*time.Millisecond, 0.3),
		Tone(sr, 1320, 300*time.Millisecond, 0.3),
	)
}
