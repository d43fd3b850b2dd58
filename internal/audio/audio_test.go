package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/require"
)

// counter streams samples whose value is their running index.
func counter(limit int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= limit {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < limit; i++ {
			samples[i] = [2]float64{float64(pos), float64(pos)}
			pos++
		}
		return i, true
	})
}

func TestMeterRecentIsChronological(t *testing.T) {
	t.Parallel()

	m := NewMeter(counter(10), 4)
	require.Empty(t, m.Recent(4))

	buf := make([][2]float64, 3)
	_, _ = m.Stream(buf)
	require.Equal(t, []float64{0, 1, 2}, m.Recent(4))

	for i := 0; i < 2; i++ {
		_, _ = m.Stream(buf)
	}
	require.Equal(t, []float64{5, 6, 7, 8}, m.Recent(4))
	require.Equal(t, []float64{7, 8}, m.Recent(2))
	require.Len(t, m.Recent(100), 4)
	require.Empty(t, m.Recent(-1))
}

func TestMeterMixesToMono(t *testing.T) {
	t.Parallel()

	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.8, -0.2}
		}
		return len(samples), true
	})
	m := NewMeter(src, 4)
	_, _ = m.Stream(make([][2]float64, 2))
	require.InDeltaSlice(t, []float64{0.3, 0.3}, m.Recent(2), 1e-12)
}

func TestMeterPassesThrough(t *testing.T) {
	t.Parallel()

	m := NewMeter(counter(2), 8)
	buf := make([][2]float64, 5)
	n, ok := m.Stream(buf)
	require.Equal(t, 2, n)
	require.True(t, ok)
	require.Equal(t, [2]float64{1, 1}, buf[1])
	require.Len(t, m.Recent(8), 2)

	n, ok = m.Stream(buf)
	require.Zero(t, n)
	require.False(t, ok)
	require.NoError(t, m.Err())
}

func TestMeterLevel(t *testing.T) {
	t.Parallel()

	m := NewMeter(counter(0), 16)
	require.Zero(t, m.Level(16))

	m = NewMeter(Tone(beep.SampleRate(8000), 440, 10*time.Millisecond, 0.5), 16)
	_, _ = m.Stream(make([][2]float64, 16))
	require.Greater(t, m.Level(16), 0.0)
	require.LessOrEqual(t, m.Level(16), 0.5)
}

func TestToneLengthAndDecay(t *testing.T) {
	t.Parallel()

	sr := beep.SampleRate(10000)
	s := Tone(sr, 1000, 50*time.Millisecond, 1)

	var all [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		all = append(all, buf[:n]...)
	}
	require.Len(t, all, 500)

	peak := func(from, to int) float64 {
		var p float64
		for _, v := range all[from:to] {
			p = math.Max(p, math.Abs(v[0]))
		}
		return p
	}
	require.Greater(t, peak(0, 50), peak(450, 500))
	require.LessOrEqual(t, peak(0, 500), 1.0)
}

func TestChimeEnds(t *testing.T) {
	t.Parallel()

	sr := beep.SampleRate(8000)
	s := Chime(sr)
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	require.Equal(t, sr.N(540*time.Millisecond), total)
}
