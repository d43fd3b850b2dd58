package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Meter passes a stream through unchanged and keeps the mono amplitude of the
// most recent samples, so the renderer can follow what the speaker played.
type Meter struct {
	src beep.Streamer

	mu      sync.RWMutex
	ring    []float64
	next    int
	written int
}

// NewMeter meters src, remembering the last window samples.
func NewMeter(src beep.Streamer, window int) *Meter {
	return &Meter{
		src:  src,
		ring: make([]float64, window),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.src.Stream(samples)
	if n > 0 {
		m.record(samples[:n])
	}
	return n, ok
}

func (m *Meter) Err() error { return m.src.Err() }

func (m *Meter) record(samples [][2]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range samples {
		m.ring[m.next] = (s[0] + s[1]) * 0.5
		m.next = (m.next + 1) % len(m.ring)
	}
	m.written = min(m.written+len(samples), len(m.ring))
}

// Recent returns up to n of the latest mono amplitudes, oldest first.
func (m *Meter) Recent(n int) []float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n = min(n, m.written)
	out := make([]float64, max(n, 0))
	start := m.next - len(out)
	if start < 0 {
		start += len(m.ring)
	}
	for i := range out {
		out[i] = m.ring[(start+i)%len(m.ring)]
	}
	return out
}

// Level is the peak absolute amplitude over the latest n samples.
func (m *Meter) Level(n int) float64 {
	var peak float64
	for _, v := range m.Recent(n) {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}
