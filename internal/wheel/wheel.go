// Package wheel holds the engine-free state of a lucky wheel: its segments,
// rotation, the running spin and the winner.
package wheel

import (
	"time"
)

// Step describes what happened during one Advance call.
type Step struct {
	Ticked   bool
	Finished bool
	Winner   string
}

// Wheel owns the segment list and rotation state. It is driven from a single
// game loop and is not safe for concurrent use.
type Wheel struct {
	segments Segments
	rotation float64
	spin     *session
	winner   string
	pointer  pointer
	rnd      Rand

	// tick from Spin, reported by the next Advance
	startTick bool
}

// New returns a wheel with the given segments. It panics when fewer than
// MinSegments are supplied.
func New(segments Segments, rnd Rand) *Wheel {
	if len(segments) < MinSegments {
		panic("wheel: need at least two segments")
	}
	s := make(Segments, len(segments))
	copy(s, segments)
	return &Wheel{
		segments: s,
		pointer:  newPointer(),
		rnd:      rnd,
	}
}

func (w *Wheel) Segments() Segments { return w.segments }
func (w *Wheel) Rotation() float64 { return w.rotation }
func (w *Wheel) Spinning() bool { return w.spin != nil }
func (w *Wheel) Winner() string { return w.winner }

// PointerOffset is the current tick rotation of the pointer in degrees.
func (w *Wheel) PointerOffset() float64 { return w.pointer.offset }

// Spin starts a new spin session. It reports false if one is already running.
// A pointer tick caused by the start shows up in the next Advance.
func (w *Wheel) Spin(now time.Time) bool {
	if w.spin != nil {
		return false
	}
	w.winner = ""
	w.spin = newSession(now, w.rotation, w.segments, w.rnd)
	w.startTick = w.pointer.observe(PinIndex(w.rotation, len(w.segments)), now)
	return true
}

// Advance moves the running spin to time now and fires due pointer resets.
// It must be called once per frame.
func (w *Wheel) Advance(now time.Time) Step {
	w.pointer.update(now)

	step := Step{Ticked: w.startTick}
	w.startTick = false
	if w.spin == nil {
		return step
	}

	p := w.spin.progress(now)
	current := w.spin.rotation(p)
	w.rotation = Normalize(current)

	if p < 1 {
		if w.pointer.observe(PinIndex(w.rotation, len(w.segments)), now) {
			step.Ticked = true
		}
		return step
	}

	segs := w.spin.segments
	w.spin = nil
	w.winner = segs[WinnerIndex(current, len(segs))].Text
	step.Finished = true
	step.Winner = w.winner
	return step
}

// AddSegment appends an auto-labelled segment.
func (w *Wheel) AddSegment() {
	w.segments = w.segments.Add()
}

// RemoveSegment deletes the segment at index unless that would leave fewer
// than MinSegments.
func (w *Wheel) RemoveSegment(index int) bool {
	var ok bool
	w.segments, ok = w.segments.Remove(index)
	return ok
}

// UpdateSegment sets one field of the segment at index.
func (w *Wheel) UpdateSegment(index int, field Field, value string) bool {
	var ok bool
	w.segments, ok = w.segments.Update(index, field, value)
	return ok
}
