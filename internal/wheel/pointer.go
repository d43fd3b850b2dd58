package wheel

import (
	"time"

	"github.com/iburimskiy/lucky-wheel/internal/config"
)

// pointer is the tick animation state of the fixed pointer.
//
// Every tick adds config.PointerTickAngle to offset and schedules its own
// reset. Resets are never cancelled, so an earlier reset can zero an offset
// bumped by a later tick.
type pointer struct {
	offset float64

	lastPin int
	resets  []time.Time
}

func newPointer() pointer {
	return pointer{lastPin: -1}
}

// observe records the pin under the pointer and reports whether it ticked.
func (p *pointer) observe(pin int, now time.Time) bool {
	if pin == p.lastPin {
		return false
	}
	p.lastPin = pin
	p.offset += config.PointerTickAngle
	p.resets = append(p.resets, now.Add(config.PointerTickReset))
	return true
}

// update fires every reset whose deadline has passed.
func (p *pointer) update(now time.Time) {
	kept := p.resets[:0]
	for _, at := range p.resets {
		if !now.Before(at) {
			p.offset = 0
			continue
		}
		kept = append(kept, at)
	}
	p.resets = kept
}
