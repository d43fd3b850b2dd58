package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/lucky-wheel/internal/audio"
	"github.com/iburimskiy/lucky-wheel/internal/config"
)

// sound plays effects through one long-running mixer so the meter sees every
// sample the speaker outputs. A nil *sound is silent.
type sound struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
	meter *audio.Meter
}

func newSound() (*sound, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	mixer := &beep.Mixer{}
	meter := audio.NewMeter(mixer, config.MeterWindow)
	speaker.Play(meter)

	return &sound{sr: sr, mixer: mixer, meter: meter}, nil
}

func (s *sound) play(st beep.Streamer) {
	if s == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *sound) tick() {
	if s == nil {
		return
	}
	s.play(audio.Tone(s.sr, config.TickFreq, config.TickDuration, 0.25))
}

func (s *sound) chime() {
	if s == nil {
		return
	}
	s.play(audio.Chime(s.sr))
}

// level is the recent output peak, used to make the pointer glow.
func (s *sound) level() float64 {
	if s == nil {
		return 0
	}
	return s.meter.Level(s.sr.N(time.Second / 30))
}

func (s *sound) close() {
	if s == nil {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
