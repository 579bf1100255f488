package audio

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/gopxl/beep"
)

// loop plays a MusicDef's notes in order, forever.
type loop struct {
	def  cfg.MusicDef
	rate beep.SampleRate
	note *tone
	next int
}

func newLoop(def cfg.MusicDef, rate beep.SampleRate) *loop {
	return &loop{def: def, rate: rate}
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.note == nil {
			l.note = newTone(l.noteDef(l.next), l.rate)
			l.next = (l.next + 1) % len(l.def.Notes)
		}
		got, _ := l.note.Stream(samples[n:])
		n += got
		if n < len(samples) {
			l.note = nil
		}
	}
	return n, true
}

func (l *loop) Err() error { return nil }

// noteDef turns note i into a flat tone that fills one step.
func (l *loop) noteDef(i int) cfg.ToneDef {
	f := l.def.Notes[i]
	gain := l.def.Gain
	if f <= 0 {
		gain = 0
	}
	return cfg.ToneDef{
		Name:    l.def.Name,
		Wave:    l.def.Wave,
		Freq:    f,
		Gain:    gain,
		Attack:  0.01,
		Release: max(l.def.Step-0.03, 0.01),
	}
}

// Music builds the looping streamer for a track. MusicNone and tracks
// without notes return nil.
func Music(id cfg.MusicID, volume float64, rate beep.SampleRate) beep.Streamer {
	def, ok := cfg.Sound.Music[id]
	if !ok || len(def.Notes) == 0 {
		return nil
	}
	return newVolume(newLoop(def, rate), volume)
}
