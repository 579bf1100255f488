package audio

import (
	"math"

	cfg "github.com/automoto/airfighter/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone renders one ToneDef: an oscillator gliding exponentially from Freq to
// Freq2 over Glide seconds, shaped by a linear attack and release.
type tone struct {
	def   cfg.ToneDef
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

func newTone(def cfg.ToneDef, rate beep.SampleRate) *tone {
	return &tone{
		def:   def,
		rate:  rate,
		total: int(def.Length() * float64(rate)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		sec := float64(t.pos) / float64(t.rate)

		v := wave(t.def.Wave, t.phase) * t.envelope(sec) * t.def.Gain
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq(sec) / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) freq(sec float64) float64 {
	d := t.def
	if d.Glide <= 0 || d.Freq2 <= 0 || d.Freq <= 0 {
		return d.Freq
	}
	k := math.Min(sec/d.Glide, 1)
	return d.Freq * math.Pow(d.Freq2/d.Freq, k)
}

func (t *tone) envelope(sec float64) float64 {
	d := t.def
	if d.Attack > 0 && sec < d.Attack {
		return sec / d.Attack
	}
	rel := sec - d.Attack
	if d.Release <= 0 {
		return 1
	}
	return math.Max(0, 1-rel/d.Release)
}

func wave(w cfg.Waveform, phase float64) float64 {
	switch w {
	case cfg.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case cfg.WaveSawtooth:
		return 2 * (phase - 0.5)
	case cfg.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}

// Effect builds the streamer for a sound id at a stereo pan and volume.
// Unknown ids return nil.
func Effect(id cfg.SoundID, pan, volume float64, rate beep.SampleRate) beep.Streamer {
	def, ok := cfg.Sound.Defs[id]
	if !ok {
		return nil
	}
	var s beep.Streamer = newTone(def, rate)
	s = &effects.Pan{Streamer: s, Pan: math.Max(-1, math.Min(1, pan))}
	return newVolume(s, volume)
}

// newVolume maps a linear gain onto beep's log2 volume. Zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
