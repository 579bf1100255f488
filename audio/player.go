// Package audio synthesizes the simulation's sound cues on the speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	cfg "github.com/automoto/airfighter/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes one-shot effects and one music loop into a single speaker
// stream.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicID     cfg.MusicID
	volume      float64
	enabled     bool
	initialized bool
}

func NewPlayer() *Player {
	return &Player{
		rate:    beep.SampleRate(cfg.Audio.SampleRate),
		mixer:   &beep.Mixer{},
		volume:  cfg.Audio.DefaultSFXVol,
		enabled: true,
	}
}

// Init opens the speaker. Until it succeeds every Play is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	buffer := p.rate.N(time.Duration(cfg.Audio.BufferMillis) * time.Millisecond)
	if err := speaker.Init(p.rate, buffer); err != nil {
		return fmt.Errorf("error opening speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.restartMusic()
	return nil
}

// Play starts an effect panned to pan in [-1, 1].
func (p *Player) Play(id cfg.SoundID, pan float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}
	s := Effect(id, pan, p.volume*cfg.Audio.MasterGain, p.rate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetEnabled mutes or unmutes effects. Muting drops what is playing.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = on
	if !on && p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		p.music = nil
	}
	if on && p.music == nil {
		p.restartMusic()
	}
}

// PlayMusic switches the background loop. The choice is kept while muted
// and resumes when sound is enabled again.
func (p *Player) PlayMusic(id cfg.MusicID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == p.musicID {
		return
	}
	p.musicID = id
	p.restartMusic()
}

// SetMusicPaused holds or releases the current loop.
func (p *Player) SetMusicPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

func (p *Player) Music() cfg.MusicID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicID
}

// restartMusic drops the playing loop and starts musicID. Callers hold mu.
func (p *Player) restartMusic() {
	if p.music != nil {
		speaker.Lock()
		p.music.Streamer = nil
		speaker.Unlock()
		p.music = nil
	}
	if !p.initialized || !p.enabled {
		return
	}
	s := Music(p.musicID, p.volume*cfg.Audio.MasterGain, p.rate)
	if s == nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: s}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.music = nil
	p.initialized = false
}
