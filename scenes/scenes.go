// Package scenes holds the ebiten screens: the start menu and the battle.
package scenes

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/input"
	"github.com/automoto/airfighter/locale"
	"github.com/automoto/airfighter/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SoundPlayer plays the simulation's cues and the music loop.
// *audio.Player satisfies it.
type SoundPlayer interface {
	Play(id cfg.SoundID, pan float64)
	PlayMusic(id cfg.MusicID)
	SetMusicPaused(paused bool)
	SetEnabled(on bool)
	Enabled() bool
}

// Session is what every scene shares for the lifetime of the window.
type Session struct {
	Logger zerolog.Logger
	Input  *input.State
	Sound  SoundPlayer
	Saves  *persistence.Saves
	Prefs  persistence.Prefs
	Seed   uint64 // 0 picks a fresh seed per run
}

func (s *Session) Lang() locale.Lang {
	return locale.Parse(s.Prefs.Language)
}

func (s *Session) Text() *locale.Strings {
	return locale.For(s.Lang())
}

func (s *Session) Difficulty() cfg.DifficultyID {
	d, _ := cfg.ParseDifficulty(s.Prefs.Difficulty)
	return d
}

// ToggleSFX flips sound, remembers the choice and returns the toast text.
func (s *Session) ToggleSFX() string {
	on := !s.Sound.Enabled()
	s.Sound.SetEnabled(on)
	s.Prefs.SFX = on
	s.savePrefs()
	return s.Text().SFXToast(on)
}

func (s *Session) ToggleLang() {
	s.Prefs.Language = s.Lang().Next().String()
	s.savePrefs()
}

func (s *Session) SetDifficulty(d cfg.DifficultyID) {
	s.Prefs.Difficulty = d.String()
	s.savePrefs()
}

func (s *Session) savePrefs() {
	if err := s.Saves.SavePrefs(s.Prefs); err != nil {
		s.Logger.Warn().Err(err).Msg("Could not save preferences")
	}
}
