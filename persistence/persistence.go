// Package persistence saves player preferences and run records between
// sessions.
package persistence

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/airfighter/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog"
)

const (
	prefsKey   = "prefs"
	recordsKey = "records"
)

// Store is the key/value backend. gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Prefs are the menu choices remembered across sessions.
type Prefs struct {
	Language   string  `json:"language"`
	Difficulty string  `json:"difficulty"`
	SFX        bool    `json:"sfx"`
	SFXVolume  float64 `json:"sfxVolume"`
	Fullscreen bool    `json:"fullscreen"`
}

// Records track the furthest scene reached and the wins per difficulty.
type Records struct {
	BestScene map[string]int `json:"bestScene"`
	Wins      map[string]int `json:"wins"`
}

// Saves reads and writes Prefs and Records. A Saves without a store keeps
// everything in memory only.
type Saves struct {
	store  Store
	logger zerolog.Logger
}

// Open creates the gdata store for appName. When the platform has no data
// directory the error is logged and the returned Saves works in memory.
func Open(appName string, logger zerolog.Logger) *Saves {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not initialize persistence")
		return &Saves{logger: logger}
	}
	return New(m, logger)
}

func New(store Store, logger zerolog.Logger) *Saves {
	return &Saves{store: store, logger: logger}
}

// DefaultPrefs reflect the run-level settings from config.
func DefaultPrefs(s cfg.Settings) Prefs {
	return Prefs{
		Language:   s.Language,
		Difficulty: s.Difficulty.String(),
		SFX:        s.SFX,
		SFXVolume:  cfg.Audio.DefaultSFXVol,
	}
}

// LoadPrefs overlays saved preferences onto def. Missing or unreadable data
// leaves def untouched.
func (s *Saves) LoadPrefs(def Prefs) Prefs {
	p := def
	if !s.load(prefsKey, &p) {
		return def
	}
	if _, ok := cfg.ParseDifficulty(p.Difficulty); !ok {
		p.Difficulty = def.Difficulty
	}
	if p.SFXVolume < 0 || p.SFXVolume > 1 {
		p.SFXVolume = def.SFXVolume
	}
	return p
}

func (s *Saves) SavePrefs(p Prefs) error {
	return s.save(prefsKey, p)
}

func (s *Saves) LoadRecords() Records {
	r := Records{}
	s.load(recordsKey, &r)
	if r.BestScene == nil {
		r.BestScene = map[string]int{}
	}
	if r.Wins == nil {
		r.Wins = map[string]int{}
	}
	return r
}

// RecordRun folds a finished run into the stored records. Reports whether
// the run set a new best scene.
func (s *Saves) RecordRun(d cfg.DifficultyID, scene int, won bool) (bool, error) {
	r := s.LoadRecords()
	key := d.String()
	best := scene > r.BestScene[key]
	if best {
		r.BestScene[key] = scene
	}
	if won {
		r.Wins[key]++
	}
	return best, s.save(recordsKey, r)
}

func (s *Saves) load(key string, v any) bool {
	if s.store == nil {
		return false
	}
	data, err := s.store.LoadItem(key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Could not load saved data")
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Could not parse saved data")
		return false
	}
	return true
}

func (s *Saves) save(key string, v any) error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}
	if err := s.store.SaveItem(key, data); err != nil {
		return fmt.Errorf("error saving %s: %w", key, err)
	}
	return nil
}
