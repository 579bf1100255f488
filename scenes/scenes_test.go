package scenes

import (
	"math"
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/input"
	"github.com/automoto/airfighter/persistence"
	"github.com/automoto/airfighter/sim"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

type fakeSound struct {
	played      []cfg.SoundID
	music       cfg.MusicID
	musicPaused bool
	on          bool
}

func (f *fakeSound) Play(id cfg.SoundID, _ float64) {
	if f.on {
		f.played = append(f.played, id)
	}
}
func (f *fakeSound) PlayMusic(id cfg.MusicID)   { f.music = id }
func (f *fakeSound) SetMusicPaused(paused bool) { f.musicPaused = paused }
func (f *fakeSound) SetEnabled(on bool)         { f.on = on }
func (f *fakeSound) Enabled() bool              { return f.on }

type mapStore map[string][]byte

func (m mapStore) LoadItem(key string) ([]byte, error)   { return m[key], nil }
func (m mapStore) SaveItem(key string, data []byte) error { m[key] = data; return nil }

type nopChanger struct{ to Scene }

func (n *nopChanger) ChangeScene(s Scene) { n.to = s }

func newSession() (*Session, *fakeSound) {
	snd := &fakeSound{on: true}
	saves := persistence.New(mapStore{}, zerolog.Nop())
	return &Session{
		Logger: zerolog.Nop(),
		Input:  &input.State{},
		Sound:  snd,
		Saves:  saves,
		Prefs:  persistence.DefaultPrefs(cfg.Settings{Language: "EN", Difficulty: cfg.Normal, SFX: true}),
		Seed:   7,
	}, snd
}

func press(ids ...cfg.ActionID) input.Sample {
	var smp input.Sample
	for _, id := range ids {
		smp.Pressed[id] = true
	}
	return smp
}

func TestFirstFrameAnnouncesScene(t *testing.T) {
	s, _ := newSession()
	bs := NewBattleScene(&nopChanger{}, s)
	require.NoError(t, bs.err)

	s.Input.Apply(press())
	bs.tick(dt)

	msg, ok := bs.toasts.current()
	require.True(t, ok)
	assert.Equal(t, "Enter Scene 1", msg)
}

func TestPauseTogglePlaysCues(t *testing.T) {
	s, snd := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	assert.True(t, bs.sim.Paused())
	assert.Contains(t, snd.played, cfg.SoundPause)

	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	assert.True(t, bs.sim.Paused(), "holding the key is not a second press")

	s.Input.Apply(press())
	bs.tick(dt)
	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	assert.False(t, bs.sim.Paused())
	assert.Contains(t, snd.played, cfg.SoundResume)
}

func TestFiringReachesTheSpeaker(t *testing.T) {
	s, snd := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	for range 30 {
		s.Input.Apply(press(cfg.ActionFire))
		bs.tick(dt)
	}
	assert.Contains(t, snd.played, cfg.SoundShootSoft)
}

func TestMutedSessionStaysSilent(t *testing.T) {
	s, snd := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	s.Input.Apply(press(cfg.ActionToggleSFX))
	bs.tick(dt)
	assert.False(t, snd.Enabled())
	assert.False(t, s.Prefs.SFX)

	for range 30 {
		s.Input.Apply(press(cfg.ActionFire))
		bs.tick(dt)
	}
	assert.Empty(t, snd.played)
}

func TestRestartWhilePaused(t *testing.T) {
	s, _ := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	for range 10 {
		s.Input.Apply(press())
		bs.tick(dt)
	}
	before := bs.sim.HUD()
	require.Equal(t, components.RunPlaying, before.State)

	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	s.Input.Apply(press(cfg.ActionRestart))
	bs.tick(dt)

	assert.False(t, bs.sim.Paused())
	assert.Equal(t, 1, bs.sim.HUD().Scene)
	_, ok := bs.toasts.current()
	assert.False(t, ok)
}

func TestFinishedRunIsRecordedOnce(t *testing.T) {
	s, _ := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	bs.handle([]events.Event{{Kind: events.GameOver, Scene: 1}})
	bs.handle([]events.Event{{Kind: events.GameOver, Scene: 1}})

	r := s.Saves.LoadRecords()
	assert.Equal(t, 1, r.BestScene["normal"])
	assert.Zero(t, r.Wins["normal"])
	msg, _ := bs.toasts.current()
	assert.Equal(t, "Game Over", msg)
}

func TestMenuCyclesOptions(t *testing.T) {
	s, _ := newSession()
	ms := NewMenuScene(&nopChanger{}, s)

	ms.move(-1)
	assert.Equal(t, optionSFX, ms.selected)
	ms.move(1)
	assert.Equal(t, optionStart, ms.selected)

	ms.selected = optionDifficulty
	ms.change(1)
	assert.Equal(t, cfg.Expert, s.Difficulty())
	ms.change(1)
	assert.Equal(t, cfg.Beginner, s.Difficulty())
	assert.Equal(t, "Difficulty: < Beginner >", ms.label(optionDifficulty))

	ms.selected = optionLanguage
	ms.change(1)
	assert.Equal(t, "TC", s.Prefs.Language)
	assert.Equal(t, "開始", ms.label(optionStart))

	loaded := s.Saves.LoadPrefs(persistence.Prefs{})
	assert.Equal(t, "TC", loaded.Language)
	assert.Equal(t, "beginner", loaded.Difficulty)
}

func TestToastQueue(t *testing.T) {
	var q toasts
	q.push("a")
	q.push("b")

	msg, _ := q.current()
	assert.Equal(t, "a", msg)

	q.update(cfg.Toast.Duration / 2)
	msg, _ = q.current()
	assert.Equal(t, "a", msg)

	q.update(cfg.Toast.Duration / 2)
	msg, _ = q.current()
	assert.Equal(t, "b", msg)

	q.update(cfg.Toast.Duration)
	_, ok := q.current()
	assert.False(t, ok)

	for _, m := range []string{"1", "2", "3", "4", "5", "6"} {
		q.push(m)
	}
	assert.Len(t, q.queue, cfg.Toast.MaxQueued)
	msg, _ = q.current()
	assert.Equal(t, "1", msg)
	assert.Equal(t, "6", q.queue[len(q.queue)-1])
}

func TestShakeOffsetScalesWithShake(t *testing.T) {
	dx, dy := shakeOffset(&sim.Snapshot{Time: 3})
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	for _, tm := range []float64{0.1, 1.7, 12.3} {
		dx, dy = shakeOffset(&sim.Snapshot{Time: tm, Shake: 1})
		assert.LessOrEqual(t, math.Abs(dx), cfg.Shake.Amplitude)
		assert.LessOrEqual(t, math.Abs(dy), cfg.Shake.Amplitude)
	}

	dx, _ = shakeOffset(&sim.Snapshot{Time: 0.1, Shake: 1})
	half, _ := shakeOffset(&sim.Snapshot{Time: 0.1, Shake: 0.5})
	assert.InDelta(t, dx/2, half, 1e-9)
}

func TestMusicFollowsTheRun(t *testing.T) {
	s, snd := newSession()
	bs := NewBattleScene(&nopChanger{}, s)

	s.Input.Apply(press())
	bs.tick(dt)
	assert.Equal(t, cfg.MusicStage, snd.music)

	bs.handle([]events.Event{{Kind: events.BossIncoming, Scene: 1}})
	assert.Equal(t, cfg.MusicBoss, snd.music)

	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	assert.True(t, snd.musicPaused)
	s.Input.Apply(press())
	bs.tick(dt)
	s.Input.Apply(press(cfg.ActionPause))
	bs.tick(dt)
	assert.False(t, snd.musicPaused)

	bs.handle([]events.Event{{Kind: events.BossDefeated, Scene: 1}})
	assert.Equal(t, cfg.MusicNone, snd.music)

	bs.handle([]events.Event{{Kind: events.SceneEntered, Scene: 2}})
	assert.Equal(t, cfg.MusicStage, snd.music)

	bs.handle([]events.Event{{Kind: events.GameOver, Scene: 2}})
	assert.Equal(t, cfg.MusicNone, snd.music)
}
