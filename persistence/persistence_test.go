package persistence

import (
	"errors"
	"testing"

	cfg "github.com/automoto/airfighter/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

func defaults() Prefs {
	return DefaultPrefs(cfg.Settings{Language: "EN", Difficulty: cfg.Normal, SFX: true})
}

func TestPrefsDefaultWhenNothingSaved(t *testing.T) {
	s := New(newMemStore(), zerolog.Nop())
	assert.Equal(t, defaults(), s.LoadPrefs(defaults()))
}

func TestPrefsSurviveSave(t *testing.T) {
	store := newMemStore()
	s := New(store, zerolog.Nop())

	p := defaults()
	p.Language = "TC"
	p.Difficulty = cfg.Expert.String()
	p.SFX = false
	require.NoError(t, s.SavePrefs(p))

	got := New(store, zerolog.Nop()).LoadPrefs(defaults())
	assert.Equal(t, p, got)
}

func TestBadPrefsFallBack(t *testing.T) {
	store := newMemStore()
	store.items[prefsKey] = []byte(`{"difficulty":"nightmare","sfxVolume":4,"language":"TC"}`)
	got := New(store, zerolog.Nop()).LoadPrefs(defaults())

	assert.Equal(t, "normal", got.Difficulty)
	assert.Equal(t, defaults().SFXVolume, got.SFXVolume)
	assert.Equal(t, "TC", got.Language)

	store.items[prefsKey] = []byte(`{not json`)
	assert.Equal(t, defaults(), New(store, zerolog.Nop()).LoadPrefs(defaults()))
}

func TestStoreErrors(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	s := New(store, zerolog.Nop())

	assert.Equal(t, defaults(), s.LoadPrefs(defaults()))
	assert.ErrorIs(t, s.SavePrefs(defaults()), store.err)
}

func TestRecordRun(t *testing.T) {
	s := New(newMemStore(), zerolog.Nop())

	best, err := s.RecordRun(cfg.Normal, 2, false)
	require.NoError(t, err)
	assert.True(t, best)

	best, err = s.RecordRun(cfg.Normal, 1, false)
	require.NoError(t, err)
	assert.False(t, best)

	_, err = s.RecordRun(cfg.Normal, 3, true)
	require.NoError(t, err)

	r := s.LoadRecords()
	assert.Equal(t, 3, r.BestScene["normal"])
	assert.Equal(t, 1, r.Wins["normal"])
	assert.Zero(t, r.BestScene["expert"])
}

func TestNoStoreIsMemoryOnly(t *testing.T) {
	s := &Saves{logger: zerolog.Nop()}
	assert.NoError(t, s.SavePrefs(defaults()))
	assert.Equal(t, defaults(), s.LoadPrefs(defaults()))
	assert.Empty(t, s.LoadRecords().BestScene)
}
