package systems

import (
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolleyShapes(t *testing.T) {
	tests := []struct {
		name     string
		weapon   cfg.WeaponID
		level    int
		shots    int
		missiles int
	}{
		{"basic", cfg.WeaponBasic, 1, 1, 0},
		{"spread 2", cfg.WeaponSpread, 2, 5, 0},
		{"spread 3", cfg.WeaponSpread, 3, 7, 0},
		{"laser", cfg.WeaponLaser, 3, 1, 0},
		{"piercer 3", cfg.WeaponPiercer, 3, 4, 0},
		{"shock 1", cfg.WeaponShock, 1, 1, 0},
		{"shock 3", cfg.WeaponShock, 3, 3, 0},
		{"missiles 3", cfg.WeaponMissiles, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p := newTestWorld(t, cfg.Normal)
			player := components.Player.Get(p)
			player.Weapon = tt.weapon
			player.WeaponLevel = tt.level

			require.True(t, Fire(w, p))

			bolts, missiles := 0, 0
			for _, e := range live(w, tags.PlayerShot) {
				if components.Shot.Get(e).Homing {
					missiles++
				} else {
					bolts++
				}
				assert.Less(t, components.Body.Get(e).VY, 0.0)
			}
			assert.Equal(t, tt.shots, bolts)
			assert.Equal(t, tt.missiles, missiles)
		})
	}
}

func TestHeatGatesFiring(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	player := components.Player.Get(p)
	player.FireRate = 1

	require.True(t, Fire(w, p))
	assert.InDelta(t, cfg.WeaponCooldown(cfg.WeaponBasic, 1), player.Heat, 1e-9)
	assert.False(t, Fire(w, p))

	setDt(w, player.Heat)
	step(w, UpdatePlayer)
	assert.True(t, Fire(w, p))
}

func TestMissileSalvoHasItsOwnCooldown(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	player := components.Player.Get(p)
	player.Weapon = cfg.WeaponMissiles
	player.WeaponLevel = 1

	Fire(w, p)
	player.Heat = 0
	Fire(w, p)

	missiles := 0
	for _, e := range live(w, tags.PlayerShot) {
		if components.Shot.Get(e).Homing {
			missiles++
		}
	}
	assert.Equal(t, 1, missiles)
	assert.Equal(t, 2, countLive(w, tags.PlayerShot)-missiles)
}

func TestFireOnlyWhileHeld(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)

	step(w, UpdateWeapons)
	assert.Zero(t, countLive(w, tags.PlayerShot))

	components.Intent.Get(components.Intent.MustFirst(w)).Firing = true
	step(w, UpdateWeapons)
	assert.Equal(t, 1, countLive(w, tags.PlayerShot))
}
