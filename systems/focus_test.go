package systems

import (
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func requestFocus(w donburi.World, on bool) {
	components.Intent.Get(components.Intent.MustFirst(w)).Focus = on
}

func focusData(w donburi.World) *components.FocusData {
	return components.Focus.Get(components.Focus.MustFirst(w))
}

func TestEmptyFocusPoolStartsCooldown(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)
	setDt(w, 0.1)
	focus := focusData(w)
	focus.Energy = 0
	focus.Cooldown = 0

	requestFocus(w, true)
	step(w, UpdateFocus)
	assert.False(t, focus.Active)
	assert.Equal(t, cfg.Focus.Cooldown, focus.Cooldown)

	// requests during the cooldown are refused and do not extend it
	step(w, UpdateFocus)
	assert.False(t, focus.Active)
	assert.InDelta(t, cfg.Focus.Cooldown-0.1, focus.Cooldown, 1e-9)

	requestFocus(w, false)
	steps := 1
	for focus.Cooldown > 0 {
		step(w, UpdateFocus)
		steps++
		require.Less(t, steps, 100)
	}
	assert.InDelta(t, cfg.Focus.Cooldown/0.1, float64(steps), 1.5)
	assert.Zero(t, focus.Energy)

	step(w, UpdateFocus)
	assert.InDelta(t, cfg.Focus.RegenRate*0.1, focus.Energy, 1e-9)
}

func TestFocusDrainsWhileHeld(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)
	setDt(w, 0.5)
	focus := focusData(w)
	require.Equal(t, cfg.Focus.MaxEnergy, focus.Energy)

	requestFocus(w, true)
	step(w, UpdateFocus)
	assert.True(t, focus.Active)
	assert.InDelta(t, cfg.Focus.MaxEnergy-cfg.Focus.DrainRate*0.5, focus.Energy, 1e-9)

	for i := 0; i < 10 && focus.Cooldown == 0; i++ {
		step(w, UpdateFocus)
	}
	assert.Zero(t, focus.Energy)
	assert.Equal(t, cfg.Focus.Cooldown, focus.Cooldown)

	// regen is capped
	requestFocus(w, false)
	focus.Cooldown = 0
	setDt(w, 100)
	step(w, UpdateFocus)
	assert.Equal(t, cfg.Focus.MaxEnergy, focus.Energy)
}

func TestUnlimitedFocus(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Beginner)
	focus := focusData(w)
	focus.Energy = 0

	requestFocus(w, true)
	for i := 0; i < 600; i++ {
		step(w, UpdateFocus)
		require.True(t, focus.Active)
	}
	assert.Zero(t, focus.Cooldown)
}

func TestHiddenPlayerCannotFocus(t *testing.T) {
	w, p := newTestWorld(t, cfg.Beginner)
	components.Player.Get(p).Hidden = true

	requestFocus(w, true)
	step(w, UpdateFocus)
	assert.False(t, focusData(w).Active)
}

func TestFrameComposesTimeScale(t *testing.T) {
	w, p := newTestWorld(t, cfg.Beginner)
	setDt(w, testDt)
	run := runData(w)
	f := frameData(w)

	step(w, UpdateFrame)
	assert.Equal(t, 1.0, f.Scale)
	assert.InDelta(t, testDt, run.Time, 1e-12)

	requestFocus(w, true)
	step(w, UpdateFrame)
	assert.InDelta(t, cfg.TimeScale.Focus, f.Scale, 1e-12)
	assert.InDelta(t, testDt*cfg.TimeScale.Focus, f.DtWorld, 1e-12)

	components.Player.Get(p).Invuln = 0
	TakeDamage(w, p, 100)
	requestFocus(w, false)
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	fight.WarnWindow = 1

	step(w, UpdateFrame)
	assert.InDelta(t, cfg.TimeScale.Death*cfg.TimeScale.BossWarn, f.Scale, 1e-12)
	assert.InDelta(t, 1-testDt, fight.WarnWindow, 1e-12)

	assert.Equal(t, 3, run.Frame)
	assert.InDelta(t, 3*testDt, run.Real, 1e-12)
	assert.Less(t, run.Time, run.Real)
}

func TestFocusSlowsWorldButNotShip(t *testing.T) {
	w, p := newTestWorld(t, cfg.Beginner)
	body := components.Body.Get(p)
	x0 := body.X

	components.Intent.SetValue(components.Intent.MustFirst(w), components.IntentData{MoveX: -1, Focus: true})
	step(w, UpdateFrame)
	step(w, UpdatePlayer)

	moved := x0 - body.X
	assert.InDelta(t, cfg.Player.Speed*testDt*cfg.TimeScale.FocusMove, moved, 1e-9)
}
