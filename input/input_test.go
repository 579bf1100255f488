package input

import (
	"testing"

	cfg "github.com/automoto/airfighter/config"
	"github.com/stretchr/testify/assert"
)

func press(ids ...cfg.ActionID) Sample {
	var smp Sample
	for _, id := range ids {
		smp.Pressed[id] = true
	}
	smp.Active = len(ids) > 0
	return smp
}

func TestEdgesFollowFrames(t *testing.T) {
	var s State

	s.Apply(press(cfg.ActionPause))
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, s.Action(cfg.ActionPause))

	s.Apply(press(cfg.ActionPause))
	assert.Equal(t, ActionState{Pressed: true}, s.Action(cfg.ActionPause))

	s.Apply(press())
	assert.Equal(t, ActionState{JustReleased: true}, s.Action(cfg.ActionPause))
	assert.False(t, s.JustPressed(cfg.ActionPause))
}

func TestKeysBecomeUnitMoves(t *testing.T) {
	var s State
	s.Apply(press(cfg.ActionMoveLeft, cfg.ActionMoveDown, cfg.ActionFire))
	in := s.Intents()

	assert.Equal(t, -1.0, in.MoveX)
	assert.Equal(t, 1.0, in.MoveY)
	assert.True(t, in.Firing)
	assert.False(t, in.Focus)

	s.Apply(press(cfg.ActionMoveLeft, cfg.ActionMoveRight, cfg.ActionFocus))
	in = s.Intents()
	assert.Zero(t, in.MoveX)
	assert.True(t, in.Focus)
}

func TestStickOverridesKeysOutsideDeadzone(t *testing.T) {
	var s State
	smp := press(cfg.ActionMoveLeft)
	smp.StickX = 0.1
	s.Apply(smp)
	assert.Equal(t, -1.0, s.Intents().MoveX, "inside deadzone the keys win")

	smp.StickX = 1
	s.Apply(smp)
	assert.InDelta(t, 1.0, s.Intents().MoveX, 1e-9)
	assert.True(t, s.Action(cfg.ActionMenuRight).Pressed)

	smp.StickX = (1 + cfg.Input.AnalogDeadzone) / 2
	s.Apply(smp)
	assert.InDelta(t, 0.5, s.Intents().MoveX, 1e-9)
}

func TestMethodSticksUntilAnotherDevice(t *testing.T) {
	var s State
	smp := press(cfg.ActionFire)
	smp.Method = PlayStation
	s.Apply(smp)
	assert.Equal(t, PlayStation, s.Method())

	s.Apply(Sample{})
	assert.Equal(t, PlayStation, s.Method())
}

func TestMethodFromName(t *testing.T) {
	assert.Equal(t, PlayStation, methodFromName("Sony DualSense Wireless Controller"))
	assert.Equal(t, PlayStation, methodFromName("PS4 Controller"))
	assert.Equal(t, Xbox, methodFromName("Xbox Wireless Controller"))
	assert.Equal(t, Xbox, methodFromName(""))
}
