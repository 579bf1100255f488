package systems

import (
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func TestGameplayChecks(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
		state  components.RunState
		want   bool
	}{
		{"playing", false, components.RunPlaying, true},
		{"paused", true, components.RunPlaying, false},
		{"lost", false, components.RunLost, false},
		{"won", false, components.RunWon, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t, cfg.Normal)
			GetPause(ecs.NewECS(w)).IsPaused = tt.paused
			runData(w).State = tt.state

			ran := false
			step(w, UpdateRunGate, WithGameplayChecks(func(*ecs.ECS) { ran = true }))
			assert.Equal(t, tt.want, ran)
		})
	}
}

func TestRunEndingMidFrameFinishesFrame(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)

	ran := false
	step(w,
		UpdateRunGate,
		WithGameplayChecks(func(e *ecs.ECS) { runData(e.World).State = components.RunLost }),
		WithGameplayChecks(func(*ecs.ECS) { ran = true }),
	)
	assert.True(t, ran)

	ran = false
	step(w, UpdateRunGate, WithGameplayChecks(func(*ecs.ECS) { ran = true }))
	assert.False(t, ran)
}

func TestPauseCheckIgnoresRunState(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)
	runData(w).State = components.RunWon

	ran := false
	step(w, WithPauseCheck(func(*ecs.ECS) { ran = true }))
	assert.True(t, ran)

	GetPause(ecs.NewECS(w)).IsPaused = true
	ran = false
	step(w, WithPauseCheck(func(*ecs.ECS) { ran = true }))
	assert.False(t, ran)
}
