package systems

import (
	"github.com/automoto/airfighter/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRunGate opens the frame when the run is unpaused and still being
// played. It must be the first system; a run that ends mid-frame finishes
// that frame.
func UpdateRunGate(ecs *ecs.ECS) {
	w := ecs.World
	entry := components.Run.MustFirst(w)
	frameData(w).Live = !components.Pause.Get(entry).IsPaused &&
		components.Run.Get(entry).State == components.RunPlaying
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetPause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when
// the gate left the frame closed.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if !frameData(e.World).Live {
			return
		}
		system(e)
	})
}

// GetPause returns the run's Pause singleton.
func GetPause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(components.Pause.MustFirst(ecs.World))
}
