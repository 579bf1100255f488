package systems

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFocus resolves whether focus is active this frame. It runs on real
// time. Unlimited tiers grant focus whenever it is requested; limited tiers
// drain an energy pool and lock focus out for a cooldown once it is empty.
func UpdateFocus(ecs *ecs.ECS) {
	w := ecs.World
	focus := components.Focus.Get(components.Focus.MustFirst(w))
	intent := components.Intent.Get(components.Intent.MustFirst(w))
	dt := frameData(w).Dt

	requested := intent.Focus
	if p, ok := playerEntry(w); ok && components.Player.Get(p).Hidden {
		requested = false
	}

	if !cfg.Difficulty(runData(w).Difficulty).FocusLimited {
		focus.Active = requested
		return
	}
	stepFocus(focus, requested, dt)
}

func stepFocus(focus *components.FocusData, requested bool, dt float64) {
	focus.Active = false

	switch {
	case focus.Cooldown > 0:
		focus.Cooldown -= dt
		if focus.Cooldown < 0 {
			focus.Cooldown = 0
		}
	case requested:
		if focus.Energy <= 0 {
			focus.Energy = 0
			focus.Cooldown = cfg.Focus.Cooldown
			return
		}
		focus.Active = true
		focus.Energy -= cfg.Focus.DrainRate * dt
		if focus.Energy <= 0 {
			focus.Energy = 0
			focus.Cooldown = cfg.Focus.Cooldown
		}
	default:
		focus.Energy += cfg.Focus.RegenRate * dt
		if focus.Energy > cfg.Focus.MaxEnergy {
			focus.Energy = cfg.Focus.MaxEnergy
		}
	}
}
