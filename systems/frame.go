package systems

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrame composes the world time scale for this frame from focus, the
// death slow-motion window and the boss warning window, then advances the
// run clocks. Frame.Dt must already hold the clamped real dt.
func UpdateFrame(ecs *ecs.ECS) {
	w := ecs.World
	f := frameData(w)
	run := runData(w)

	UpdateFocus(ecs)

	scale := 1.0
	if components.Focus.Get(components.Focus.MustFirst(w)).Active {
		scale *= cfg.TimeScale.Focus
	}

	if p, ok := playerEntry(w); ok && p.HasComponent(components.Death) {
		death := components.Death.Get(p)
		if death.Slow > 0 {
			scale *= cfg.TimeScale.Death
			death.Slow -= f.Dt
		}
	}

	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	if fight.WarnWindow > 0 {
		scale *= cfg.TimeScale.BossWarn
		fight.WarnWindow -= f.Dt
	}

	f.Scale = scale
	f.DtWorld = f.Dt * scale

	run.Stepped = true
	run.Real += f.Dt
	run.Time += f.DtWorld
	run.Frame++
}
