package systems

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner runs the wave phase of the current scene. Spawns accrue
// fractionally on world time; once the wave outlasts the scene's duration
// the boss warning starts exactly once and wave spawning stops. During an
// active fight on tiers with boss adds, a slow timer injects extra enemies.
func UpdateSpawner(ecs *ecs.ECS) {
	w := ecs.World
	run := runData(w)
	if run.State != components.RunPlaying {
		return
	}
	spawner := components.Spawner.Get(components.Spawner.MustFirst(w))
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	dt := frameData(w).DtWorld

	switch fight.Phase {
	case components.PhaseNone:
		if spawner.Triggered {
			return
		}
		spawner.WaveTime += dt
		if spawner.WaveTime > cfg.Stage(run.Scene).WaveDuration {
			spawner.Triggered = true
			startBossWarning(w)
			return
		}
		spawner.Acc += dt * cfg.SpawnRate(run.Scene, run.Difficulty)
		for spawner.Acc >= 1 {
			spawner.Acc--
			spawnWaveEnemy(w, run)
		}

	case components.PhaseActive:
		if !cfg.Difficulty(run.Difficulty).BossAdds {
			return
		}
		spawner.AddsTimer += dt
		for spawner.AddsTimer >= cfg.Enemy.AddsInterval {
			spawner.AddsTimer -= cfg.Enemy.AddsInterval
			kind := cfg.EnemySweeper
			if rng(w).Chance(cfg.Enemy.AddsDroneChance) {
				kind = cfg.EnemyDrone
			}
			spawnTop(w, kind)
		}
	}
}

// spawnWaveEnemy rolls a kind from the scene's weight bands and places it on
// the top edge, or on a side edge for the lateral share on tiers that have
// one.
func spawnWaveEnemy(w donburi.World, run *components.RunData) {
	r := rng(w)
	weights := cfg.Stage(run.Scene).KindWeights
	kind := cfg.EnemyKind(r.Pick(weights[:]))
	if kind < 0 {
		kind = cfg.EnemyDrone
	}

	lateral := cfg.Difficulty(run.Difficulty).LateralSpawnChance
	if lateral > 0 && r.Chance(lateral) {
		y := r.Range(cfg.Enemy.LateralMinY, fieldH()*cfg.Enemy.LateralMaxY)
		if r.Chance(0.5) {
			factory.CreateEnemy(w, kind, -cfg.Enemy.LateralOffset, y, cfg.SideLeft)
		} else {
			factory.CreateEnemy(w, kind, fieldW()+cfg.Enemy.LateralOffset, y, cfg.SideRight)
		}
		return
	}
	spawnTop(w, kind)
}

func spawnTop(w donburi.World, kind cfg.EnemyKind) *donburi.Entry {
	x := rng(w).Range(cfg.Enemy.SpawnInsetX, fieldW()-cfg.Enemy.SpawnInsetX)
	return factory.CreateEnemy(w, kind, x, cfg.Enemy.SpawnY, cfg.SideTop)
}
