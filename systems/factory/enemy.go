package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy of kind at (x, y) scaled for the current scene.
// Lateral spawns drift inward from their side instead of falling straight.
func CreateEnemy(w donburi.World, kind cfg.EnemyKind, x, y float64, side cfg.SpawnSide) *donburi.Entry {
	run := components.Run.Get(components.Run.MustFirst(w))
	rng := components.RNG.Get(components.RNG.MustFirst(w))

	enemyType, ok := cfg.Enemy.Types[kind]
	if !ok {
		kind = cfg.EnemyDrone
		enemyType = cfg.Enemy.Types[kind]
	}

	enemy := archetypes.Enemy.Spawn(w)

	speed := rng.Range(enemyType.SpeedMin, enemyType.SpeedMax) + float64(run.Scene-1)*enemyType.SceneSpeedBonus
	vx, vy := 0.0, speed
	switch side {
	case cfg.SideLeft:
		vx, vy = speed, speed*cfg.Enemy.LateralDrift
	case cfg.SideRight:
		vx, vy = -speed, speed*cfg.Enemy.LateralDrift
	}

	components.Body.SetValue(enemy, components.BodyData{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: enemyType.Radius,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:        kind,
		Speed:       speed,
		Side:        side,
		DamageTaken: cfg.DamageTaken(kind, run.Scene),
		Dir:         rng.Sign(),
		ShootCD:     rng.Range(enemyType.FirstShotMin, enemyType.FirstShotMax),
	})
	hp := cfg.EnemyHP(kind, run.Scene)
	components.Health.SetValue(enemy, components.HealthData{
		Current: hp,
		Max:     hp,
	})
	attachProxy(w, enemy, tags.ResolvEnemy)

	return enemy
}
