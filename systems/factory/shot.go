package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
)

// ShotSpec describes one player projectile.
type ShotSpec struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage float64
	Kind   cfg.ShotKind
	Pierce int
}

func CreateShot(w donburi.World, spec ShotSpec) *donburi.Entry {
	shot := archetypes.PlayerShot.Spawn(w)

	components.Body.SetValue(shot, components.BodyData{
		X:      spec.X,
		Y:      spec.Y,
		VX:     spec.VX,
		VY:     spec.VY,
		Radius: spec.Radius,
	})
	components.Shot.SetValue(shot, components.ShotData{
		Kind:   spec.Kind,
		Damage: spec.Damage,
		Pierce: spec.Pierce,
	})
	attachProxy(w, shot, tags.ResolvShot)

	return shot
}

// CreateMissile spawns a homing missile launched with velocity (vx, vy).
func CreateMissile(w donburi.World, x, y, vx, vy float64) *donburi.Entry {
	missile := CreateShot(w, ShotSpec{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: cfg.Missile.Radius,
		Damage: cfg.Missile.Damage,
		Kind:   cfg.ShotMissile,
	})

	shot := components.Shot.Get(missile)
	shot.Homing = true
	shot.Speed = cfg.Missile.HomingSpeed
	shot.TurnRate = cfg.Missile.TurnRate
	shot.Life = cfg.Missile.Lifetime

	return missile
}

// CreateEnemyShot spawns a plain enemy projectile.
func CreateEnemyShot(w donburi.World, x, y, vx, vy, radius, damage float64) *donburi.Entry {
	shot := archetypes.EnemyShot.Spawn(w)

	components.Body.SetValue(shot, components.BodyData{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: radius,
	})
	components.EnemyShot.SetValue(shot, components.EnemyShotData{
		Kind:   cfg.EnemyShotPlain,
		Damage: damage,
	})
	attachProxy(w, shot, tags.ResolvEnemyShot)

	return shot
}

// CreateBomb spawns a falling bomb that bursts when its fuse runs out.
func CreateBomb(w donburi.World, x, y, vy float64) *donburi.Entry {
	bomb := CreateEnemyShot(w, x, y, 0, vy, cfg.Enemy.BombRadius, cfg.Enemy.BombDamage)

	shot := components.EnemyShot.Get(bomb)
	shot.Kind = cfg.EnemyShotBomb
	shot.Fuse = cfg.Enemy.BombFuse

	return bomb
}
