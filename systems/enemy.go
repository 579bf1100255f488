package systems

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/mathutil"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy, runs its fire pattern and culls the ones
// that left the field. Culled enemies never roll drops.
func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	run := runData(w)
	dt := frameData(w).DtWorld
	stage := cfg.Stage(run.Scene)

	tx, ty := fieldW()/2, fieldH()
	if p, ok := playerEntry(w); ok {
		pb := components.Body.Get(p)
		tx, ty = pb.X, pb.Y
	}

	for _, e := range live(w, tags.Enemy) {
		enemy := components.Enemy.Get(e)
		body := components.Body.Get(e)
		kindCfg := cfg.Enemy.Types[enemy.Kind]

		enemy.Clock += dt
		body.X += body.VX * dt
		body.Y += body.VY * dt

		sway := math.Sin(enemy.Clock*kindCfg.SwayFreq) * kindCfg.SwayAmp * dt
		switch enemy.Kind {
		case cfg.EnemySweeper:
			body.X += sway * enemy.Dir
			if enemy.Side == cfg.SideTop {
				body.X = mathutil.Clamp(body.X, cfg.Enemy.SweeperEdgeInset, fieldW()-cfg.Enemy.SweeperEdgeInset)
			}
		case cfg.EnemySniper, cfg.EnemyBomber:
			body.X += sway
		}

		enemy.ShootCD -= dt
		if enemy.ShootCD <= 0 {
			enemy.ShootCD = cfg.EnemyFireCooldown(rng(w).Range(kindCfg.ShotMin, kindCfg.ShotMax), run.Scene, run.Difficulty)
			enemyFire(w, e, stage, tx, ty)
		}

		if enemy.Winding {
			enemy.Windup -= dt
			if enemy.Windup <= 0 {
				enemy.Winding = false
				vx, vy := mathutil.Aim(body.X, body.Y, enemy.AimX, enemy.AimY, stage.BulletSpeed+kindCfg.AimSpeedBonus)
				factory.CreateEnemyShot(w, body.X, body.Y+cfg.Enemy.MuzzleOffset, vx, vy, kindCfg.ShotRadius, kindCfg.ShotDamage)
			}
		}

		if body.Y > fieldH()+cfg.Enemy.DespawnBelow || body.X < -cfg.Enemy.DespawnSide || body.X > fieldW()+cfg.Enemy.DespawnSide {
			markRemoved(e)
			continue
		}
		syncProxy(e)
	}
}

// enemyFire runs one volley of an enemy's kind-specific pattern aimed at
// (tx, ty).
func enemyFire(w donburi.World, e *donburi.Entry, stage cfg.StageProfile, tx, ty float64) {
	enemy := components.Enemy.Get(e)
	body := components.Body.Get(e)
	kindCfg := cfg.Enemy.Types[enemy.Kind]
	mx, my := body.X, body.Y+cfg.Enemy.MuzzleOffset
	sp := stage.BulletSpeed

	switch enemy.Kind {
	case cfg.EnemyDrone:
		vx, vy := mathutil.Aim(body.X, body.Y, tx, ty, sp)
		factory.CreateEnemyShot(w, mx, my, vx, vy, kindCfg.ShotRadius, kindCfg.ShotDamage)

	case cfg.EnemySweeper:
		base := math.Atan2(ty-body.Y, tx-body.X)
		for _, off := range []float64{-stage.SweeperFan, stage.SweeperFan} {
			vx, vy := mathutil.Polar(base+off, sp)
			factory.CreateEnemyShot(w, mx, my, vx, vy, kindCfg.ShotRadius, kindCfg.ShotDamage)
		}

	case cfg.EnemySniper:
		// Lock the aim point now; the shot leaves when the windup ends.
		enemy.Winding = true
		enemy.Windup = kindCfg.Windup
		enemy.AimX, enemy.AimY = tx, ty

	case cfg.EnemyBomber:
		factory.CreateBomb(w, mx, my, sp*cfg.Enemy.BombSpeedFactor)
	}
}
