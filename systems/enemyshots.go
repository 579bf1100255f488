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

// UpdateEnemyShots moves enemy projectiles and resolves them against the
// player. Bombs only fall and count down; on fuse expiry each becomes a ring
// of fragments.
func UpdateEnemyShots(ecs *ecs.ECS) {
	w := ecs.World
	dt := frameData(w).DtWorld
	stage := cfg.Stage(runData(w).Scene)

	for _, e := range live(w, tags.EnemyShot) {
		// A death earlier in this loop clears every enemy shot.
		if components.Body.Get(e).Removed {
			continue
		}
		shot := components.EnemyShot.Get(e)
		body := components.Body.Get(e)

		body.X += body.VX * dt
		body.Y += body.VY * dt

		if shot.Kind == cfg.EnemyShotBomb {
			shot.Fuse -= dt
			if shot.Fuse <= 0 {
				burst(w, body.X, body.Y, stage)
				markRemoved(e)
				continue
			}
			syncProxy(e)
			continue
		}

		syncProxy(e)
		if p, ok := playerEntry(w); ok && !components.Player.Get(p).Hidden {
			pb := components.Body.Get(p)
			if mathutil.CircleHit(body.X, body.Y, body.Radius, pb.X, pb.Y, pb.Radius-cfg.Player.BulletHitInset) {
				markRemoved(e)
				TakeDamage(w, p, shot.Damage)
				continue
			}
		}

		if outside(body, cfg.Field.EnemyShotMarginTop, cfg.Field.EnemyShotMarginBottom, cfg.Field.EnemyShotMarginSide) {
			markRemoved(e)
		}
	}
}

func burst(w donburi.World, x, y float64, stage cfg.StageProfile) {
	n := cfg.Enemy.FragmentCount
	sp := stage.BulletSpeed + cfg.Enemy.FragmentSpeedBonus
	for k := 0; k < n; k++ {
		a := float64(k) / float64(n) * 2 * math.Pi
		vx, vy := mathutil.Polar(a, sp)
		factory.CreateEnemyShot(w, x, y, vx, vy, cfg.Enemy.FragmentRadius, cfg.Enemy.FragmentDamage)
	}
}
