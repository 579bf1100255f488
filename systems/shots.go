package systems

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/mathutil"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerShots steers missiles, moves every player shot and resolves
// its hits: enemies first, then bosses. Shots past the margins are dropped.
func UpdatePlayerShots(ecs *ecs.ECS) {
	w := ecs.World
	dt := frameData(w).DtWorld

	for _, e := range live(w, tags.PlayerShot) {
		shot := components.Shot.Get(e)
		body := components.Body.Get(e)

		if shot.Homing {
			shot.Life -= dt
			if shot.Life <= 0 {
				markRemoved(e)
				continue
			}
			steer(w, body, shot, dt)
		}

		body.X += body.VX * dt
		body.Y += body.VY * dt

		if outside(body, cfg.Field.ShotMarginTop, cfg.Field.ShotMarginBottom, cfg.Field.ShotMarginSide) {
			markRemoved(e)
			continue
		}
		syncProxy(e)

		if hitEnemies(w, e) {
			continue
		}
		hitBosses(w, e)
	}
}

// steer turns a missile's velocity toward its target at a bounded rate.
func steer(w donburi.World, body *components.BodyData, shot *components.ShotData, dt float64) {
	target := missileTarget(w, body.X, body.Y)
	if target == nil {
		return
	}
	tb := components.Body.Get(target)
	dvx, dvy := mathutil.Aim(body.X, body.Y, tb.X, tb.Y, shot.Speed)
	k := mathutil.Clamp(dt*shot.TurnRate, 0, 1)
	body.VX = mathutil.Lerp(body.VX, dvx, k)
	body.VY = mathutil.Lerp(body.VY, dvy, k)
}

// hitEnemies applies e's damage to every enemy it overlaps until the shot
// is consumed. Reports whether the shot was consumed.
func hitEnemies(w donburi.World, e *donburi.Entry) bool {
	run := runData(w)
	shot := components.Shot.Get(e)

	for _, en := range candidates(e, tags.ResolvEnemy) {
		if !overlaps(e, en, 0) {
			continue
		}
		enemy := components.Enemy.Get(en)
		hp := components.Health.Get(en)
		hp.Current = math.Max(0, hp.Current-shot.Damage*enemy.DamageTaken)
		if hp.Current <= 0 {
			killEnemy(w, en, run.Scene)
		}

		if shot.Pierce > 0 {
			shot.Pierce--
			if shot.Pierce == 0 {
				markRemoved(e)
				return true
			}
			continue
		}
		markRemoved(e)
		return true
	}
	return false
}

// hitBosses applies raw damage to the first boss e overlaps. Boss hits
// always consume the shot.
func hitBosses(w donburi.World, e *donburi.Entry) {
	shot := components.Shot.Get(e)

	for _, b := range candidates(e, tags.ResolvBoss) {
		if !overlaps(e, b, 0) {
			continue
		}
		hp := components.Health.Get(b)
		hp.Current = math.Max(0, hp.Current-shot.Damage)
		markRemoved(e)

		if hp.Current <= 0 {
			markRemoved(b)
			checkBossesCleared(w)
		}
		return
	}
}

func killEnemy(w donburi.World, e *donburi.Entry, scene int) {
	body := components.Body.Get(e)
	enemy := components.Enemy.Get(e)
	x, y := body.X, body.Y
	markRemoved(e)

	events.Publish(w, events.Event{
		Kind:  events.EnemyKilled,
		Scene: scene,
		Enemy: enemy.Kind,
		X:     x,
		Y:     y,
	})
	RollDrop(w, x, y)
}
