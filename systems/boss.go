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

// UpdateBosses glides entering bosses down on their tween and, once the
// fight is active, drifts, fires and resolves hull contact with the player.
func UpdateBosses(ecs *ecs.ECS) {
	w := ecs.World
	run := runData(w)
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	dt := frameData(w).DtWorld
	stage := cfg.Stage(run.Scene)

	p, hasPlayer := playerEntry(w)

	for _, e := range live(w, tags.Boss) {
		boss := components.Boss.Get(e)
		body := components.Body.Get(e)

		if boss.Entering {
			if boss.Entry != nil {
				y, _ := boss.Entry.Update(float32(dt))
				body.Y = float64(y)
			}
			syncProxy(e)
			continue
		}
		if fight.Phase != components.PhaseActive {
			continue
		}

		typeCfg := cfg.Boss.Types[boss.Type]
		boss.Clock += dt
		body.X += math.Sin(boss.Clock*typeCfg.DriftFreq) * typeCfg.DriftAmp * dt * boss.Dir
		body.X = mathutil.Clamp(body.X, cfg.Boss.EdgeInset, fieldW()-cfg.Boss.EdgeInset)
		syncProxy(e)

		boss.FireCD -= dt
		if boss.FireCD <= 0 {
			boss.FireCD = cfg.BossFireInterval(typeCfg.FireInterval, run.Scene, run.Difficulty)
			tx, ty := body.X, fieldH()
			if hasPlayer {
				pb := components.Body.Get(p)
				tx, ty = pb.X, pb.Y
			}
			bossFire(w, e, stage, tx, ty)
		}

		if hasPlayer && !components.Player.Get(p).Hidden && overlaps(p, e, cfg.Boss.ContactInset) {
			TakeDamage(w, p, cfg.Boss.ContactDamage)
		}
	}
}

// bossFire runs one volley of the boss type's pattern: a spinning radial
// stream, an aimed fan, or an aimed shot with a radial burst every few
// volleys.
func bossFire(w donburi.World, e *donburi.Entry, stage cfg.StageProfile, tx, ty float64) {
	boss := components.Boss.Get(e)
	body := components.Body.Get(e)
	typeCfg := cfg.Boss.Types[boss.Type]
	mx, my := body.X, body.Y+cfg.Boss.MuzzleOffset
	sp := stage.BulletSpeed + typeCfg.ShotSpeedBonus
	boss.Shots++

	switch boss.Type {
	case cfg.BossHelixWarden:
		vx, vy := mathutil.Polar(boss.Clock*typeCfg.SpinRate, sp)
		factory.CreateEnemyShot(w, mx, my, vx, vy, typeCfg.ShotRadius, typeCfg.ShotDamage)

	case cfg.BossPrismHydra:
		base := math.Atan2(ty-body.Y, tx-body.X)
		for _, off := range typeCfg.FanOffsets {
			vx, vy := mathutil.Polar(base+off, sp+typeCfg.FanSpeedBonus)
			factory.CreateEnemyShot(w, mx, my, vx, vy, typeCfg.ShotRadius, typeCfg.ShotDamage)
		}

	case cfg.BossAbyssCrown:
		vx, vy := mathutil.Aim(body.X, body.Y, tx, ty, sp)
		factory.CreateEnemyShot(w, mx, my, vx, vy, typeCfg.ShotRadius, typeCfg.ShotDamage)
		if typeCfg.BurstEvery > 0 && boss.Shots%typeCfg.BurstEvery == 0 {
			for i := 0; i < typeCfg.BurstCount; i++ {
				a := float64(i) / float64(typeCfg.BurstCount) * 2 * math.Pi
				bvx, bvy := mathutil.Polar(a, stage.BulletSpeed)
				factory.CreateEnemyShot(w, body.X, body.Y, bvx, bvy, typeCfg.ShotRadius, typeCfg.ShotDamage)
			}
		}
	}
}
