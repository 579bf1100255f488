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

// TakeDamage hurts the player. It is a no-op while invulnerable or dying.
// A hit starts a short invulnerability window; reaching 0 HP starts the
// death sequence.
func TakeDamage(w donburi.World, p *donburi.Entry, amount float64) {
	player := components.Player.Get(p)
	if player.Hidden || player.Invuln > 0 {
		return
	}

	hp := components.Health.Get(p)
	hp.Current = mathutil.Clamp(hp.Current-amount, 0, hp.Max)
	player.Invuln = cfg.Player.HitInvuln
	run := runData(w)
	run.Shake = math.Min(cfg.Shake.Max, run.Shake+cfg.Shake.Hit)
	PlaySFX(w, cfg.SoundHit, pan(components.Body.Get(p).X))

	if hp.Current <= 0 {
		startDeathSequence(w, p)
	}
}

// startDeathSequence takes a life and hides the ship. Enemy shots are
// cleared, enemy fire is delayed and the drop economy gets more generous.
func startDeathSequence(w donburi.World, p *donburi.Entry) {
	if p.HasComponent(components.Death) {
		return
	}
	run := runData(w)
	player := components.Player.Get(p)
	lives := components.Lives.Get(p)

	lives.Spend()
	player.Hidden = true
	donburi.Add(p, components.Death, &components.DeathData{
		Timer: cfg.Player.DeathDuration,
		Slow:  cfg.TimeScale.DeathWindow,
	})

	for _, e := range live(w, tags.EnemyShot) {
		markRemoved(e)
	}
	for _, e := range live(w, tags.Enemy) {
		components.Enemy.Get(e).ShootCD += cfg.Enemy.DeathFireDelay
	}

	run.Shake = cfg.Shake.Death
	run.Luck = math.Min(cfg.Luck.Max, run.Luck+cfg.Luck.LossGain)
	run.DropBoost = math.Min(cfg.Luck.BoostMax, run.DropBoost+cfg.Luck.BoostLossGain)

	events.Publish(w, events.Event{Kind: events.LifeLost, Scene: run.Scene, Lives: lives.Lives})
	PlaySFX(w, cfg.SoundLifeLost, 0)
}

// UpdateDeaths runs the death sequence on real time. When it ends the
// player respawns with the starting loadout, or the run is lost.
func UpdateDeaths(ecs *ecs.ECS) {
	w := ecs.World
	p, ok := playerEntry(w)
	if !ok || !p.HasComponent(components.Death) {
		return
	}
	death := components.Death.Get(p)
	death.Timer -= frameData(w).Dt
	if death.Timer > 0 {
		return
	}

	run := runData(w)
	if components.Lives.Get(p).Out() {
		run.State = components.RunLost
		events.Publish(w, events.Event{Kind: events.GameOver, Scene: run.Scene})
		return
	}

	donburi.Remove[components.DeathData](p, components.Death)
	respawnPlayer(p)
}

func respawnPlayer(p *donburi.Entry) {
	hp := components.Health.Get(p)
	hp.Current = hp.Max

	player := components.Player.Get(p)
	player.Weapon = cfg.WeaponBasic
	player.WeaponLevel = 1
	player.FireRate = 0
	player.Heat = 0
	player.MissileCD = 0
	player.Invuln = cfg.Player.RespawnInvuln
	player.Hidden = false

	resetPlayerPosition(p)
}

// UpdateDecay relaxes luck toward its base, and the drop boost and screen
// shake toward zero.
func UpdateDecay(ecs *ecs.ECS) {
	w := ecs.World
	run := runData(w)
	dt := frameData(w).Dt

	if run.Luck > cfg.Luck.Base {
		run.Luck = math.Max(cfg.Luck.Base, run.Luck-cfg.Luck.Decay*dt)
	}
	run.DropBoost = mathutil.Approach(run.DropBoost, cfg.Luck.BoostDecay*dt)
	run.Shake = mathutil.Approach(run.Shake, cfg.Shake.Decay*dt)
}
