package systems

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/mathutil"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DropChance is the probability that a kill yields a drop.
func DropChance(luck, boost float64, d cfg.DifficultyID) float64 {
	p := cfg.Drops.BaseChance * luck * (1 + boost) * cfg.Difficulty(d).DropMult
	return mathutil.Clamp(p, 0, cfg.Drops.MaxChance)
}

// DropWeights returns the kind weights indexed by DropKind.
func DropWeights(d cfg.DifficultyID) []float64 {
	prof := cfg.Difficulty(d)
	weights := make([]float64, cfg.DropKindCount)
	weights[cfg.DropWeapon] = cfg.Drops.WeaponWeight * prof.WeaponWeightMult
	weights[cfg.DropPotion] = cfg.Drops.PotionWeight * prof.PotionWeightMult
	weights[cfg.DropFireRate] = cfg.Drops.FireRateWeight
	weights[cfg.DropLife] = cfg.Drops.LifeWeight
	return weights
}

// RollDrop rolls the drop economy once for a kill at (x, y).
func RollDrop(w donburi.World, x, y float64) {
	run := runData(w)
	r := rng(w)
	if !r.Chance(DropChance(run.Luck, run.DropBoost, run.Difficulty)) {
		return
	}

	kind := cfg.DropKind(r.Pick(DropWeights(run.Difficulty)))
	weapon := cfg.WeaponBasic
	if kind == cfg.DropWeapon {
		choices := cfg.DropWeapons()
		weapon = choices[r.Intn(len(choices))]
	}
	factory.CreateDrop(w, x, y, kind, weapon)
}

// UpdateDrops moves drops down with a sideways wobble and applies the ones
// the player touches.
func UpdateDrops(ecs *ecs.ECS) {
	w := ecs.World
	dt := frameData(w).DtWorld
	p, hasPlayer := playerEntry(w)

	for _, e := range live(w, tags.Drop) {
		drop := components.Drop.Get(e)
		body := components.Body.Get(e)

		drop.Clock += dt
		body.Y += body.VY * dt
		body.X += math.Sin(drop.Clock*cfg.Drops.WobbleFreq) * cfg.Drops.WobbleAmp * dt
		syncProxy(e)

		if hasPlayer && !components.Player.Get(p).Hidden && overlaps(e, p, -cfg.Player.PickupReach) {
			ApplyPickup(w, p, drop.Kind, drop.Weapon)
			markRemoved(e)
			continue
		}
		if body.Y > fieldH()+cfg.Drops.Despawn {
			markRemoved(e)
		}
	}
}

// ApplyPickup applies a drop's effect to the player.
func ApplyPickup(w donburi.World, p *donburi.Entry, kind cfg.DropKind, weapon cfg.WeaponID) {
	run := runData(w)
	player := components.Player.Get(p)
	hp := components.Health.Get(p)
	x := components.Body.Get(p).X

	ev := events.Event{Kind: events.ItemPickup, Scene: run.Scene, Drop: kind}
	sound := cfg.SoundPickup

	switch kind {
	case cfg.DropPotion:
		hp.Current = hp.Max

	case cfg.DropWeapon:
		switch {
		case weapon != player.Weapon:
			player.Weapon = weapon
			player.WeaponLevel = 1
			player.Heat = 0
			player.MissileCD = 0
		case player.WeaponLevel < cfg.MaxWeaponLevel:
			player.WeaponLevel++
		default:
			heal(hp, cfg.Drops.WeaponCapHP)
			run.DropBoost = math.Min(cfg.Luck.BoostMax, run.DropBoost+cfg.Luck.BoostWeaponCap)
			ev.Capped = true
		}
		ev.Weapon = player.Weapon
		ev.Level = player.WeaponLevel

	case cfg.DropFireRate:
		if player.FireRate < cfg.MaxFireRateLevel() {
			player.FireRate++
		} else {
			heal(hp, cfg.Drops.FireRateCapHP)
			ev.Capped = true
		}
		ev.Level = player.FireRate

	case cfg.DropLife:
		lives := components.Lives.Get(p)
		if lives.Gain() {
			sound = cfg.SoundLifeUp
		} else {
			heal(hp, cfg.Drops.LifeCapHP)
			ev.Capped = true
		}
		ev.Lives = lives.Lives
	}

	events.Publish(w, ev)
	PlaySFX(w, sound, pan(x))
}

func heal(hp *components.HealthData, amount float64) {
	hp.Current = mathutil.Clamp(hp.Current+amount, 0, hp.Max)
}
