package systems

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapons fires the player's weapon while the fire button is held.
func UpdateWeapons(ecs *ecs.ECS) {
	w := ecs.World
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	if !components.Intent.Get(components.Intent.MustFirst(w)).Firing {
		return
	}
	Fire(w, e)
}

// Fire emits one volley of the player's current weapon and sets the weapon
// heat. It is a no-op while the weapon is hot or the player is dying.
func Fire(w donburi.World, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.Hidden || player.Heat > 0 {
		return false
	}

	body := components.Body.Get(e)
	weapon := cfg.Weapons[player.Weapon]
	lvl := cfg.WeaponLevel(player.Weapon, player.WeaponLevel)
	x, y := body.X, body.Y-weapon.Muzzle
	sound := cfg.SoundShootSoft

	switch player.Weapon {
	case cfg.WeaponSpread:
		fireFan(w, x, y, lvl, weapon.Shot)

	case cfg.WeaponLaser, cfg.WeaponPiercer:
		fireParallel(w, x, y, lvl, weapon.Shot)
		sound = cfg.SoundShootLaser

	case cfg.WeaponMissiles:
		fireParallel(w, x, y, lvl, weapon.Shot)
		if player.MissileCD <= 0 {
			launchMissiles(w, body.X, body.Y, player.WeaponLevel)
			player.MissileCD = cfg.Missile.Cooldown
			sound = cfg.SoundShootMissile
		}

	case cfg.WeaponShock:
		fireParallel(w, x, y, lvl, weapon.Shot)
		if lvl.SideBolts {
			for _, a := range []float64{-lvl.SideAngle, lvl.SideAngle} {
				factory.CreateShot(w, factory.ShotSpec{
					X:      x,
					Y:      y,
					VX:     math.Sin(a) * lvl.Speed,
					VY:     -math.Cos(a) * lvl.Speed,
					Radius: lvl.Radius,
					Damage: lvl.Damage,
					Kind:   weapon.Shot,
					Pierce: lvl.SidePierce,
				})
			}
		}
		sound = cfg.SoundShootLaser

	default:
		fireParallel(w, x, y, lvl, weapon.Shot)
	}

	player.Heat = cfg.WeaponCooldown(player.Weapon, player.FireRate)
	PlaySFX(w, sound, pan(body.X))
	return true
}

// fireParallel emits lvl.Count straight bolts spaced lvl.Spacing apart and
// centered on x.
func fireParallel(w donburi.World, x, y float64, lvl cfg.WeaponLevelConfig, kind cfg.ShotKind) {
	n := max(lvl.Count, 1)
	left := x - lvl.Spacing*float64(n-1)/2
	for i := 0; i < n; i++ {
		factory.CreateShot(w, factory.ShotSpec{
			X:      left + lvl.Spacing*float64(i),
			Y:      y,
			VY:     -lvl.Speed,
			Radius: lvl.Radius,
			Damage: lvl.Damage,
			Kind:   kind,
			Pierce: lvl.Pierce,
		})
	}
}

// fireFan emits lvl.Count bolts evenly spread over [-Spread, Spread]
// around straight up.
func fireFan(w donburi.World, x, y float64, lvl cfg.WeaponLevelConfig, kind cfg.ShotKind) {
	n := max(lvl.Count, 1)
	for i := 0; i < n; i++ {
		a := 0.0
		if n > 1 {
			a = -lvl.Spread + 2*lvl.Spread*float64(i)/float64(n-1)
		}
		factory.CreateShot(w, factory.ShotSpec{
			X:      x,
			Y:      y,
			VX:     math.Sin(a) * lvl.Speed,
			VY:     -math.Cos(a) * lvl.Speed,
			Radius: lvl.Radius,
			Damage: lvl.Damage,
			Kind:   kind,
			Pierce: lvl.Pierce,
		})
	}
}

func launchMissiles(w donburi.World, x, y float64, level int) {
	n := cfg.Missile.Counts[max(min(level, cfg.MaxWeaponLevel), 1)-1]
	left := x - cfg.Missile.Spacing*float64(n-1)/2
	for i := 0; i < n; i++ {
		vx := rng(w).Range(-cfg.Missile.LaunchJitter, cfg.Missile.LaunchJitter)
		factory.CreateMissile(w, left+cfg.Missile.Spacing*float64(i), y-10, vx, -cfg.Missile.LaunchSpeed)
	}
}

// missileTarget picks the nearest live boss or enemy. Enemies far below the
// missile are ignored.
func missileTarget(w donburi.World, x, y float64) *donburi.Entry {
	var best *donburi.Entry
	bestD := math.Inf(1)
	consider := func(e *donburi.Entry, skipBelow bool) {
		body := components.Body.Get(e)
		dx, dy := body.X-x, body.Y-y
		if skipBelow && dy > missileReachBelow {
			return
		}
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = e
		}
	}
	for _, b := range live(w, tags.Boss) {
		consider(b, false)
	}
	for _, en := range live(w, tags.Enemy) {
		consider(en, true)
	}
	return best
}

const missileReachBelow = 260
