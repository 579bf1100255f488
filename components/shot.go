package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
)

// ShotData is a player projectile.
type ShotData struct {
	Kind   cfg.ShotKind
	Damage float64
	Pierce int // hits left before removal, 0 = consumed on first hit

	// Homing missiles only
	Homing   bool
	Speed    float64
	TurnRate float64
	Life     float64
}

var Shot = donburi.NewComponentType[ShotData]()

// EnemyShotData is an enemy or boss projectile. Bombs fall without bounds
// or player checks and burst into a fragment ring when Fuse runs out.
type EnemyShotData struct {
	Kind   cfg.EnemyShotKind
	Damage float64
	Fuse   float64
}

var EnemyShot = donburi.NewComponentType[EnemyShotData]()
