package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind        cfg.EnemyKind
	Speed       float64
	Side        cfg.SpawnSide
	DamageTaken float64 // multiplier on incoming player damage
	Clock       float64 // world seconds alive, drives sway
	Dir         float64 // sway direction, +1 or -1

	ShootCD float64

	// Sniper windup: locks the aim point, then fires when Windup runs out
	Winding bool
	Windup  float64
	AimX    float64
	AimY    float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
