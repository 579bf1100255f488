package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BossData struct {
	Type    cfg.BossType
	Variant int // 0 single boss, 1 or 2 in the dual fight

	// Entry glide from the spawn altitude to RestY
	Entry    *gween.Tween
	Entering bool

	RestX float64
	Clock float64 // world seconds since Active
	Dir   float64 // drift direction, +1 or -1

	FireCD float64
	Shots  int // volleys fired, drives the Abyss Crown burst
}

var Boss = donburi.NewComponentType[BossData]()
