package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
)

type DropData struct {
	Kind   cfg.DropKind
	Weapon cfg.WeaponID // weapon drops only
	Clock  float64      // drives the wobble
}

var Drop = donburi.NewComponentType[DropData]()
