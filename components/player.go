package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Weapon      cfg.WeaponID
	WeaponLevel int     // 1..MaxWeaponLevel
	Heat        float64 // seconds until the weapon can fire again
	MissileCD   float64
	FireRate    int // index into config.FireRateMult

	Invuln float64 // seconds of invulnerability left
	Hidden bool    // dying: not drawn, not hit, input ignored
}

var Player = donburi.NewComponentType[PlayerData]()
