package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
)

func CreateDrop(w donburi.World, x, y float64, kind cfg.DropKind, weapon cfg.WeaponID) *donburi.Entry {
	drop := archetypes.Drop.Spawn(w)

	components.Body.SetValue(drop, components.BodyData{
		X:      x,
		Y:      y,
		VY:     cfg.Drops.FallSpeed,
		Radius: cfg.Drops.Radius,
	})
	components.Drop.SetValue(drop, components.DropData{
		Kind:   kind,
		Weapon: weapon,
	})
	attachProxy(w, drop, tags.ResolvDrop)

	return drop
}
