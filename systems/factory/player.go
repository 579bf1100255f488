package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		X:      cfg.Field.Width * cfg.Player.StartX,
		Y:      cfg.Field.Height * cfg.Player.StartY,
		Radius: cfg.Player.Radius,
	})
	components.Player.SetValue(player, components.PlayerData{
		Weapon:      cfg.WeaponBasic,
		WeaponLevel: 1,
		Invuln:      cfg.Player.StartInvuln,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:    cfg.Player.StartingLives,
		MaxLives: cfg.Player.MaxLives,
	})
	attachProxy(w, player, tags.ResolvPlayer)

	return player
}
