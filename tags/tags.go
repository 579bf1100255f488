package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	PlayerShot  = donburi.NewTag().SetName("PlayerShot")
	EnemyShot   = donburi.NewTag().SetName("EnemyShot")
	Drop        = donburi.NewTag().SetName("Drop")
	RunResource = donburi.NewTag().SetName("Run")
)

// Resolv tags for the collision field
const (
	ResolvPlayer    = "player"
	ResolvEnemy     = "enemy"
	ResolvBoss      = "boss"
	ResolvShot      = "shot"
	ResolvEnemyShot = "enemyshot"
	ResolvDrop      = "drop"
)
