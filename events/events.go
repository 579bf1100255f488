// Package events defines the discrete notifications a frame produces for the
// host: phase changes, pickups, life changes and sounds.
package events

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

type Kind int

const (
	SceneEntered Kind = iota
	BossIncoming
	BossDefeated
	LevelCleared
	Victory
	ItemPickup
	LifeLost
	GameOver
	EnemyKilled
	Sound
)

func (k Kind) String() string {
	switch k {
	case SceneEntered:
		return "scene_entered"
	case BossIncoming:
		return "boss_incoming"
	case BossDefeated:
		return "boss_defeated"
	case LevelCleared:
		return "level_cleared"
	case Victory:
		return "victory"
	case ItemPickup:
		return "item_pickup"
	case LifeLost:
		return "life_lost"
	case GameOver:
		return "game_over"
	case EnemyKilled:
		return "enemy_killed"
	case Sound:
		return "sound"
	}
	return "unknown"
}

// Event is one notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind  Kind
	Scene int

	Boss   cfg.BossType
	Enemy  cfg.EnemyKind
	Drop   cfg.DropKind
	Weapon cfg.WeaponID
	Level  int // weapon level or fire-rate level after a pickup
	Capped bool

	Lives int
	X, Y  float64

	Sound cfg.SoundID
	Pan   float64
}

var Bus = devents.NewEventType[Event]()

// Publish queues e on the world's bus. Subscribers see it when the frame
// flushes the bus.
func Publish(w donburi.World, e Event) {
	Bus.Publish(w, e)
}
