package archetypes

import (
	"github.com/automoto/airfighter/components"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Health,
		components.Lives,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Health,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Body,
		components.Health,
	)
	PlayerShot = newArchetype(
		tags.PlayerShot,
		components.Shot,
		components.Body,
	)
	EnemyShot = newArchetype(
		tags.EnemyShot,
		components.EnemyShot,
		components.Body,
	)
	Drop = newArchetype(
		tags.Drop,
		components.Drop,
		components.Body,
	)
	// Run holds every per-run singleton resource on one entity.
	Run = newArchetype(
		tags.RunResource,
		components.Run,
		components.Frame,
		components.Intent,
		components.Focus,
		components.Spawner,
		components.BossFight,
		components.RNG,
		components.CueQueue,
		components.Pause,
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
