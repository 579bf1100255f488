package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// BossSpec describes one boss instance of a fight.
type BossSpec struct {
	Type    cfg.BossType
	Variant int
	HP      float64
	Radius  float64
	RestX   float64
}

// CreateBoss spawns a boss above the screen. It glides down to the rest
// altitude over the entry duration on an ease-out tween.
func CreateBoss(w donburi.World, spec BossSpec) *donburi.Entry {
	rng := components.RNG.Get(components.RNG.MustFirst(w))

	boss := archetypes.Boss.Spawn(w)

	components.Body.SetValue(boss, components.BodyData{
		X:      spec.RestX,
		Y:      cfg.Boss.SpawnY,
		Radius: spec.Radius,
	})
	components.Boss.SetValue(boss, components.BossData{
		Type:     spec.Type,
		Variant:  spec.Variant,
		Entry:    gween.New(float32(cfg.Boss.SpawnY), float32(cfg.Boss.RestY), float32(cfg.Boss.EntryDuration), ease.OutCubic),
		Entering: true,
		RestX:    spec.RestX,
		Dir:      rng.Sign(),
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: spec.HP,
		Max:     spec.HP,
	})
	attachProxy(w, boss, tags.ResolvBoss)

	return boss
}
