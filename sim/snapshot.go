package sim

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// EntityKind tells the renderer what a snapshot entry is.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindBoss
	KindShot
	KindEnemyShot
	KindDrop
)

// Entity is the drawable state of one live entity. Sub carries the
// kind-specific variant: enemy kind, boss type, shot kind, enemy shot kind
// or drop kind.
type Entity struct {
	Kind    EntityKind
	Sub     int
	Variant int // boss variant in the dual fight
	X, Y    float64
	Radius  float64
	Aiming  bool // sniper windup
	AimX    float64
	AimY    float64
	Weapon  cfg.WeaponID
}

// Snapshot is everything the renderer needs for one frame.
type Snapshot struct {
	Entities []Entity
	Phase    components.BossPhase
	Scene    int
	Time     float64
	Shake    float64 // 0..1 share of the strongest shake

	PlayerVisible bool
	Invulnerable  bool
	FocusActive   bool
}

// HUD is the numeric state shown around the field.
type HUD struct {
	Scene      int
	SceneName  string
	Difficulty cfg.DifficultyID
	State      components.RunState
	Paused     bool

	Lives    int
	MaxLives int
	HP       float64
	HPMax    float64

	Weapon        cfg.WeaponID
	WeaponLevel   int
	FireRateLabel string

	Luck      float64
	DropBoost float64

	FocusEnergy   float64
	FocusMax      float64
	FocusCooldown float64
	FocusLimited  bool

	BossPhase components.BossPhase
	BossHP    float64 // summed over live boss instances
	BossHPMax float64
}

// Snapshot captures the live entities in draw order.
func (s *Sim) Snapshot() Snapshot {
	w := s.world
	run := components.Run.Get(components.Run.MustFirst(w))
	snap := Snapshot{
		Phase: components.BossFight.Get(components.BossFight.MustFirst(w)).Phase,
		Scene: run.Scene,
		Time:  run.Time,
		Shake: run.Shake / cfg.Shake.Max,
	}
	snap.FocusActive = components.Focus.Get(components.Focus.MustFirst(w)).Active

	collect(w, tags.Drop, func(e *donburi.Entry, out *Entity) {
		d := components.Drop.Get(e)
		out.Kind, out.Sub, out.Weapon = KindDrop, int(d.Kind), d.Weapon
	}, &snap)
	collect(w, tags.Enemy, func(e *donburi.Entry, out *Entity) {
		en := components.Enemy.Get(e)
		out.Kind, out.Sub = KindEnemy, int(en.Kind)
		out.Aiming, out.AimX, out.AimY = en.Winding, en.AimX, en.AimY
	}, &snap)
	collect(w, tags.Boss, func(e *donburi.Entry, out *Entity) {
		b := components.Boss.Get(e)
		out.Kind, out.Sub, out.Variant = KindBoss, int(b.Type), b.Variant
	}, &snap)
	collect(w, tags.PlayerShot, func(e *donburi.Entry, out *Entity) {
		out.Kind, out.Sub = KindShot, int(components.Shot.Get(e).Kind)
	}, &snap)
	collect(w, tags.EnemyShot, func(e *donburi.Entry, out *Entity) {
		out.Kind, out.Sub = KindEnemyShot, int(components.EnemyShot.Get(e).Kind)
	}, &snap)

	if p, ok := tags.Player.First(w); ok {
		player := components.Player.Get(p)
		snap.PlayerVisible = !player.Hidden
		snap.Invulnerable = player.Invuln > 0
		if !player.Hidden {
			body := components.Body.Get(p)
			snap.Entities = append(snap.Entities, Entity{
				Kind:   KindPlayer,
				X:      body.X,
				Y:      body.Y,
				Radius: body.Radius,
				Weapon: player.Weapon,
			})
		}
	}
	return snap
}

func collect(w donburi.World, tag donburi.IComponentType, fill func(*donburi.Entry, *Entity), snap *Snapshot) {
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Removed {
			return
		}
		ent := Entity{X: body.X, Y: body.Y, Radius: body.Radius}
		fill(e, &ent)
		snap.Entities = append(snap.Entities, ent)
	})
}

// HUD reports the numbers shown around the field.
func (s *Sim) HUD() HUD {
	w := s.world
	runEntry := components.Run.MustFirst(w)
	run := components.Run.Get(runEntry)
	focus := components.Focus.Get(runEntry)
	fight := components.BossFight.Get(runEntry)

	h := HUD{
		Scene:         run.Scene,
		SceneName:     cfg.Stage(run.Scene).Name,
		Difficulty:    run.Difficulty,
		State:         run.State,
		Paused:        components.Pause.Get(runEntry).IsPaused,
		Luck:          run.Luck,
		DropBoost:     run.DropBoost,
		FocusEnergy:   focus.Energy,
		FocusMax:      cfg.Focus.MaxEnergy,
		FocusCooldown: focus.Cooldown,
		FocusLimited:  cfg.Difficulty(run.Difficulty).FocusLimited,
		BossPhase:     fight.Phase,
		BossHPMax:     fight.HPMax,
	}

	tags.Boss.Each(w, func(e *donburi.Entry) {
		if !components.Body.Get(e).Removed {
			h.BossHP += components.Health.Get(e).Current
		}
	})

	if p, ok := tags.Player.First(w); ok {
		player := components.Player.Get(p)
		hp := components.Health.Get(p)
		lives := components.Lives.Get(p)
		h.Lives, h.MaxLives = lives.Lives, lives.MaxLives
		h.HP = math.Ceil(hp.Current)
		h.HPMax = hp.Max
		h.Weapon = player.Weapon
		h.WeaponLevel = player.WeaponLevel
		h.FireRateLabel = cfg.FireRateLabel[player.FireRate]
	}
	return h
}
