package systems

import (
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDt = 1.0 / 60

// newTestWorld builds a run with a player and an unscaled frame.
func newTestWorld(t *testing.T, d cfg.DifficultyID) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateRun(w, "test", d, 42)
	p := factory.CreatePlayer(w)
	setDt(w, testDt)
	return w, p
}

func setDt(w donburi.World, dt float64) {
	f := frameData(w)
	f.Dt = dt
	f.DtWorld = dt
	f.Scale = 1
}

// step runs each system once, in order, over w.
func step(w donburi.World, systems ...ecs.System) {
	e := ecs.NewECS(w)
	for _, sys := range systems {
		e.AddSystem(sys)
	}
	e.Update()
}

// recorder collects every event published on a world.
type recorder struct {
	w      donburi.World
	events []events.Event
}

func record(w donburi.World) *recorder {
	r := &recorder{w: w}
	events.Bus.Subscribe(w, func(_ donburi.World, e events.Event) {
		r.events = append(r.events, e)
	})
	return r
}

func (r *recorder) count(kind events.Kind) int {
	events.Bus.ProcessEvents(r.w)
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) sounds() []cfg.SoundID {
	events.Bus.ProcessEvents(r.w)
	var out []cfg.SoundID
	for _, e := range r.events {
		if e.Kind == events.Sound {
			out = append(out, e.Sound)
		}
	}
	return out
}

func countLive(w donburi.World, tag donburi.IComponentType) int {
	return len(live(w, tag))
}

// placeEnemy spawns an enemy that sits still at (x, y) with the given HP.
func placeEnemy(w donburi.World, kind cfg.EnemyKind, x, y, hp float64) *donburi.Entry {
	e := factory.CreateEnemy(w, kind, x, y, cfg.SideTop)
	body := components.Body.Get(e)
	body.VX, body.VY = 0, 0
	components.Health.SetValue(e, components.HealthData{Current: hp, Max: hp})
	components.Enemy.Get(e).ShootCD = 100
	syncProxy(e)
	return e
}

// placeShot spawns a motionless player shot at (x, y).
func placeShot(w donburi.World, x, y, damage float64, pierce int) *donburi.Entry {
	return factory.CreateShot(w, factory.ShotSpec{
		X:      x,
		Y:      y,
		Radius: 4,
		Damage: damage,
		Kind:   cfg.ShotBasic,
		Pierce: pierce,
	})
}
