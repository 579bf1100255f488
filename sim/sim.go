// Package sim owns a run's world and advances it one frame at a time.
package sim

import (
	"context"
	"errors"
	"time"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/systems"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrRunStarted is returned by SetDifficulty once the run has stepped.
var ErrRunStarted = errors.New("difficulty is fixed once the run has started")

// Options configure a Sim.
type Options struct {
	Difficulty cfg.DifficultyID
	Seed       uint64 // 0 picks a seed from the clock
	Logger     *zerolog.Logger
}

// Intents is the player's input for one frame.
type Intents struct {
	MoveX  float64
	MoveY  float64
	Firing bool
	Focus  bool
}

// Frame is the result of one Step.
type Frame struct {
	Dt      float64
	DtWorld float64
	Events  []events.Event
}

// Sim runs the frame systems in a fixed order over a world it owns
// exclusively. It is not safe for concurrent use.
type Sim struct {
	ecs    *ecs.ECS
	world  donburi.World
	opts   Options
	seed   uint64
	logger zerolog.Logger

	metrics *metrics
	outbox  []events.Event
}

// New builds a Sim with a fresh run.
func New(opts Options) (*Sim, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	s := &Sim{
		opts:    opts,
		metrics: m,
		logger:  zerolog.Nop(),
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	}
	s.reset()
	return s, nil
}

// reset discards the world and builds a new run on the same options.
func (s *Sim) reset() {
	s.seed = s.opts.Seed
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}

	s.configure()
	s.outbox = nil
	events.Bus.Subscribe(s.world, s.onEvent)

	id := uuid.NewString()
	factory.CreateRun(s.world, id, s.opts.Difficulty, s.seed)
	factory.CreatePlayer(s.world)
	events.Publish(s.world, events.Event{Kind: events.SceneEntered, Scene: 1})

	s.logger.Info().
		Str("run", id).
		Str("difficulty", s.opts.Difficulty.String()).
		Uint64("seed", s.seed).
		Msg("Run started")
}

func (s *Sim) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateRunGate)

	// Order matters: the frame clock first, removals last.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFrame))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBossPhase))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWeapons))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBosses))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerShots))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyShots))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDrops))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCues))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDecay))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCleanup))

	s.ecs = ecs
	s.world = ecs.World
}

// Step advances the run by dt real seconds. It does nothing while paused,
// after the run has ended, or for a non-positive dt. Larger dt values are
// clamped so timers cannot jump past their thresholds.
func (s *Sim) Step(dt float64, in Intents) Frame {
	if dt <= 0 {
		return Frame{}
	}
	runEntry := components.Run.MustFirst(s.world)
	run := components.Run.Get(runEntry)
	frame := run.Frame

	f := components.Frame.Get(runEntry)
	f.Dt = min(dt, cfg.TimeScale.MaxFrameDt)
	components.Intent.SetValue(runEntry, components.IntentData{
		MoveX:  in.MoveX,
		MoveY:  in.MoveY,
		Firing: in.Firing,
		Focus:  in.Focus,
	})

	s.ecs.Update()
	if run.Frame == frame {
		return Frame{}
	}

	events.Bus.ProcessEvents(s.world)
	s.metrics.frames.Add(context.Background(), 1)

	out := s.outbox
	s.outbox = nil
	return Frame{Dt: f.Dt, DtWorld: f.DtWorld, Events: out}
}

func (s *Sim) onEvent(_ donburi.World, e events.Event) {
	s.outbox = append(s.outbox, e)
	s.metrics.record(context.Background(), e)

	switch e.Kind {
	case events.SceneEntered:
		s.logger.Info().Int("scene", e.Scene).Msg("Scene entered")
	case events.BossIncoming:
		s.logger.Info().Int("scene", e.Scene).Str("boss", e.Boss.String()).Msg("Boss incoming")
	case events.BossDefeated:
		s.logger.Info().Int("scene", e.Scene).Str("boss", e.Boss.String()).Msg("Boss defeated")
	case events.LifeLost:
		s.logger.Info().Int("scene", e.Scene).Int("lives", e.Lives).Msg("Life lost")
	case events.GameOver:
		s.logger.Info().Int("scene", e.Scene).Msg("Game over")
	case events.Victory:
		s.logger.Info().Msg("Run won")
	case events.ItemPickup:
		s.logger.Debug().Str("drop", e.Drop.String()).Bool("capped", e.Capped).Msg("Pickup")
	}
}

// Pause stops the run. Reports whether the state changed.
func (s *Sim) Pause() bool {
	p := systems.GetPause(s.ecs)
	if p.IsPaused {
		return false
	}
	p.IsPaused = true
	return true
}

// Resume continues a paused run. Reports whether the state changed.
func (s *Sim) Resume() bool {
	p := systems.GetPause(s.ecs)
	if !p.IsPaused {
		return false
	}
	p.IsPaused = false
	return true
}

func (s *Sim) Paused() bool {
	return systems.GetPause(s.ecs).IsPaused
}

// Restart throws the current run away and starts a new one with the same
// difficulty.
func (s *Sim) Restart() {
	s.reset()
}

// SetDifficulty changes the tier of a run that has not stepped yet.
func (s *Sim) SetDifficulty(d cfg.DifficultyID) error {
	if components.Run.Get(components.Run.MustFirst(s.world)).Stepped {
		return ErrRunStarted
	}
	s.opts.Difficulty = d
	components.Run.Get(components.Run.MustFirst(s.world)).Difficulty = d
	return nil
}

// Difficulty is the tier of the current run.
func (s *Sim) Difficulty() cfg.DifficultyID {
	return components.Run.Get(components.Run.MustFirst(s.world)).Difficulty
}

// State is the outcome state of the current run.
func (s *Sim) State() components.RunState {
	return components.Run.Get(components.Run.MustFirst(s.world)).State
}

// Seed is the seed the current run was built from.
func (s *Sim) Seed() uint64 {
	return s.seed
}

// World exposes the run's world for inspection between steps.
func (s *Sim) World() donburi.World {
	return s.world
}
