package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/mathutil"
	"github.com/yohamta/donburi"
)

// RunState is the outcome state of a run.
type RunState int

const (
	RunPlaying RunState = iota
	RunWon
	RunLost
)

func (s RunState) String() string {
	switch s {
	case RunPlaying:
		return "playing"
	case RunWon:
		return "won"
	case RunLost:
		return "lost"
	}
	return "unknown"
}

// RunData is the per-run singleton. Difficulty is fixed once Stepped is set.
type RunData struct {
	ID         string
	Difficulty cfg.DifficultyID
	Scene      int
	State      RunState
	Stepped    bool

	Time  float64 // simulation (world) seconds
	Real  float64 // real seconds while unpaused
	Frame int

	Luck      float64
	DropBoost float64
	Shake     float64 // real seconds of screen shake left
}

var Run = donburi.NewComponentType[RunData]()

// FrameData carries the clamped real dt and the composed world dt of the
// frame being simulated.
type FrameData struct {
	Dt      float64
	DtWorld float64
	Scale   float64 // DtWorld / Dt
	Live    bool    // gameplay systems run this frame
}

var Frame = donburi.NewComponentType[FrameData]()

// FocusData is the time-dilation energy pool.
type FocusData struct {
	Energy   float64
	Cooldown float64
	Active   bool
}

var Focus = donburi.NewComponentType[FocusData]()

// SpawnerData drives the wave phase of the current scene.
type SpawnerData struct {
	Acc       float64 // fractional enemies owed
	WaveTime  float64 // world seconds since the scene started
	Triggered bool    // boss warning already started this scene
	AddsTimer float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// BossPhase is the state of the per-scene boss fight.
type BossPhase int

const (
	PhaseNone BossPhase = iota
	PhaseWarning
	PhaseEntering
	PhaseActive
	PhaseDefeated
	PhaseCleared
)

func (p BossPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseWarning:
		return "warning"
	case PhaseEntering:
		return "entering"
	case PhaseActive:
		return "active"
	case PhaseDefeated:
		return "defeated"
	case PhaseCleared:
		return "cleared"
	}
	return "unknown"
}

type BossPhaseData struct {
	Phase      BossPhase
	Timer      float64 // world seconds left in Warning, Entering or Defeated
	WarnWindow float64 // real seconds of warning slow-motion left
	HPMax      float64 // summed over every instance of this fight
}

var BossFight = donburi.NewComponentType[BossPhaseData]()

// RNGData is the run's seeded random source.
type RNGData struct {
	*mathutil.RNG
}

var RNG = donburi.NewComponentType[RNGData]()
