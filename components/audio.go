package components

import (
	cfg "github.com/automoto/airfighter/config"
	"github.com/yohamta/donburi"
)

// Cue is a sound scheduled for a point in simulation time.
type Cue struct {
	At    float64
	Sound cfg.SoundID
	Pan   float64 // -1 left .. 1 right
}

// CueQueueData holds pending cues in insertion order (singleton component).
// Cues with equal At keep the order they were queued in.
type CueQueueData struct {
	Pending []Cue
}

var CueQueue = donburi.NewComponentType[CueQueueData]()
