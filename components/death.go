package components

import "github.com/yohamta/donburi"

// DeathData marks the player while its death sequence runs. Timer counts
// down in real seconds; when it reaches 0 the player respawns or the run is
// lost.
type DeathData struct {
	Timer float64
	Slow  float64 // real seconds of death slow-motion left
}

var Death = donburi.NewComponentType[DeathData]()
