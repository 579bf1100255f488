package components

import "github.com/yohamta/donburi"

// IntentData is the player's input for the current frame, already reduced to
// a movement vector in [-1, 1] and two held buttons.
type IntentData struct {
	MoveX  float64
	MoveY  float64
	Firing bool
	Focus  bool
}

var Intent = donburi.NewComponentType[IntentData]()
