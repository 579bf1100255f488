package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state of the run
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
