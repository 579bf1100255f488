package components

import "github.com/yohamta/donburi"

// LivesData counts the player's remaining lives. A life is spent when the
// death sequence starts, so zero while dying means the run ends.
type LivesData struct {
	Lives    int
	MaxLives int
}

// Gain adds a life unless already at the cap. Reports whether it did.
func (l *LivesData) Gain() bool {
	if l.Lives >= l.MaxLives {
		return false
	}
	l.Lives++
	return true
}

// Spend removes a life, never going below zero.
func (l *LivesData) Spend() {
	l.Lives = max(0, l.Lives-1)
}

func (l *LivesData) Out() bool {
	return l.Lives <= 0
}

var Lives = donburi.NewComponentType[LivesData]()
