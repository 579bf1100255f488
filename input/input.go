// Package input polls the keyboard and gamepads and reduces them to actions
// and per-frame simulation intents.
package input

import (
	"math"
	"strings"

	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// Method is the device family last used, for on-screen prompts.
type Method int

const (
	Keyboard Method = iota
	Xbox
	PlayStation
)

// ActionState is the per-frame state of one action.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Sample is one frame of raw device input.
type Sample struct {
	Pressed [cfg.ActionCount]bool
	StickX  float64
	StickY  float64
	Method  Method
	Active  bool // any device was touched
}

// State keeps the current and previous frame so edges can be derived.
type State struct {
	current  [cfg.ActionCount]bool
	previous [cfg.ActionCount]bool
	stickX   float64
	stickY   float64
	method   Method
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]Method)

// Update polls the devices and advances the state. Must run once per tick
// before anything reads actions.
func (s *State) Update() {
	s.Apply(Poll())
}

// Apply advances the state with an already polled sample.
func (s *State) Apply(smp Sample) {
	s.previous = s.current
	s.current = smp.Pressed
	s.stickX, s.stickY = smp.StickX, smp.StickY

	dz := cfg.Input.AnalogDeadzone
	if s.stickX < -dz {
		s.current[cfg.ActionMenuLeft] = true
	}
	if s.stickX > dz {
		s.current[cfg.ActionMenuRight] = true
	}
	if s.stickY < -dz {
		s.current[cfg.ActionMenuUp] = true
	}
	if s.stickY > dz {
		s.current[cfg.ActionMenuDown] = true
	}
	if smp.Active {
		s.method = smp.Method
	}
}

// Action returns the full ActionState for an action ID.
func (s *State) Action(id cfg.ActionID) ActionState {
	curr := s.current[id]
	prev := s.previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func (s *State) JustPressed(id cfg.ActionID) bool {
	return s.Action(id).JustPressed
}

func (s *State) Method() Method {
	return s.method
}

// Intents reduces the held actions to a movement vector and two buttons.
// The stick wins over the d-pad and keys once it leaves the deadzone and is
// rescaled so the deadzone edge maps to zero.
func (s *State) Intents() sim.Intents {
	in := sim.Intents{
		Firing: s.current[cfg.ActionFire],
		Focus:  s.current[cfg.ActionFocus],
	}
	if s.current[cfg.ActionMoveLeft] {
		in.MoveX--
	}
	if s.current[cfg.ActionMoveRight] {
		in.MoveX++
	}
	if s.current[cfg.ActionMoveUp] {
		in.MoveY--
	}
	if s.current[cfg.ActionMoveDown] {
		in.MoveY++
	}

	dz := cfg.Input.AnalogDeadzone
	if mag := math.Hypot(s.stickX, s.stickY); mag > dz {
		k := math.Min((mag-dz)/(1-dz), 1) / mag
		in.MoveX, in.MoveY = s.stickX*k, s.stickY*k
	}
	return in
}

// Poll reads every binding from the keyboard and all standard-layout
// gamepads, plus the strongest left stick.
func Poll() Sample {
	var smp Sample
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				smp.Pressed[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					smp.Pressed[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	best := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if mag := math.Hypot(h, v); mag > best {
			best = mag
			smp.StickX, smp.StickY = h, v
			gamepadUsed = true
			activeGamepadID = gpID
		}
	}

	// Gamepad takes priority if both were used
	switch {
	case gamepadUsed:
		smp.Method = controllerType(activeGamepadID)
		smp.Active = true
	case keyboardUsed:
		smp.Method = Keyboard
		smp.Active = true
	}
	return smp
}

// controllerType returns cached controller type, detecting on first access
func controllerType(gpID ebiten.GamepadID) Method {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}
	method := methodFromName(ebiten.GamepadName(gpID))
	controllerTypeCache[gpID] = method
	return method
}

func methodFromName(name string) Method {
	name = strings.ToLower(name)
	for _, tag := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, tag) {
			return PlayStation
		}
	}
	// Default gamepad to Xbox-style
	return Xbox
}
