package systems

import (
	"math"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/mathutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the ship from the frame's intent and runs down its
// invulnerability and weapon timers. A dying player ignores input.
func UpdatePlayer(ecs *ecs.ECS) {
	w := ecs.World
	e, ok := playerEntry(w)
	if !ok {
		return
	}
	player := components.Player.Get(e)
	f := frameData(w)

	player.Invuln = math.Max(0, player.Invuln-f.DtWorld)
	player.Heat = math.Max(0, player.Heat-f.DtWorld)
	player.MissileCD = math.Max(0, player.MissileCD-f.DtWorld)

	if player.Hidden {
		return
	}

	intent := components.Intent.Get(components.Intent.MustFirst(w))
	mx, my := intent.MoveX, intent.MoveY
	if mag := math.Hypot(mx, my); mag > 1 {
		mx /= mag
		my /= mag
	}

	// Focus slows the world but the ship keeps a fixed share of real speed.
	dt := f.DtWorld
	if components.Focus.Get(components.Focus.MustFirst(w)).Active {
		dt = f.DtWorld / cfg.TimeScale.Focus * cfg.TimeScale.FocusMove
	}

	body := components.Body.Get(e)
	body.X += mx * cfg.Player.Speed * dt
	body.Y += my * cfg.Player.Speed * dt
	body.X = mathutil.Clamp(body.X, cfg.Player.EdgeInsetX, fieldW()-cfg.Player.EdgeInsetX)
	body.Y = mathutil.Clamp(body.Y, cfg.Player.EdgeInsetTop, fieldH()-cfg.Player.EdgeInsetBottom)
	syncProxy(e)
}

// resetPlayerPosition puts the ship back at its spawn point.
func resetPlayerPosition(e *donburi.Entry) {
	body := components.Body.Get(e)
	body.X = fieldW() * cfg.Player.StartX
	body.Y = fieldH() * cfg.Player.StartY
	syncProxy(e)
}
