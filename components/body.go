package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyData is the position, velocity and hit circle shared by every
// simulated entity. Removed marks an entity for compaction at the end of the
// frame; every later pass skips it.
type BodyData struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Removed bool

	// Broadphase proxy, the circle's bounding box in field coordinates
	Proxy *resolv.Object
}

var Body = donburi.NewComponentType[BodyData]()

// SpaceData is the collision field singleton.
type SpaceData struct {
	*resolv.Space
	Margin float64 // world origin offset inside the space
}

var Space = donburi.NewComponentType[SpaceData]()

// Alive reports whether the entry is valid and not marked for removal.
func Alive(e *donburi.Entry) bool {
	return e != nil && e.Valid() && !Body.Get(e).Removed
}
