package systems

import (
	"github.com/automoto/airfighter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCleanup compacts the world: every entity marked removed this frame
// is destroyed.
func UpdateCleanup(ecs *ecs.ECS) {
	w := ecs.World
	var dead []donburi.Entity
	components.Body.Each(w, func(e *donburi.Entry) {
		if components.Body.Get(e).Removed {
			dead = append(dead, e.Entity())
		}
	})
	for _, ent := range dead {
		w.Remove(ent)
	}
}
