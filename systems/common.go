package systems

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/mathutil"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func fieldW() float64 { return cfg.Field.Width }
func fieldH() float64 { return cfg.Field.Height }

func runData(w donburi.World) *components.RunData {
	return components.Run.Get(components.Run.MustFirst(w))
}

func frameData(w donburi.World) *components.FrameData {
	return components.Frame.Get(components.Frame.MustFirst(w))
}

func rng(w donburi.World) *mathutil.RNG {
	return components.RNG.Get(components.RNG.MustFirst(w)).RNG
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// live snapshots the entries carrying tag that are not marked removed.
// Systems iterate the snapshot so they can spawn and remove freely.
func live(w donburi.World, tag donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		if !components.Body.Get(e).Removed {
			out = append(out, e)
		}
	})
	return out
}

// pan maps an x position to a stereo pan in [-1, 1].
func pan(x float64) float64 {
	return mathutil.Clamp(x/fieldW()*2-1, -1, 1)
}
