package systems

import (
	"github.com/automoto/airfighter/components"
	"github.com/automoto/airfighter/mathutil"
	"github.com/yohamta/donburi"
)

// syncProxy moves e's broadphase box to its current position.
func syncProxy(e *donburi.Entry) {
	body := components.Body.Get(e)
	if body.Proxy == nil {
		return
	}
	sp := components.Space.Get(components.Space.MustFirst(e.World))
	body.Proxy.X = body.X - body.Radius + sp.Margin
	body.Proxy.Y = body.Y - body.Radius + sp.Margin
	body.Proxy.Update()
}

// markRemoved flags e for compaction and takes it out of the collision field
// so no later test in the frame can see it.
func markRemoved(e *donburi.Entry) {
	body := components.Body.Get(e)
	if body.Removed {
		return
	}
	body.Removed = true
	if body.Proxy != nil {
		sp := components.Space.Get(components.Space.MustFirst(e.World))
		sp.Remove(body.Proxy)
		body.Proxy.Data = nil
		body.Proxy = nil
	}
}

// candidates returns the live entries whose broadphase boxes share a cell
// with e's, restricted to the given resolv tags and in tag order.
func candidates(e *donburi.Entry, resolvTag string) []*donburi.Entry {
	body := components.Body.Get(e)
	if body.Proxy == nil {
		return nil
	}
	check := body.Proxy.Check(0, 0, resolvTag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, obj := range check.ObjectsByTags(resolvTag) {
		other, ok := obj.Data.(*donburi.Entry)
		if !ok || other == nil || !components.Alive(other) {
			continue
		}
		out = append(out, other)
	}
	return out
}

// overlaps is the circle narrowphase. inset shrinks b's radius; a negative
// inset grows it.
func overlaps(a, b *donburi.Entry, inset float64) bool {
	ab := components.Body.Get(a)
	bb := components.Body.Get(b)
	return mathutil.CircleHit(ab.X, ab.Y, ab.Radius, bb.X, bb.Y, bb.Radius-inset)
}

// outside reports whether a body has left the screen by more than the given
// margins.
func outside(body *components.BodyData, top, bottom, side float64) bool {
	return body.Y < -top || body.Y > fieldH()+bottom || body.X < -side || body.X > fieldW()+side
}
