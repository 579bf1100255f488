package factory

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision field on the run entry. It covers the
// screen plus CollisionMargin on every side; field coordinates are world
// coordinates shifted by the margin.
func CreateSpace(run *donburi.Entry) *resolv.Space {
	m := cfg.Field.CollisionMargin
	width := int(cfg.Field.Width + 2*m)
	height := int(cfg.Field.Height + 2*m)
	cell := cfg.Field.CollisionCell

	space := resolv.NewSpace(width, height, cell, cell)
	components.Space.SetValue(run, components.SpaceData{Space: space, Margin: m})
	return space
}

// attachProxy adds a bounding box for e's hit circle to the collision field.
func attachProxy(w donburi.World, e *donburi.Entry, tag string) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	sp := components.Space.Get(spaceEntry)
	body := components.Body.Get(e)

	d := body.Radius * 2
	obj := resolv.NewObject(body.X-body.Radius+sp.Margin, body.Y-body.Radius+sp.Margin, d, d, tag)
	obj.Data = e
	body.Proxy = obj
	sp.Add(obj)
}
