package systems

import (
	"sort"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaySFX queues a sound for the end of the current frame.
func PlaySFX(w donburi.World, id cfg.SoundID, pan float64) {
	ScheduleSFX(w, id, pan, 0)
}

// ScheduleSFX queues a sound delay simulation seconds from now.
func ScheduleSFX(w donburi.World, id cfg.SoundID, pan, delay float64) {
	q := components.CueQueue.Get(components.CueQueue.MustFirst(w))
	q.Pending = append(q.Pending, components.Cue{
		At:    runData(w).Time + delay,
		Sound: id,
		Pan:   pan,
	})
}

// scheduleEchoes queues one cue per offset.
func scheduleEchoes(w donburi.World, id cfg.SoundID, offsets []float64) {
	for _, off := range offsets {
		ScheduleSFX(w, id, 0, off)
	}
}

// UpdateCues publishes every cue that has come due, earliest first.
func UpdateCues(ecs *ecs.ECS) {
	w := ecs.World
	q := components.CueQueue.Get(components.CueQueue.MustFirst(w))
	if len(q.Pending) == 0 {
		return
	}
	now := runData(w).Time

	sort.SliceStable(q.Pending, func(i, j int) bool {
		return q.Pending[i].At < q.Pending[j].At
	})

	n := 0
	for n < len(q.Pending) && q.Pending[n].At <= now {
		c := q.Pending[n]
		events.Publish(w, events.Event{Kind: events.Sound, Sound: c.Sound, Pan: c.Pan})
		n++
	}
	q.Pending = append(q.Pending[:0], q.Pending[n:]...)
}
