package systems

import (
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/automoto/airfighter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBossPhase advances the per-scene boss fight:
// None -> Warning -> Entering -> Active -> Defeated -> Cleared -> None or Won.
// Warning is entered by the spawner; Defeated by the last boss kill.
func UpdateBossPhase(ecs *ecs.ECS) {
	w := ecs.World
	run := runData(w)
	if run.State != components.RunPlaying {
		return
	}
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	dt := frameData(w).DtWorld

	switch fight.Phase {
	case components.PhaseWarning:
		fight.Timer -= dt
		if fight.Timer <= 0 {
			fight.Phase = components.PhaseEntering
			fight.Timer = cfg.Boss.EntryDuration
			spawnBosses(w, fight)
		}

	case components.PhaseEntering:
		fight.Timer -= dt
		if fight.Timer <= 0 {
			fight.Phase = components.PhaseActive
			fight.Timer = 0
			for _, b := range live(w, tags.Boss) {
				settleBoss(b)
			}
		}
		checkBossesCleared(w)

	case components.PhaseActive:
		checkBossesCleared(w)

	case components.PhaseDefeated:
		fight.Timer -= dt
		if fight.Timer <= 0 {
			fight.Phase = components.PhaseCleared
		}

	case components.PhaseCleared:
		advanceScene(w)
	}
}

// startBossWarning opens the warning phase: announce, cue and apply the
// warning slow-motion window.
func startBossWarning(w donburi.World) {
	run := runData(w)
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))

	fight.Phase = components.PhaseWarning
	fight.Timer = cfg.Boss.WarningDuration
	fight.WarnWindow = cfg.TimeScale.BossWarnWindow

	events.Publish(w, events.Event{
		Kind:  events.BossIncoming,
		Scene: run.Scene,
		Boss:  cfg.Stage(run.Scene).Boss,
	})
	scheduleEchoes(w, cfg.SoundBossWarn, cfg.Sound.BossWarnEchoes)
}

// spawnBosses creates the fight's boss instances. On tiers with a dual final
// boss the last scene splits into two variants with their own HP pools.
func spawnBosses(w donburi.World, fight *components.BossPhaseData) {
	run := runData(w)
	bossType := cfg.Stage(run.Scene).Boss
	hp := cfg.BossHP(run.Scene)

	var specs []factory.BossSpec
	if run.Scene == cfg.StageCount && cfg.Difficulty(run.Difficulty).DualFinalBoss {
		for i := range cfg.Boss.DualHPShare {
			specs = append(specs, factory.BossSpec{
				Type:    bossType,
				Variant: i + 1,
				HP:      hp * cfg.Boss.DualHPShare[i],
				Radius:  cfg.Boss.DualRadius[i],
				RestX:   fieldW() * cfg.Boss.DualX[i],
			})
		}
	} else {
		specs = append(specs, factory.BossSpec{
			Type:   bossType,
			HP:     hp,
			Radius: cfg.Boss.Types[bossType].Radius,
			RestX:  fieldW() / 2,
		})
	}

	fight.HPMax = 0
	for _, s := range specs {
		factory.CreateBoss(w, s)
		fight.HPMax += s.HP
	}
}

func settleBoss(e *donburi.Entry) {
	boss := components.Boss.Get(e)
	boss.Entering = false
	boss.Entry = nil
	body := components.Body.Get(e)
	body.Y = cfg.Boss.RestY
	syncProxy(e)
}

// checkBossesCleared enters Defeated once no boss instance is left alive.
func checkBossesCleared(w donburi.World) {
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	if fight.Phase != components.PhaseEntering && fight.Phase != components.PhaseActive {
		return
	}
	if len(live(w, tags.Boss)) > 0 {
		return
	}
	enterDefeated(w, fight)
}

// enterDefeated clears the field and starts the level-cleared hold.
func enterDefeated(w donburi.World, fight *components.BossPhaseData) {
	run := runData(w)

	fight.Phase = components.PhaseDefeated
	fight.Timer = cfg.Boss.DefeatedHold
	fight.WarnWindow = 0

	for _, tag := range []donburi.IComponentType{tags.Enemy, tags.EnemyShot, tags.PlayerShot, tags.Drop} {
		for _, e := range live(w, tag) {
			markRemoved(e)
		}
	}

	events.Publish(w, events.Event{
		Kind:  events.BossDefeated,
		Scene: run.Scene,
		Boss:  cfg.Stage(run.Scene).Boss,
	})
	events.Publish(w, events.Event{Kind: events.LevelCleared, Scene: run.Scene})
	scheduleEchoes(w, cfg.SoundBossDown, cfg.Sound.BossDownEchoes)
}

// advanceScene moves to the next scene, or wins the run after the last one.
func advanceScene(w donburi.World) {
	run := runData(w)
	fight := components.BossFight.Get(components.BossFight.MustFirst(w))
	fight.Phase = components.PhaseNone
	fight.Timer = 0
	fight.HPMax = 0

	if run.Scene >= cfg.StageCount {
		run.State = components.RunWon
		events.Publish(w, events.Event{Kind: events.Victory, Scene: run.Scene})
		return
	}

	run.Scene++
	components.Spawner.SetValue(components.Spawner.MustFirst(w), components.SpawnerData{})

	if p, ok := playerEntry(w); ok {
		player := components.Player.Get(p)
		if player.Invuln < cfg.Player.SceneGrace {
			player.Invuln = cfg.Player.SceneGrace
		}
	}

	events.Publish(w, events.Event{Kind: events.SceneEntered, Scene: run.Scene})
}
