package systems

import (
	"testing"

	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/automoto/airfighter/systems/factory"
	"github.com/automoto/airfighter/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func runDeath(w donburi.World, p *donburi.Entry) {
	for i := 0; i < 1000 && p.HasComponent(components.Death); i++ {
		if runData(w).State != components.RunPlaying {
			return
		}
		step(w, UpdateDeaths)
	}
}

func TestLethalHitRespawnsWithStartingLoadout(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	rec := record(w)

	player := components.Player.Get(p)
	player.Invuln = 0
	player.Weapon = cfg.WeaponLaser
	player.WeaponLevel = 3
	player.FireRate = 2
	components.Health.Get(p).Current = 1

	TakeDamage(w, p, 5)

	require.True(t, p.HasComponent(components.Death))
	assert.True(t, player.Hidden)
	assert.Zero(t, components.Health.Get(p).Current)
	assert.Equal(t, cfg.Player.StartingLives-1, components.Lives.Get(p).Lives)
	assert.Equal(t, 1, rec.count(events.LifeLost))

	// a dying ship ignores input
	before := *components.Body.Get(p)
	components.Intent.SetValue(components.Intent.MustFirst(w), components.IntentData{MoveX: 1, MoveY: -1, Firing: true})
	step(w, UpdatePlayer)
	step(w, UpdateWeapons)
	assert.Equal(t, before.X, components.Body.Get(p).X)
	assert.Equal(t, before.Y, components.Body.Get(p).Y)
	assert.Zero(t, countLive(w, tags.PlayerShot))

	runDeath(w, p)

	require.False(t, p.HasComponent(components.Death))
	assert.False(t, player.Hidden)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)
	assert.Equal(t, cfg.WeaponBasic, player.Weapon)
	assert.Equal(t, 1, player.WeaponLevel)
	assert.Zero(t, player.FireRate)
	assert.Equal(t, cfg.Player.RespawnInvuln, player.Invuln)
	assert.Equal(t, components.RunPlaying, runData(w).State)
}

func TestDeathTakesRealTime(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	components.Player.Get(p).Invuln = 0
	TakeDamage(w, p, 100)

	f := frameData(w)
	f.DtWorld = 0
	frames := 0
	for p.HasComponent(components.Death) {
		step(w, UpdateDeaths)
		frames++
	}
	assert.InDelta(t, cfg.Player.DeathDuration/testDt, float64(frames), 1.5)
}

func TestHitsWhileInvulnerableAreIgnored(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	components.Player.Get(p).Invuln = 0.5

	TakeDamage(w, p, 5)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)

	components.Player.Get(p).Invuln = 0
	TakeDamage(w, p, 3)
	assert.Equal(t, cfg.Player.Health-3, components.Health.Get(p).Current)
	assert.Equal(t, cfg.Player.HitInvuln, components.Player.Get(p).Invuln)

	TakeDamage(w, p, 3)
	assert.Equal(t, cfg.Player.Health-3, components.Health.Get(p).Current)
}

func TestDeathClearsEnemyFireAndRaisesLuck(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	components.Player.Get(p).Invuln = 0

	factory.CreateEnemyShot(w, 100, 100, 0, 50, 5, 4)
	factory.CreateBomb(w, 200, 100, 80)
	en := placeEnemy(w, cfg.EnemyDrone, 300, 100, 20)
	cd := components.Enemy.Get(en).ShootCD

	TakeDamage(w, p, 100)

	assert.Zero(t, countLive(w, tags.EnemyShot))
	assert.InDelta(t, cd+cfg.Enemy.DeathFireDelay, components.Enemy.Get(en).ShootCD, 1e-9)

	run := runData(w)
	assert.InDelta(t, cfg.Luck.Base+cfg.Luck.LossGain, run.Luck, 1e-9)
	assert.InDelta(t, cfg.Luck.BoostLossGain, run.DropBoost, 1e-9)
}

func TestLastLifeEndsRun(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	rec := record(w)
	components.Player.Get(p).Invuln = 0
	components.Lives.Get(p).Lives = 1

	TakeDamage(w, p, 100)
	runDeath(w, p)

	assert.Equal(t, components.RunLost, runData(w).State)
	assert.Zero(t, components.Lives.Get(p).Lives)
	assert.Equal(t, 1, rec.count(events.GameOver))
}

func TestLuckDecaysTowardBase(t *testing.T) {
	w, _ := newTestWorld(t, cfg.Normal)
	run := runData(w)
	run.Luck = cfg.Luck.Base + 0.001
	run.DropBoost = 0.001

	setDt(w, 1)
	step(w, UpdateDecay)

	assert.Equal(t, cfg.Luck.Base, run.Luck)
	assert.Zero(t, run.DropBoost)
}

func TestHitsShakeTheField(t *testing.T) {
	w, p := newTestWorld(t, cfg.Normal)
	run := runData(w)
	player := components.Player.Get(p)

	player.Invuln = 0
	TakeDamage(w, p, 1)
	assert.InDelta(t, cfg.Shake.Hit, run.Shake, 1e-9)

	for range 20 {
		player.Invuln = 0
		TakeDamage(w, p, 0.1)
	}
	assert.Equal(t, cfg.Shake.Max, run.Shake)

	player.Invuln = 0
	TakeDamage(w, p, 1000)
	assert.Equal(t, cfg.Shake.Death, run.Shake)

	setDt(w, 0.1)
	step(w, UpdateDecay)
	assert.InDelta(t, cfg.Shake.Death-cfg.Shake.Decay*0.1, run.Shake, 1e-9)

	setDt(w, 1)
	step(w, UpdateDecay)
	assert.Zero(t, run.Shake)
}
