package locale

import (
	"testing"

	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, TC, Parse("TC"))
	assert.Equal(t, TC, Parse(" tc"))
	assert.Equal(t, EN, Parse("EN"))
	assert.Equal(t, EN, Parse("fr"))
	assert.Equal(t, EN, Parse(""))
	assert.Equal(t, TC, EN.Next())
	assert.Equal(t, EN, TC.Next())
}

func TestNamesCoverEveryID(t *testing.T) {
	for l := EN; l < LangCount; l++ {
		s := For(l)
		for id := cfg.WeaponBasic; id < cfg.WeaponCount; id++ {
			assert.NotEmpty(t, s.WeaponName(id), "%s %s", l, id)
		}
		for d := cfg.Beginner; d < cfg.DifficultyCount; d++ {
			assert.NotEmpty(t, s.TierName(d))
		}
		for scene := 1; scene <= cfg.StageCount; scene++ {
			assert.NotEmpty(t, s.SceneName(scene))
		}
	}
	assert.Equal(t, "Void Aurora", For(EN).SceneName(9))
	assert.Equal(t, "天際漂流", For(TC).SceneName(0))
	assert.Equal(t, "導彈", For(TC).WeaponName(cfg.WeaponMissiles))
}

func TestToasts(t *testing.T) {
	en := For(EN)
	tests := []struct {
		name string
		ev   events.Event
		luck float64
		want string
	}{
		{"first scene", events.Event{Kind: events.SceneEntered, Scene: 1}, 0, "Enter Scene 1"},
		{"later scene", events.Event{Kind: events.SceneEntered, Scene: 2}, 0, "Scene 2 - Ion Stratos"},
		{"boss", events.Event{Kind: events.BossIncoming, Scene: 3}, 0, "Boss incoming - Void Aurora"},
		{"boss down", events.Event{Kind: events.BossDefeated, Scene: 2}, 0, "Boss defeated - Scene 2"},
		{"life lost", events.Event{Kind: events.LifeLost}, 1.45, "Life lost! Power reset. Luck x1.45"},
		{"potion", events.Event{Kind: events.ItemPickup, Drop: cfg.DropPotion}, 0, "Potion: HP fully healed"},
		{"weapon", events.Event{Kind: events.ItemPickup, Drop: cfg.DropWeapon, Weapon: cfg.WeaponLaser}, 0, "Weapon: Laser"},
		{"weapon capped", events.Event{Kind: events.ItemPickup, Drop: cfg.DropWeapon, Capped: true}, 0, "+2 HP"},
		{"fire rate", events.Event{Kind: events.ItemPickup, Drop: cfg.DropFireRate, Level: 1}, 0, "Fire Rate: II"},
		{"fire capped", events.Event{Kind: events.ItemPickup, Drop: cfg.DropFireRate, Capped: true}, 0, "+1 HP"},
		{"life up", events.Event{Kind: events.ItemPickup, Drop: cfg.DropLife}, 0, "RARE: +1 Life!"},
		{"life capped", events.Event{Kind: events.ItemPickup, Drop: cfg.DropLife, Capped: true}, 0, "Life is max"},
		{"game over", events.Event{Kind: events.GameOver}, 0, "Game Over"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := en.Toast(tt.ev, tt.luck)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSilentEvents(t *testing.T) {
	for _, k := range []events.Kind{events.Sound, events.EnemyKilled, events.LevelCleared} {
		_, ok := For(TC).Toast(events.Event{Kind: k}, 1)
		assert.False(t, ok, k.String())
	}
}

func TestSFXToast(t *testing.T) {
	assert.Equal(t, "SFX enabled", For(EN).SFXToast(true))
	assert.Equal(t, "音效已靜音", For(TC).SFXToast(false))
}
