// Package locale holds the player-facing strings in English and Traditional
// Chinese and turns simulation events into toast messages.
package locale

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/events"
)

type Lang int

const (
	EN Lang = iota
	TC
	LangCount // Must be last
)

func (l Lang) String() string {
	if l == TC {
		return "TC"
	}
	return "EN"
}

// Parse maps a stored language code onto a Lang. Anything but TC is English.
func Parse(s string) Lang {
	if strings.EqualFold(strings.TrimSpace(s), "TC") {
		return TC
	}
	return EN
}

// Next cycles to the other language.
func (l Lang) Next() Lang {
	return (l + 1) % LangCount
}

// HUDLabels name the HUD fields.
type HUDLabels struct {
	Scene  string
	Lives  string
	HP     string
	Weapon string
	Fire   string
	Luck   string
	SFX    string
	Focus  string
	Boss   string
}

// Strings is one language's text table.
type Strings struct {
	Title    string
	Subtitle string
	HUD      HUDLabels

	Start      string
	Resume     string
	Restart    string
	Difficulty string
	Language   string
	SFXOn      string
	SFXOff     string
	On         string
	Off        string
	Tip        string
	Controls   []string

	PausedTitle string
	PausedText  string
	GameOver    string
	Victory     string
	PressRetry  string

	Scenes  [cfg.StageCount]string
	Weapons [cfg.WeaponCount]string
	Tiers   [cfg.DifficultyCount]string

	enterScene   func(n int) string
	sceneNow     func(n int, name string) string
	bossIncoming func(name string) string
	bossDefeat   func(n int) string
	potion       string
	weapon       func(name string) string
	maxWeapon    string
	fire         func(lvl string) string
	fireMax      string
	lifeUp       string
	lifeMax      string
	lifeLost     func(luck string) string
	toastSFXOn   string
	toastSFXOff  string
}

var tables = [LangCount]Strings{
	EN: {
		Title:    "AIR FIGHTER",
		Subtitle: "3 scenes • upgrades • bosses",
		HUD: HUDLabels{
			Scene: "Scene", Lives: "Lives", HP: "HP", Weapon: "Weapon",
			Fire: "Fire", Luck: "Luck", SFX: "SFX", Focus: "Focus", Boss: "Boss",
		},
		Start:      "Start",
		Resume:     "Resume",
		Restart:    "Restart",
		Difficulty: "Difficulty",
		Language:   "Language",
		SFXOn:      "SFX: ON",
		SFXOff:     "SFX: OFF",
		On:         "ON",
		Off:        "OFF",
		Tip:        "Tip: Focus slows time heavily for precision dodging.",
		Controls: []string{
			"Move: WASD / Arrow Keys",
			"Shoot: Space (auto-fire)   Focus: Shift",
			"Pause: P / Esc",
			"Lose a life: weapon and fire rate reset to base.",
		},
		PausedTitle: "PAUSED",
		PausedText:  "Resume: P / Esc   Restart: R",
		GameOver:    "Game Over",
		Victory:     "All scenes cleared!",
		PressRetry:  "Press Enter to play again",
		Scenes:      [cfg.StageCount]string{"Skyline Drift", "Ion Stratos", "Void Aurora"},
		Weapons:     [cfg.WeaponCount]string{"Basic", "Spread", "Laser", "Missiles", "Piercer", "Shock"},
		Tiers:       [cfg.DifficultyCount]string{"Beginner", "Normal", "Expert"},

		enterScene:   func(n int) string { return fmt.Sprintf("Enter Scene %d", n) },
		sceneNow:     func(n int, name string) string { return fmt.Sprintf("Scene %d - %s", n, name) },
		bossIncoming: func(name string) string { return "Boss incoming - " + name },
		bossDefeat:   func(n int) string { return fmt.Sprintf("Boss defeated - Scene %d", n) },
		potion:       "Potion: HP fully healed",
		weapon:       func(name string) string { return "Weapon: " + name },
		maxWeapon:    "+2 HP",
		fire:         func(lvl string) string { return "Fire Rate: " + lvl },
		fireMax:      "+1 HP",
		lifeUp:       "RARE: +1 Life!",
		lifeMax:      "Life is max",
		lifeLost:     func(luck string) string { return "Life lost! Power reset. Luck x" + luck },
		toastSFXOn:   "SFX enabled",
		toastSFXOff:  "SFX muted",
	},
	TC: {
		Title:    "咻咻戰鬥機",
		Subtitle: "3 幕 • 升級 • 首領",
		HUD: HUDLabels{
			Scene: "場景", Lives: "生命", HP: "血量", Weapon: "武器",
			Fire: "射速", Luck: "幸運", SFX: "音效", Focus: "精準", Boss: "首領",
		},
		Start:      "開始",
		Resume:     "繼續",
		Restart:    "重來",
		Difficulty: "難度",
		Language:   "語言",
		SFXOn:      "音效：開",
		SFXOff:     "音效：關",
		On:         "開",
		Off:        "關",
		Tip:        "提示：精準模式會大幅減速，方便閃躲。",
		Controls: []string{
			"移動：WASD / 方向鍵",
			"射擊：Space（自動連射）  精準：Shift",
			"暫停：P / Esc",
			"失去一條命：武器與射速重置為初始。",
		},
		PausedTitle: "已暫停",
		PausedText:  "繼續：P / Esc   重來：R",
		GameOver:    "遊戲結束",
		Victory:     "全部場景通關！",
		PressRetry:  "按 Enter 再玩一次",
		Scenes:      [cfg.StageCount]string{"天際漂流", "離子平流層", "虛空極光"},
		Weapons:     [cfg.WeaponCount]string{"基礎", "散射", "雷射", "導彈", "貫穿", "電擊"},
		Tiers:       [cfg.DifficultyCount]string{"新手", "普通", "專家"},

		enterScene:   func(n int) string { return fmt.Sprintf("進入第 %d 幕", n) },
		sceneNow:     func(n int, name string) string { return fmt.Sprintf("第 %d 幕 - %s", n, name) },
		bossIncoming: func(name string) string { return "首領出現 - " + name },
		bossDefeat:   func(n int) string { return fmt.Sprintf("首領擊破 - 第 %d 幕", n) },
		potion:       "藥水：血量回滿",
		weapon:       func(name string) string { return "武器：" + name },
		maxWeapon:    "血量 +2",
		fire:         func(lvl string) string { return "射速：" + lvl },
		fireMax:      "血量 +1",
		lifeUp:       "稀有：生命 +1！",
		lifeMax:      "生命已達上限",
		lifeLost:     func(luck string) string { return "失去一命！能力重置。幸運 x" + luck },
		toastSFXOn:   "音效已開啟",
		toastSFXOff:  "音效已靜音",
	},
}

// For returns the text table of l.
func For(l Lang) *Strings {
	if l < 0 || l >= LangCount {
		l = EN
	}
	return &tables[l]
}

// SceneName is the localized name of a 1-based scene, clamped to the last.
func (s *Strings) SceneName(scene int) string {
	i := min(max(scene, 1), len(s.Scenes)) - 1
	return s.Scenes[i]
}

func (s *Strings) WeaponName(id cfg.WeaponID) string {
	if id < 0 || id >= cfg.WeaponCount {
		return "?"
	}
	return s.Weapons[id]
}

func (s *Strings) TierName(d cfg.DifficultyID) string {
	if d < 0 || d >= cfg.DifficultyCount {
		return "?"
	}
	return s.Tiers[d]
}

// SFXToast is shown when sound is toggled.
func (s *Strings) SFXToast(on bool) string {
	if on {
		return s.toastSFXOn
	}
	return s.toastSFXOff
}

// Toast renders the message for a simulation event. luck is the run's luck
// after the event, used by the life-lost message. Events with no message
// report false.
func (s *Strings) Toast(e events.Event, luck float64) (string, bool) {
	switch e.Kind {
	case events.SceneEntered:
		if e.Scene <= 1 {
			return s.enterScene(1), true
		}
		return s.sceneNow(e.Scene, s.SceneName(e.Scene)), true
	case events.BossIncoming:
		return s.bossIncoming(s.SceneName(e.Scene)), true
	case events.BossDefeated:
		return s.bossDefeat(e.Scene), true
	case events.LifeLost:
		return s.lifeLost(fmt.Sprintf("%.2f", luck)), true
	case events.GameOver:
		return s.GameOver, true
	case events.Victory:
		return s.Victory, true
	case events.ItemPickup:
		return s.pickup(e), true
	}
	return "", false
}

func (s *Strings) pickup(e events.Event) string {
	switch e.Drop {
	case cfg.DropWeapon:
		if e.Capped {
			return s.maxWeapon
		}
		return s.weapon(s.WeaponName(e.Weapon))
	case cfg.DropFireRate:
		if e.Capped {
			return s.fireMax
		}
		lvl := cfg.FireRateLabel[min(max(e.Level, 0), len(cfg.FireRateLabel)-1)]
		return s.fire(lvl)
	case cfg.DropLife:
		if e.Capped {
			return s.lifeMax
		}
		return s.lifeUp
	}
	return s.potion
}
