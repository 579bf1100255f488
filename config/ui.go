package config

import "image/color"

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig covers both end screens, lost and won.
type GameOverConfig struct {
	OverlayColor color.RGBA
	LostColor    color.RGBA
	WonColor     color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
}

// HUDConfig lays out the strip above the field and the bars inside it.
type HUDConfig struct {
	Height       float64
	Padding      float64
	LineHeight   float64
	BarHeight    float64
	BarWidth     float64
	PanelColor   color.RGBA
	TextColor    color.RGBA
	DimColor     color.RGBA
	BossBarColor color.RGBA
	FocusColor   color.RGBA
	FocusLow     color.RGBA
	BarBack      color.RGBA

	// Focus bar turns to FocusLow below this share of the pool
	FocusLowShare float64
}

// ToastConfig controls the transient message banner.
type ToastConfig struct {
	Duration  float64 // seconds
	Y         float64
	BoxColor  color.RGBA
	TextColor color.RGBA
	Padding   float64
	MaxQueued int
}

// PaletteConfig colors the field. Per-kind slices are indexed by the
// matching config enum.
type PaletteConfig struct {
	Sky          color.RGBA
	SkyBands     [StageCount]color.RGBA
	Player       color.RGBA
	PlayerInvuln color.RGBA
	FocusRing    color.RGBA
	Enemies      [EnemyKindCount]color.RGBA
	Bosses       [BossTypeCount]color.RGBA
	Shots        map[ShotKind]color.RGBA
	EnemyShot    color.RGBA
	Bomb         color.RGBA
	Drops        [DropKindCount]color.RGBA
	AimLine      color.RGBA
	Outline      color.RGBA
}

var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var Toast ToastConfig
var Palette PaletteConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink          = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Slate        = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	Blue         = color.RGBA{R: 47, G: 91, B: 255, A: 255}
	Cyan         = color.RGBA{R: 34, G: 211, B: 238, A: 255}
	Red          = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	Amber        = color.RGBA{R: 245, G: 158, B: 11, A: 255}
	Green        = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Violet       = color.RGBA{R: 139, G: 92, B: 246, A: 255}
	Pink         = color.RGBA{R: 236, G: 72, B: 153, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	WhiteOverlay = color.RGBA{R: 255, G: 255, B: 255, A: 210}
)

func init() {
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Amber,
		MenuItemHeight:    30,
		MenuItemGap:       14,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 224, G: 236, B: 255, A: 255},
		TitleColor:        Blue,
		TextColorNormal:   Ink,
		TextColorSelected: Amber,
		TitleY:            150,
		MenuStartY:        250,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		LostColor:    Red,
		WonColor:     Cyan,
		TextColor:    White,
		TitleY:       300,
		MessageY:     350,
		HintY:        420,
	}

	HUD = HUDConfig{
		Height:        48,
		Padding:       8,
		LineHeight:    18,
		BarHeight:     6,
		BarWidth:      120,
		PanelColor:    WhiteOverlay,
		TextColor:     Ink,
		DimColor:      Slate,
		BossBarColor:  Red,
		FocusColor:    Cyan,
		FocusLow:      Red,
		BarBack:       color.RGBA{R: 0, G: 0, B: 0, A: 30},
		FocusLowShare: 0.35,
	}

	Toast = ToastConfig{
		Duration:  1.5,
		Y:         90,
		BoxColor:  color.RGBA{R: 15, G: 23, B: 42, A: 200},
		TextColor: White,
		Padding:   8,
		MaxQueued: 4,
	}

	Palette = PaletteConfig{
		Sky: color.RGBA{R: 232, G: 242, B: 255, A: 255},
		SkyBands: [StageCount]color.RGBA{
			{R: 214, G: 232, B: 255, A: 255},
			{R: 222, G: 216, B: 255, A: 255},
			{R: 205, G: 210, B: 235, A: 255},
		},
		Player:       Blue,
		PlayerInvuln: color.RGBA{R: 47, G: 91, B: 255, A: 110},
		FocusRing:    Cyan,
		Enemies: [EnemyKindCount]color.RGBA{
			EnemyDrone:   Red,
			EnemySweeper: Violet,
			EnemySniper:  Pink,
			EnemyBomber:  Amber,
		},
		Bosses: [BossTypeCount]color.RGBA{
			BossHelixWarden: Violet,
			BossPrismHydra:  Pink,
			BossAbyssCrown:  Ink,
		},
		Shots: map[ShotKind]color.RGBA{
			ShotBasic:   Blue,
			ShotSpread:  Cyan,
			ShotLaser:   Red,
			ShotMissile: Amber,
			ShotPierce:  Violet,
			ShotShock:   Cyan,
		},
		EnemyShot: Red,
		Bomb:      Amber,
		Drops: [DropKindCount]color.RGBA{
			DropWeapon:   Blue,
			DropPotion:   Green,
			DropFireRate: Amber,
			DropLife:     Pink,
		},
		AimLine: color.RGBA{R: 239, G: 68, B: 68, A: 140},
		Outline: color.RGBA{R: 0, G: 0, B: 0, A: 60},
	}
}
