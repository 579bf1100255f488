package config

// DifficultyID selects one of the three difficulty tiers.
type DifficultyID int

const (
	Beginner DifficultyID = iota
	Normal
	Expert
	DifficultyCount // Must be last
)

func (d DifficultyID) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Normal:
		return "normal"
	case Expert:
		return "expert"
	}
	return "unknown"
}

// ParseDifficulty maps a name back to its tier. Unknown names fall back to Normal.
func ParseDifficulty(s string) (DifficultyID, bool) {
	for d := Beginner; d < DifficultyCount; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return Normal, false
}

// WeaponID identifies a weapon kind. Basic is the one every life starts with.
type WeaponID int

const (
	WeaponBasic WeaponID = iota
	WeaponSpread
	WeaponLaser
	WeaponMissiles
	WeaponPiercer
	WeaponShock
	WeaponCount // Must be last
)

func (w WeaponID) String() string {
	switch w {
	case WeaponBasic:
		return "basic"
	case WeaponSpread:
		return "spread"
	case WeaponLaser:
		return "laser"
	case WeaponMissiles:
		return "missiles"
	case WeaponPiercer:
		return "piercer"
	case WeaponShock:
		return "shock"
	}
	return "unknown"
}

// ShotKind tags individual player projectiles for rendering and homing.
type ShotKind int

const (
	ShotBasic ShotKind = iota
	ShotSpread
	ShotLaser
	ShotMissile
	ShotPierce
	ShotShock
)

type EnemyKind int

const (
	EnemyDrone EnemyKind = iota
	EnemySweeper
	EnemySniper
	EnemyBomber
	EnemyKindCount // Must be last
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyDrone:
		return "drone"
	case EnemySweeper:
		return "sweeper"
	case EnemySniper:
		return "sniper"
	case EnemyBomber:
		return "bomber"
	}
	return "unknown"
}

type BossType int

const (
	BossHelixWarden BossType = iota
	BossPrismHydra
	BossAbyssCrown
	BossTypeCount // Must be last
)

func (b BossType) String() string {
	switch b {
	case BossHelixWarden:
		return "helix_warden"
	case BossPrismHydra:
		return "prism_hydra"
	case BossAbyssCrown:
		return "abyss_crown"
	}
	return "unknown"
}

type DropKind int

const (
	DropWeapon DropKind = iota
	DropPotion
	DropFireRate
	DropLife
	DropKindCount // Must be last
)

func (k DropKind) String() string {
	switch k {
	case DropWeapon:
		return "weapon"
	case DropPotion:
		return "potion"
	case DropFireRate:
		return "firerate"
	case DropLife:
		return "life"
	}
	return "unknown"
}

type EnemyShotKind int

const (
	EnemyShotPlain EnemyShotKind = iota
	EnemyShotBomb
)

// SpawnSide is the edge an enemy enters from.
type SpawnSide int

const (
	SideTop SpawnSide = iota
	SideLeft
	SideRight
)
