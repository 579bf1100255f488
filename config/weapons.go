package config

import "github.com/automoto/airfighter/mathutil"

const MaxWeaponLevel = 3

// WeaponLevelConfig is the firing pattern of one weapon level.
type WeaponLevelConfig struct {
	Count      int // bolts in the main pattern
	Damage     float64
	Radius     float64
	Speed      float64
	Pierce     int     // 0 = consumed on first hit
	Spread     float64 // fan half-angle in radians (spread)
	Spacing    float64 // horizontal gap between parallel bolts (piercer)
	SideBolts  bool    // shock: two angled side bolts
	SideAngle  float64
	SidePierce int
}

// WeaponConfig describes one weapon kind across its three levels.
type WeaponConfig struct {
	Name     string
	Shot     ShotKind
	Cooldown float64 // seconds before the fire-rate multiplier
	Muzzle   float64 // spawn offset above the ship
	Levels   [MaxWeaponLevel]WeaponLevelConfig
}

// MissileConfig describes the homing salvo of the missiles weapon.
type MissileConfig struct {
	Cooldown     float64
	Counts       [MaxWeaponLevel]int
	Damage       float64
	Radius       float64
	LaunchSpeed  float64
	LaunchJitter float64
	HomingSpeed  float64
	TurnRate     float64
	Lifetime     float64
	Spacing      float64
}

var (
	Weapons map[WeaponID]WeaponConfig
	Missile MissileConfig

	// FireRateMult is indexed by fire-rate level and strictly decreasing.
	FireRateMult  = []float64{1.00, 0.82, 0.68}
	FireRateLabel = []string{"I", "II", "III"}
)

func init() {
	Weapons = map[WeaponID]WeaponConfig{
		WeaponBasic: {
			Name: "Basic", Shot: ShotBasic, Cooldown: 0.24, Muzzle: 18,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 1, Damage: 8, Radius: 4, Speed: 520},
				{Count: 1, Damage: 9, Radius: 4, Speed: 520},
				{Count: 1, Damage: 10, Radius: 4, Speed: 520},
			},
		},
		WeaponSpread: {
			Name: "Spread", Shot: ShotSpread, Cooldown: 0.21, Muzzle: 18,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 3, Damage: 7, Radius: 4, Speed: 520, Spread: 0.26},
				{Count: 5, Damage: 7, Radius: 4, Speed: 520, Spread: 0.38},
				{Count: 7, Damage: 7, Radius: 4, Speed: 520, Spread: 0.50},
			},
		},
		WeaponLaser: {
			Name: "Laser", Shot: ShotLaser, Cooldown: 0.16, Muzzle: 22,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 1, Damage: 10, Radius: 3, Speed: 860, Pierce: 1},
				{Count: 1, Damage: 12, Radius: 4, Speed: 860, Pierce: 1},
				{Count: 1, Damage: 14, Radius: 5, Speed: 860, Pierce: 2},
			},
		},
		WeaponMissiles: {
			Name: "Missiles", Shot: ShotBasic, Cooldown: 0.18, Muzzle: 18,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 1, Damage: 8, Radius: 4, Speed: 540},
				{Count: 1, Damage: 8, Radius: 4, Speed: 540},
				{Count: 1, Damage: 8, Radius: 4, Speed: 540},
			},
		},
		WeaponPiercer: {
			Name: "Piercer", Shot: ShotPierce, Cooldown: 0.19, Muzzle: 20,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 2, Damage: 9, Radius: 3, Speed: 780, Pierce: 2, Spacing: 20},
				{Count: 3, Damage: 9, Radius: 3, Speed: 780, Pierce: 2, Spacing: 14},
				{Count: 4, Damage: 9, Radius: 3, Speed: 780, Pierce: 2, Spacing: 11},
			},
		},
		WeaponShock: {
			Name: "Shock", Shot: ShotShock, Cooldown: 0.20, Muzzle: 22,
			Levels: [MaxWeaponLevel]WeaponLevelConfig{
				{Count: 1, Damage: 8, Radius: 4, Speed: 820, Pierce: 2},
				{Count: 1, Damage: 8, Radius: 4, Speed: 820, Pierce: 3, SideBolts: true, SideAngle: 0.18, SidePierce: 1},
				{Count: 1, Damage: 9, Radius: 5, Speed: 820, Pierce: 5, SideBolts: true, SideAngle: 0.22, SidePierce: 2},
			},
		},
	}

	Missile = MissileConfig{
		Cooldown:     0.62,
		Counts:       [MaxWeaponLevel]int{1, 2, 3},
		Damage:       16,
		Radius:       6,
		LaunchSpeed:  260,
		LaunchJitter: 50,
		HomingSpeed:  420,
		TurnRate:     6.0,
		Lifetime:     3.0,
		Spacing:      12,
	}
}

// WeaponLevel returns the pattern for a weapon at a level, clamping the level
// into [1, MaxWeaponLevel].
func WeaponLevel(id WeaponID, level int) WeaponLevelConfig {
	return Weapons[id].Levels[mathutil.ClampInt(level, 1, MaxWeaponLevel)-1]
}

// WeaponCooldown is the heat set after a volley: base cooldown times the
// fire-rate multiplier. Weapon level never changes it.
func WeaponCooldown(id WeaponID, fireRateLevel int) float64 {
	return Weapons[id].Cooldown * FireRateMult[mathutil.ClampInt(fireRateLevel, 0, len(FireRateMult)-1)]
}

// MaxFireRateLevel is the highest index into FireRateMult.
func MaxFireRateLevel() int {
	return len(FireRateMult) - 1
}

// DropWeapons lists the kinds a weapon drop can carry.
func DropWeapons() []WeaponID {
	ids := make([]WeaponID, 0, WeaponCount-1)
	for id := WeaponBasic + 1; id < WeaponCount; id++ {
		ids = append(ids, id)
	}
	return ids
}
