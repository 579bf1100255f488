package config

import "github.com/automoto/airfighter/mathutil"

// StageCount is the number of scenes in a run; clearing the last one wins.
const StageCount = 3

// StageProfile holds the per-scene tuning. Later scenes are tankier
// regardless of difficulty: higher HP, lower damage taken.
type StageProfile struct {
	Name string
	Boss BossType

	EnemyRate     float64 // spawns per world second before difficulty
	BaseEnemyHP   float64
	BulletSpeed   float64
	BossHP        float64
	EnemyFireMult float64
	BossFireMult  float64
	WaveDuration  float64 // world seconds before the boss warning

	HPScale          float64
	DamageTakenScale float64

	// Enemy kind weights, indexed by EnemyKind
	KindWeights [EnemyKindCount]float64

	SweeperFan float64 // half-angle of the sweeper's aimed pair
}

var Stages [StageCount + 1]StageProfile

func init() {
	Stages[1] = StageProfile{
		Name:             "Skyline Drift",
		Boss:             BossHelixWarden,
		EnemyRate:        0.90,
		BaseEnemyHP:      9,
		BulletSpeed:      150,
		BossHP:           430,
		EnemyFireMult:    0.52,
		BossFireMult:     0.56,
		WaveDuration:     60,
		HPScale:          1.0,
		DamageTakenScale: 1.0,
		KindWeights:      [EnemyKindCount]float64{0.55, 0.33, 0.09, 0.03},
		SweeperFan:       0.18,
	}
	Stages[2] = StageProfile{
		Name:             "Ion Stratos",
		Boss:             BossPrismHydra,
		EnemyRate:        0.70,
		BaseEnemyHP:      12,
		BulletSpeed:      180,
		BossHP:           650,
		EnemyFireMult:    0.72,
		BossFireMult:     0.78,
		WaveDuration:     70,
		HPScale:          1.12,
		DamageTakenScale: 0.90,
		KindWeights:      [EnemyKindCount]float64{0.42, 0.32, 0.16, 0.10},
		SweeperFan:       0.22,
	}
	Stages[3] = StageProfile{
		Name:             "Void Aurora",
		Boss:             BossAbyssCrown,
		EnemyRate:        0.82,
		BaseEnemyHP:      15,
		BulletSpeed:      210,
		BossHP:           900,
		EnemyFireMult:    0.92,
		BossFireMult:     0.96,
		WaveDuration:     80,
		HPScale:          1.25,
		DamageTakenScale: 0.80,
		KindWeights:      [EnemyKindCount]float64{0.30, 0.32, 0.22, 0.16},
		SweeperFan:       0.22,
	}
}

// Stage returns the profile for a scene, clamped to the valid range.
func Stage(scene int) StageProfile {
	return Stages[mathutil.ClampInt(scene, 1, StageCount)]
}

// EnemyHP is the starting HP for an enemy kind in a scene.
func EnemyHP(kind EnemyKind, scene int) float64 {
	s := Stage(scene)
	return (s.BaseEnemyHP + Enemy.Types[kind].HPBonus) * s.HPScale
}

// DamageTaken is the multiplier applied to player damage against an enemy
// kind in a scene. Bosses always take raw damage.
func DamageTaken(kind EnemyKind, scene int) float64 {
	return Enemy.Types[kind].DamageTaken * Stage(scene).DamageTakenScale
}

// BossHP is the total HP pool of a scene's boss. The dual final boss splits
// it by DualHPShare.
func BossHP(scene int) float64 {
	return Stage(scene).BossHP
}

// EnemyFireCooldown scales a base shot interval by the scene and difficulty
// fire multipliers. Higher multipliers mean shorter intervals.
func EnemyFireCooldown(base float64, scene int, d DifficultyID) float64 {
	return base / (Stage(scene).EnemyFireMult * Difficulty(d).EnemyBulletMult)
}

// BossFireInterval is EnemyFireCooldown for bosses.
func BossFireInterval(base float64, scene int, d DifficultyID) float64 {
	return base / (Stage(scene).BossFireMult * Difficulty(d).EnemyBulletMult)
}

// SpawnRate is the number of enemies per world second during a wave.
func SpawnRate(scene int, d DifficultyID) float64 {
	return Stage(scene).EnemyRate * Difficulty(d).SpawnMult
}
