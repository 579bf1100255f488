package config

// DifficultyProfile is the multiplier set for one difficulty tier.
type DifficultyProfile struct {
	Name string

	EnemyBulletMult float64 // scales enemy and boss fire rate
	SpawnMult       float64
	DropMult        float64

	// Drop kind weight multipliers
	WeaponWeightMult float64
	PotionWeightMult float64

	FocusLimited bool

	// Expert-only behaviors
	LateralSpawnChance float64
	BossAdds           bool
	DualFinalBoss      bool
}

var Difficulties map[DifficultyID]DifficultyProfile

func init() {
	Difficulties = map[DifficultyID]DifficultyProfile{
		Beginner: {
			Name:             "Beginner",
			EnemyBulletMult:  0.70,
			SpawnMult:        0.85,
			DropMult:         1.35,
			WeaponWeightMult: 1.40,
			PotionWeightMult: 1.40,
			FocusLimited:     false,
		},
		Normal: {
			Name:             "Normal",
			EnemyBulletMult:  1.00,
			SpawnMult:        1.00,
			DropMult:         1.00,
			WeaponWeightMult: 1.00,
			PotionWeightMult: 1.00,
			FocusLimited:     true,
		},
		Expert: {
			Name:               "Expert",
			EnemyBulletMult:    1.30,
			SpawnMult:          1.25,
			DropMult:           0.80,
			WeaponWeightMult:   0.75,
			PotionWeightMult:   0.70,
			FocusLimited:       true,
			LateralSpawnChance: 0.30,
			BossAdds:           true,
			DualFinalBoss:      true,
		},
	}
}

// Difficulty returns the profile for d, falling back to Normal.
func Difficulty(d DifficultyID) DifficultyProfile {
	if p, ok := Difficulties[d]; ok {
		return p
	}
	return Difficulties[Normal]
}
