package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyProfiles(t *testing.T) {
	tests := []struct {
		id      DifficultyID
		limited bool
		lateral bool
		adds    bool
		dual    bool
	}{
		{Beginner, false, false, false, false},
		{Normal, true, false, false, false},
		{Expert, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			p := Difficulty(tt.id)
			assert.Equal(t, tt.limited, p.FocusLimited)
			assert.Equal(t, tt.lateral, p.LateralSpawnChance > 0)
			assert.Equal(t, tt.adds, p.BossAdds)
			assert.Equal(t, tt.dual, p.DualFinalBoss)
		})
	}

	assert.Greater(t, Difficulty(Beginner).DropMult, Difficulty(Normal).DropMult)
	assert.Greater(t, Difficulty(Expert).EnemyBulletMult, Difficulty(Normal).EnemyBulletMult)
}

func TestParseDifficulty(t *testing.T) {
	d, ok := ParseDifficulty("beginner")
	assert.True(t, ok)
	assert.Equal(t, Beginner, d)

	d, ok = ParseDifficulty("")
	assert.False(t, ok)
	assert.Equal(t, Normal, d)
}

func TestStageScaling(t *testing.T) {
	assert.InDelta(t, 1.0, DamageTaken(EnemyDrone, 1), 1e-9)
	assert.InDelta(t, 0.85*0.8, DamageTaken(EnemyBomber, 3), 1e-9)

	assert.InDelta(t, 9.0, EnemyHP(EnemyDrone, 1), 1e-9)
	assert.InDelta(t, (15+8)*1.25, EnemyHP(EnemyBomber, 3), 1e-9)

	for scene := 2; scene <= StageCount; scene++ {
		assert.Greater(t, EnemyHP(EnemyDrone, scene), EnemyHP(EnemyDrone, scene-1))
		assert.Less(t, DamageTaken(EnemyDrone, scene), DamageTaken(EnemyDrone, scene-1))
		assert.Greater(t, BossHP(scene), BossHP(scene-1))
	}

	// out of range scenes clamp
	assert.Equal(t, Stage(1).Name, Stage(0).Name)
	assert.Equal(t, Stage(StageCount).Name, Stage(9).Name)
}

func TestFireCooldownScaling(t *testing.T) {
	base := 1.0
	assert.InDelta(t, 1/0.52, EnemyFireCooldown(base, 1, Normal), 1e-9)
	assert.Less(t, EnemyFireCooldown(base, 1, Expert), EnemyFireCooldown(base, 1, Normal))
	assert.Greater(t, EnemyFireCooldown(base, 1, Beginner), EnemyFireCooldown(base, 1, Normal))
	assert.Less(t, BossFireInterval(base, 3, Normal), BossFireInterval(base, 1, Normal))
}

func TestStageKindWeights(t *testing.T) {
	for scene := 1; scene <= StageCount; scene++ {
		var sum float64
		for _, w := range Stage(scene).KindWeights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "scene %d", scene)
	}
}

func TestWeaponTable(t *testing.T) {
	require.Len(t, Weapons, int(WeaponCount))

	for id := WeaponBasic; id < WeaponCount; id++ {
		base := WeaponCooldown(id, 0)
		assert.Equal(t, Weapons[id].Cooldown, base, id.String())
		assert.Less(t, WeaponCooldown(id, 1), base, id.String())
		assert.Less(t, WeaponCooldown(id, 2), WeaponCooldown(id, 1), id.String())
	}

	assert.Equal(t, []int{3, 5, 7}, []int{
		WeaponLevel(WeaponSpread, 1).Count,
		WeaponLevel(WeaponSpread, 2).Count,
		WeaponLevel(WeaponSpread, 3).Count,
	})
	assert.Equal(t, 2, WeaponLevel(WeaponLaser, 3).Pierce)
	assert.Equal(t, 10.0, WeaponLevel(WeaponBasic, 3).Damage)
	assert.Equal(t, WeaponLevel(WeaponBasic, 1), WeaponLevel(WeaponBasic, 0), "level clamps to 1")
	assert.False(t, WeaponLevel(WeaponShock, 1).SideBolts)
	assert.True(t, WeaponLevel(WeaponShock, 2).SideBolts)

	assert.NotContains(t, DropWeapons(), WeaponBasic)
	assert.Len(t, DropWeapons(), int(WeaponCount)-1)
	assert.Equal(t, 2, MaxFireRateLevel())
}

func TestSoundTable(t *testing.T) {
	for id := SoundNone + 1; id < SoundCount; id++ {
		def, ok := Sound.Defs[id]
		require.True(t, ok, "sound %d has no tone", id)
		assert.Positive(t, def.Length())
		assert.NotEqual(t, "none", id.String())
	}
}
