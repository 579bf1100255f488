package factory

import (
	"github.com/automoto/airfighter/archetypes"
	"github.com/automoto/airfighter/components"
	cfg "github.com/automoto/airfighter/config"
	"github.com/automoto/airfighter/mathutil"
	"github.com/yohamta/donburi"
)

// CreateRun spawns the entry that carries every per-run resource and the
// collision field.
func CreateRun(w donburi.World, id string, difficulty cfg.DifficultyID, seed uint64) *donburi.Entry {
	run := archetypes.Run.Spawn(w)

	components.Run.SetValue(run, components.RunData{
		ID:         id,
		Difficulty: difficulty,
		Scene:      1,
		State:      components.RunPlaying,
		Luck:       cfg.Luck.Base,
	})
	components.Focus.SetValue(run, components.FocusData{
		Energy: cfg.Focus.MaxEnergy,
	})
	components.RNG.SetValue(run, components.RNGData{RNG: mathutil.NewRNG(seed)})
	components.BossFight.SetValue(run, components.BossPhaseData{Phase: components.PhaseNone})
	CreateSpace(run)

	return run
}
