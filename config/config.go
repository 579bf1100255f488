package config

type Config struct {
	Width  int
	Height int
}

// FieldConfig describes the play field and the margins past which entities
// are culled.
type FieldConfig struct {
	Width  float64
	Height float64

	// Collision field extends this far past every edge of the screen.
	CollisionMargin float64
	CollisionCell   int

	// Player bullets
	ShotMarginTop    float64
	ShotMarginBottom float64
	ShotMarginSide   float64

	// Enemy bullets
	EnemyShotMarginTop    float64
	EnemyShotMarginBottom float64
	EnemyShotMarginSide   float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Radius float64
	Speed  float64

	// Spawn point as a fraction of the field size
	StartX float64
	StartY float64

	// Movement clamp, measured from the field edges
	EdgeInsetX      float64
	EdgeInsetTop    float64
	EdgeInsetBottom float64

	// Health and lives
	Health        float64
	StartingLives int
	MaxLives      int

	// Invulnerability windows (seconds)
	StartInvuln   float64
	HitInvuln     float64
	RespawnInvuln float64
	SceneGrace    float64

	// Dying lasts this long in real time before respawn or game over
	DeathDuration float64

	// Hit test adjustments
	BulletHitInset float64 // enemy bullets test against radius - inset
	PickupReach    float64 // drops test against radius + reach
}

// TimeScaleConfig holds the world time multipliers composed each frame.
type TimeScaleConfig struct {
	MaxFrameDt float64

	Focus     float64 // world scale while focus is active
	FocusMove float64 // player movement scale (real time) while focus is active

	Death       float64
	DeathWindow float64 // real seconds after lethal damage

	BossWarn       float64
	BossWarnWindow float64 // real seconds after the boss warning starts
}

// FocusConfig controls the focus energy pool on limited difficulties.
type FocusConfig struct {
	MaxEnergy float64 // seconds of focus
	DrainRate float64 // energy per real second while active
	RegenRate float64 // energy per real second while idle
	Cooldown  float64 // seconds locked out after exhausting the pool
}

// LuckConfig controls the drop compensation granted on life loss.
type LuckConfig struct {
	Base     float64
	LossGain float64
	Max      float64
	Decay    float64 // per real second, toward Base

	BoostLossGain  float64
	BoostMax       float64
	BoostDecay     float64 // per real second, toward 0
	BoostWeaponCap float64 // granted when a maxed weapon is picked up again
}

// ShakeConfig drives the screen shake on hits and deaths. Values are in
// seconds of shake; it decays on real time.
type ShakeConfig struct {
	Hit       float64
	Death     float64
	Max       float64
	Decay     float64 // per real second
	Amplitude float64 // pixels at Max
}

// DropConfig describes the drop economy.
type DropConfig struct {
	BaseChance float64
	MaxChance  float64

	WeaponWeight   float64
	PotionWeight   float64
	FireRateWeight float64
	LifeWeight     float64

	Radius     float64
	FallSpeed  float64
	WobbleFreq float64
	WobbleAmp  float64
	Despawn    float64 // below the bottom edge

	// HP granted when the pickup has nothing left to upgrade
	WeaponCapHP   float64
	FireRateCapHP float64
	LifeCapHP     float64
}

// EnemyTypeConfig contains configuration for specific enemy kinds
type EnemyTypeConfig struct {
	Name    string
	Radius  float64
	HPBonus float64

	SpeedMin        float64
	SpeedMax        float64
	SceneSpeedBonus float64 // added per scene past the first

	// Shooting (seconds, before the fire multipliers)
	FirstShotMin float64
	FirstShotMax float64
	ShotMin      float64
	ShotMax      float64
	ShotDamage   float64
	ShotRadius   float64

	// Horizontal sway
	SwayFreq float64
	SwayAmp  float64

	// Incoming damage multiplier before stage scaling
	DamageTaken float64

	// Sniper only
	Windup        float64
	AimSpeedBonus float64
}

// EnemyConfig contains enemy system configuration shared by all kinds
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig

	SpawnY           float64
	SpawnInsetX      float64
	LateralOffset    float64 // how far past the side edge lateral spawns start
	LateralMaxY      float64 // fraction of field height
	LateralMinY      float64
	LateralDrift     float64 // vertical speed fraction for lateral spawns
	SweeperEdgeInset float64
	DespawnBelow     float64
	DespawnSide      float64
	MuzzleOffset     float64

	// Delay added to every enemy's next shot when the player dies
	DeathFireDelay float64

	// Bomber projectiles
	BombSpeedFactor    float64
	BombFuse           float64
	BombRadius         float64
	BombDamage         float64
	FragmentCount      int
	FragmentSpeedBonus float64
	FragmentDamage     float64
	FragmentRadius     float64

	// Adds injected during Expert boss fights
	AddsInterval    float64
	AddsDroneChance float64
}

// BossTypeConfig contains configuration for one boss type
type BossTypeConfig struct {
	Name   string
	Radius float64

	FireInterval   float64
	ShotSpeedBonus float64
	ShotDamage     float64
	ShotRadius     float64

	DriftFreq float64
	DriftAmp  float64

	SpinRate      float64   // spinning radial
	FanOffsets    []float64 // aimed fan
	FanSpeedBonus float64
	BurstEvery    int // aimed-plus-burst: radial burst every Nth volley
	BurstCount    int
}

// BossConfig contains boss-phase configuration
type BossConfig struct {
	Types map[BossType]BossTypeConfig

	SpawnY          float64
	RestY           float64
	EdgeInset       float64
	MuzzleOffset    float64
	ContactInset    float64
	ContactDamage   float64
	WarningDuration float64
	EntryDuration   float64
	DefeatedHold    float64

	// Dual final boss: per-variant HP share, radius and resting X fraction
	DualHPShare []float64
	DualRadius  []float64
	DualX       []float64
}

var (
	C         *Config
	Field     FieldConfig
	Player    PlayerConfig
	TimeScale TimeScaleConfig
	Focus     FocusConfig
	Luck      LuckConfig
	Shake     ShakeConfig
	Drops     DropConfig
	Enemy     EnemyConfig
	Boss      BossConfig
)

func init() {
	C = &Config{
		Width:  480,
		Height: 720,
	}

	Field = FieldConfig{
		Width:  float64(C.Width),
		Height: float64(C.Height),

		CollisionMargin: 160,
		CollisionCell:   32,

		ShotMarginTop:    60,
		ShotMarginBottom: 60,
		ShotMarginSide:   80,

		EnemyShotMarginTop:    90,
		EnemyShotMarginBottom: 70,
		EnemyShotMarginSide:   100,
	}

	Player = PlayerConfig{
		Radius: 14,
		Speed:  305,

		StartX: 0.5,
		StartY: 0.78,

		EdgeInsetX:      24,
		EdgeInsetTop:    56,
		EdgeInsetBottom: 24,

		Health:        10,
		StartingLives: 3,
		MaxLives:      6,

		StartInvuln:   1.1,
		HitInvuln:     0.24,
		RespawnInvuln: 10,
		SceneGrace:    1.0,

		DeathDuration: 1.1,

		BulletHitInset: 2,
		PickupReach:    3,
	}

	TimeScale = TimeScaleConfig{
		MaxFrameDt: 0.033,

		Focus:     0.20,
		FocusMove: 0.40,

		Death:       0.16,
		DeathWindow: 0.2,

		BossWarn:       0.35,
		BossWarnWindow: 0.55,
	}

	Focus = FocusConfig{
		MaxEnergy: 3.0,
		DrainRate: 1.0,
		RegenRate: 0.5,
		Cooldown:  5.0,
	}

	Luck = LuckConfig{
		Base:     1.0,
		LossGain: 0.45,
		Max:      3.5,
		Decay:    0.01,

		BoostLossGain:  0.22,
		BoostMax:       1.2,
		BoostDecay:     0.08,
		BoostWeaponCap: 0.06,
	}

	Shake = ShakeConfig{
		Hit:       0.08,
		Death:     0.55,
		Max:       0.60,
		Decay:     1.6,
		Amplitude: 10,
	}

	Drops = DropConfig{
		BaseChance: 0.25,
		MaxChance:  0.80,

		WeaponWeight:   0.20,
		PotionWeight:   0.12,
		FireRateWeight: 0.14,
		LifeWeight:     0.015,

		Radius:     12,
		FallSpeed:  120,
		WobbleFreq: 3.0,
		WobbleAmp:  14,
		Despawn:    60,

		WeaponCapHP:   2,
		FireRateCapHP: 1,
		LifeCapHP:     3,
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyDrone: {
				Name:            "Drone",
				Radius:          16,
				HPBonus:         0,
				SpeedMin:        62,
				SpeedMax:        105,
				SceneSpeedBonus: 8,
				FirstShotMin:    1.2,
				FirstShotMax:    1.8,
				ShotMin:         1.15,
				ShotMax:         1.85,
				ShotDamage:      4,
				ShotRadius:      5,
				DamageTaken:     1.0,
			},
			EnemySweeper: {
				Name:         "Sweeper",
				Radius:       18,
				HPBonus:      5,
				SpeedMin:     54,
				SpeedMax:     92,
				FirstShotMin: 1.2,
				FirstShotMax: 2.0,
				ShotMin:      1.25,
				ShotMax:      2.05,
				ShotDamage:   4,
				ShotRadius:   5,
				SwayFreq:     1.4,
				SwayAmp:      85,
				DamageTaken:  0.92,
			},
			EnemySniper: {
				Name:          "Sniper",
				Radius:        17,
				HPBonus:       3,
				SpeedMin:      50,
				SpeedMax:      86,
				FirstShotMin:  1.7,
				FirstShotMax:  2.6,
				ShotMin:       2.0,
				ShotMax:       3.0,
				ShotDamage:    6,
				ShotRadius:    5,
				SwayFreq:      1.0,
				SwayAmp:       18,
				DamageTaken:   0.95,
				Windup:        0.42,
				AimSpeedBonus: 80,
			},
			EnemyBomber: {
				Name:         "Bomber",
				Radius:       20,
				HPBonus:      8,
				SpeedMin:     48,
				SpeedMax:     78,
				FirstShotMin: 1.8,
				FirstShotMax: 2.8,
				ShotMin:      2.1,
				ShotMax:      3.1,
				SwayFreq:     0.9,
				SwayAmp:      24,
				DamageTaken:  0.85,
			},
		},

		SpawnY:           -30,
		SpawnInsetX:      40,
		LateralOffset:    30,
		LateralMinY:      40,
		LateralMaxY:      0.5,
		LateralDrift:     0.35,
		SweeperEdgeInset: 22,
		DespawnBelow:     70,
		DespawnSide:      80,
		MuzzleOffset:     10,

		DeathFireDelay: 0.8,

		BombSpeedFactor:    0.55,
		BombFuse:           0.95,
		BombRadius:         7,
		BombDamage:         5,
		FragmentCount:      6,
		FragmentSpeedBonus: 35,
		FragmentDamage:     4,
		FragmentRadius:     5,

		AddsInterval:    3.2,
		AddsDroneChance: 0.7,
	}

	Boss = BossConfig{
		Types: map[BossType]BossTypeConfig{
			BossHelixWarden: {
				Name:           "Helix Warden",
				Radius:         52,
				FireInterval:   0.30,
				ShotSpeedBonus: 35,
				ShotDamage:     4,
				ShotRadius:     5,
				DriftFreq:      0.8,
				DriftAmp:       50,
				SpinRate:       1.3,
			},
			BossPrismHydra: {
				Name:           "Prism Hydra",
				Radius:         52,
				FireInterval:   0.30,
				ShotSpeedBonus: 35,
				ShotDamage:     5,
				ShotRadius:     5,
				DriftFreq:      0.8,
				DriftAmp:       50,
				FanOffsets:     []float64{-0.24, 0, 0.24},
				FanSpeedBonus:  20,
			},
			BossAbyssCrown: {
				Name:           "Abyss Crown",
				Radius:         52,
				FireInterval:   0.30,
				ShotSpeedBonus: 130,
				ShotDamage:     6,
				ShotRadius:     6,
				DriftFreq:      0.8,
				DriftAmp:       50,
				BurstEvery:     4,
				BurstCount:     8,
			},
		},

		SpawnY:          -100,
		RestY:           110,
		EdgeInset:       76,
		MuzzleOffset:    22,
		ContactInset:    8,
		ContactDamage:   4,
		WarningDuration: 1.4,
		EntryDuration:   1.2,
		DefeatedHold:    2.5,

		DualHPShare: []float64{0.6, 0.5},
		DualRadius:  []float64{52, 40},
		DualX:       []float64{0.32, 0.68},
	}
}
