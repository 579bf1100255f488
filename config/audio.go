package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Weapon sounds
	SoundShootSoft
	SoundShootLaser
	SoundShootMissile
	// Player sounds
	SoundHit
	SoundPickup
	SoundLifeUp
	SoundLifeLost
	// Phase sounds
	SoundBossWarn
	SoundBossDown
	// UI sounds
	SoundPause
	SoundResume
	SoundCount // Must be last
)

func (s SoundID) String() string {
	if d, ok := Sound.Defs[s]; ok {
		return d.Name
	}
	return "none"
}

// MusicID names a background loop.
type MusicID int

const (
	MusicNone MusicID = iota
	MusicStage
	MusicBoss
)

func (m MusicID) String() string {
	if d, ok := Sound.Music[m]; ok {
		return d.Name
	}
	return "none"
}

// Waveform selects the oscillator shape of a synthesized effect.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSawtooth
)

// ToneDef describes one synthesized effect: a pitch glide from Freq to
// Freq2 over Glide seconds under an attack/release envelope.
type ToneDef struct {
	Name    string
	Wave    Waveform
	Freq    float64
	Freq2   float64
	Glide   float64
	Gain    float64
	Attack  float64
	Release float64
}

// Length is the total playing time of the tone in seconds.
func (d ToneDef) Length() float64 {
	return d.Attack + d.Release + 0.02
}

// MusicDef is a looping line of notes, each held for Step seconds. A note
// of 0 is a rest.
type MusicDef struct {
	Name  string
	Wave  Waveform
	Notes []float64
	Step  float64
	Gain  float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	BufferMillis  int
	MasterGain    float64
	DefaultSFXVol float64
}

// SoundConfig holds the tone table and the staggered echo offsets used by
// multi-part cues.
type SoundConfig struct {
	Defs  map[SoundID]ToneDef
	Music map[MusicID]MusicDef

	BossDownEchoes []float64 // sim seconds after the kill
	BossWarnEchoes []float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		BufferMillis:  100,
		MasterGain:    0.30,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Defs: map[SoundID]ToneDef{
			SoundShootSoft:    {Name: "shoot_soft", Wave: WaveTriangle, Freq: 600, Freq2: 500, Glide: 0.06, Gain: 0.10, Attack: 0.002, Release: 0.05},
			SoundShootLaser:   {Name: "shoot_laser", Wave: WaveSawtooth, Freq: 900, Freq2: 580, Glide: 0.06, Gain: 0.08, Attack: 0.002, Release: 0.08},
			SoundShootMissile: {Name: "shoot_missile", Wave: WaveSquare, Freq: 260, Freq2: 180, Glide: 0.09, Gain: 0.10, Attack: 0.002, Release: 0.10},
			SoundHit:          {Name: "hit", Wave: WaveSquare, Freq: 160, Freq2: 90, Glide: 0.08, Gain: 0.18, Attack: 0.002, Release: 0.12},
			SoundPickup:       {Name: "pickup", Wave: WaveTriangle, Freq: 820, Freq2: 1150, Glide: 0.08, Gain: 0.14, Attack: 0.002, Release: 0.10},
			SoundLifeUp:       {Name: "life_up", Wave: WaveSine, Freq: 520, Freq2: 840, Glide: 0.12, Gain: 0.16, Attack: 0.002, Release: 0.14},
			SoundLifeLost:     {Name: "life_lost", Wave: WaveSawtooth, Freq: 210, Freq2: 70, Glide: 0.12, Gain: 0.22, Attack: 0.002, Release: 0.18},
			SoundBossWarn:     {Name: "boss_warn", Wave: WaveSquare, Freq: 330, Freq2: 220, Glide: 0.16, Gain: 0.14, Attack: 0.004, Release: 0.16},
			SoundBossDown:     {Name: "boss_down", Wave: WaveSine, Freq: 220, Freq2: 440, Glide: 0.18, Gain: 0.20, Attack: 0.002, Release: 0.20},
			SoundPause:        {Name: "pause", Wave: WaveTriangle, Freq: 520, Freq2: 420, Glide: 0.06, Gain: 0.12, Attack: 0.002, Release: 0.08},
			SoundResume:       {Name: "resume", Wave: WaveTriangle, Freq: 420, Freq2: 520, Glide: 0.06, Gain: 0.12, Attack: 0.002, Release: 0.08},
		},

		Music: map[MusicID]MusicDef{
			MusicStage: {
				Name:  "stage",
				Wave:  WaveTriangle,
				Notes: []float64{220, 0, 277.18, 329.63, 220, 0, 293.66, 329.63},
				Step:  0.22,
				Gain:  0.05,
			},
			MusicBoss: {
				Name:  "boss",
				Wave:  WaveSquare,
				Notes: []float64{110, 110, 130.81, 110, 146.83, 110, 123.47, 0},
				Step:  0.16,
				Gain:  0.04,
			},
		},

		BossDownEchoes: []float64{0, 0.09, 0.18},
		BossWarnEchoes: []float64{0, 0.22, 0.44},
	}
}
