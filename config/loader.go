package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the optional override file looked up by Load.
const FileName = "airfighter"

// Settings are the run-level options that are not tuning tables.
type Settings struct {
	LogLevel   string
	Difficulty DifficultyID
	Language   string
	Seed       uint64
	SFX        bool
	FontFile   string // TTF with CJK glyphs for the TC language
	LogFile    string
	Fullscreen bool
}

// Load reads an optional airfighter.json from configDir, sets default values
// and overlays any player, focus, timeScale and drops sections onto the
// tuning tables. A missing file is not an error.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("difficulty", Normal.String())
	viper.SetDefault("language", "en")
	viper.SetDefault("seed", 0)
	viper.SetDefault("sfx", true)
	viper.SetDefault("fontFile", "")
	viper.SetDefault("logFile", "")
	viper.SetDefault("fullscreen", false)

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return overlay()
}

func overlay() error {
	sections := []struct {
		key    string
		target any
	}{
		{"player", &Player},
		{"focus", &Focus},
		{"timeScale", &TimeScale},
		{"drops", &Drops},
	}
	for _, s := range sections {
		if !viper.IsSet(s.key) {
			continue
		}
		if err := viper.UnmarshalKey(s.key, s.target); err != nil {
			return fmt.Errorf("error decoding %s overrides: %w", s.key, err)
		}
	}
	return nil
}

// CurrentSettings returns the run-level options read by Load.
func CurrentSettings() Settings {
	d, _ := ParseDifficulty(viper.GetString("difficulty"))
	return Settings{
		LogLevel:   viper.GetString("logLevel"),
		Difficulty: d,
		Language:   viper.GetString("language"),
		Seed:       viper.GetUint64("seed"),
		SFX:        viper.GetBool("sfx"),
		FontFile:   viper.GetString("fontFile"),
		LogFile:    viper.GetString("logFile"),
		Fullscreen: viper.GetBool("fullscreen"),
	}
}
