package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Int("scene", 2).Msg("loud")
	assert.Contains(t, buf.String(), "loud")
	assert.Contains(t, buf.String(), "scene=2")
}

func TestMultiWritesEverywhere(t *testing.T) {
	var a, b bytes.Buffer
	log := Multi("info", &a, &b)

	log.Info().Str("run", "x").Msg("Run started")
	assert.Contains(t, a.String(), "Run started")
	assert.Contains(t, b.String(), "Run started")
}
