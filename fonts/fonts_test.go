package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadAllBundled(t *testing.T) {
	require.NoError(t, LoadAll(""))
	for name := range Sizes {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadAllFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o600))
	assert.NoError(t, LoadAll(path))
}

func TestLoadErrors(t *testing.T) {
	assert.Error(t, LoadAll(filepath.Join(t.TempDir(), "missing.ttf")))
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("nope").Get() })
}
