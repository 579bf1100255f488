package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

// Sizes used by LoadAll, in points.
var Sizes = map[FontName]float64{
	Small: 12,
	Body:  15,
	Bold:  20,
	Title: 34,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll loads every face from the TTF at path, or from the bundled Go
// Regular font when path is empty. Go Regular has no CJK glyphs, so
// Traditional Chinese text needs a font file.
func LoadAll(path string) error {
	ttf := goregular.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading font %s: %w", path, err)
		}
		ttf = data
	}
	for name, size := range Sizes {
		if err := LoadFontWithSize(name, ttf, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("error parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
