// internal/ui/fonts.go
package ui

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace reads a TrueType/OpenType font. On any error it logs and returns
// the built-in 7x13 bitmap face.
func LoadFace(path string, size float64) font.Face {
	face, err := loadFace(path, size)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Using fallback font")
		return basicfont.Face7x13
	}
	return face
}

func loadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// TextWidth measures s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}

// LineHeight is the face's ascent plus descent in pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}
