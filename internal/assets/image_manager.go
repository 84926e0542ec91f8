// internal/assets/image_manager.go
package assets

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
)

// ImageManager загружает и кэширует спрайты. A sprite that cannot be read is
// replaced by a flat placeholder so the game keeps running.
type ImageManager struct {
	dir     string
	images  map[string]*ebiten.Image
	missing map[string]bool
}

// NewImageManager создает менеджер, читающий файлы из dir.
func NewImageManager(dir string) *ImageManager {
	return &ImageManager{
		dir:     dir,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// Get returns the sprite called name, loading it on first use. When the file
// is missing it returns a size×size placeholder filled with fallback.
func (m *ImageManager) Get(name string, size int, fallback color.Color) *ebiten.Image {
	if img, ok := m.images[name]; ok {
		return img
	}

	path := filepath.Join(m.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Sprite not found, using placeholder")
		img = placeholder(size, fallback)
		m.missing[name] = true
	}
	m.images[name] = img
	return img
}

// Loaded reports whether name was read from disk rather than replaced by a
// placeholder. Names never requested count as not loaded.
func (m *ImageManager) Loaded(name string) bool {
	_, ok := m.images[name]
	return ok && !m.missing[name]
}

// Preload loads every name up front so missing files are reported at start.
func (m *ImageManager) Preload(sizes map[string]int, fallback map[string]color.Color) {
	for name, size := range sizes {
		m.Get(name, size, fallback[name])
	}
}

func placeholder(size int, c color.Color) *ebiten.Image {
	if size < 1 {
		size = 1
	}
	if c == nil {
		c = color.RGBA{255, 0, 255, 255}
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	return img
}
