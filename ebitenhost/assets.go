package ebitenhost

import (
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/plus3/wavetd/ui"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type faceKey struct {
	font ui.FontHandle
	size float64
}

// Assets resolves the handles issued by a ui.Registry to fonts and images
// below a root directory. Missing or broken files are logged once and
// replaced by a fallback, so drawing never fails.
type Assets struct {
	root     string
	registry *ui.Registry
	logger   *log.Logger

	fonts  map[ui.FontHandle]*opentype.Font
	faces  map[faceKey]font.Face
	images map[ui.ImageHandle]*ebiten.Image
}

func NewAssets(root string, registry *ui.Registry, logger *log.Logger) *Assets {
	return &Assets{
		root:     root,
		registry: registry,
		logger:   logger,
		fonts:    make(map[ui.FontHandle]*opentype.Font),
		faces:    make(map[faceKey]font.Face),
		images:   make(map[ui.ImageHandle]*ebiten.Image),
	}
}

// Face returns a face for the font at the given pixel size.
func (a *Assets) Face(h ui.FontHandle, size float64) font.Face {
	key := faceKey{font: h, size: size}
	if face, ok := a.faces[key]; ok {
		return face
	}

	var face font.Face = basicfont.Face7x13
	if tt := a.font(h); tt != nil {
		f, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			a.logger.Printf("[Assets] failed to create face (size %.0f): %v", size, err)
		} else {
			face = f
		}
	}
	a.faces[key] = face
	return face
}

func (a *Assets) font(h ui.FontHandle) *opentype.Font {
	if tt, ok := a.fonts[h]; ok {
		return tt
	}
	// a failed load is cached as nil
	a.fonts[h] = nil

	path, ok := a.registry.FontPath(h)
	if !ok {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(a.root, path))
	if err != nil {
		a.logger.Printf("[Assets] failed to read font %s, using fallback: %v", path, err)
		return nil
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		a.logger.Printf("[Assets] failed to parse font %s, using fallback: %v", path, err)
		return nil
	}
	a.fonts[h] = tt
	return tt
}

// Image returns the image for h, or a grey placeholder.
func (a *Assets) Image(h ui.ImageHandle) *ebiten.Image {
	if img, ok := a.images[h]; ok {
		return img
	}

	path, _ := a.registry.ImagePath(h)
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.root, path))
	if err != nil {
		a.logger.Printf("[Assets] failed to load image %q, using placeholder: %v", path, err)
		img = ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{R: 90, G: 90, B: 90, A: 255})
	}
	a.images[h] = img
	return img
}

// Measure implements ui.Measurer with the real glyph metrics.
func (a *Assets) Measure(t ui.Text) (float64, float64) {
	face := a.Face(t.Font, t.Size)
	width := font.MeasureString(face, t.Value)
	return float64(width) / 64, float64(face.Metrics().Height) / 64
}
