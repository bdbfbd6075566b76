package fontface

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// maxCachedSizes bounds the face cache; fit-to-width resizes produce many distinct sizes
const maxCachedSizes = 32

// Fonts hands out faces of one typeface at integer pixel sizes
// Not safe for concurrent use; owned by the runtime goroutine
type Fonts struct {
	src   *opentype.Font
	faces map[int]font.Face
}

// NewGoRegular loads the embedded Go Regular typeface
func NewGoRegular() (*Fonts, error) {
	return New(goregular.TTF)
}

// New parses a TrueType/OpenType font
func New(data []byte) (*Fonts, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{src: f, faces: make(map[int]font.Face)}, nil
}

// Face returns the face for size rounded to whole pixels, minimum 1
func (f *Fonts) Face(size float64) (font.Face, error) {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}
	if face, ok := f.faces[px]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.src, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("new face %dpx: %w", px, err)
	}
	if len(f.faces) >= maxCachedSizes {
		for k, old := range f.faces {
			old.Close()
			delete(f.faces, k)
		}
	}
	f.faces[px] = face
	return face, nil
}

// Measure returns the advance width of text at size, 0 when no face is available
func (f *Fonts) Measure(text string, size float64) float64 {
	face, err := f.Face(size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, text))
}

// Ascent returns the distance from the top of the line to the baseline at size
func (f *Fonts) Ascent(size float64) float64 {
	face, err := f.Face(size)
	if err != nil {
		return size
	}
	return fixedToFloat(face.Metrics().Ascent)
}

// Close releases every cached face
func (f *Fonts) Close() {
	for k, face := range f.faces {
		face.Close()
		delete(f.faces, k)
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
