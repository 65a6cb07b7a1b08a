package powder

import "image/color"

// Kind identifies the material held by one cell.
type Kind uint8

// The closed material set. Kind values double as display buffer bytes and
// palette indices.
const (
	Empty Kind = iota
	Sand
	Gravel
	Water
	Stone

	kindCount
)

var kindNames = [kindCount]string{"empty", "sand", "gravel", "water", "stone"}

var kindColors = [kindCount]color.RGBA{
	Sand:   {R: 0xC2, G: 0xB2, B: 0x80, A: 0xFF},
	Gravel: {R: 0x60, G: 0x60, B: 0x60, A: 0xFF},
	Water:  {R: 0x00, G: 0x96, B: 0xFF, A: 0xFF},
	Stone:  {R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
}

// String returns the lowercase material name.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Color returns the display color of the material. Empty is fully
// transparent; renderers choose their own backdrop for it.
func (k Kind) Color() color.RGBA {
	if k >= kindCount {
		return color.RGBA{}
	}
	return kindColors[k]
}

// Colors returns the display palette indexed by Kind.
func Colors() []color.RGBA {
	p := make([]color.RGBA, kindCount)
	copy(p, kindColors[:])
	return p
}

// Paintable lists the materials offered for placement, in toolbar order.
// Empty is not listed; erasing passes Empty to Set explicitly.
func Paintable() []Kind {
	return []Kind{Sand, Gravel, Water, Stone}
}
