//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Swatch is one selectable material in the toolbar.
type Swatch struct {
	Label string
	Color color.RGBA
}

// Toolbar renders the material strip along the top edge of the screen and
// tracks the selected swatch.
type Toolbar struct {
	width    int
	swatches []Swatch
	selected int
	slots    []image.Rectangle

	pixel *ebiten.Image
}

// NewToolbar constructs a toolbar sized to the given screen width.
func NewToolbar(width int, swatches []Swatch) *Toolbar {
	t := &Toolbar{width: width, swatches: swatches}
	t.pixel = ebiten.NewImage(1, 1)
	t.pixel.Fill(color.White)
	t.layoutSlots()
	return t
}

// Height returns the strip height in screen pixels.
func (t *Toolbar) Height() int { return stripHeight }

// Selected returns the index of the active swatch.
func (t *Toolbar) Selected() int { return t.selected }

// Update handles swatch selection by digit key and by click in the strip.
func (t *Toolbar) Update() {
	if t == nil {
		return
	}
	for i := range t.swatches {
		if i >= 9 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			t.selected = i
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	for i, slot := range t.slots {
		if pointInRect(mx, my, slot) {
			t.selected = i
			return
		}
	}
}

// Draw paints the strip and its swatches.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	if t == nil {
		return
	}
	t.fillRect(screen, image.Rect(0, 0, t.width, stripHeight), color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, slot := range t.slots {
		if i == t.selected {
			t.fillRect(screen, slot.Inset(-frameInset), color.RGBA{R: 128, G: 16, B: 16, A: 255})
		}
		t.fillRect(screen, slot, t.swatches[i].Color)
		text.Draw(screen, strconv.Itoa(i+1), face, slot.Min.X+3, slot.Max.Y-3, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (t *Toolbar) fillRect(dst *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if t.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(t.pixel, op)
}

func (t *Toolbar) layoutSlots() {
	t.slots = t.slots[:0]
	if t.width <= 0 || len(t.swatches) == 0 {
		return
	}
	slotW := t.width / slotCount
	for i := range t.swatches {
		left := i * slotW
		t.slots = append(t.slots, image.Rect(left+slotGapX, slotGapY, left+slotW-slotGapX, stripHeight-slotGapY))
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	stripHeight = 30
	slotCount   = 10
	slotGapX    = 4
	slotGapY    = 5
	frameInset  = 2
)
