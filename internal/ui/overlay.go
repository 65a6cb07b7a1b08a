//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the brush footprint at the cursor and a pause badge on top
// of the simulation view.
type Overlay struct {
	pixel  *ebiten.Image
	hidden bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.hidden = !o.hidden
	}
}

// Draw renders the brush outline and, when paused, the badge. The frame is
// the brush footprint in screen pixels.
func (o *Overlay) Draw(screen *ebiten.Image, frame image.Rectangle, paused bool) {
	if o == nil || o.hidden {
		return
	}
	o.drawFrame(screen, frame, color.RGBA{R: 230, G: 230, B: 240, A: 180})
	if paused {
		o.drawBadge(screen)
	}
}

func (o *Overlay) drawFrame(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if rect.Empty() {
		return
	}
	o.fillRect(screen, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), col)
	o.fillRect(screen, image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), col)
	o.fillRect(screen, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), col)
	o.fillRect(screen, image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), col)
}

func (o *Overlay) drawBadge(screen *ebiten.Image) {
	const label = "PAUSED"
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	w := bounds.Dx() + 2*badgePadding
	h := bounds.Dy() + 2*badgePadding
	x := screen.Bounds().Dx() - w - badgeMargin
	y := stripHeight + badgeMargin
	o.fillRect(screen, image.Rect(x, y, x+w, y+h), color.RGBA{R: 32, G: 34, B: 40, A: 220})
	text.Draw(screen, label, face, x+badgePadding, y+h-badgePadding, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (o *Overlay) fillRect(dst *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	if o.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(o.pixel, op)
}

const (
	badgePadding = 6
	badgeMargin  = 8
)
