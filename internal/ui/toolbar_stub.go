//go:build !ebiten

package ui

import "image/color"

// Swatch is one selectable material in the toolbar.
type Swatch struct {
	Label string
	Color color.RGBA
}

// Toolbar is a no-op placeholder for headless builds.
type Toolbar struct{}

// NewToolbar returns nil in the headless build.
func NewToolbar(int, []Swatch) *Toolbar { return nil }

// Update is a no-op in the headless build.
func (t *Toolbar) Update() {}

// Draw is a no-op in the headless build.
func (t *Toolbar) Draw(any) {}

// Height returns zero in the headless build.
func (t *Toolbar) Height() int { return 0 }

// Selected returns zero in the headless build.
func (t *Toolbar) Selected() int { return 0 }
