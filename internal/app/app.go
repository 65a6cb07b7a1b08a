//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"powder/internal/input"
	"powder/internal/render"
	"powder/internal/sims/powder"
	"powder/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the powder world to the ebiten.Game interface and feeds
// pointer strokes into it.
type Game struct {
	world   *powder.World
	painter *render.GridPainter
	toolbar *ui.Toolbar
	overlay *ui.Overlay
	palette []color.RGBA

	stroke input.Stroke
	brush  input.Brush

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game around the provided world.
func New(world *powder.World, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := world.Size()

	palette := powder.Colors()
	palette[powder.Empty] = color.RGBA{A: 0xFF}

	kinds := powder.Paintable()
	swatches := make([]ui.Swatch, 0, len(kinds))
	for _, k := range kinds {
		swatches = append(swatches, ui.Swatch{Label: k.String(), Color: k.Color()})
	}

	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		toolbar: ui.NewToolbar(size.W*scale, swatches),
		overlay: ui.NewOverlay(),
		palette: palette,
		brush:   input.Brush{Radius: cfg.Brush},
		scale:   scale,
		seed:    cfg.SimConfig().Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.toolbar.Update()
	if g.overlay != nil {
		g.overlay.Update()
	}
	g.handlePainting()

	if (!g.paused) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePainting feeds the pointer into the stroke while a button is held.
// Cells under the toolbar strip map to negative rows, which Paint rejects.
func (g *Game) handlePainting() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		g.stroke.End()
		return
	}
	kind := powder.Empty
	if left {
		kind = powder.Paintable()[g.toolbar.Selected()]
	}
	for _, p := range g.stroke.Move(g.cursorCell()) {
		g.brush.Each(p, func(x, y int) {
			g.world.Paint(x, y, kind)
		})
	}
}

// Draw renders the toolbar, the cell field and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.toolbar.Draw(screen)
	g.painter.Blit(screen, g.world.Cells(), g.palette, g.scale, g.toolbar.Height())
	if g.overlay != nil {
		g.overlay.Draw(screen, g.brushFrame(), g.paused)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H*g.scale + g.toolbar.Height()
}

func (g *Game) cursorCell() input.Point {
	mx, my := ebiten.CursorPosition()
	return input.Point{
		X: floorDiv(mx, g.scale),
		Y: floorDiv(my-g.toolbar.Height(), g.scale),
	}
}

func (g *Game) brushFrame() image.Rectangle {
	cell := g.cursorCell()
	r := g.brush.Radius
	if r < 0 {
		r = 0
	}
	x0 := (cell.X - r) * g.scale
	y0 := (cell.Y-r)*g.scale + g.toolbar.Height()
	span := (2*r + 1) * g.scale
	return image.Rect(x0, y0, x0+span, y0+span)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
