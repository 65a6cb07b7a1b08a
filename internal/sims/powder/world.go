package powder

import "powder/internal/core"

// World owns one powder grid plus the rules and randomness driving it.
// All mutation is single-threaded: hosts serialize Paint, Step and reads.
type World struct {
	cfg  Config
	grid *Grid
	rng  Source

	display []uint8
}

var _ core.Sim = (*World)(nil)

// New returns a world with default rules at the given dimensions.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	g := NewGrid(cfg.Width, cfg.Height)
	return &World{
		cfg:     cfg,
		grid:    g,
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, g.w*g.h),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "powder" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.w, H: w.grid.h} }

// Grid exposes the live grid for painting and inspection.
func (w *World) Grid() *Grid { return w.grid }

// Cells refreshes and returns the display buffer, one material byte per
// cell in row-major order.
func (w *World) Cells() []uint8 {
	w.grid.Kinds(w.display)
	return w.display
}

// Paint applies the grid's placement rules at (x, y): Empty erases any
// in-bounds cell, other kinds land only on Empty, misses are ignored.
func (w *World) Paint(x, y int, k Kind) { w.grid.Set(x, y, k) }

// Reset rebuilds the configured starting field deterministically. A zero
// seed means the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.grid.Clear()
	w.rng = core.NewRNG(effective)
	if build, ok := scenes[w.cfg.Scene]; ok {
		build(w)
	}
}

// Step advances the world by one tick.
func (w *World) Step() { Advance(w.grid, w.cfg.Rules, w.rng) }
