package powder

import (
	"math"
	"sort"
)

// A sceneFunc paints a starting field into a freshly cleared world. All
// builders go through Set, so they obey the same placement rules as
// interactive painting and reproduce exactly under the world's seed.
type sceneFunc func(w *World)

var scenes = map[string]sceneFunc{
	"sandbox": func(*World) {},
	"dunes":   buildDunes,
	"basin":   buildBasin,
	"deluge":  buildDeluge,
}

// SceneNames lists the available starting fields in stable order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownScene reports whether name selects one of the starting fields.
// Hosts check flag input with it; Reset itself treats unknown names as
// an empty field.
func KnownScene(name string) bool {
	_, ok := scenes[name]
	return ok
}

// buildDunes lays a rolling sand terrain along the bottom of the grid.
func buildDunes(w *World) {
	g := w.grid
	base := g.h / 5
	if base < 2 {
		base = 2
	}
	phase := float64(w.rng.IntN(64)) / 10
	for x := 0; x < g.w; x++ {
		crest := base + int(float64(base)*0.6*math.Sin(phase+float64(x)/14))
		crest += w.rng.IntN(3)
		if crest < 1 {
			crest = 1
		}
		for dy := 0; dy < crest && dy < g.h; dy++ {
			g.Set(x, g.h-1-dy, Sand)
		}
	}
}

// buildBasin walls off a stone tub holding a ragged block of water.
func buildBasin(w *World) {
	g := w.grid
	x0 := g.w / 6
	x1 := g.w - 1 - g.w/6
	fy := g.h - 1 - g.h/10
	depth := g.h / 4
	if depth < 2 {
		depth = 2
	}
	for x := x0; x <= x1; x++ {
		g.Set(x, fy, Stone)
	}
	for dy := 0; dy <= depth; dy++ {
		g.Set(x0, fy-dy, Stone)
		g.Set(x1, fy-dy, Stone)
	}
	for y := fy - 1; y > fy-depth; y-- {
		for x := x0 + 1; x < x1; x++ {
			if w.rng.IntN(8) != 0 {
				g.Set(x, y, Water)
			}
		}
	}
}

// buildDeluge pours a water slab over a cracked stone shelf, with gravel
// scattered on the floor below.
func buildDeluge(w *World) {
	g := w.grid
	shelfY := g.h / 2
	gap := g.w/2 - g.w/16 + w.rng.IntN(g.w/8+1)
	for x := 0; x < g.w; x++ {
		if x >= gap-2 && x <= gap+2 {
			continue
		}
		g.Set(x, shelfY, Stone)
	}
	for y := g.h / 8; y < g.h/4; y++ {
		for x := g.w / 4; x < g.w-g.w/4; x++ {
			g.Set(x, y, Water)
		}
	}
	for i := 0; i < g.w/10; i++ {
		x := w.rng.IntN(g.w)
		g.Set(x, g.h-1, Gravel)
		g.Set(x, g.h-2, Gravel)
	}
}
