package powder

// Source supplies the randomness a tick consumes. Implementations must be
// deterministic under a fixed seed so runs can be replayed.
type Source interface {
	// Bool draws one uniformly random direction: true is rightward.
	Bool() bool
	// IntN draws a uniformly random int in [0, n).
	IntN(n int) int
}

// Advance runs exactly one tick over the grid under the given rules.
//
// Rows are scanned bottom-up so material that moved down lands in a row
// the scan has already passed and is not seen twice. The column direction
// follows the tick parity when AlternateColumns is set. A cell whose
// marker already equals the new parity was filled by an earlier swap this
// tick and is skipped; otherwise the cell is marked and its behavior is
// applied against the current, partially updated neighborhood.
func Advance(g *Grid, rules Rules, rng Source) {
	g.parity = !g.parity
	x0, dx := 0, 1
	if rules.AlternateColumns && !g.parity {
		x0, dx = g.w-1, -1
	}
	for y := g.h - 1; y >= 0; y-- {
		row := y * g.w
		for i, x := 0, x0; i < g.w; i, x = i+1, x+dx {
			c := &g.cells[row+x]
			if c.visited == g.parity {
				continue
			}
			c.visited = g.parity
			b := rules.Behaviors[c.kind]
			if !b.Falls {
				continue
			}
			if b.Flows {
				flow(g, rules, rng, x, y)
			} else {
				tumble(g, b, rng, x, y)
			}
		}
	}
}

// tumble moves a granular cell: straight down when the cell below accepts
// it, otherwise one randomly chosen lower diagonal if the behavior allows.
// Material on the bottom row has nowhere to go and draws nothing.
func tumble(g *Grid, b Behavior, rng Source, x, y int) {
	if y+1 >= g.h {
		return
	}
	src := y*g.w + x
	below := src + g.w
	if grainTarget(g.cells[below].kind, b) {
		g.swap(src, below)
		return
	}
	if !b.Tumbles {
		return
	}
	nx := x - 1
	if rng.Bool() {
		nx = x + 1
	}
	if nx < 0 || nx >= g.w {
		return
	}
	dst := below + nx - x
	if grainTarget(g.cells[dst].kind, b) {
		g.swap(src, dst)
	}
}

func grainTarget(k Kind, b Behavior) bool {
	return k == Empty || (b.Sinks && k == Water)
}

// flow moves a fluid cell: straight down into an Empty cell, otherwise
// the first satisfied hop. Every hop's randomness is drawn before any hop
// is evaluated so the stream advances identically whichever one lands.
func flow(g *Grid, rules Rules, rng Source, x, y int) {
	src := y*g.w + x
	if y+1 < g.h && g.cells[src+g.w].kind == Empty {
		g.swap(src, src+g.w)
		return
	}

	n := len(rules.Hops)
	if n > maxHops {
		n = maxHops
	}
	var (
		dist [maxHops]int
		left [maxHops]bool
	)
	for i := 0; i < n; i++ {
		h := rules.Hops[i]
		d := h.MinDist
		if h.MaxDist > h.MinDist {
			d += rng.IntN(h.MaxDist - h.MinDist + 1)
		}
		dist[i] = d
		left[i] = !rng.Bool()
	}

	kind := g.cells[src].kind
	for i := 0; i < n; i++ {
		h := rules.Hops[i]
		if (h.Drop || h.Gated) && y+1 >= g.h {
			continue
		}
		d := dist[i]
		if left[i] {
			d = -d
		}
		nx := x + d
		if nx < 0 || nx >= g.w {
			continue
		}
		ny := y
		if h.Drop {
			ny = y + 1
		}
		if g.cells[ny*g.w+nx].kind != Empty {
			continue
		}
		if h.Gated {
			gx := nx - 1
			if left[i] {
				gx = nx + 1
			}
			if gx < 0 || gx >= g.w || g.cells[(y+1)*g.w+gx].kind != kind {
				continue
			}
		}
		g.swap(src, ny*g.w+nx)
		return
	}
}
