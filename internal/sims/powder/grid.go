package powder

// cell holds one material plus the marker the engine compares against the
// grid parity to tell whether the cell was already handled this tick.
type cell struct {
	kind    Kind
	visited bool
}

// Grid is a fixed-size row-major field of material cells. The parity flag
// flips once at the start of every tick.
type Grid struct {
	w, h   int
	cells  []cell
	parity bool
}

// NewGrid allocates an all-Empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// KindAt returns the material at (x, y), or Empty when out of bounds.
func (g *Grid) KindAt(x, y int) Kind {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.w+x].kind
}

// Occupied reports whether the cell at (x, y) holds material.
func (g *Grid) Occupied(x, y int) bool { return g.KindAt(x, y) != Empty }

// Set paints one cell. Empty always lands (erasing), any other kind lands
// only on an Empty cell, and out-of-bounds or blocked writes are ignored
// without error, matching best-effort brush input. The written cell
// adopts the current parity, the same state the last tick left behind.
func (g *Grid) Set(x, y int, k Kind) {
	if k >= kindCount || !g.InBounds(x, y) {
		return
	}
	i := y*g.w + x
	if k != Empty && g.cells[i].kind != Empty {
		return
	}
	g.cells[i] = cell{kind: k, visited: g.parity}
}

// Clear empties every cell and rewinds the parity flag.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{}
	}
	g.parity = false
}

// CountKind returns how many cells currently hold k.
func (g *Grid) CountKind(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].kind == k {
			n++
		}
	}
	return n
}

// Kinds writes every cell's material into dst as raw bytes, row-major,
// when dst is large enough.
func (g *Grid) Kinds(dst []uint8) {
	if len(dst) < len(g.cells) {
		return
	}
	for i := range g.cells {
		dst[i] = uint8(g.cells[i].kind)
	}
}

// swap exchanges the full contents of two cells, marker included.
func (g *Grid) swap(i, j int) {
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}
