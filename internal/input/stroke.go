// Package input turns pointer motion into grid cells to paint.
package input

// Point is a cell coordinate on the simulation grid.
type Point struct {
	X, Y int
}

// Line returns the cells on the straight segment from a to b, both endpoints
// included, using integer error accumulation so strokes have no gaps.
func Line(a, b Point) []Point {
	dx := absInt(b.X - a.X)
	dy := -absInt(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	pts := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Stroke tracks successive pointer cells while a button is held and yields
// the interpolated cells between them.
type Stroke struct {
	prev    Point
	hasPrev bool
}

// Move records the pointer at p and returns the cells covered since the
// previous call. The first call of a stroke returns just p.
func (s *Stroke) Move(p Point) []Point {
	if !s.hasPrev {
		s.prev = p
		s.hasPrev = true
		return []Point{p}
	}
	pts := Line(s.prev, p)
	s.prev = p
	return pts
}

// End finishes the stroke; the next Move starts a fresh one.
func (s *Stroke) End() {
	s.hasPrev = false
}

// Brush expands a stroke point into a square footprint.
type Brush struct {
	Radius int
}

// Each calls fn for every cell in the footprint centered on p. A radius of
// zero paints the single cell, radius one the classic 3x3 block.
func (b Brush) Each(p Point, fn func(x, y int)) {
	r := b.Radius
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			fn(p.X+dx, p.Y+dy)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
