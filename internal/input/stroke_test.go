package input

import (
	"slices"
	"testing"
)

func TestLineHorizontal(t *testing.T) {
	got := Line(Point{X: 1, Y: 2}, Point{X: 4, Y: 2})
	want := []Point{{1, 2}, {2, 2}, {3, 2}, {4, 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("horizontal line = %v, want %v", got, want)
	}
}

func TestLineSinglePoint(t *testing.T) {
	got := Line(Point{X: 3, Y: 3}, Point{X: 3, Y: 3})
	if len(got) != 1 || got[0] != (Point{X: 3, Y: 3}) {
		t.Fatalf("degenerate line = %v", got)
	}
}

func TestLineConnected(t *testing.T) {
	cases := []struct{ a, b Point }{
		{Point{0, 0}, Point{2, 5}},
		{Point{5, 1}, Point{0, 0}},
		{Point{-3, 4}, Point{4, -2}},
	}
	for _, tc := range cases {
		pts := Line(tc.a, tc.b)
		if pts[0] != tc.a || pts[len(pts)-1] != tc.b {
			t.Fatalf("line %v->%v missing an endpoint: %v", tc.a, tc.b, pts)
		}
		for i := 1; i < len(pts); i++ {
			dx := absInt(pts[i].X - pts[i-1].X)
			dy := absInt(pts[i].Y - pts[i-1].Y)
			if dx > 1 || dy > 1 {
				t.Fatalf("line %v->%v has a gap at step %d: %v", tc.a, tc.b, i, pts)
			}
		}
	}
}

func TestStrokeInterpolates(t *testing.T) {
	var s Stroke
	first := s.Move(Point{X: 0, Y: 0})
	if len(first) != 1 {
		t.Fatalf("a fresh stroke yields one cell, got %v", first)
	}
	second := s.Move(Point{X: 3, Y: 0})
	if len(second) != 4 || second[0] != (Point{X: 0, Y: 0}) || second[3] != (Point{X: 3, Y: 0}) {
		t.Fatalf("stroke must bridge the skipped cells, got %v", second)
	}
	s.End()
	third := s.Move(Point{X: 10, Y: 10})
	if len(third) != 1 || third[0] != (Point{X: 10, Y: 10}) {
		t.Fatalf("End must break the stroke, got %v", third)
	}
}

func TestBrushFootprint(t *testing.T) {
	var cells []Point
	Brush{Radius: 1}.Each(Point{X: 5, Y: 5}, func(x, y int) {
		cells = append(cells, Point{X: x, Y: y})
	})
	if len(cells) != 9 {
		t.Fatalf("radius 1 covers 9 cells, got %d", len(cells))
	}
	if !slices.Contains(cells, Point{X: 4, Y: 4}) || !slices.Contains(cells, Point{X: 6, Y: 6}) {
		t.Fatalf("footprint corners missing: %v", cells)
	}

	cells = cells[:0]
	Brush{Radius: 0}.Each(Point{X: 2, Y: 2}, func(x, y int) {
		cells = append(cells, Point{X: x, Y: y})
	})
	if len(cells) != 1 || cells[0] != (Point{X: 2, Y: 2}) {
		t.Fatalf("radius 0 paints the single cell, got %v", cells)
	}

	cells = cells[:0]
	Brush{Radius: -2}.Each(Point{}, func(x, y int) {
		cells = append(cells, Point{X: x, Y: y})
	})
	if len(cells) != 1 {
		t.Fatalf("negative radii clamp to a single cell, got %v", cells)
	}
}
