package powder

import (
	"testing"

	"powder/internal/core"
)

// script feeds predetermined draws to the engine, looping when a list is
// exhausted, and counts everything consumed.
type script struct {
	bools []bool
	ints  []int
	nb    int
	ni    int
}

func (s *script) Bool() bool {
	v := false
	if len(s.bools) > 0 {
		v = s.bools[s.nb%len(s.bools)]
	}
	s.nb++
	return v
}

func (s *script) IntN(n int) int {
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[s.ni%len(s.ints)]
	}
	s.ni++
	if n <= 0 {
		return 0
	}
	return v % n
}

func TestSandFallsStraight(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(2, 0, Sand)
	rules := DefaultRules()
	rng := core.NewRNG(7)
	for tick := 1; tick <= 4; tick++ {
		Advance(g, rules, rng)
		if got := g.KindAt(2, tick); got != Sand {
			t.Fatalf("tick %d: want sand at (2,%d), got %v", tick, tick, got)
		}
		if g.CountKind(Sand) != 1 {
			t.Fatalf("tick %d: sand count changed to %d", tick, g.CountKind(Sand))
		}
	}
	Advance(g, rules, rng)
	if g.KindAt(2, 4) != Sand {
		t.Fatalf("sand must rest on the floor")
	}
}

func TestGrainStasis(t *testing.T) {
	for _, kind := range []Kind{Sand, Gravel} {
		g := NewGrid(3, 3)
		g.Set(1, 0, kind)
		for x := 0; x < 3; x++ {
			g.Set(x, 1, Stone)
		}
		src := &script{bools: []bool{true, false}}
		rules := DefaultRules()
		for tick := 0; tick < 10; tick++ {
			Advance(g, rules, src)
			if g.KindAt(1, 0) != kind {
				t.Fatalf("%v moved off its stone shelf on tick %d", kind, tick+1)
			}
		}
	}
}

func TestWaterSpreadsOverStone(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(3, 3)
		g.Set(0, 0, Water)
		for x := 0; x < 3; x++ {
			g.Set(x, 1, Stone)
		}
		return g
	}

	g := build()
	src := &script{bools: []bool{true}, ints: []int{0}}
	Advance(g, DefaultRules(), src)
	if g.KindAt(1, 0) != Water || g.KindAt(0, 0) != Empty {
		t.Fatalf("want water sliding right to (1,0); row 0 = %v %v %v",
			g.KindAt(0, 0), g.KindAt(1, 0), g.KindAt(2, 0))
	}
	if src.nb != 3 || src.ni != 2 {
		t.Fatalf("blocked water draws all hop randomness up front: %d bools, %d ints", src.nb, src.ni)
	}

	g = build()
	Advance(g, DefaultRules(), &script{bools: []bool{false}, ints: []int{0}})
	if g.KindAt(0, 0) != Water {
		t.Fatalf("leftward draws point off the grid, water must stay put")
	}
}

func TestWaterFallsFirst(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 0, Water)
	src := &script{}
	Advance(g, DefaultRules(), src)
	if g.KindAt(1, 1) != Water {
		t.Fatalf("water over an empty cell falls straight down")
	}
	if src.nb != 0 || src.ni != 0 {
		t.Fatalf("a clean fall consumes no randomness: %d bools, %d ints", src.nb, src.ni)
	}
}

func TestMassConservation(t *testing.T) {
	g := NewGrid(64, 48)
	rng := core.NewRNG(42)
	kinds := Paintable()
	for i := 0; i < 1200; i++ {
		g.Set(rng.IntN(64), rng.IntN(48), kinds[rng.IntN(len(kinds))])
	}
	var before [kindCount]int
	for k := Kind(0); k < kindCount; k++ {
		before[k] = g.CountKind(k)
	}
	rules := DefaultRules()
	for tick := 0; tick < 200; tick++ {
		Advance(g, rules, rng)
		for k := Kind(0); k < kindCount; k++ {
			if got := g.CountKind(k); got != before[k] {
				t.Fatalf("tick %d: %v count drifted from %d to %d", tick+1, k, before[k], got)
			}
		}
	}
}

func TestVisitedMarkersSettle(t *testing.T) {
	g := NewGrid(32, 24)
	rng := core.NewRNG(5)
	for i := 0; i < 300; i++ {
		g.Set(rng.IntN(32), rng.IntN(24), Sand)
	}
	for i := 0; i < 40; i++ {
		g.Set(rng.IntN(32), rng.IntN(24), Stone)
	}
	rules := DefaultRules()
	for tick := 0; tick < 50; tick++ {
		Advance(g, rules, rng)
		for i := range g.cells {
			if g.cells[i].visited != g.parity {
				t.Fatalf("tick %d: cell %d missed its visit", tick+1, i)
			}
		}
	}
}

func TestVisitedMarkersSettleWithWater(t *testing.T) {
	g := NewGrid(32, 24)
	rng := core.NewRNG(6)
	kinds := Paintable()
	for i := 0; i < 400; i++ {
		g.Set(rng.IntN(32), rng.IntN(24), kinds[rng.IntN(len(kinds))])
	}
	rules := DefaultRules()
	for tick := 0; tick < 50; tick++ {
		Advance(g, rules, rng)
		for i := range g.cells {
			if g.cells[i].kind != Empty && g.cells[i].visited != g.parity {
				t.Fatalf("tick %d: occupied cell %d missed its visit", tick+1, i)
			}
		}
	}
}

func TestWaterMovesOncePerTick(t *testing.T) {
	// A lone floor-row water with every direction draw pointing right
	// would chain across the row in one tick if a swapped-in cell were
	// ever re-processed. Each tick must rewrite exactly two cells, move
	// the water exactly one column and cost exactly one set of draws.
	g := NewGrid(5, 1)
	g.Set(0, 0, Water)
	rules := DefaultRules()
	rules.AlternateColumns = false
	src := &script{bools: []bool{true}}

	prev := make([]uint8, 5)
	curr := make([]uint8, 5)
	g.Kinds(prev)
	for tick := 1; tick <= 4; tick++ {
		Advance(g, rules, src)
		if g.KindAt(tick, 0) != Water {
			t.Fatalf("tick %d: water must sit at (%d,0)", tick, tick)
		}
		g.Kinds(curr)
		changed := 0
		for i := range curr {
			if curr[i] != prev[i] {
				changed++
			}
		}
		if changed != 2 {
			t.Fatalf("tick %d: one hop rewrites two cells, found %d changed", tick, changed)
		}
		if src.nb != 3*tick || src.ni != 2*tick {
			t.Fatalf("tick %d: the mover draws once per tick: %d bools, %d ints", tick, src.nb, src.ni)
		}
		copy(prev, curr)
	}

	Advance(g, rules, src)
	if g.KindAt(4, 0) != Water {
		t.Fatalf("water stops at the wall")
	}
	if src.nb != 15 || src.ni != 10 {
		t.Fatalf("a refused hop still costs one set of draws: %d bools, %d ints", src.nb, src.ni)
	}
}

func TestSinkThroughWater(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(3, 3)
		g.Set(1, 0, Sand)
		g.Set(0, 1, Stone)
		g.Set(1, 1, Water)
		g.Set(2, 1, Stone)
		for x := 0; x < 3; x++ {
			g.Set(x, 2, Stone)
		}
		return g
	}

	g := build()
	Advance(g, DefaultRules(), &script{})
	if g.KindAt(1, 1) != Sand || g.KindAt(1, 0) != Water {
		t.Fatalf("sand must trade places with the water below it")
	}

	g = build()
	rules := DefaultRules()
	rules.Behaviors[Sand].Sinks = false
	Advance(g, rules, &script{})
	if g.KindAt(1, 0) != Sand || g.KindAt(1, 1) != Water {
		t.Fatalf("with sinking off, sand rests on water")
	}
}

func TestSandTumbles(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(3, 2)
		g.Set(1, 0, Sand)
		g.Set(1, 1, Stone)
		return g
	}

	g := build()
	Advance(g, DefaultRules(), &script{bools: []bool{true}})
	if g.KindAt(2, 1) != Sand {
		t.Fatalf("a rightward draw tumbles sand to (2,1)")
	}

	g = build()
	Advance(g, DefaultRules(), &script{bools: []bool{false}})
	if g.KindAt(0, 1) != Sand {
		t.Fatalf("a leftward draw tumbles sand to (0,1)")
	}

	g = build()
	rules := DefaultRules()
	rules.Behaviors[Sand].Tumbles = false
	Advance(g, rules, &script{bools: []bool{true}})
	if g.KindAt(1, 0) != Sand {
		t.Fatalf("with tumbling off, blocked sand stays put")
	}
}

func TestGravelPilesWithoutSpreading(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 0, Gravel)
	g.Set(1, 1, Stone)
	src := &script{bools: []bool{true}}
	for tick := 0; tick < 5; tick++ {
		Advance(g, DefaultRules(), src)
	}
	if g.KindAt(1, 0) != Gravel {
		t.Fatalf("gravel must not roll off a single-cell pillar")
	}
	if src.nb != 0 {
		t.Fatalf("gravel never draws a direction, consumed %d bools", src.nb)
	}
}

func TestColumnOrderFollowsParity(t *testing.T) {
	// The parity must be preset before painting: Set stamps each cell
	// with the current parity, and a stamp equal to the post-flip value
	// would make the whole grid skip itself.
	build := func(parity bool) *Grid {
		g := NewGrid(5, 2)
		g.parity = parity
		g.Set(1, 0, Sand)
		g.Set(3, 0, Sand)
		for _, x := range []int{0, 1, 3, 4} {
			g.Set(x, 1, Stone)
		}
		return g
	}

	// Ascending scan: the left sand draws first and tumbles right into
	// the shared hollow at (2,1).
	g := build(false)
	src := &script{bools: []bool{true, false}}
	Advance(g, DefaultRules(), src)
	if g.KindAt(2, 1) != Sand || g.KindAt(1, 0) != Empty {
		t.Fatalf("ascending scan hands (2,1) to the left sand")
	}
	if g.KindAt(3, 0) != Sand {
		t.Fatalf("the right sand drew leftward onto an occupied cell and must stay")
	}
	if src.nb != 2 {
		t.Fatalf("both grains must draw a direction, consumed %d bools", src.nb)
	}

	// A preset parity makes the next tick scan descending: the right
	// sand draws first and takes the hollow from its side.
	g = build(true)
	src = &script{bools: []bool{false, true}}
	Advance(g, DefaultRules(), src)
	if g.KindAt(2, 1) != Sand || g.KindAt(3, 0) != Empty {
		t.Fatalf("descending scan hands (2,1) to the right sand")
	}
	if g.KindAt(1, 0) != Sand {
		t.Fatalf("the left sand drew rightward onto an occupied cell and must stay")
	}
	if src.nb != 2 {
		t.Fatalf("both grains must draw a direction, consumed %d bools", src.nb)
	}

	// With alternation disabled the scan stays ascending on every parity.
	g = build(true)
	rules := DefaultRules()
	rules.AlternateColumns = false
	src = &script{bools: []bool{true, false}}
	Advance(g, rules, src)
	if g.KindAt(2, 1) != Sand || g.KindAt(1, 0) != Empty {
		t.Fatalf("a fixed scan still hands (2,1) to the left sand")
	}
	if src.nb != 2 {
		t.Fatalf("both grains must draw a direction, consumed %d bools", src.nb)
	}
}

func TestSteppingStoneGate(t *testing.T) {
	build := func(bridge Kind) *Grid {
		g := NewGrid(3, 2)
		g.Set(2, 0, Water)
		g.Set(1, 1, bridge)
		g.Set(2, 1, Stone)
		return g
	}

	// The first two ints belong to the standing water at (1,1), scanned
	// first in the bottom row; the mover at (2,0) then draws distance 2
	// with a leftward sign and clears the stone below by hopping across
	// the water at (1,1).
	src := &script{ints: []int{0, 0, 1, 0}, bools: []bool{true, true, true, false, true, true}}
	g := build(Water)
	Advance(g, DefaultRules(), src)
	if g.KindAt(0, 1) != Water {
		t.Fatalf("a distance-2 hop over standing water lands at (0,1)")
	}
	if g.KindAt(2, 0) != Empty || g.KindAt(1, 1) != Water {
		t.Fatalf("the mover leaves and the stepping stone stays")
	}

	// Swap the bridge for stone: the leading drop-hop draws distance 2
	// leftward, its destination (0,1) is empty, and the stone at (1,1)
	// under the path refuses the gate. The other hops aim right off the
	// grid.
	g = build(Stone)
	src = &script{ints: []int{1, 0}, bools: []bool{false, true, true}}
	Advance(g, DefaultRules(), src)
	if g.KindAt(2, 0) != Water || g.KindAt(0, 1) != Empty {
		t.Fatalf("without water under the path the jump is refused")
	}
	if src.nb != 3 || src.ni != 2 {
		t.Fatalf("refused hops still draw up front: %d bools, %d ints", src.nb, src.ni)
	}
}

func TestSurfaceSkim(t *testing.T) {
	build := func() *Grid {
		g := NewGrid(6, 2)
		g.Set(0, 0, Water)
		g.Set(1, 0, Stone)
		g.Set(0, 1, Stone)
		g.Set(1, 1, Water)
		for x := 2; x < 6; x++ {
			g.Set(x, 1, Stone)
		}
		return g
	}

	skim := FromMap(map[string]string{"surface_skim": "true"}).Rules
	g := build()
	Advance(g, skim, &script{ints: []int{0}, bools: []bool{true}})
	if g.KindAt(2, 0) != Water || g.KindAt(0, 0) != Empty {
		t.Fatalf("skimming water slides along the surface to (2,0)")
	}

	g = build()
	Advance(g, DefaultRules(), &script{ints: []int{0}, bools: []bool{true}})
	if g.KindAt(0, 0) != Water {
		t.Fatalf("with the far hop dropping, the blocked row keeps its water")
	}
}

func TestWaterTrappedInColumn(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 0, Water)
	g.Set(0, 1, Stone)
	src := &script{}
	Advance(g, DefaultRules(), src)
	if g.KindAt(0, 0) != Water {
		t.Fatalf("nowhere to go in a one-column grid")
	}
	if src.nb != 3 || src.ni != 2 {
		t.Fatalf("hop draws happen even when every hop misses: %d bools, %d ints", src.nb, src.ni)
	}
}

func TestWaterSpreadsOnFloor(t *testing.T) {
	g := NewGrid(3, 1)
	g.Set(1, 0, Water)
	Advance(g, DefaultRules(), &script{bools: []bool{true}})
	if g.KindAt(2, 0) != Water {
		t.Fatalf("floor water can still slide sideways")
	}
}
