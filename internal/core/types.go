package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a grid simulation offers to generic hosts:
// deterministic reseeding, single-tick stepping and a row-major byte view
// of the current cells.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
