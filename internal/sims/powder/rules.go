package powder

// Behavior describes how one material kind moves during a tick.
type Behavior struct {
	// Falls drops the material straight down when the cell below accepts it.
	Falls bool
	// Sinks lets a drop or tumble displace Water instead of resting on it.
	Sinks bool
	// Tumbles lets a blocked drop roll to one randomly chosen lower diagonal.
	Tumbles bool
	// Flows spreads a blocked drop laterally through the hop table.
	Flows bool
}

// Hop is one lateral spreading candidate for a flowing material. The
// travel distance is drawn uniformly from [MinDist, MaxDist] and paired
// with a uniformly random direction. Drop aims one row below the source
// instead of the source row. Gated hops also require the cell one step
// short of the destination, on the row below, to already hold the moving
// material, so a jump cannot clear a solid obstacle in one go.
type Hop struct {
	MinDist int
	MaxDist int
	Drop    bool
	Gated   bool
}

// maxHops bounds the per-tick randomness buffer; hops beyond it are ignored.
const maxHops = 8

// Rules bundles the scan policy, per-kind behaviors and the fluid hop
// table driving one grid. The zero value moves nothing.
type Rules struct {
	// AlternateColumns flips the column scan direction every other tick,
	// keeping random lateral tie-breaks from drifting to one side.
	AlternateColumns bool

	// Behaviors is indexed by Kind.
	Behaviors [kindCount]Behavior

	// Hops are tried in order by flowing kinds; the first satisfied hop
	// wins. Only the first maxHops entries are consulted.
	Hops []Hop
}

// DefaultRules returns the classic behavior: sand sinks through water and
// tumbles off piles, gravel only sinks, water falls and then spreads.
func DefaultRules() Rules {
	return Rules{
		AlternateColumns: true,
		Behaviors: [kindCount]Behavior{
			Sand:   {Falls: true, Sinks: true, Tumbles: true},
			Gravel: {Falls: true, Sinks: true},
			Water:  {Falls: true, Flows: true},
		},
		Hops: []Hop{
			{MinDist: 1, MaxDist: 2, Drop: true, Gated: true},
			{MinDist: 1, MaxDist: 1},
			{MinDist: 2, MaxDist: 4, Drop: true, Gated: true},
		},
	}
}
