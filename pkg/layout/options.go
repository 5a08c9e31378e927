package layout

// Default layout parameters.
const (
	DefaultNodesInCircle = 25
	DefaultMultiplierX   = 1.1
	DefaultMultiplierY   = 1.1
	DefaultNodesInXAxis  = 10
	DefaultRadiusDivider = 2
	DefaultRadiusGrowth  = 1.5
)

// Options tunes the placement heuristic. Zero fields take their defaults.
type Options struct {
	// NodesInCircle is the number of candidate angles per sweep.
	NodesInCircle int `toml:"nodes_in_circle"`
	// MultiplierX and MultiplierY scale the spiral anchor offsets, as ratios
	// of the world bounds.
	MultiplierX float64 `toml:"multiplier_x"`
	MultiplierY float64 `toml:"multiplier_y"`
	// NodesInXAxis sets the initial search radius to width/NodesInXAxis.
	NodesInXAxis int `toml:"nodes_in_x_axis"`
	// RadiusDivider sets the separation radius to initial radius/RadiusDivider.
	RadiusDivider float64 `toml:"radius_divider"`
	// RadiusGrowth multiplies the search radius after a full failed sweep.
	RadiusGrowth float64 `toml:"radius_growth"`
	// MaxRounds caps the number of radius growths per node. 0 means unbounded.
	MaxRounds int `toml:"max_rounds"`
}

// DefaultOptions returns the standard parameters.
func DefaultOptions() Options {
	return Options{
		NodesInCircle: DefaultNodesInCircle,
		MultiplierX:   DefaultMultiplierX,
		MultiplierY:   DefaultMultiplierY,
		NodesInXAxis:  DefaultNodesInXAxis,
		RadiusDivider: DefaultRadiusDivider,
		RadiusGrowth:  DefaultRadiusGrowth,
	}
}

// WithDefaults returns o with every non-positive field replaced by its
// default. MaxRounds keeps its value; only negatives are cleared.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.NodesInCircle <= 0 {
		o.NodesInCircle = d.NodesInCircle
	}
	if o.MultiplierX <= 0 {
		o.MultiplierX = d.MultiplierX
	}
	if o.MultiplierY <= 0 {
		o.MultiplierY = d.MultiplierY
	}
	if o.NodesInXAxis <= 0 {
		o.NodesInXAxis = d.NodesInXAxis
	}
	if o.RadiusDivider <= 0 {
		o.RadiusDivider = d.RadiusDivider
	}
	// Growth must be > 1 or a failed sweep would retry the same circle.
	if o.RadiusGrowth <= 1 {
		o.RadiusGrowth = d.RadiusGrowth
	}
	if o.MaxRounds < 0 {
		o.MaxRounds = 0
	}
	return o
}
