package stereo

import "fmt"

// DefaultNorthPolar is tangent at the north pole with central meridian -105
// and scale 1.
var DefaultNorthPolar *Stereographic

// DefaultSouthPolar is tangent at the south pole with central meridian 0 and
// true scale at the pole.
var DefaultSouthPolar *Stereographic

func init() {
	var err error
	DefaultNorthPolar, err = NewBuilder().SetName("NorthPolarStereographic").Build()
	if err != nil {
		panic(fmt.Sprintf("error constructing north polar stereographic: %s", err))
	}
	DefaultSouthPolar = NewPolar(-90, -90, 0, HemisphereSouth, WithName("SouthPolarStereographic"))
}
