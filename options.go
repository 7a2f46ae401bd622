package stereo

import "github.com/paulmach/orb"

// Option configures a projection during construction.
//
// Example:
//
//	p := stereo.NewStereographic(60, -40, 1,
//		stereo.WithFalseOrigin(500, 500),
//		stereo.WithEarthRadius(6371))
type Option func(*options)

type options struct {
	earthRadius    float64
	falseEasting   float64
	falseNorthing  float64
	name           string
	defaultMapArea *orb.Bound
}

func defaultOptions() options {
	return options{
		earthRadius: EarthRadius,
	}
}

// WithFalseOrigin sets the false easting and northing, in the units of the
// earth radius (km by default). They are added to projected coordinates.
func WithFalseOrigin(falseEasting, falseNorthing float64) Option {
	return func(o *options) {
		o.falseEasting = falseEasting
		o.falseNorthing = falseNorthing
	}
}

// WithEarthRadius sets the radius of the spherical earth in km.
func WithEarthRadius(km float64) Option {
	return func(o *options) {
		o.earthRadius = km
	}
}

// WithName overrides the display name of the projection.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDefaultMapArea attaches a default extent, in projection coordinates.
// It takes part in Equal and is preserved by Copy.
func WithDefaultMapArea(b orb.Bound) Option {
	return func(o *options) {
		o.defaultMapArea = &b
	}
}
