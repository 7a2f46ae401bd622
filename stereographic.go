package stereo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EarthRadius is the default spherical earth radius in km.
const EarthRadius = 6371.229

// Tolerance gates every singular branch of the forward and inverse
// transforms.
const Tolerance = 1.0e-6

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Stereographic is a stereographic projection of a spherical earth onto the
// plane tangent to it at (latt, lont), which is also the origin of the
// projection coordinate system. See Snyder, Map Projections used by the
// USGS, Bulletin 1532, p 153.
//
// A Stereographic is immutable and safe for concurrent use. Use a Builder to
// derive a projection with different parameters.
type Stereographic struct {
	name           string
	defaultMapArea *orb.Bound

	// parameters as supplied, in degrees
	tangentLat       float64
	tangentLon       float64
	naturalOriginLat float64
	scaleFactor      float64
	isPolar          bool
	isNorth          bool

	earthRadius   float64 // km
	falseEasting  float64
	falseNorthing float64

	latt    float64 // radians
	lont    float64 // radians
	sinlatt float64
	coslatt float64
	scale   float64 // scaleFactor * earthRadius
}

// New constructs a projection from a parameterization.
func New(p Parameterization, opts ...Option) *Stereographic {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := p.resolve()
	if r.scaleFallback {
		Logger().Warn("stereo: polar scale factor is NaN, using 1.0",
			"naturalOriginLat", r.naturalOriginLat, "north", r.north)
	}
	if r.hemisphereUnset {
		Logger().Warn("stereo: polar hemisphere not set, using north",
			"tangentLat", r.tangentLat)
	}
	if o.name != "" {
		r.name = o.name
	}

	s := build(r, o)
	Logger().Debug("stereo: projection created",
		"name", s.name, "latt", s.tangentLat, "lont", s.tangentLon,
		"scale", s.scaleFactor, "polar", s.isPolar)
	return s
}

func build(r resolved, o options) *Stereographic {
	s := &Stereographic{
		name:             r.name,
		defaultMapArea:   o.defaultMapArea,
		tangentLat:       r.tangentLat,
		tangentLon:       r.tangentLon,
		naturalOriginLat: r.naturalOriginLat,
		scaleFactor:      r.scaleFactor,
		isPolar:          r.polar,
		isNorth:          r.north,
		earthRadius:      o.earthRadius,
		falseEasting:     o.falseEasting,
		falseNorthing:    o.falseNorthing,
	}
	s.latt = s.tangentLat * deg2rad
	s.lont = s.tangentLon * deg2rad
	s.sinlatt = math.Sin(s.latt)
	s.coslatt = math.Cos(s.latt)
	s.scale = s.scaleFactor * s.earthRadius
	return s
}

// NewStereographic constructs a projection tangent at (latt, lont) degrees
// with the given scale factor at the tangent point, normally 1.0 but it may
// be reduced.
func NewStereographic(latt, lont, scale float64, opts ...Option) *Stereographic {
	return New(Oblique{TangentLat: latt, TangentLon: lont, Scale: scale}, opts...)
}

// NewTrueScale constructs a projection tangent at (latt, lont) whose scale
// factor is exactly 1 at latitude latTrue (degrees north).
func NewTrueScale(latt, lont, latTrue float64, opts ...Option) *Stereographic {
	return New(TrueScale{TangentLat: latt, TangentLon: lont, TrueScaleLat: latTrue}, opts...)
}

// NewPolar constructs a polar stereographic projection from the latitude of
// the natural origin latTS and the tangent point (latt, lont), computing the
// scale factor.
func NewPolar(latTS, latt, lont float64, h Hemisphere, opts ...Option) *Stereographic {
	return New(Polar{NaturalOriginLat: latTS, TangentLat: latt, TangentLon: lont, Hemisphere: h}, opts...)
}

// NewNorthPolar returns the default projection, tangent at the north pole
// with central meridian -105 and scale 1.
func NewNorthPolar(opts ...Option) *Stereographic {
	return NewStereographic(90, -105, 1, opts...)
}

// Name returns the display name.
func (s *Stereographic) Name() string { return s.name }

// TangentLat returns the tangent latitude in degrees.
func (s *Stereographic) TangentLat() float64 { return s.tangentLat }

// TangentLon returns the tangent longitude in degrees.
func (s *Stereographic) TangentLon() float64 { return s.tangentLon }

// NaturalOriginLat returns the latitude of the natural origin in degrees.
// It is zero for oblique projections.
func (s *Stereographic) NaturalOriginLat() float64 { return s.naturalOriginLat }

// Scale returns the scale factor at the tangent point.
func (s *Stereographic) Scale() float64 { return s.scaleFactor }

// EarthRadius returns the earth radius in km.
func (s *Stereographic) EarthRadius() float64 { return s.earthRadius }

// FalseEasting returns the x offset added to projected coordinates.
func (s *Stereographic) FalseEasting() float64 { return s.falseEasting }

// FalseNorthing returns the y offset added to projected coordinates.
func (s *Stereographic) FalseNorthing() float64 { return s.falseNorthing }

// IsPolar reports whether the projection was built from a Polar
// parameterization.
func (s *Stereographic) IsPolar() bool { return s.isPolar }

// IsNorth reports the hemisphere of a polar projection.
func (s *Stereographic) IsNorth() bool { return s.isNorth }

// DefaultMapArea returns the attached default extent, if any.
func (s *Stereographic) DefaultMapArea() (orb.Bound, bool) {
	if s.defaultMapArea == nil {
		return orb.Bound{}, false
	}
	return *s.defaultMapArea, true
}

func (s *Stereographic) String() string {
	return fmt.Sprintf("Stereographic{falseEasting=%v, falseNorthing=%v, scale=%v, earthRadius=%v, latt=%v, lont=%v}",
		s.falseEasting, s.falseNorthing, s.scale, s.earthRadius, s.tangentLat, s.tangentLon)
}

// Copy returns a new projection built from the same supplied parameters.
// The trigonometric cache is recomputed; the name and default map area are
// preserved.
func (s *Stereographic) Copy() *Stereographic {
	r := resolved{
		tangentLat:       s.tangentLat,
		tangentLon:       s.tangentLon,
		naturalOriginLat: s.naturalOriginLat,
		scaleFactor:      s.scaleFactor,
		polar:            s.isPolar,
		north:            s.isNorth,
		name:             s.name,
	}
	o := options{
		earthRadius:   s.earthRadius,
		falseEasting:  s.falseEasting,
		falseNorthing: s.falseNorthing,
	}
	if s.defaultMapArea != nil {
		b := *s.defaultMapArea
		o.defaultMapArea = &b
	}
	return build(r, o)
}

// Equal reports whether two projections transform identically: the earth
// radius, false origin, tangent point and effective scale must match bit for
// bit, and the default map areas must both be absent or equal.
//
// The polar flags and the natural origin latitude are not compared.
func (s *Stereographic) Equal(o *Stereographic) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if !sameBits(s.earthRadius, o.earthRadius) ||
		!sameBits(s.falseEasting, o.falseEasting) ||
		!sameBits(s.falseNorthing, o.falseNorthing) ||
		!sameBits(s.latt, o.latt) ||
		!sameBits(s.lont, o.lont) ||
		!sameBits(s.scale, o.scale) {
		return false
	}
	if (s.defaultMapArea == nil) != (o.defaultMapArea == nil) {
		return false
	}
	return s.defaultMapArea == nil || s.defaultMapArea.Equal(*o.defaultMapArea)
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

// CrossSeam reports whether the line between two projected points crosses
// a discontinuity of the projection. The stereographic plane has none, so it
// is always false.
//
// TODO: points mapped near the antipode of the tangent point are not
// treated as a seam; check whether lines through them should be.
func (s *Stereographic) CrossSeam(a, b MapCoords) bool {
	return false
}
