package stereo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

var (
	// ErrInvalidRadius is returned by Builder.Build for a non-positive or
	// non-finite earth radius.
	ErrInvalidRadius = errors.New("earth radius must be greater than zero")
	// ErrInvalidScale is returned by Builder.Build for a non-positive or
	// non-finite scale factor.
	ErrInvalidScale = errors.New("scale factor must be greater than zero")
	// ErrLatitudeOutOfRange is returned by Builder.Build for a tangent
	// latitude outside [-90, 90].
	ErrLatitudeOutOfRange = errors.New("tangent latitude out of range")
)

// Builder assembles projection parameters one at a time, for callers that
// decode them field by field, and produces an immutable Stereographic.
// A Builder is not safe for concurrent use.
type Builder struct {
	r resolved
	o options
}

// NewBuilder returns a Builder holding the parameters of the default north
// polar projection.
func NewBuilder() *Builder {
	return From(NewNorthPolar())
}

// From returns a Builder seeded with the parameters of s.
func From(s *Stereographic) *Builder {
	c := s.Copy()
	return &Builder{
		r: resolved{
			tangentLat:       c.tangentLat,
			tangentLon:       c.tangentLon,
			naturalOriginLat: c.naturalOriginLat,
			scaleFactor:      c.scaleFactor,
			polar:            c.isPolar,
			north:            c.isNorth,
			name:             c.name,
		},
		o: options{
			earthRadius:    c.earthRadius,
			falseEasting:   c.falseEasting,
			falseNorthing:  c.falseNorthing,
			defaultMapArea: c.defaultMapArea,
		},
	}
}

// SetTangentLat sets the tangent latitude in degrees.
func (b *Builder) SetTangentLat(latt float64) *Builder {
	b.r.tangentLat = latt
	return b
}

// SetTangentLon sets the tangent longitude in degrees.
func (b *Builder) SetTangentLon(lont float64) *Builder {
	b.r.tangentLon = lont
	return b
}

// SetCentralMeridian is the same as SetTangentLon.
func (b *Builder) SetCentralMeridian(lont float64) *Builder {
	return b.SetTangentLon(lont)
}

// SetScale sets the scale factor at the tangent point.
func (b *Builder) SetScale(scale float64) *Builder {
	b.r.scaleFactor = scale
	return b
}

// SetFalseEasting sets the false easting.
func (b *Builder) SetFalseEasting(falseEasting float64) *Builder {
	b.o.falseEasting = falseEasting
	return b
}

// SetFalseNorthing sets the false northing.
func (b *Builder) SetFalseNorthing(falseNorthing float64) *Builder {
	b.o.falseNorthing = falseNorthing
	return b
}

// SetEarthRadius sets the earth radius in km.
func (b *Builder) SetEarthRadius(km float64) *Builder {
	b.o.earthRadius = km
	return b
}

// SetName sets the display name.
func (b *Builder) SetName(name string) *Builder {
	b.r.name = name
	return b
}

// SetDefaultMapArea sets the default extent in projection coordinates.
func (b *Builder) SetDefaultMapArea(area orb.Bound) *Builder {
	b.o.defaultMapArea = &area
	return b
}

// Build validates the parameters and returns a new projection. The Builder
// can be reused afterwards; later changes do not affect the result.
func (b *Builder) Build() (*Stereographic, error) {
	if err := b.validate(); err != nil {
		Logger().Warn("stereo: invalid projection parameters", "err", err)
		return nil, err
	}
	o := b.o
	if o.defaultMapArea != nil {
		area := *o.defaultMapArea
		o.defaultMapArea = &area
	}
	return build(b.r, o), nil
}

func (b *Builder) validate() error {
	if !(b.o.earthRadius > 0) || math.IsInf(b.o.earthRadius, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, b.o.earthRadius)
	}
	if !(b.r.scaleFactor > 0) || math.IsInf(b.r.scaleFactor, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, b.r.scaleFactor)
	}
	if !(b.r.tangentLat >= -90 && b.r.tangentLat <= 90) {
		return fmt.Errorf("%w: %v", ErrLatitudeOutOfRange, b.r.tangentLat)
	}
	return nil
}
