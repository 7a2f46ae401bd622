package stereo

import (
	"math"
)

// polarEccentricity is the WGS84 first eccentricity used by the polar scale
// factor approximation. The projection itself stays spherical.
const polarEccentricity = 0.081819191

// Parameterization selects how the tangent point and scale factor of a
// projection are specified. It is resolved once by New.
type Parameterization interface {
	resolve() resolved
}

type resolved struct {
	tangentLat       float64
	tangentLon       float64
	naturalOriginLat float64
	scaleFactor      float64
	polar            bool
	north            bool
	name             string
	scaleFallback    bool // polar scale factor was NaN and replaced by 1
	hemisphereUnset  bool // polar hemisphere was HemisphereInvalid, north assumed
}

// Oblique is a tangent point with an explicit scale factor at the tangent
// point. A zero Scale means 1.0.
type Oblique struct {
	TangentLat float64 // degrees
	TangentLon float64 // degrees
	Scale      float64
}

func (o Oblique) resolve() resolved {
	scale := o.Scale
	if scale == 0 {
		scale = 1.0
	}
	return resolved{
		tangentLat:  o.TangentLat,
		tangentLon:  o.TangentLon,
		scaleFactor: scale,
		name:        "Stereographic",
	}
}

// TrueScale is a tangent point with the scale factor chosen so the scale is
// exactly 1 at TrueScaleLat.
//
// The scale at latitude lat is 2*k0/(1+sin(lat)), so k0 = (1+sin(lat))/2.
type TrueScale struct {
	TangentLat   float64 // degrees
	TangentLon   float64 // degrees
	TrueScaleLat float64 // degrees
}

func (t TrueScale) resolve() resolved {
	return resolved{
		tangentLat:  t.TangentLat,
		tangentLon:  t.TangentLon,
		scaleFactor: trueScaleFactor(t.TrueScaleLat),
		name:        "Stereographic",
	}
}

func trueScaleFactor(latTrue float64) float64 {
	return (1.0 + math.Sin(latTrue*deg2rad)) / 2.0
}

// Polar is the polar aspect, specified by the latitude of the natural origin
// (where the scale is 1) and the tangent point, conventionally a pole.
// A Hemisphere left at HemisphereInvalid is treated as HemisphereNorth and
// logged as a warning.
type Polar struct {
	NaturalOriginLat float64 // degrees
	TangentLat       float64 // degrees
	TangentLon       float64 // degrees
	Hemisphere       Hemisphere
}

func (p Polar) resolve() resolved {
	r := resolved{
		tangentLat:       p.TangentLat,
		tangentLon:       p.TangentLon,
		naturalOriginLat: p.NaturalOriginLat,
		polar:            true,
		north:            p.Hemisphere != HemisphereSouth,
		name:             "PolarStereographic",
		hemisphereUnset:  p.Hemisphere != HemisphereNorth && p.Hemisphere != HemisphereSouth,
	}
	if p.NaturalOriginLat == 90 || p.NaturalOriginLat == -90 {
		r.scaleFactor = 1.0
		return r
	}
	k0 := polarScaleFactor(p.NaturalOriginLat*deg2rad, r.north)
	if math.IsNaN(k0) {
		r.scaleFactor = 1.0
		r.scaleFallback = true
		return r
	}
	r.scaleFactor = k0
	return r
}

// polarScaleFactor returns k0 for a polar stereographic projection whose
// natural origin is at latTS (radians), following the OGP guidance note 7-2
// ellipsoidal formula. The result may be NaN.
func polarScaleFactor(latTS float64, north bool) float64 {
	const e = polarEccentricity
	sinLat := math.Sin(latTS)
	root := (1 + e*sinLat) / (1 - e*sinLat)

	var tf float64
	if north {
		tf = math.Tan(math.Pi/4-latTS/2) * math.Pow(root, e/2)
	} else {
		tf = math.Tan(math.Pi/4+latTS/2) / math.Pow(root, e/2)
	}

	mf := math.Cos(latTS) / math.Sqrt(1-e*e*sinLat*sinLat)
	k90 := math.Sqrt(math.Pow(1+e, 1+e) * math.Pow(1-e, 1-e))
	return mf * k90 / (2 * tf)
}
