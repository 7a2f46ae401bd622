package stereo

import (
	"math"

	"github.com/golang/geo/s2"
)

// MapCoords is a point in projection coordinates, in the units of the earth
// radius.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// Forward converts a latitude and longitude in degrees to projection
// coordinates. A point within Tolerance of the antipode of the tangent point
// is moved slightly towards the tangent point so the result stays finite.
func (s *Stereographic) Forward(lat, lon float64) (x, y float64) {
	latR := lat * deg2rad
	lonR := lon * deg2rad
	// keep away from the singular point
	if math.Abs(latR+s.latt) <= Tolerance {
		latR = -s.latt * (1.0 - Tolerance)
	}

	sdlon := math.Sin(lonR - s.lont)
	cdlon := math.Cos(lonR - s.lont)
	sinlat := math.Sin(latR)
	coslat := math.Cos(latR)

	k := 2.0 * s.scale / (1.0 + s.sinlatt*sinlat + s.coslatt*coslat*cdlon)
	x = k*coslat*sdlon + s.falseEasting
	// the conversions stop the products being fused, so the tangent point
	// maps exactly onto the false origin
	y = k*(float64(s.coslatt*sinlat)-float64(s.sinlatt*coslat*cdlon)) + s.falseNorthing
	return x, y
}

// Inverse converts projection coordinates to a latitude and longitude in
// degrees. The longitude is not normalized.
func (s *Stereographic) Inverse(x, y float64) (lat, lon float64) {
	fromX := x - s.falseEasting
	fromY := y - s.falseNorthing

	rho := math.Sqrt(fromX*fromX + fromY*fromY)
	c := 2.0 * math.Atan2(rho, 2.0*s.scale)
	sinc := math.Sin(c)
	cosc := math.Cos(c)

	var phi float64
	if math.Abs(rho) < Tolerance {
		phi = s.latt
	} else {
		phi = math.Asin(cosc*s.sinlatt + fromY*sinc*s.coslatt/rho)
	}

	var lam float64
	switch {
	case math.Abs(fromX) < Tolerance && math.Abs(fromY) < Tolerance:
		lam = s.lont
	case math.Abs(s.coslatt) < Tolerance:
		if s.latt > 0 {
			lam = s.lont + math.Atan2(fromX, -fromY)
		} else {
			lam = s.lont + math.Atan2(fromX, fromY)
		}
	default:
		lam = s.lont + math.Atan2(fromX*sinc, rho*s.coslatt*cosc-fromY*sinc*s.sinlatt)
	}

	return phi * rad2deg, lam * rad2deg
}

// ConvertFromGeodetic converts geodetic coordinates (latitude and longitude)
// to projection coordinates (easting and northing).
func (s *Stereographic) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) MapCoords {
	x, y := s.Forward(geodeticCoordinates.Lat.Degrees(), geodeticCoordinates.Lng.Degrees())
	return MapCoords{Easting: x, Northing: y}
}

// ConvertToGeodetic converts projection coordinates (easting and northing)
// to geodetic coordinates (latitude and longitude).
func (s *Stereographic) ConvertToGeodetic(mapProjectionCoordinates MapCoords) s2.LatLng {
	lat, lon := s.Inverse(mapProjectionCoordinates.Easting, mapProjectionCoordinates.Northing)
	return s2.LatLngFromDegrees(lat, lon)
}

// ProjectPoints converts each geodetic point to projection coordinates.
func (s *Stereographic) ProjectPoints(pts []s2.LatLng) []MapCoords {
	out := make([]MapCoords, len(pts))
	for i, ll := range pts {
		out[i] = s.ConvertFromGeodetic(ll)
	}
	return out
}

// UnprojectPoints converts each projected point to geodetic coordinates.
func (s *Stereographic) UnprojectPoints(pts []MapCoords) []s2.LatLng {
	out := make([]s2.LatLng, len(pts))
	for i, mc := range pts {
		out[i] = s.ConvertToGeodetic(mc)
	}
	return out
}
