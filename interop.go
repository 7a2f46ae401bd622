package stereo

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

var _ s2.Projection = (*Stereographic)(nil)

// Project converts a point on the sphere to a projected 2D point.
func (s *Stereographic) Project(pt s2.Point) r2.Point {
	return s.FromLatLng(s2.LatLngFromPoint(pt))
}

// Unproject converts a projected 2D point to a point on the sphere.
func (s *Stereographic) Unproject(pt r2.Point) s2.Point {
	return s2.PointFromLatLng(s.ToLatLng(pt))
}

// FromLatLng returns the LatLng projected into an R2 Point.
func (s *Stereographic) FromLatLng(ll s2.LatLng) r2.Point {
	x, y := s.Forward(ll.Lat.Degrees(), ll.Lng.Degrees())
	return r2.Point{X: x, Y: y}
}

// ToLatLng returns the LatLng projected from the given R2 Point.
func (s *Stereographic) ToLatLng(pt r2.Point) s2.LatLng {
	lat, lon := s.Inverse(pt.X, pt.Y)
	return s2.LatLngFromDegrees(lat, lon)
}

// Interpolate returns the point obtained by interpolating the given
// fraction of the distance along the line from A to B.
func (s *Stereographic) Interpolate(f float64, a, b r2.Point) r2.Point {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// WrapDistance reports the coordinate wrapping distance along each axis.
// The projection does not wrap, so both are zero.
func (s *Stereographic) WrapDistance() r2.Point {
	return r2.Point{}
}

// ToProjection returns an orb.Projection from orb.Point{lon, lat} in degrees
// to orb.Point{x, y}.
func (s *Stereographic) ToProjection() orb.Projection {
	return func(p orb.Point) orb.Point {
		x, y := s.Forward(p.Lat(), p.Lon())
		return orb.Point{x, y}
	}
}

// FromProjection returns an orb.Projection from orb.Point{x, y} to
// orb.Point{lon, lat} in degrees.
func (s *Stereographic) FromProjection() orb.Projection {
	return func(p orb.Point) orb.Point {
		lat, lon := s.Inverse(p.X(), p.Y())
		return orb.Point{lon, lat}
	}
}

// ProjectGeometry returns a copy of g, in lon/lat degrees, converted to
// projection coordinates. g is not modified.
func (s *Stereographic) ProjectGeometry(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), s.ToProjection())
}

// UnprojectGeometry returns a copy of g, in projection coordinates,
// converted to lon/lat degrees. g is not modified.
func (s *Stereographic) UnprojectGeometry(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), s.FromProjection())
}

// mapAreaSteps is the number of samples taken along each edge by MapArea.
const mapAreaSteps = 32

// MapArea returns the bound, in projection coordinates, of a lon/lat bound.
// The edges of b are sampled, so the result may be slightly small when an
// edge bulges between samples.
func (s *Stereographic) MapArea(b orb.Bound) orb.Bound {
	start := s.ToProjection()(b.Min)
	area := orb.Bound{Min: start, Max: start}
	width := b.Max.Lon() - b.Min.Lon()
	height := b.Max.Lat() - b.Min.Lat()
	for i := 0; i <= mapAreaSteps; i++ {
		f := float64(i) / mapAreaSteps
		lon := b.Min.Lon() + f*width
		lat := b.Min.Lat() + f*height
		for _, p := range [...]orb.Point{
			{lon, b.Min.Lat()},
			{lon, b.Max.Lat()},
			{b.Min.Lon(), lat},
			{b.Max.Lon(), lat},
		} {
			x, y := s.Forward(p.Lat(), p.Lon())
			area = area.Extend(orb.Point{x, y})
		}
	}
	return area
}
