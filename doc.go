/*
Package stereo implements the stereographic map projection of a spherical
earth, in both the oblique aspect (any tangent point) and the polar aspect
(scale set by a latitude of true scale).

Geographic coordinates are latitude and longitude in degrees, or s2.LatLng.
Projected coordinates are in the units of the earth radius, km unless
WithEarthRadius says otherwise.

	p := stereo.NewTrueScale(45, -100, 60)
	x, y := p.Forward(40, -105)
	lat, lon := p.Inverse(x, y)

Projections are immutable and safe for concurrent use. The batched
transforms ProjectSlices and UnprojectSlices work on float32 or float64
channels, and a Stereographic also satisfies s2.Projection.
*/
package stereo
