package stereo_test

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tzneal/stereo"
)

func TestTrueScaleFactory(t *testing.T) {
	p := stereo.NewTrueScale(45, -100, 60)
	latTrue := 60.0
	want := (1 + math.Sin(latTrue*(math.Pi/180))) / 2
	if math.Abs(p.Scale()-want) > 1e-15 {
		t.Fatalf("expected scale %v, got %v", want, p.Scale())
	}
	if math.Abs(p.Scale()-0.9330) > 1e-4 {
		t.Fatalf("expected scale ~0.9330, got %v", p.Scale())
	}
	if p.TangentLat() != 45 || p.TangentLon() != -100 {
		t.Fatalf("expected tangent point (45, -100), got (%v, %v)", p.TangentLat(), p.TangentLon())
	}
	if p.IsPolar() {
		t.Fatal("true scale projection should not be polar")
	}
}

func TestObliqueDefaultScale(t *testing.T) {
	p := stereo.New(stereo.Oblique{TangentLat: 30, TangentLon: 10})
	if p.Scale() != 1.0 {
		t.Fatalf("expected default scale 1.0, got %v", p.Scale())
	}
	if p.EarthRadius() != stereo.EarthRadius {
		t.Fatalf("expected default earth radius %v, got %v", stereo.EarthRadius, p.EarthRadius())
	}
	if p.Name() != "Stereographic" {
		t.Fatalf("expected name Stereographic, got %q", p.Name())
	}
}

func TestDefaultNorthPolar(t *testing.T) {
	p := stereo.NewNorthPolar()
	want := stereo.NewStereographic(90, -105, 1.0)
	if !p.Equal(want) {
		t.Fatalf("expected %s, got %s", want, p)
	}
	if !stereo.DefaultNorthPolar.Equal(want) {
		t.Fatalf("expected DefaultNorthPolar %s, got %s", want, stereo.DefaultNorthPolar)
	}
}

func TestDefaultSouthPolar(t *testing.T) {
	p := stereo.DefaultSouthPolar
	if !p.IsPolar() || p.IsNorth() {
		t.Fatal("expected a south polar projection")
	}
	if p.Scale() != 1.0 || p.TangentLat() != -90 || p.TangentLon() != 0 {
		t.Fatalf("unexpected parameters %s", p)
	}
	if p.Name() != "SouthPolarStereographic" {
		t.Fatalf("expected name SouthPolarStereographic, got %q", p.Name())
	}
}

func TestPolarScaleFactor(t *testing.T) {
	tests := []struct {
		name  string
		latTS float64
		latt  float64
		h     stereo.Hemisphere
		want  float64
	}{
		{"north pole true scale", 90, 90, stereo.HemisphereNorth, 1.0},
		{"south pole true scale", -90, -90, stereo.HemisphereSouth, 1.0},
		{"north 70", 70, 90, stereo.HemisphereNorth, 0.9698581903263978},
		{"south 70", -70, -90, stereo.HemisphereSouth, 0.9698581903263978},
		{"north 60", 60, 90, stereo.HemisphereNorth, 0.9330690717365745},
		{"equator", 0, 90, stereo.HemisphereNorth, 0.5016782776311322},
		{"NaN falls back to 1", math.NaN(), 90, stereo.HemisphereNorth, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := stereo.NewPolar(tt.latTS, tt.latt, 0, tt.h)
			if math.Abs(p.Scale()-tt.want) > 1e-12 {
				t.Errorf("expected scale %v, got %v", tt.want, p.Scale())
			}
			if !p.IsPolar() {
				t.Error("expected polar projection")
			}
			if p.IsNorth() != (tt.h == stereo.HemisphereNorth) {
				t.Errorf("expected IsNorth %v", tt.h == stereo.HemisphereNorth)
			}
		})
	}
}

func TestPolarUnsetHemisphere(t *testing.T) {
	unset := stereo.New(stereo.Polar{NaturalOriginLat: 70, TangentLat: 90})
	north := stereo.NewPolar(70, 90, 0, stereo.HemisphereNorth)
	if !unset.IsNorth() {
		t.Fatal("expected an unset hemisphere to mean north")
	}
	if unset.Scale() != north.Scale() {
		t.Fatalf("expected scale %v, got %v", north.Scale(), unset.Scale())
	}
}

func TestPolarNorthExactlyOne(t *testing.T) {
	p := stereo.NewPolar(90, 90, -45, stereo.HemisphereNorth)
	if p.Scale() != 1.0 {
		t.Fatalf("expected scale exactly 1.0, got %v", p.Scale())
	}
	if p.NaturalOriginLat() != 90 {
		t.Fatalf("expected natural origin 90, got %v", p.NaturalOriginLat())
	}
	if p.Name() != "PolarStereographic" {
		t.Fatalf("expected name PolarStereographic, got %q", p.Name())
	}
}

func TestEqual(t *testing.T) {
	area := orb.Bound{Min: orb.Point{-1000, -1000}, Max: orb.Point{1000, 1000}}
	base := stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 20))

	tests := []struct {
		name  string
		other *stereo.Stereographic
		want  bool
	}{
		{"same parameters", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 20)), true},
		{"different name", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 20), stereo.WithName("x")), true},
		{"different latt", stereo.NewStereographic(61, -40, 0.97, stereo.WithFalseOrigin(10, 20)), false},
		{"different lont", stereo.NewStereographic(60, -41, 0.97, stereo.WithFalseOrigin(10, 20)), false},
		{"different scale", stereo.NewStereographic(60, -40, 0.98, stereo.WithFalseOrigin(10, 20)), false},
		{"different easting", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(11, 20)), false},
		{"different northing", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 21)), false},
		{"different radius", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 20), stereo.WithEarthRadius(6371)), false},
		{"one map area", stereo.NewStereographic(60, -40, 0.97, stereo.WithFalseOrigin(10, 20), stereo.WithDefaultMapArea(area)), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("expected Equal = %v, got %v", tt.want, got)
			}
		})
	}

	a := stereo.NewNorthPolar(stereo.WithDefaultMapArea(area))
	b := stereo.NewNorthPolar(stereo.WithDefaultMapArea(area))
	if !a.Equal(b) {
		t.Error("expected projections with equal map areas to be equal")
	}
	c := stereo.NewNorthPolar(stereo.WithDefaultMapArea(orb.Bound{Max: orb.Point{1, 1}}))
	if a.Equal(c) {
		t.Error("expected projections with different map areas to differ")
	}
}

// The polar flags are not part of Equal. A polar projection with scale 1 at
// the pole is indistinguishable from the oblique projection it transforms
// like.
func TestEqualIgnoresPolarFields(t *testing.T) {
	polar := stereo.NewPolar(90, 90, -105, stereo.HemisphereNorth)
	oblique := stereo.NewStereographic(90, -105, 1)
	if !polar.Equal(oblique) {
		t.Fatalf("expected %s to equal %s", polar, oblique)
	}
	if polar.IsPolar() == oblique.IsPolar() {
		t.Fatal("expected the polar flags to differ")
	}
}

func TestCopy(t *testing.T) {
	area := orb.Bound{Min: orb.Point{-50, -50}, Max: orb.Point{50, 50}}
	tests := []*stereo.Stereographic{
		stereo.NewStereographic(30, 120, 0.9, stereo.WithFalseOrigin(1, 2), stereo.WithEarthRadius(6000)),
		stereo.NewTrueScale(45, -100, 60, stereo.WithName("lambert-ish"), stereo.WithDefaultMapArea(area)),
		stereo.NewPolar(70, -90, 0, stereo.HemisphereSouth),
	}
	for _, p := range tests {
		c := p.Copy()
		if c == p {
			t.Fatal("expected a new projection")
		}
		if !c.Equal(p) {
			t.Errorf("expected copy %s to equal %s", c, p)
		}
		if c.Name() != p.Name() {
			t.Errorf("expected name %q, got %q", p.Name(), c.Name())
		}
		if c.IsPolar() != p.IsPolar() || c.IsNorth() != p.IsNorth() || c.NaturalOriginLat() != p.NaturalOriginLat() {
			t.Errorf("expected polar fields to be copied for %s", p)
		}
		pa, pok := p.DefaultMapArea()
		ca, cok := c.DefaultMapArea()
		if pok != cok || !pa.Equal(ca) {
			t.Errorf("expected map area %v, got %v", pa, ca)
		}
	}
}

func TestString(t *testing.T) {
	p := stereo.NewStereographic(45, -100, 1, stereo.WithFalseOrigin(10, 20), stereo.WithEarthRadius(1000))
	got := p.String()
	want := "Stereographic{falseEasting=10, falseNorthing=20, scale=1000, earthRadius=1000, latt=45, lont=-100}"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !strings.HasPrefix(stereo.NewNorthPolar().String(), "Stereographic{") {
		t.Fatal("unexpected String prefix")
	}
}

func TestCrossSeam(t *testing.T) {
	p := stereo.NewTrueScale(45, -100, 60)
	pts := []stereo.MapCoords{
		{0, 0},
		{-5000, 3000},
		{1e7, -1e7},
		{math.Inf(1), 0},
	}
	for _, a := range pts {
		for _, b := range pts {
			if p.CrossSeam(a, b) {
				t.Errorf("expected no seam between %v and %v", a, b)
			}
		}
	}
}
