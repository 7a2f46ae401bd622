package stereo

// CF convention attribute names and values used in the parameter export.
const (
	CFGridMappingName               = "grid_mapping_name"
	CFLongitudeOfProjectionOrigin   = "longitude_of_projection_origin"
	CFLatitudeOfProjectionOrigin    = "latitude_of_projection_origin"
	CFScaleFactorAtProjectionOrigin = "scale_factor_at_projection_origin"
	CFEarthRadius                   = "earth_radius"
	CFFalseEasting                  = "false_easting"
	CFFalseNorthing                 = "false_northing"
	CFUnits                         = "units"

	CFStereographic      = "stereographic"
	CFPolarStereographic = "polar_stereographic"
)

// Parameter is a named projection parameter, as written to a grid mapping
// variable.
type Parameter struct {
	Name  string
	Value any // float64 or string
}

// Parameters returns the resolved projection parameters in a stable order.
// The earth radius is given in meters. The false origin and its unit are only
// present when the false easting or northing is nonzero.
func (s *Stereographic) Parameters() []Parameter {
	gridMapping := CFStereographic
	if s.isPolar {
		gridMapping = CFPolarStereographic
	}
	params := []Parameter{
		{CFGridMappingName, gridMapping},
		{CFLongitudeOfProjectionOrigin, s.tangentLon},
		{CFLatitudeOfProjectionOrigin, s.tangentLat},
		{CFScaleFactorAtProjectionOrigin, s.scaleFactor},
		{CFEarthRadius, s.earthRadius * 1000},
	}
	if s.falseEasting != 0 || s.falseNorthing != 0 {
		params = append(params,
			Parameter{CFFalseEasting, s.falseEasting},
			Parameter{CFFalseNorthing, s.falseNorthing},
			Parameter{CFUnits, "km"},
		)
	}
	return params
}

// ParameterMap returns Parameters keyed by name.
func (s *Stereographic) ParameterMap() map[string]any {
	params := s.Parameters()
	m := make(map[string]any, len(params))
	for _, p := range params {
		m[p.Name] = p.Value
	}
	return m
}
