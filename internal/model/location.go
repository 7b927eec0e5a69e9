package model

// RegionKind distinguishes the two administrative levels.
type RegionKind string

const (
	RegionProvince     RegionKind = "PROVINCE"
	RegionMunicipality RegionKind = "MUNICIPALITY"
)

// Coordinates is a WGS84 point with elevation in meters.
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Elevation float64 `json:"elevation" yaml:"elevation"`
}

// LocationProfile holds the static reference attributes of a province or
// municipality. Profiles are loaded once and treated as read-only.
type LocationProfile struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Kind        RegionKind  `json:"kind" yaml:"kind"`
	Province    string      `json:"province,omitempty" yaml:"province,omitempty"`
	Capital     string      `json:"capital,omitempty" yaml:"capital,omitempty"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Population  uint64      `json:"population" yaml:"population"`
	AreaKM2     float64     `json:"area_km2" yaml:"area_km2"`

	// StaticRiskFactors weight raw metrics per category, each in [0,1].
	// Absent keys fall back to per-category defaults in the engine.
	StaticRiskFactors map[string]float64 `json:"static_risk_factors" yaml:"static_risk_factors"`

	EconomicActivity    string `json:"economic_activity" yaml:"economic_activity"`
	InfrastructureLevel string `json:"infrastructure_level" yaml:"infrastructure_level"`
	ClimateZone         string `json:"climate_zone" yaml:"climate_zone"`
}

// Density returns the population density in people per km². A zero or
// negative area yields zero rather than a division error.
func (p *LocationProfile) Density() float64 {
	if p == nil || p.AreaKM2 <= 0 {
		return 0
	}
	return float64(p.Population) / p.AreaKM2
}
