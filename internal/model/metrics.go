package model

import "time"

// VegetationHealth buckets NDVI-derived vegetation condition.
type VegetationHealth string

const (
	VegetationGood     VegetationHealth = "good"
	VegetationModerate VegetationHealth = "moderate"
	VegetationPoor     VegetationHealth = "poor"
	VegetationCritical VegetationHealth = "critical"
)

// RainfallMetrics holds precipitation observations for a region.
type RainfallMetrics struct {
	Rainfall24hMM float64   `json:"rainfall_24h_mm"`
	Forecast48hMM float64   `json:"forecast_48h_mm"`
	Intensity     string    `json:"intensity,omitempty"`
	Confidence    float64   `json:"confidence"`
	DataSource    string    `json:"data_source,omitempty"`
	UpdatedAt     time.Time `json:"last_updated"`
	IsRealData    bool      `json:"is_real_data"`
}

// FireMetrics holds active-fire detections and fire-weather indicators.
type FireMetrics struct {
	FireCount        uint             `json:"fire_count"`
	FireRiskScore    float64          `json:"fire_risk_score"`
	VegetationHealth VegetationHealth `json:"vegetation_health"`
	NDVI             float64          `json:"ndvi"`
	DataSource       string           `json:"data_source,omitempty"`
	UpdatedAt        time.Time        `json:"last_updated"`
	IsRealData       bool             `json:"is_real_data"`
}

// DroughtMetrics holds the composite drought index and vegetation state.
type DroughtMetrics struct {
	DroughtIndex     float64          `json:"drought_index"`
	NDVI             float64          `json:"ndvi"`
	VegetationHealth VegetationHealth `json:"vegetation_health"`
	DataSource       string           `json:"data_source,omitempty"`
	UpdatedAt        time.Time        `json:"last_updated"`
	IsRealData       bool             `json:"is_real_data"`
}

// CycloneMetrics holds tropical-system tracking data.
type CycloneMetrics struct {
	ActiveSystems uint      `json:"active_systems"`
	DataSource    string    `json:"data_source,omitempty"`
	UpdatedAt     time.Time `json:"last_updated"`
	IsRealData    bool      `json:"is_real_data"`
}

// AirQualityMetrics holds aerosol-derived air quality observations.
type AirQualityMetrics struct {
	AirQualityIndex  float64   `json:"air_quality_index"`
	PM25Estimate     float64   `json:"pm25_estimate"`
	PM10Estimate     float64   `json:"pm10_estimate"`
	PrimaryPollutant string    `json:"primary_pollutant,omitempty"`
	DataSource       string    `json:"data_source,omitempty"`
	UpdatedAt        time.Time `json:"last_updated"`
	IsRealData       bool      `json:"is_real_data"`
}

// WaterQualityMetrics holds surface-water quality observations.
type WaterQualityMetrics struct {
	PollutionIndex    float64   `json:"pollution_index"`
	TurbidityIndex    float64   `json:"turbidity_index"`
	PH                float64   `json:"ph,omitempty"`
	SafeForRecreation bool      `json:"safe_for_recreation"`
	DataSource        string    `json:"data_source,omitempty"`
	UpdatedAt         time.Time `json:"last_updated"`
	IsRealData        bool      `json:"is_real_data"`
}

// PollutionMetrics holds the composite urban pollution indices.
type PollutionMetrics struct {
	OverallPollutionIndex    float64   `json:"overall_pollution_index"`
	IndustrialPollutionIndex float64   `json:"industrial_pollution_index"`
	LightPollutionIndex      float64   `json:"light_pollution_index"`
	ParticulateMatter        float64   `json:"particulate_matter"`
	DataSource               string    `json:"data_source,omitempty"`
	UpdatedAt                time.Time `json:"last_updated"`
	IsRealData               bool      `json:"is_real_data"`
}

// PopulationMetrics holds settlement density and vulnerability estimates.
type PopulationMetrics struct {
	PopulationDensityKM2 float64   `json:"population_density_km2"`
	PopulationEstimate   uint64    `json:"population_estimate"`
	GrowthTrend          float64   `json:"growth_trend"`
	VulnerabilityIndex   float64   `json:"vulnerability_index"`
	SettlementType       string    `json:"settlement_type,omitempty"`
	DataSource           string    `json:"data_source,omitempty"`
	UpdatedAt            time.Time `json:"last_updated"`
	IsRealData           bool      `json:"is_real_data"`
}

// RegionMetrics bundles one fetch cycle of raw metrics for a region. Any
// field may be nil when the corresponding fetch failed; the engine
// substitutes that category's fallback assessment.
type RegionMetrics struct {
	Rainfall     *RainfallMetrics     `json:"rainfall,omitempty"`
	Fire         *FireMetrics         `json:"fire,omitempty"`
	Drought      *DroughtMetrics      `json:"drought,omitempty"`
	Cyclone      *CycloneMetrics      `json:"cyclone,omitempty"`
	AirQuality   *AirQualityMetrics   `json:"air_quality,omitempty"`
	WaterQuality *WaterQualityMetrics `json:"water_quality,omitempty"`
	Pollution    *PollutionMetrics    `json:"pollution,omitempty"`
	Population   *PopulationMetrics   `json:"population,omitempty"`
}
