// Package model defines the core domain types shared across the risk engine,
// the advisory generator and the dashboard layer.
package model

import "time"

// RiskKind identifies one hazard/quality dimension scored independently.
type RiskKind string

// Declaration order is load-bearing: primary-threat ties break in this order.
const (
	RiskFlood        RiskKind = "flood"
	RiskFire         RiskKind = "fire"
	RiskDrought      RiskKind = "drought"
	RiskCyclone      RiskKind = "cyclone"
	RiskAirQuality   RiskKind = "air_quality"
	RiskWaterQuality RiskKind = "water_quality"
	RiskPollution    RiskKind = "pollution"
	RiskPopulation   RiskKind = "population"
)

// RiskKinds lists every risk category in declaration order.
var RiskKinds = []RiskKind{
	RiskFlood, RiskFire, RiskDrought, RiskCyclone,
	RiskAirQuality, RiskWaterQuality, RiskPollution, RiskPopulation,
}

// Level is the discrete severity label derived from a score.
type Level string

const (
	LevelVeryLow  Level = "VERY_LOW"
	LevelLow      Level = "LOW"
	LevelMedium   Level = "MEDIUM"
	LevelHigh     Level = "HIGH"
	LevelCritical Level = "CRITICAL"
)

// DataQuality tags the provenance of the metrics behind an assessment.
type DataQuality string

const (
	DataReal      DataQuality = "real"
	DataSimulated DataQuality = "simulated"
	DataFallback  DataQuality = "fallback"
)

// RiskAssessment is the engine output for a single category. It is created
// fresh on every scoring call and never mutated afterwards.
type RiskAssessment struct {
	Kind        RiskKind           `json:"kind"`
	Level       Level              `json:"level"`
	Score       int                `json:"score"`
	Confidence  float64            `json:"confidence"`
	Factors     map[string]float64 `json:"factors,omitempty"`
	DataQuality DataQuality        `json:"data_quality"`
}

// OverallRisk aggregates the per-category assessments for a region.
type OverallRisk struct {
	Score                 int        `json:"score"`
	Level                 Level      `json:"level"`
	Confidence            float64    `json:"confidence"`
	Trend                 string     `json:"trend"`
	PrimaryThreats        []RiskKind `json:"primary_threats"`
	DataQualityPercentage float64    `json:"data_quality_percentage"`
}

// DroughtEvent is one entry in the historical drought log.
type DroughtEvent struct {
	Region   string    `json:"region"`
	Date     time.Time `json:"date"`
	Severity string    `json:"severity"`
}
