package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

// fallbackScores holds the fixed assessment returned when a category's
// metrics are missing or malformed. Values track the conservative defaults
// the dashboard has historically shown for data outages.
var fallbackScores = map[model.RiskKind]int{
	model.RiskFlood:        20,
	model.RiskFire:         15,
	model.RiskDrought:      25,
	model.RiskCyclone:      10,
	model.RiskAirQuality:   45,
	model.RiskWaterQuality: 35,
	model.RiskPollution:    50,
	model.RiskPopulation:   55,
}

const fallbackConfidence = 0.5

// Fallback returns the documented fallback assessment for a category.
// The dashboard aggregates across all categories, so a failed fetch must
// degrade to this instead of propagating an error.
func Fallback(kind model.RiskKind) model.RiskAssessment {
	score, ok := fallbackScores[kind]
	if !ok {
		score = 20
	}
	return model.RiskAssessment{
		Kind:        kind,
		Level:       ScoreToLevel(score),
		Score:       score,
		Confidence:  fallbackConfidence,
		Factors:     map[string]float64{"fallback": 1},
		DataQuality: model.DataFallback,
	}
}
