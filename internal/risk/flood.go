package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

// FloodRisk scores flood risk from 24h rainfall, the 48h forecast and the
// region's flood vulnerability. Score is monotonically non-decreasing in
// rainfall and capped at 98, the highest ceiling of any category.
func (e *Engine) FloodRisk(m *model.RainfallMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskFlood, "missing rainfall metrics")
		return Fallback(model.RiskFlood)
	}
	if !finite(m.Rainfall24hMM, m.Forecast48hMM, m.Confidence) {
		warnFallback(model.RiskFlood, "non-finite rainfall metrics")
		return Fallback(model.RiskFlood)
	}

	rainfall := nonNegative(m.Rainfall24hMM)
	forecast := nonNegative(m.Forecast48hMM)

	var base float64
	switch {
	case rainfall > 100:
		base = 80 + min(20, (rainfall-100)/5)
	case rainfall > 50:
		base = 55 + min(25, (rainfall-50)/2)
	case rainfall > 25:
		base = 35 + min(20, rainfall-25)
	default:
		base = max(10, rainfall/2)
	}

	forecastBoost := min(25, forecast/4)
	locationBoost := locationVulnerability(profile, model.RiskFlood)
	confidenceAdj := m.Confidence * 10

	total := base + forecastBoost + locationBoost + confidenceAdj
	score := clampScore(total, floodCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskFlood,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: m.Confidence,
		Factors: map[string]float64{
			"current_rainfall":       rainfall,
			"forecast_rainfall":      forecast,
			"forecast_boost":         forecastBoost,
			"location_vulnerability": locationBoost,
			"data_confidence":        confidenceAdj,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
