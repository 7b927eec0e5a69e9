package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const airQualityConfidence = 0.85

// AirQualityRisk scores health risk from the air quality index, urban
// vulnerability and the dry-season burning calendar.
func (e *Engine) AirQualityRisk(m *model.AirQualityMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskAirQuality, "missing air quality metrics")
		return Fallback(model.RiskAirQuality)
	}
	if !finite(m.AirQualityIndex) {
		warnFallback(model.RiskAirQuality, "non-finite air quality metrics")
		return Fallback(model.RiskAirQuality)
	}

	aqi := nonNegative(m.AirQualityIndex)

	var base float64
	switch {
	case aqi > 150:
		base = 80 + min(20, (aqi-150)/5)
	case aqi > 100:
		base = 65 + min(15, (aqi-100)/4)
	case aqi > 50:
		base = 40 + min(25, (aqi-50)/2)
	default:
		base = max(10, aqi/5)
	}

	locationBoost := locationVulnerability(profile, model.RiskAirQuality)
	seasonBoost := seasonalAirQualityBoost(e.month())

	total := base + locationBoost + seasonBoost
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskAirQuality,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: airQualityConfidence,
		Factors: map[string]float64{
			"aqi":                    aqi,
			"pm25":                   m.PM25Estimate,
			"pm10":                   m.PM10Estimate,
			"location_vulnerability": locationBoost,
			"seasonal_boost":         seasonBoost,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
