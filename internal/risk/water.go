package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const waterQualityConfidence = 0.80

// WaterQualityRisk scores surface-water degradation from the pollution
// index, coastal vulnerability, rainy-season runoff and population pressure
// on water systems. Density comes from the location profile; a profile with
// an invalid area contributes zero density rather than an error.
func (e *Engine) WaterQualityRisk(m *model.WaterQualityMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskWaterQuality, "missing water quality metrics")
		return Fallback(model.RiskWaterQuality)
	}
	if !finite(m.PollutionIndex, m.TurbidityIndex) {
		warnFallback(model.RiskWaterQuality, "non-finite water quality metrics")
		return Fallback(model.RiskWaterQuality)
	}

	base := nonNegative(m.PollutionIndex)

	locationBoost := locationVulnerability(profile, model.RiskWaterQuality)
	seasonBoost := seasonalWaterQualityBoost(e.month())
	densityImpact := min(15, profile.Density()/1000)

	total := base + locationBoost + seasonBoost + densityImpact
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskWaterQuality,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: waterQualityConfidence,
		Factors: map[string]float64{
			"pollution_index":        base,
			"turbidity":              m.TurbidityIndex,
			"location_vulnerability": locationBoost,
			"seasonal_boost":         seasonBoost,
			"density_impact":         densityImpact,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
