package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const pollutionConfidence = 0.75

// PollutionRisk scores overall pollution impact from the composite pollution
// index, industrial vulnerability and population density.
func (e *Engine) PollutionRisk(m *model.PollutionMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskPollution, "missing pollution metrics")
		return Fallback(model.RiskPollution)
	}
	if !finite(m.OverallPollutionIndex) {
		warnFallback(model.RiskPollution, "non-finite pollution metrics")
		return Fallback(model.RiskPollution)
	}

	base := nonNegative(m.OverallPollutionIndex)

	locationBoost := locationVulnerability(profile, model.RiskPollution)
	densityImpact := min(20, profile.Density()/500)

	total := base + locationBoost + densityImpact
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskPollution,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: pollutionConfidence,
		Factors: map[string]float64{
			"overall_index":          base,
			"industrial_index":       m.IndustrialPollutionIndex,
			"location_vulnerability": locationBoost,
			"density_impact":         densityImpact,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
