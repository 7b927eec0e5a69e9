package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const populationConfidence = 0.80

// PopulationPressure scores the strain of settlement density on urban
// systems, adjusted for social vulnerability and growth trend. A negative
// growth trend reduces the score; the density term alone keeps it above the
// floor of the piecewise base.
func (e *Engine) PopulationPressure(m *model.PopulationMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskPopulation, "missing population metrics")
		return Fallback(model.RiskPopulation)
	}
	if !finite(m.PopulationDensityKM2, m.GrowthTrend, m.VulnerabilityIndex) {
		warnFallback(model.RiskPopulation, "non-finite population metrics")
		return Fallback(model.RiskPopulation)
	}

	density := nonNegative(m.PopulationDensityKM2)

	var base float64
	switch {
	case density > 10000:
		base = 75 + min(20, (density-10000)/500)
	case density > 5000:
		base = 55 + min(20, (density-5000)/250)
	case density > 2000:
		base = 35 + min(20, (density-2000)/150)
	default:
		base = max(10, density/200)
	}

	vulnerabilityAdj := m.VulnerabilityIndex / 100 * 20
	growthImpact := min(15, m.GrowthTrend*3)

	total := base + vulnerabilityAdj + growthImpact
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskPopulation,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: populationConfidence,
		Factors: map[string]float64{
			"density_km2":          density,
			"vulnerability_index":  m.VulnerabilityIndex,
			"vulnerability_adjust": vulnerabilityAdj,
			"growth_impact":        growthImpact,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
