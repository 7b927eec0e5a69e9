package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const droughtConfidence = 0.80

// DroughtRisk scores drought risk from the external drought index,
// vegetation condition, recent drought history and the dry-season calendar.
func (e *Engine) DroughtRisk(m *model.DroughtMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskDrought, "missing drought metrics")
		return Fallback(model.RiskDrought)
	}
	if !finite(m.DroughtIndex, m.NDVI) {
		warnFallback(model.RiskDrought, "non-finite drought metrics")
		return Fallback(model.RiskDrought)
	}

	base := nonNegative(m.DroughtIndex)

	ndviPen := ndviPenalty(m.NDVI, 30, 20, 10)
	vegPen := vegetationPenalty(m.VegetationHealth, 15, 25)
	historyBoost := e.historicalDroughtBoost()
	seasonBoost := seasonalDroughtBoost(e.month())
	locationBoost := locationVulnerability(profile, model.RiskDrought)

	total := base + ndviPen + vegPen + historyBoost + seasonBoost + locationBoost
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskDrought,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: droughtConfidence,
		Factors: map[string]float64{
			"drought_index":          base,
			"ndvi":                   m.NDVI,
			"ndvi_penalty":           ndviPen,
			"vegetation_penalty":     vegPen,
			"historical_boost":       historyBoost,
			"seasonal_boost":         seasonBoost,
			"location_vulnerability": locationBoost,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
