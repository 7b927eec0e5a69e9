package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

// Confidence is high when active fires are directly observed, lower when
// the score rests on modeled fire weather alone.
const (
	fireConfidenceDetected = 0.95
	fireConfidenceModeled  = 0.75
)

// FireRisk scores wildfire risk from active-fire detections, vegetation
// condition and the dry-season calendar.
func (e *Engine) FireRisk(m *model.FireMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskFire, "missing fire metrics")
		return Fallback(model.RiskFire)
	}
	if !finite(m.FireRiskScore, m.NDVI) {
		warnFallback(model.RiskFire, "non-finite fire metrics")
		return Fallback(model.RiskFire)
	}

	var base, confidence float64
	if m.FireCount > 0 {
		base = 85 + min(15, float64(m.FireCount)*3)
		confidence = fireConfidenceDetected
	} else {
		base = nonNegative(m.FireRiskScore)
		confidence = fireConfidenceModeled
	}

	vegPenalty := vegetationPenalty(m.VegetationHealth, 20, 30)
	ndviPenalty := ndviPenalty(m.NDVI, 25, 15, 5)
	seasonBoost := seasonalFireBoost(e.month())
	locationBoost := locationVulnerability(profile, model.RiskFire)

	total := base + vegPenalty + ndviPenalty + seasonBoost + locationBoost
	score := clampScore(total, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskFire,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: confidence,
		Factors: map[string]float64{
			"active_fires":           float64(m.FireCount),
			"vegetation_penalty":     vegPenalty,
			"ndvi_penalty":           ndviPenalty,
			"seasonal_boost":         seasonBoost,
			"location_vulnerability": locationBoost,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}

// vegetationPenalty returns the additive penalty for degraded vegetation.
func vegetationPenalty(h model.VegetationHealth, poor, critical float64) float64 {
	switch h {
	case model.VegetationPoor:
		return poor
	case model.VegetationCritical:
		return critical
	default:
		return 0
	}
}

// ndviPenalty returns the additive penalty for low NDVI, banded at the
// 0.3/0.4/0.5 thresholds shared by the fire and drought categories.
func ndviPenalty(ndvi, under30, under40, under50 float64) float64 {
	switch {
	case ndvi < 0.3:
		return under30
	case ndvi < 0.4:
		return under40
	case ndvi < 0.5:
		return under50
	default:
		return 0
	}
}
