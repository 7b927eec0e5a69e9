package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

const (
	cycloneConfidenceQuiet  = 0.90
	cycloneConfidenceActive = 0.65
	cycloneQuietScore       = 10
	cycloneActiveBase       = 20
)

// CycloneRisk scores tropical-cyclone exposure. Angola sits outside the main
// South Indian Ocean cyclone belt, so with no active systems the score
// short-circuits to a fixed floor regardless of other inputs.
func (e *Engine) CycloneRisk(m *model.CycloneMetrics, profile *model.LocationProfile) model.RiskAssessment {
	if m == nil {
		warnFallback(model.RiskCyclone, "missing cyclone metrics")
		return Fallback(model.RiskCyclone)
	}

	if m.ActiveSystems == 0 {
		return model.RiskAssessment{
			Kind:       model.RiskCyclone,
			Level:      ScoreToLevel(cycloneQuietScore),
			Score:      cycloneQuietScore,
			Confidence: cycloneConfidenceQuiet,
			Factors: map[string]float64{
				"active_systems": 0,
			},
			DataQuality: dataQuality(m.IsRealData),
		}
	}

	locationBoost := locationVulnerability(profile, model.RiskCyclone)
	score := clampScore(cycloneActiveBase+locationBoost, defaultCeiling)

	return model.RiskAssessment{
		Kind:       model.RiskCyclone,
		Level:      ScoreToLevel(score),
		Score:      score,
		Confidence: cycloneConfidenceActive,
		Factors: map[string]float64{
			"active_systems":         float64(m.ActiveSystems),
			"location_vulnerability": locationBoost,
		},
		DataQuality: dataQuality(m.IsRealData),
	}
}
