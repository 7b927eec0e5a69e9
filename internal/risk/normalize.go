package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

// clampScore truncates a raw score to an integer and clamps it to
// [0, ceiling]. Applied as the final step of every category function.
func clampScore(raw float64, ceiling int) int {
	if raw < 0 {
		return 0
	}
	s := int(raw)
	if s > ceiling {
		return ceiling
	}
	return s
}

// ScoreToLevel maps a score to the canonical five-band severity level.
// Band lower edges are closed: a score of exactly 20 is LOW, not VERY_LOW.
// Consumers must use this mapping and never re-derive levels themselves.
func ScoreToLevel(score int) model.Level {
	switch {
	case score < 20:
		return model.LevelVeryLow
	case score < 40:
		return model.LevelLow
	case score < 60:
		return model.LevelMedium
	case score < 80:
		return model.LevelHigh
	default:
		return model.LevelCritical
	}
}

// AggregateConfidence returns the mean confidence across assessments,
// or zero for an empty slice.
func AggregateConfidence(assessments []model.RiskAssessment) float64 {
	if len(assessments) == 0 {
		return 0
	}
	var sum float64
	for _, a := range assessments {
		sum += a.Confidence
	}
	return sum / float64(len(assessments))
}
