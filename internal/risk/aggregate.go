package risk

import (
	"math"
	"sort"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

const maxPrimaryThreats = 3

// kindOrder indexes each category by declaration order for tie-breaking.
var kindOrder = func() map[model.RiskKind]int {
	m := make(map[model.RiskKind]int, len(model.RiskKinds))
	for i, k := range model.RiskKinds {
		m[k] = i
	}
	return m
}()

// Aggregate combines per-category assessments into an overall risk:
// confidence-weighted mean score, mean confidence, a coarse trend label,
// the top three threats by raw score (ties break in declaration order) and
// the share of categories backed by real observational data.
func Aggregate(assessments []model.RiskAssessment) model.OverallRisk {
	if len(assessments) == 0 {
		return model.OverallRisk{Level: ScoreToLevel(0), Trend: "decreasing"}
	}

	var weightedSum float64
	var realCount int
	for _, a := range assessments {
		weightedSum += float64(a.Score) * a.Confidence
		if a.DataQuality == model.DataReal {
			realCount++
		}
	}
	overall := weightedSum / float64(len(assessments))

	trend := "decreasing"
	switch {
	case overall > 60:
		trend = "increasing"
	case overall > 30:
		trend = "stable"
	}

	return model.OverallRisk{
		Score:                 int(math.Round(overall)),
		Level:                 ScoreToLevel(int(math.Round(overall))),
		Confidence:            AggregateConfidence(assessments),
		Trend:                 trend,
		PrimaryThreats:        primaryThreats(assessments),
		DataQualityPercentage: float64(realCount) / float64(len(assessments)) * 100,
	}
}

// primaryThreats returns up to three category kinds ordered by score
// descending, declaration order breaking ties.
func primaryThreats(assessments []model.RiskAssessment) []model.RiskKind {
	sorted := make([]model.RiskAssessment, len(assessments))
	copy(sorted, assessments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return kindOrder[sorted[i].Kind] < kindOrder[sorted[j].Kind]
	})

	n := min(maxPrimaryThreats, len(sorted))
	threats := make([]model.RiskKind, 0, n)
	for _, a := range sorted[:n] {
		threats = append(threats, a.Kind)
	}
	return threats
}
