package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// fixedClock returns a clock pinned to the given month in 2025.
func fixedClock(m time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(2025, m, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestScoreToLevel(t *testing.T) {
	tests := []struct {
		score int
		want  model.Level
	}{
		{0, model.LevelVeryLow},
		{19, model.LevelVeryLow},
		{20, model.LevelLow}, // lower band edge is closed
		{39, model.LevelLow},
		{40, model.LevelMedium},
		{59, model.LevelMedium},
		{60, model.LevelHigh},
		{79, model.LevelHigh},
		{80, model.LevelCritical},
		{98, model.LevelCritical},
		{100, model.LevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreToLevel(tt.score), "score %d", tt.score)
	}
}

func TestScoreToLevelTotal(t *testing.T) {
	// Every score in [0,100] maps to exactly one of the five levels.
	valid := map[model.Level]bool{
		model.LevelVeryLow: true, model.LevelLow: true, model.LevelMedium: true,
		model.LevelHigh: true, model.LevelCritical: true,
	}
	for s := 0; s <= 100; s++ {
		assert.True(t, valid[ScoreToLevel(s)], "score %d", s)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		ceiling int
		want    int
	}{
		{"negative clamps to zero", -5, 95, 0},
		{"truncates fraction", 42.9, 95, 42},
		{"at ceiling", 95, 95, 95},
		{"above ceiling", 120, 95, 95},
		{"flood ceiling", 120, 98, 98},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampScore(tt.raw, tt.ceiling))
		})
	}
}

func TestAggregateConfidence(t *testing.T) {
	assert.Zero(t, AggregateConfidence(nil))

	as := []model.RiskAssessment{
		{Confidence: 0.8},
		{Confidence: 0.6},
	}
	assert.InDelta(t, 0.7, AggregateConfidence(as), 0.001)
}

func TestLocationVulnerability(t *testing.T) {
	t.Run("absent key uses category default", func(t *testing.T) {
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{}}
		assert.InDelta(t, 10.0, locationVulnerability(p, model.RiskFlood), 0.001)  // 0.5*20
		assert.InDelta(t, 4.5, locationVulnerability(p, model.RiskCyclone), 0.001) // 0.3*15
		assert.InDelta(t, 7.5, locationVulnerability(p, model.RiskAirQuality), 0.001)
	})

	t.Run("explicit zero contributes zero", func(t *testing.T) {
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0}}
		assert.Zero(t, locationVulnerability(p, model.RiskFlood))
	})

	t.Run("nil profile uses defaults", func(t *testing.T) {
		assert.InDelta(t, 10.0, locationVulnerability(nil, model.RiskFire), 0.001)
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.InDelta(t, 10.0, locationVulnerability(nil, model.RiskPopulation), 0.001)
	})
}

func TestSeasonalBoosts(t *testing.T) {
	assert.InDelta(t, 20.0, seasonalFireBoost(time.September), 0.001)
	assert.InDelta(t, 10.0, seasonalFireBoost(time.July), 0.001)
	assert.Zero(t, seasonalFireBoost(time.January))

	assert.InDelta(t, 15.0, seasonalDroughtBoost(time.May), 0.001)
	assert.Zero(t, seasonalDroughtBoost(time.October))

	assert.InDelta(t, 15.0, seasonalAirQualityBoost(time.June), 0.001)
	assert.Zero(t, seasonalAirQualityBoost(time.December))

	assert.InDelta(t, 12.0, seasonalWaterQualityBoost(time.February), 0.001)
	assert.Zero(t, seasonalWaterQualityBoost(time.May))
}
