package risk

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

func TestFloodRisk(t *testing.T) {
	e := NewEngine(nil, WithClock(fixedClock(time.January)))

	t.Run("dry day with zero factors floors at 10", func(t *testing.T) {
		m := &model.RainfallMetrics{Rainfall24hMM: 0, Forecast48hMM: 0, Confidence: 0}
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0}}

		got := e.FloodRisk(m, p)
		assert.Equal(t, 10, got.Score)
		assert.Equal(t, model.LevelVeryLow, got.Level)
	})

	t.Run("extreme rainfall clamps at 98", func(t *testing.T) {
		m := &model.RainfallMetrics{Rainfall24hMM: 150, Forecast48hMM: 0, Confidence: 1.0, IsRealData: true}
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 1.0}}

		// base 80+min(20,10)=90, +0 forecast, +20 vulnerability, +10 confidence = 120
		got := e.FloodRisk(m, p)
		assert.Equal(t, 98, got.Score)
		assert.Equal(t, model.LevelCritical, got.Level)
		assert.Equal(t, model.DataReal, got.DataQuality)
	})

	t.Run("forecast boost is pre-clamped at 25", func(t *testing.T) {
		m := &model.RainfallMetrics{Rainfall24hMM: 0, Forecast48hMM: 400, Confidence: 0}
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0}}

		got := e.FloodRisk(m, p)
		assert.Equal(t, 35, got.Score) // 10 base + 25 capped boost
	})

	t.Run("negative rainfall treated as zero", func(t *testing.T) {
		m := &model.RainfallMetrics{Rainfall24hMM: -40, Confidence: 0}
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0}}

		got := e.FloodRisk(m, p)
		assert.Equal(t, 10, got.Score)
	})

	t.Run("monotonic in rainfall", func(t *testing.T) {
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0.4}}
		prev := -1
		for r := 0.0; r <= 200; r += 2.5 {
			got := e.FloodRisk(&model.RainfallMetrics{Rainfall24hMM: r, Confidence: 0.8}, p)
			assert.GreaterOrEqual(t, got.Score, prev, "rainfall %.1f", r)
			prev = got.Score
		}
	})

	t.Run("nil metrics fall back", func(t *testing.T) {
		got := e.FloodRisk(nil, &model.LocationProfile{})
		assert.Equal(t, 20, got.Score)
		assert.Equal(t, model.DataFallback, got.DataQuality)
		assert.InDelta(t, 0.5, got.Confidence, 0.001)
	})

	t.Run("NaN rainfall falls back", func(t *testing.T) {
		got := e.FloodRisk(&model.RainfallMetrics{Rainfall24hMM: math.NaN()}, nil)
		assert.Equal(t, model.DataFallback, got.DataQuality)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		m := &model.RainfallMetrics{Rainfall24hMM: 72, Forecast48hMM: 30, Confidence: 0.85}
		p := &model.LocationProfile{StaticRiskFactors: map[string]float64{"flood": 0.6}}

		first := e.FloodRisk(m, p)
		second := e.FloodRisk(m, p)
		assert.Equal(t, first, second)
	})
}
