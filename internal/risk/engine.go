// Package risk implements the composite environmental risk scoring engine.
//
// Each category function maps raw earth-observation metrics plus a region's
// static vulnerability profile to a normalized RiskAssessment. The functions
// are pure given their inputs and an injected clock: identical inputs yield
// identical assessments, and no scoring call mutates shared state. Every
// public entry point returns a well-formed assessment; malformed or missing
// metrics degrade to the category's documented fallback instead of an error.
package risk

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// Per-category score ceilings. Scores never reach 100.
const (
	floodCeiling   = 98
	defaultCeiling = 95
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for seasonal adjustments and
// historical lookups. Intended for tests and reproducible replays.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine scores environmental risk per category. Safe for concurrent use:
// the only shared state is the read-only clock and the event log, which is
// internally synchronized and only read during scoring.
type Engine struct {
	history *EventLog
	now     func() time.Time
}

// NewEngine creates an Engine. A nil history disables drought-context boosts.
func NewEngine(history *EventLog, opts ...Option) *Engine {
	e := &Engine{history: history, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// month returns the current calendar month in UTC.
func (e *Engine) month() time.Month {
	return e.now().UTC().Month()
}

// finite reports whether every value is a usable float (no NaN or Inf).
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// nonNegative clamps negative raw inputs to zero. Negative rainfall, AQI or
// density readings are sensor artifacts, not signal.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// dataQuality maps the provider's real-data flag to a provenance tag.
func dataQuality(isReal bool) model.DataQuality {
	if isReal {
		return model.DataReal
	}
	return model.DataSimulated
}

// warnFallback logs a degraded scoring path at the category boundary.
func warnFallback(kind model.RiskKind, reason string) {
	zap.L().Warn("risk: falling back to default assessment",
		zap.String("category", string(kind)),
		zap.String("reason", reason),
	)
}
