// Package dashboard assembles the full per-region risk payload: raw
// metrics fanned out from the provider, one assessment per category,
// the aggregated overall risk, advisories and severe-risk alerts.
package dashboard

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/siga-angola/envrisk-cli/internal/advisory"
	"github.com/siga-angola/envrisk-cli/internal/model"
	"github.com/siga-angola/envrisk-cli/internal/provider"
	"github.com/siga-angola/envrisk-cli/internal/risk"
)

// Payload is the complete dashboard document for one region.
type Payload struct {
	Region      *model.LocationProfile `json:"region"`
	GeneratedAt time.Time              `json:"generated_at"`
	Assessments []model.RiskAssessment `json:"assessments"`
	Overall     model.OverallRisk      `json:"overall"`
	Advisories  []advisory.Advisory    `json:"advisories"`
	Metrics     *model.RegionMetrics   `json:"metrics"`
	Alerts      []Alert                `json:"alerts,omitempty"`
}

// Builder fetches metrics and runs the risk engine for a region.
type Builder struct {
	provider provider.Provider
	engine   *risk.Engine
	now      func() time.Time
}

// NewBuilder wires a provider and engine together. The optional clock
// override keeps payload timestamps deterministic in tests.
func NewBuilder(p provider.Provider, engine *risk.Engine, opts ...BuilderOption) *Builder {
	b := &Builder{provider: p, engine: engine, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock overrides the payload timestamp clock.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = now }
}

// Build assembles the dashboard payload for one region. Provider
// failures never fail the build: a missing category degrades to its
// fallback assessment inside the engine.
func (b *Builder) Build(ctx context.Context, loc *model.LocationProfile) (*Payload, error) {
	if loc == nil {
		return nil, eris.New("dashboard: nil region profile")
	}

	log := zap.L().With(
		zap.String("component", "dashboard.builder"),
		zap.String("region", loc.ID),
	)

	metrics := b.fetchMetrics(ctx, loc, log)

	assessments := []model.RiskAssessment{
		b.engine.FloodRisk(metrics.Rainfall, loc),
		b.engine.FireRisk(metrics.Fire, loc),
		b.engine.DroughtRisk(metrics.Drought, loc),
		b.engine.CycloneRisk(metrics.Cyclone, loc),
		b.engine.AirQualityRisk(metrics.AirQuality, loc),
		b.engine.WaterQualityRisk(metrics.WaterQuality, loc),
		b.engine.PollutionRisk(metrics.Pollution, loc),
		b.engine.PopulationPressure(metrics.Population, loc),
	}

	overall := risk.Aggregate(assessments)
	now := b.now().UTC()

	payload := &Payload{
		Region:      loc,
		GeneratedAt: now,
		Assessments: assessments,
		Overall:     overall,
		Advisories:  advisory.GenerateAll(assessments, loc, metrics),
		Metrics:     metrics,
		Alerts:      FromAssessments(loc, assessments, now),
	}

	log.Info("dashboard built",
		zap.Int("overall_score", overall.Score),
		zap.String("overall_level", string(overall.Level)),
		zap.Int("alerts", len(payload.Alerts)),
	)
	return payload, nil
}

// fetchMetrics fans the eight category fetches out concurrently. A
// failed fetch leaves its field nil and is only logged; the engine
// substitutes that category's fallback.
func (b *Builder) fetchMetrics(ctx context.Context, loc *model.LocationProfile, log *zap.Logger) *model.RegionMetrics {
	var metrics model.RegionMetrics
	g, ctx := errgroup.WithContext(ctx)

	fetch := func(category string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				log.Warn("metric fetch failed, category degrades to fallback",
					zap.String("category", category),
					zap.Error(err),
				)
			}
			return nil
		})
	}

	fetch("rainfall", func() (err error) {
		metrics.Rainfall, err = b.provider.Rainfall(ctx, loc)
		return err
	})
	fetch("fire", func() (err error) {
		metrics.Fire, err = b.provider.Fire(ctx, loc)
		return err
	})
	fetch("drought", func() (err error) {
		metrics.Drought, err = b.provider.Drought(ctx, loc)
		return err
	})
	fetch("cyclone", func() (err error) {
		metrics.Cyclone, err = b.provider.Cyclone(ctx, loc)
		return err
	})
	fetch("air_quality", func() (err error) {
		metrics.AirQuality, err = b.provider.AirQuality(ctx, loc)
		return err
	})
	fetch("water_quality", func() (err error) {
		metrics.WaterQuality, err = b.provider.WaterQuality(ctx, loc)
		return err
	})
	fetch("pollution", func() (err error) {
		metrics.Pollution, err = b.provider.Pollution(ctx, loc)
		return err
	})
	fetch("population", func() (err error) {
		metrics.Population, err = b.provider.Population(ctx, loc)
		return err
	})

	_ = g.Wait() // workers never return errors
	return &metrics
}
