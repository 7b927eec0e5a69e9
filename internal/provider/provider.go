// Package provider supplies per-category environmental metrics for a
// region. The scoring engine never fetches data itself; callers fan out
// over a Provider and hand the resulting metrics to the engine.
package provider

import (
	"context"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// Provider fetches one category of raw metrics per call. Implementations
// return an error for unknown regions or failed fetches; callers degrade
// that category to its fallback assessment rather than failing the
// whole dashboard.
type Provider interface {
	Rainfall(ctx context.Context, loc *model.LocationProfile) (*model.RainfallMetrics, error)
	Fire(ctx context.Context, loc *model.LocationProfile) (*model.FireMetrics, error)
	Drought(ctx context.Context, loc *model.LocationProfile) (*model.DroughtMetrics, error)
	Cyclone(ctx context.Context, loc *model.LocationProfile) (*model.CycloneMetrics, error)
	AirQuality(ctx context.Context, loc *model.LocationProfile) (*model.AirQualityMetrics, error)
	WaterQuality(ctx context.Context, loc *model.LocationProfile) (*model.WaterQualityMetrics, error)
	Pollution(ctx context.Context, loc *model.LocationProfile) (*model.PollutionMetrics, error)
	Population(ctx context.Context, loc *model.LocationProfile) (*model.PopulationMetrics, error)
}
