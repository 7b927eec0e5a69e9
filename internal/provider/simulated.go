package provider

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// Climate-zone baseline rainfall in mm per 24h before seasonal scaling.
var climateRainfall = map[string]float64{
	"coastal":        45.0,
	"urban":          35.0,
	"industrial":     30.0,
	"suburban":       40.0,
	"rural":          50.0,
	"riverine":       55.0,
	"highland":       60.0,
	"coastal_forest": 70.0,
	"forest":         80.0,
	"plateau":        45.0,
	"desert":         5.0,
	"semi_arid":      15.0,
	"floodplain":     65.0,
}

const defaultRainfall = 40.0

// PM2.5 multipliers by dominant economic activity.
var activityPollution = map[string]float64{
	"industrial":      2.5,
	"oil_industrial":  3.0,
	"oil_commerce":    2.8,
	"port_industrial": 2.0,
	"port_commercial": 1.8,
	"commercial":      1.5,
	"urban":           1.8,
	"mixed":           1.4,
	"residential":     1.2,
	"agricultural":    1.1,
	"pastoral":        1.0,
	"tourism":         1.3,
}

// Additive water pollution impact by economic activity, on a 0-1 scale.
var activityWaterImpact = map[string]float64{
	"industrial":      0.6,
	"oil_industrial":  0.8,
	"oil_commerce":    0.7,
	"port_industrial": 0.7,
	"port_commercial": 0.5,
	"urban":           0.5,
	"commercial":      0.4,
	"mixed":           0.4,
	"residential":     0.3,
	"agricultural":    0.4,
	"pastoral":        0.2,
	"tourism":         0.3,
}

// Annual population growth adjustment by economic activity, percentage
// points on top of the 2.5% national baseline.
var activityGrowth = map[string]float64{
	"commercial":      0.8,
	"industrial":      0.5,
	"oil_industrial":  1.0,
	"oil_commerce":    1.0,
	"port_commercial": 0.7,
	"port_industrial": 0.6,
	"agricultural":    -0.5,
	"pastoral":        -1.0,
	"tourism":         1.2,
	"residential":     1.5,
	"mixed":           0.5,
}

// rainySeason reports whether a month falls in Angola's wet season
// (November through April).
func rainySeason(m time.Month) bool {
	return m <= time.April || m >= time.November
}

// Simulated generates plausible metrics from each region's static
// profile: climate-zone baselines scaled by the wet/dry season, with
// seeded random variation. All metrics carry is_real_data=false so the
// engine classifies them as simulated rather than real observations.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

var _ Provider = (*Simulated)(nil)

// SimulatedOption configures a Simulated provider.
type SimulatedOption func(*Simulated)

// WithSeed makes the generated variation reproducible.
func WithSeed(seed int64) SimulatedOption {
	return func(s *Simulated) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithNow overrides the clock used for seasonal adjustments.
func WithNow(now func() time.Time) SimulatedOption {
	return func(s *Simulated) { s.now = now }
}

// NewSimulated returns a simulated provider. Without WithSeed the
// variation differs per process; tests should always seed.
func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	zap.L().Debug("simulated provider ready", zap.String("component", "provider.simulated"))
	return s
}

// check validates the call before any generation happens.
func (s *Simulated) check(ctx context.Context, loc *model.LocationProfile) error {
	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "provider: context cancelled")
	}
	if loc == nil || loc.ID == "" {
		return eris.New("provider: unknown region")
	}
	return nil
}

// sample runs fn under the rng lock so concurrent category fetches stay
// safe and, under a fixed seed, deterministic per call order.
func (s *Simulated) sample(fn func(rng *rand.Rand)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rng)
}

func (s *Simulated) Rainfall(ctx context.Context, loc *model.LocationProfile) (*model.RainfallMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	base := climateRainfall[loc.ClimateZone]
	if base == 0 {
		base = defaultRainfall
	}
	if _, ok := loc.StaticRiskFactors["coastal"]; ok {
		base *= 1.2
	}
	if _, ok := loc.StaticRiskFactors["drought"]; ok {
		base *= 0.7
	}

	factor := 0.3
	if rainySeason(s.now().Month()) {
		factor = 2.5
	}

	var rainfall, forecast float64
	s.sample(func(rng *rand.Rand) {
		rainfall = math.Max(0, base+rng.NormFloat64()*base*0.3) * factor
		trend := []float64{-0.2, -0.1, 0, 0, 0.1, 0.2}[rng.Intn(6)]
		forecast = math.Max(0, rainfall*2*(1+trend))
	})

	return &model.RainfallMetrics{
		Rainfall24hMM: round1(rainfall),
		Forecast48hMM: round1(forecast),
		Intensity:     rainfallIntensity(rainfall),
		Confidence:    0.85,
		DataSource:    "GPM_IMERG_SIM",
		UpdatedAt:     s.now().UTC(),
		IsRealData:    false,
	}, nil
}

func (s *Simulated) Fire(ctx context.Context, loc *model.LocationProfile) (*model.FireMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	baseRisk := riskFactor(loc, "fire", 0.5)
	switch loc.EconomicActivity {
	case "agricultural", "pastoral":
		baseRisk = math.Min(1.0, baseRisk+0.3)
	}

	adj := 0.7
	if !rainySeason(s.now().Month()) {
		adj = 1.4
	}

	var count uint
	s.sample(func(rng *rand.Rand) {
		count = poisson(rng, baseRisk*10*adj*0.3)
	})

	ndvi := s.ndvi(loc)
	return &model.FireMetrics{
		FireCount:        count,
		FireRiskScore:    round1(baseRisk * 100 * adj),
		VegetationHealth: vegetationFor(ndvi),
		NDVI:             ndvi,
		DataSource:       "VIIRS_NOAA20_SIM",
		UpdatedAt:        s.now().UTC(),
		IsRealData:       false,
	}, nil
}

func (s *Simulated) Drought(ctx context.Context, loc *model.LocationProfile) (*model.DroughtMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	index := riskFactor(loc, "drought", 0.5) * 100
	if rainySeason(s.now().Month()) {
		index *= 0.8
	} else {
		index *= 1.5
	}
	index = math.Min(100, index)

	ndvi := s.ndvi(loc)
	return &model.DroughtMetrics{
		DroughtIndex:     round1(index),
		NDVI:             ndvi,
		VegetationHealth: vegetationFor(ndvi),
		DataSource:       "MODIS_NDVI_SIM",
		UpdatedAt:        s.now().UTC(),
		IsRealData:       false,
	}, nil
}

func (s *Simulated) Cyclone(ctx context.Context, loc *model.LocationProfile) (*model.CycloneMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	// Tropical systems only threaten coastal regions in the wet season,
	// and even then rarely.
	var active uint
	if rainySeason(s.now().Month()) && riskFactor(loc, "coastal", 0) >= 0.5 {
		s.sample(func(rng *rand.Rand) {
			if rng.Float64() < 0.15 {
				active = 1
			}
		})
	}

	return &model.CycloneMetrics{
		ActiveSystems: active,
		DataSource:    "GPM_STORM_SIM",
		UpdatedAt:     s.now().UTC(),
		IsRealData:    false,
	}, nil
}

func (s *Simulated) AirQuality(ctx context.Context, loc *model.LocationProfile) (*model.AirQualityMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	pm25 := s.basePM25(loc)
	if rainySeason(s.now().Month()) {
		pm25 *= 0.8 * 0.8 // rain scavenging plus better dispersion
	} else {
		pm25 *= 1.2
	}

	aqi := aqiFromPM25(pm25)
	return &model.AirQualityMetrics{
		AirQualityIndex:  round1(aqi),
		PM25Estimate:     round1(pm25),
		PM10Estimate:     round1(pm25 * 1.3),
		PrimaryPollutant: primaryPollutant(loc),
		DataSource:       "MODIS_VIIRS_SIM",
		UpdatedAt:        s.now().UTC(),
		IsRealData:       false,
	}, nil
}

func (s *Simulated) WaterQuality(ctx context.Context, loc *model.LocationProfile) (*model.WaterQualityMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	base := 0.3 + activityImpact(loc, activityWaterImpact, 0.3)
	switch loc.InfrastructureLevel {
	case "low":
		base += 0.2
	case "high":
		base -= 0.1
	}
	base = math.Max(0.1, math.Min(0.9, base))

	seasonal := 0.9
	if rainySeason(s.now().Month()) {
		seasonal = 1.2 // runoff
	}
	pollution := math.Min(1.0, base*seasonal*s.waterPollutionImpact(loc))
	turbidity := math.Min(1.0, pollution*0.8*seasonal)

	return &model.WaterQualityMetrics{
		PollutionIndex:    round1(pollution * 100),
		TurbidityIndex:    math.Round(turbidity*1000) / 1000,
		PH:                7.0 - pollution*0.8,
		SafeForRecreation: pollution < 0.5,
		DataSource:        "MODIS_AQUA_SIM",
		UpdatedAt:         s.now().UTC(),
		IsRealData:        false,
	}, nil
}

func (s *Simulated) Pollution(ctx context.Context, loc *model.LocationProfile) (*model.PollutionMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	pm25 := s.basePM25(loc)
	industrial := riskFactor(loc, "industrial", 0.2) * 100
	light := math.Min(100, loc.Density()/200)
	overall := math.Min(100, pm25*1.2+industrial*0.3+light*0.2)

	return &model.PollutionMetrics{
		OverallPollutionIndex:    round1(overall),
		IndustrialPollutionIndex: round1(industrial),
		LightPollutionIndex:      round1(light),
		ParticulateMatter:        round1(pm25),
		DataSource:               "SENTINEL5P_SIM",
		UpdatedAt:                s.now().UTC(),
		IsRealData:               false,
	}, nil
}

func (s *Simulated) Population(ctx context.Context, loc *model.LocationProfile) (*model.PopulationMetrics, error) {
	if err := s.check(ctx, loc); err != nil {
		return nil, err
	}

	density := loc.Density()
	growth := 2.5 + activityImpact(loc, activityGrowth, 0)

	vulnerability := 50.0
	switch loc.InfrastructureLevel {
	case "high":
		vulnerability -= 15
	case "low":
		vulnerability += 20
	}
	switch {
	case density > 10000:
		vulnerability += 15
	case density > 5000:
		vulnerability += 10
	}
	switch loc.EconomicActivity {
	case "agricultural", "pastoral":
		vulnerability += 10
	}
	vulnerability = math.Max(0, math.Min(100, vulnerability))

	return &model.PopulationMetrics{
		PopulationDensityKM2: math.Round(density),
		PopulationEstimate:   loc.Population,
		GrowthTrend:          growth,
		VulnerabilityIndex:   vulnerability,
		SettlementType:       settlementType(density),
		DataSource:           "SEDAC_GPW_SIM",
		UpdatedAt:            s.now().UTC(),
		IsRealData:           false,
	}, nil
}

// basePM25 derives a region's baseline PM2.5 from its economic activity
// and infrastructure quality.
func (s *Simulated) basePM25(loc *model.LocationProfile) float64 {
	pm25 := 15.0 * activityImpact(loc, activityPollution, 1.0)
	switch loc.InfrastructureLevel {
	case "low":
		pm25 *= 1.3
	case "high":
		pm25 *= 0.8
	}
	return pm25
}

// ndvi derives vegetation greenness from the drought factor and season.
func (s *Simulated) ndvi(loc *model.LocationProfile) float64 {
	ndvi := 0.75 - riskFactor(loc, "drought", 0.4)*0.4
	if !rainySeason(s.now().Month()) {
		ndvi -= 0.1
	}
	return math.Round(math.Max(0.05, math.Min(0.9, ndvi))*100) / 100
}

func (s *Simulated) waterPollutionImpact(loc *model.LocationProfile) float64 {
	switch loc.EconomicActivity {
	case "industrial", "oil_industrial", "port_industrial":
		return 1.5
	case "urban", "commercial", "oil_commerce":
		return 1.2
	default:
		return 1.0
	}
}

func riskFactor(loc *model.LocationProfile, key string, fallback float64) float64 {
	if v, ok := loc.StaticRiskFactors[key]; ok {
		return v
	}
	return fallback
}

func activityImpact(loc *model.LocationProfile, table map[string]float64, fallback float64) float64 {
	if v, ok := table[loc.EconomicActivity]; ok {
		return v
	}
	return fallback
}

// aqiFromPM25 maps a PM2.5 concentration onto the simplified AQI scale.
func aqiFromPM25(pm25 float64) float64 {
	switch {
	case pm25 <= 12:
		return (pm25 / 12) * 50
	case pm25 <= 35.4:
		return 50 + ((pm25-12)/(35.4-12))*50
	case pm25 <= 55.4:
		return 100 + ((pm25-35.4)/(55.4-35.4))*50
	case pm25 <= 150.4:
		return 150 + ((pm25-55.4)/(150.4-55.4))*100
	default:
		return 250 + ((pm25-150.4)/(250.4-150.4))*150
	}
}

func rainfallIntensity(mm float64) string {
	switch {
	case mm > 50:
		return "heavy"
	case mm > 25:
		return "moderate"
	default:
		return "light"
	}
}

func vegetationFor(ndvi float64) model.VegetationHealth {
	switch {
	case ndvi >= 0.5:
		return model.VegetationGood
	case ndvi >= 0.4:
		return model.VegetationModerate
	case ndvi >= 0.3:
		return model.VegetationPoor
	default:
		return model.VegetationCritical
	}
}

func primaryPollutant(loc *model.LocationProfile) string {
	switch {
	case loc.EconomicActivity == "industrial" || loc.EconomicActivity == "oil_industrial":
		return "PM2.5"
	case loc.ClimateZone == "urban":
		return "NO2"
	case loc.EconomicActivity == "agricultural":
		return "O3"
	default:
		return "PM2.5"
	}
}

func settlementType(density float64) string {
	switch {
	case density > 10000:
		return "high_density_urban"
	case density > 5000:
		return "medium_density_urban"
	case density > 1000:
		return "low_density_urban"
	default:
		return "rural"
	}
}

// poisson draws from a Poisson distribution via Knuth's method. The
// expected counts here are small, so the O(lambda) loop is fine.
func poisson(rng *rand.Rand, lambda float64) uint {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	var k uint
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
