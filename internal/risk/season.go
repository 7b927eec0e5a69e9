package risk

import "time"

// Seasonal boosts are fixed additive adjustments keyed by calendar month,
// modeling Angola's rainy (roughly Nov-Apr) and dry (roughly May-Sep)
// seasons. The month sets differ per category on purpose: fire season lags
// the meteorological dry season, and water quality degrades with rainy
// season runoff.

// seasonalFireBoost peaks in the late dry season when vegetation is driest.
func seasonalFireBoost(m time.Month) float64 {
	switch m {
	case time.August, time.September, time.October, time.November:
		return 20
	case time.July, time.December:
		return 10
	default:
		return 0
	}
}

// seasonalDroughtBoost covers the core dry-season months.
func seasonalDroughtBoost(m time.Month) float64 {
	switch m {
	case time.May, time.June, time.July, time.August, time.September:
		return 15
	}
	return 0
}

// seasonalAirQualityBoost reflects dry-season dust and biomass burning.
func seasonalAirQualityBoost(m time.Month) float64 {
	switch m {
	case time.June, time.July, time.August, time.September:
		return 15
	}
	return 0
}

// seasonalWaterQualityBoost reflects rainy-season runoff contamination.
func seasonalWaterQualityBoost(m time.Month) float64 {
	switch m {
	case time.January, time.February, time.March, time.April:
		return 12
	}
	return 0
}
