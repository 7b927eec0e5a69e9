package risk

import "github.com/siga-angola/envrisk-cli/internal/model"

// vulnerabilityRule maps a risk category to the static-factor key it reads
// from the location profile, the default weight when the key is absent, and
// the multiplier converting the [0,1] weight into score points.
type vulnerabilityRule struct {
	factorKey  string
	defaultVal float64
	multiplier float64
}

var vulnerabilityRules = map[model.RiskKind]vulnerabilityRule{
	model.RiskFlood:        {"flood", 0.5, 20},
	model.RiskFire:         {"fire", 0.5, 20},
	model.RiskDrought:      {"drought", 0.5, 20},
	model.RiskCyclone:      {"coastal", 0.3, 15},
	model.RiskAirQuality:   {"urban", 0.5, 15},
	model.RiskWaterQuality: {"coastal", 0.3, 15},
	model.RiskPollution:    {"industrial", 0.5, 20},
}

// locationVulnerability returns the additive score contribution of a
// region's static risk profile for a category. An explicitly zero factor
// contributes zero; only absent keys use the category default.
func locationVulnerability(profile *model.LocationProfile, kind model.RiskKind) float64 {
	rule, ok := vulnerabilityRules[kind]
	if !ok {
		return 10
	}
	if profile != nil {
		if v, present := profile.StaticRiskFactors[rule.factorKey]; present {
			return v * rule.multiplier
		}
	}
	return rule.defaultVal * rule.multiplier
}
