package advisory

import "github.com/siga-angola/envrisk-cli/internal/model"

// recommendationTable holds the ordered recommendation lists keyed by
// category and advisory band. Order matters: the first entry is the
// headline action shown on the dashboard card.
var recommendationTable = map[model.RiskKind]map[band][]string{
	model.RiskFlood: {
		bandSevere: {
			"Evacuate low-lying and riverside areas immediately",
			"Move to designated high-ground shelters",
			"Do not cross flooded roads on foot or by vehicle",
			"Cut power to flooded buildings",
		},
		bandHigh: {
			"Prepare evacuation routes and emergency kits",
			"Move valuables and documents above expected water line",
			"Clear storm drains around the home",
		},
		bandModerate: {
			"Monitor rainfall bulletins over the next 48 hours",
			"Avoid parking in drainage channels",
		},
		bandLow: {
			"No immediate action required",
		},
	},
	model.RiskFire: {
		bandSevere: {
			"Follow evacuation orders for areas near active fronts",
			"Close windows and doors; keep wetted cloth available",
			"Report new ignitions to civil protection",
		},
		bandHigh: {
			"Suspend open burning and charcoal production",
			"Create firebreaks around dwellings and fields",
			"Keep water reserves accessible",
		},
		bandModerate: {
			"Avoid burning waste during afternoon winds",
			"Check that fire tools and water points are serviceable",
		},
		bandLow: {
			"Routine fire safety practices apply",
		},
	},
	model.RiskDrought: {
		bandSevere: {
			"Activate emergency water distribution points",
			"Prioritize water for drinking and livestock",
			"Implement agricultural loss mitigation programs",
		},
		bandHigh: {
			"Begin household water rationing",
			"Shift to drought-resistant crops where possible",
			"Inspect and repair leaking distribution lines",
		},
		bandModerate: {
			"Reduce non-essential water use",
			"Monitor borehole and reservoir levels weekly",
		},
		bandLow: {
			"Maintain normal water management",
		},
	},
	model.RiskCyclone: {
		bandSevere: {
			"Secure or move to reinforced shelter before landfall",
			"Stock 72 hours of water, food and medication",
			"Stay clear of coastal and estuary zones",
		},
		bandHigh: {
			"Secure roofing, windows and loose outdoor items",
			"Review family evacuation plan",
		},
		bandModerate: {
			"Track marine weather bulletins",
		},
		bandLow: {
			"No tropical systems threaten the region",
		},
	},
	model.RiskAirQuality: {
		bandSevere: {
			"Keep children and elderly indoors",
			"Suspend outdoor work and sports",
			"Use masks when outdoor exposure is unavoidable",
		},
		bandHigh: {
			"Limit prolonged outdoor exertion",
			"Keep respiratory medication at hand",
			"Ventilate homes during early morning hours",
		},
		bandModerate: {
			"Sensitive groups should reduce outdoor activity",
		},
		bandLow: {
			"Air quality is acceptable for outdoor activity",
		},
	},
	model.RiskWaterQuality: {
		bandSevere: {
			"Use only treated or bottled water for drinking and cooking",
			"Avoid all contact with affected water bodies",
			"Report suspected contamination to health authorities",
		},
		bandHigh: {
			"Boil or chlorinate water before consumption",
			"Avoid recreation in rivers and coastal waters",
		},
		bandModerate: {
			"Treat water from informal sources before drinking",
		},
		bandLow: {
			"Standard water treatment is sufficient",
		},
	},
	model.RiskPollution: {
		bandSevere: {
			"Avoid industrial perimeter zones",
			"Keep windows closed during peak traffic hours",
			"Seek medical advice for persistent respiratory symptoms",
		},
		bandHigh: {
			"Limit time near major roads and industrial areas",
			"Wash produce grown in urban plots thoroughly",
		},
		bandModerate: {
			"Monitor municipal pollution advisories",
		},
		bandLow: {
			"Pollution levels are within normal range",
		},
	},
	model.RiskPopulation: {
		bandSevere: {
			"Expect service interruptions in water and power supply",
			"Use off-peak hours for essential travel",
			"Register with community support networks",
		},
		bandHigh: {
			"Plan for intermittent utility availability",
			"Anticipate congestion on main corridors",
		},
		bandModerate: {
			"Service demand is elevated but manageable",
		},
		bandLow: {
			"Urban services operating normally",
		},
	},
}

// communityImpactTable holds the one-sentence impact summaries.
var communityImpactTable = map[model.RiskKind]map[band]string{
	model.RiskFlood: {
		bandSevere:   "Widespread flooding threatens homes, roads and drainage across the region.",
		bandHigh:     "Flooding is likely in low-lying neighborhoods and along drainage channels.",
		bandModerate: "Localized ponding may disrupt traffic in poorly drained areas.",
		bandLow:      "No significant flood impact expected.",
	},
	model.RiskFire: {
		bandSevere:   "Active fires endanger settlements, crops and air quality.",
		bandHigh:     "Dry vegetation makes fast-spreading fires likely near populated areas.",
		bandModerate: "Conditions support occasional vegetation fires.",
		bandLow:      "Fire activity is minimal.",
	},
	model.RiskDrought: {
		bandSevere:   "Severe water scarcity affects drinking supply, crops and livestock.",
		bandHigh:     "Dwindling reserves strain agriculture and household water access.",
		bandModerate: "Below-normal rainfall is stressing vegetation and reservoirs.",
		bandLow:      "Water availability is normal for the season.",
	},
	model.RiskCyclone: {
		bandSevere:   "A tropical system threatens destructive wind and storm surge on the coast.",
		bandHigh:     "Tropical activity may bring damaging wind and heavy rain.",
		bandModerate: "Distant tropical activity warrants monitoring.",
		bandLow:      "No tropical systems affect the region.",
	},
	model.RiskAirQuality: {
		bandSevere:   "Hazardous air quality poses serious health risks to the whole population.",
		bandHigh:     "Degraded air quality affects sensitive groups and outdoor workers.",
		bandModerate: "Air quality is reduced; sensitive individuals may notice effects.",
		bandLow:      "Air quality poses minimal health concern.",
	},
	model.RiskWaterQuality: {
		bandSevere:   "Contaminated water sources present a high risk of waterborne disease.",
		bandHigh:     "Degraded water quality makes untreated consumption unsafe.",
		bandModerate: "Water quality is reduced in some sources.",
		bandLow:      "Water quality is within safe limits.",
	},
	model.RiskPollution: {
		bandSevere:   "Heavy pollution burdens health services and contaminates urban land and water.",
		bandHigh:     "Industrial and traffic pollution noticeably degrades living conditions.",
		bandModerate: "Pollution is elevated near industrial and high-traffic zones.",
		bandLow:      "Pollution levels are low.",
	},
	model.RiskPopulation: {
		bandSevere:   "Extreme settlement density overwhelms water, sanitation and transport systems.",
		bandHigh:     "High density strains public services and housing.",
		bandModerate: "Growing density is increasing demand on infrastructure.",
		bandLow:      "Population pressure on services is low.",
	},
}

// recommendations returns the ordered recommendation list for a category
// at a band. Unknown combinations return a safe default.
func recommendations(kind model.RiskKind, b band) []string {
	if byBand, ok := recommendationTable[kind]; ok {
		if recs, ok := byBand[b]; ok {
			return recs
		}
	}
	return []string{"Monitor official advisories"}
}

// communityImpact returns the one-sentence impact summary.
func communityImpact(kind model.RiskKind, b band) string {
	if byBand, ok := communityImpactTable[kind]; ok {
		if s, ok := byBand[b]; ok {
			return s
		}
	}
	return "Impact information unavailable."
}
