// Package advisory turns risk assessments into human-readable guidance:
// ordered recommendations, community impact summaries, basic-needs status
// and affected-zone lists for the dashboard.
//
// Advisory text granularity uses a four-way score band that is deliberately
// coarser than the five severity levels. The band is internal to this
// package and never exposed as a level.
package advisory

import (
	"github.com/siga-angola/envrisk-cli/internal/model"
)

// Advisory is the user-facing guidance for one category assessment.
type Advisory struct {
	Kind             model.RiskKind    `json:"kind"`
	Recommendations  []string          `json:"recommendations"`
	CommunityImpact  string            `json:"community_impact"`
	BasicNeeds       map[string]string `json:"basic_needs"`
	AffectedZones    []string          `json:"affected_zones,omitempty"`
	FloodType        string            `json:"flood_type,omitempty"`
	DroughtCategory  string            `json:"drought_category,omitempty"`
	HealthImpact     string            `json:"health_impact,omitempty"`
	VulnerableGroups []string          `json:"vulnerable_groups,omitempty"`
	WaterSafety      string            `json:"water_safety,omitempty"`
	UrbanChallenges  []string          `json:"urban_challenges,omitempty"`
	PlanningActions  []string          `json:"planning_recommendations,omitempty"`
}

// Generate builds the advisory for a single assessment. Metrics supply
// category extras (flood type needs rainfall magnitude, health impact needs
// the AQI); nil metrics simply omit those extras.
func Generate(a model.RiskAssessment, profile *model.LocationProfile, metrics *model.RegionMetrics) Advisory {
	b := bandFor(a.Score)

	adv := Advisory{
		Kind:            a.Kind,
		Recommendations: recommendations(a.Kind, b),
		CommunityImpact: communityImpact(a.Kind, b),
		BasicNeeds:      basicNeeds(a.Kind, b),
	}

	switch a.Kind {
	case model.RiskFlood:
		adv.AffectedZones = floodImpactZones(profile)
		if metrics != nil && metrics.Rainfall != nil {
			adv.FloodType = floodType(metrics.Rainfall.Rainfall24hMM, profile)
		}
	case model.RiskFire:
		adv.AffectedZones = fireEvacuationZones(profile, b)
	case model.RiskDrought:
		adv.DroughtCategory = droughtCategory(a.Score)
	case model.RiskAirQuality:
		if metrics != nil && metrics.AirQuality != nil {
			adv.HealthImpact = healthImpact(metrics.AirQuality.AirQualityIndex)
			adv.VulnerableGroups = vulnerableGroups(metrics.AirQuality.AirQualityIndex)
		}
	case model.RiskWaterQuality:
		adv.AffectedZones = waterImpactZones(profile)
		if metrics != nil && metrics.WaterQuality != nil {
			adv.WaterSafety = waterSafety(metrics.WaterQuality.PollutionIndex)
		}
	case model.RiskPopulation:
		if metrics != nil && metrics.Population != nil {
			adv.UrbanChallenges = urbanChallenges(metrics.Population.PopulationDensityKM2, profile)
			adv.PlanningActions = planningActions(
				metrics.Population.PopulationDensityKM2,
				metrics.Population.VulnerabilityIndex,
			)
		}
	}

	return adv
}

// GenerateAll builds advisories for every assessment in order.
func GenerateAll(assessments []model.RiskAssessment, profile *model.LocationProfile, metrics *model.RegionMetrics) []Advisory {
	out := make([]Advisory, 0, len(assessments))
	for _, a := range assessments {
		out = append(out, Generate(a, profile, metrics))
	}
	return out
}
