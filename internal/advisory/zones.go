package advisory

import (
	"strings"

	"github.com/siga-angola/envrisk-cli/internal/model"
)

// floodType classifies the flood scenario from rainfall magnitude.
// Municipalities see flash floods where provinces see broader urban floods.
func floodType(rainfall24h float64, profile *model.LocationProfile) string {
	switch {
	case rainfall24h > 100:
		return "major_flood"
	case rainfall24h > 60:
		if profile != nil && profile.Kind == model.RegionMunicipality {
			return "flash_flood"
		}
		return "urban_flood"
	case rainfall24h > 30:
		return "minor_flooding"
	default:
		return "localized_flooding"
	}
}

// floodImpactZones names the zones typically affected in a region.
// Known municipalities get their characteristic exposure.
func floodImpactZones(profile *model.LocationProfile) []string {
	switch zoneKey(profile) {
	case "viana":
		return []string{"Industrial Zone", "Transport Corridors"}
	case "ingombota":
		return []string{"City Center", "Commercial Areas"}
	case "mussulo":
		return []string{"Coastal Areas", "Fishing Zones"}
	default:
		return []string{"Urban Area", "Residential Zones"}
	}
}

// fireEvacuationZones lists zones to prepare or clear depending on band.
func fireEvacuationZones(profile *model.LocationProfile, b band) []string {
	zones := []string{"Peri-urban Vegetation Belt"}
	if profile != nil && profile.ClimateZone == "rural" {
		zones = []string{"Agricultural Margins", "Savanna Edge"}
	}
	if b >= bandSevere {
		zones = append(zones, "Settlements Within 5km of Active Fronts")
	}
	return zones
}

// waterImpactZones names the water bodies typically degraded in a region.
func waterImpactZones(profile *model.LocationProfile) []string {
	switch zoneKey(profile) {
	case "mussulo":
		return []string{"Coastal Waters", "Fishing Areas"}
	case "ingombota":
		return []string{"Urban Rivers", "Drainage Systems"}
	case "viana":
		return []string{"Industrial Canals", "Wastewater Outflows"}
	default:
		return []string{"Water Bodies", "Drainage Systems"}
	}
}

// zoneKey normalizes the profile name for zone lookups.
func zoneKey(profile *model.LocationProfile) string {
	if profile == nil {
		return ""
	}
	return strings.ToLower(profile.Name)
}

// droughtCategory returns the S0..S3 drought classification code.
func droughtCategory(score int) string {
	switch {
	case score > 75:
		return "S3_Severe_Drought"
	case score > 55:
		return "S2_Moderate_Drought"
	case score > 35:
		return "S1_Mild_Drought"
	default:
		return "S0_No_Drought"
	}
}

// healthImpact summarizes the health effect of an AQI reading.
func healthImpact(aqi float64) string {
	switch {
	case aqi > 150:
		return "Serious health effects"
	case aqi > 100:
		return "Unhealthy for sensitive groups"
	case aqi > 50:
		return "Moderate health concern"
	default:
		return "Minimal health impact"
	}
}

// vulnerableGroups lists the population groups at risk for an AQI reading.
func vulnerableGroups(aqi float64) []string {
	switch {
	case aqi > 100:
		return []string{"Children", "Elderly", "Respiratory conditions", "Heart conditions"}
	case aqi > 50:
		return []string{"Children", "Elderly", "Respiratory conditions"}
	default:
		return []string{"None specific"}
	}
}

// waterSafety summarizes the health implications of a water pollution index.
func waterSafety(pollutionIndex float64) string {
	switch {
	case pollutionIndex > 70:
		return "High risk of waterborne diseases"
	case pollutionIndex > 50:
		return "Moderate health risk, avoid ingestion"
	case pollutionIndex > 30:
		return "Low risk, basic treatment recommended"
	default:
		return "Minimal health risk"
	}
}

// urbanChallenges lists the pressures settlement density places on a region.
func urbanChallenges(density float64, profile *model.LocationProfile) []string {
	var challenges []string
	if density > 8000 {
		challenges = append(challenges, "Overcrowding", "Sanitation issues", "Traffic congestion")
	}
	if density > 5000 {
		challenges = append(challenges, "Housing pressure", "Service delivery strain")
	}
	if profile != nil && profile.Kind == model.RegionMunicipality {
		challenges = append(challenges, "Urban planning needs", "Infrastructure maintenance")
	}
	return challenges
}

// planningActions suggests planning responses to density and vulnerability.
func planningActions(density, vulnerability float64) []string {
	var actions []string
	if density > 8000 {
		actions = append(actions, "Upgrade public transport", "Improve green spaces")
	}
	if vulnerability > 70 {
		actions = append(actions, "Target social housing", "Enhance emergency services")
	}
	if density > 5000 {
		actions = append(actions, "Mixed-use development", "Infrastructure investment")
	}
	if len(actions) == 0 {
		return []string{"Maintain current planning strategies"}
	}
	return actions
}
