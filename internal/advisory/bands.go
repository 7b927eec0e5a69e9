package advisory

import "github.com/siga-angola/envrisk-cli/internal/model"

// band is the internal four-way split used only for advisory granularity.
type band int

const (
	bandLow band = iota
	bandModerate
	bandHigh
	bandSevere
)

// bandFor maps a score to an advisory band. Thresholds are the historical
// 75/50/20 splits, kept distinct from the five-band severity levels.
func bandFor(score int) band {
	switch {
	case score >= 75:
		return bandSevere
	case score >= 50:
		return bandHigh
	case score >= 20:
		return bandModerate
	default:
		return bandLow
	}
}

// The fixed basic-needs sectors reported for every category.
var basicNeedsSectors = []string{"water", "energy", "hospitals", "food", "shelter", "transportation"}

// Sector status labels per band.
var bandStatus = map[band]string{
	bandLow:      "operational",
	bandModerate: "operational",
	bandHigh:     "strained",
	bandSevere:   "at_risk",
}

// stressedSectors names the sectors each category degrades one notch
// beyond the blanket band status.
var stressedSectors = map[model.RiskKind][]string{
	model.RiskFlood:        {"transportation", "shelter", "water"},
	model.RiskFire:         {"shelter", "energy"},
	model.RiskDrought:      {"water", "food"},
	model.RiskCyclone:      {"shelter", "energy", "transportation"},
	model.RiskAirQuality:   {"hospitals"},
	model.RiskWaterQuality: {"water", "hospitals"},
	model.RiskPollution:    {"hospitals", "water"},
	model.RiskPopulation:   {"water", "energy", "transportation"},
}

// escalate bumps a sector status one notch toward disruption.
func escalate(status string) string {
	switch status {
	case "operational":
		return "strained"
	case "strained":
		return "at_risk"
	default:
		return "disrupted"
	}
}

// basicNeeds builds the sector status map for a category at a band.
func basicNeeds(kind model.RiskKind, b band) map[string]string {
	base := bandStatus[b]
	needs := make(map[string]string, len(basicNeedsSectors))
	for _, s := range basicNeedsSectors {
		needs[s] = base
	}
	if b >= bandHigh {
		for _, s := range stressedSectors[kind] {
			needs[s] = escalate(needs[s])
		}
	}
	return needs
}
