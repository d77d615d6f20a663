package recommend

import (
	"strings"

	"github.com/HammerMeetNail/plantcare/internal/models"
)

// Fertilizer and WateringSchedule are the same for every care plan; no rule
// varies them with the input yet.
const (
	Fertilizer       = "General Purpose Fertilizer"
	WateringSchedule = "Once a week"
	BaseCareTips     = "Ensure the plant receives appropriate light and consistent moisture."
)

// CarePlan builds the care plan for a care form submission. Care tips start
// from BaseCareTips and gain one clause per category, in location, plant
// type, soil order.
func CarePlan(in models.CareInput) models.CarePlan {
	var tips strings.Builder
	tips.WriteString(BaseCareTips)
	tips.WriteString(locationClause(in.Location))
	tips.WriteString(plantTypeClause(in.PlantType))
	tips.WriteString(gardenSoilClause(in.SoilType))

	return models.CarePlan{
		Fertilizer:       Fertilizer,
		WateringSchedule: WateringSchedule,
		CareTips:         tips.String(),
	}
}

// Clauses carry their own leading space so they concatenate directly.

func locationClause(l models.Location) string {
	switch l {
	case models.LocationIndoor:
		return " Keep away from drafts and heating vents."
	case models.LocationOutdoor:
		return " Protect from extreme weather conditions."
	}
	return ""
}

func plantTypeClause(p models.PlantType) string {
	switch p {
	case models.PlantTypeCreeper:
		return " Give it room to spread or a low support to trail along."
	case models.PlantTypeShrub:
		return " Prune lightly after flowering to keep its shape."
	case models.PlantTypeTree:
		return " Ensure deep watering and regular pruning."
	case models.PlantTypePerennial:
		return " Cut back in late autumn and mulch the crown."
	case models.PlantTypeAnnual:
		return " Deadhead spent flowers to prolong blooming."
	case models.PlantTypeVine:
		return " Provide a trellis or support to climb."
	case models.PlantTypeHerb:
		return " Harvest regularly to encourage bushy growth."
	case models.PlantTypeOther:
		return ""
	}
	return ""
}

func gardenSoilClause(s models.GardenSoil) string {
	switch s {
	case models.GardenSoilClay:
		return " Improve drainage by working in organic matter."
	case models.GardenSoilLoam:
		return " Ideal soil type for most plants."
	case models.GardenSoilSand:
		return " Add compost to hold moisture and nutrients."
	case models.GardenSoilSilt:
		return " Avoid compacting the soil and add organic matter."
	case models.GardenSoilPeatMoss:
		return " Check acidity and add lime if needed."
	case models.GardenSoilChalky:
		return " Add organic matter and choose lime-tolerant plants."
	case models.GardenSoilSandyLoam:
		return " Mulch to keep moisture in."
	case models.GardenSoilClayLoam:
		return " Add grit or compost to improve drainage."
	}
	return ""
}
