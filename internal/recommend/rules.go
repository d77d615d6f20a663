package recommend

import "github.com/HammerMeetNail/plantcare/internal/models"

// Rule is one row of a rule table: the advice a single category value adds.
// Text is empty for values that have no rule.
type Rule struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	Text     string `json:"text"`
}

// RuleTables lists the rules of both forms in evaluation order.
type RuleTables struct {
	Nourishment []Rule `json:"nourishment"`
	CarePlan    []Rule `json:"carePlan"`
}

func table[T ~string](category string, values []T, advice func(T) string) []Rule {
	rules := make([]Rule, 0, len(values))
	for _, v := range values {
		rules = append(rules, Rule{Category: category, Value: string(v), Text: advice(v)})
	}
	return rules
}

// Rules evaluates every category function over its whole enum, so the
// returned tables always match what Nourishment and CarePlan produce.
func Rules() RuleTables {
	var t RuleTables
	t.Nourishment = append(t.Nourishment, table("soilType", models.AllSoilTypes, soilAdvice)...)
	t.Nourishment = append(t.Nourishment, table("lightConditions", models.AllLightLevels, lightAdvice)...)
	t.Nourishment = append(t.Nourishment, table("healthStatus", models.AllHealthStatuses, healthAdvice)...)

	t.CarePlan = append(t.CarePlan, table("location", models.AllLocations, locationClause)...)
	t.CarePlan = append(t.CarePlan, table("plantType", models.AllPlantTypes, plantTypeClause)...)
	t.CarePlan = append(t.CarePlan, table("soilType", models.AllGardenSoils, gardenSoilClause)...)
	return t
}
