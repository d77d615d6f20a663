// Package recommend holds the plant care rule tables.
//
// Both forms are served by pure functions: the same input always yields the
// same output, nothing is stored, and no error is ever returned. Callers are
// expected to validate input first; a value outside its enum simply matches
// no rule.
package recommend

import "github.com/HammerMeetNail/plantcare/internal/models"

// Nourishment returns the advisory sentences for a nourishment form
// submission. Sentences are ordered soil, light, health; categories whose
// value has no rule contribute nothing, so the result may be empty.
func Nourishment(in models.NourishmentInput) models.Nourishment {
	recs := make([]string, 0, 3)
	for _, s := range []string{
		soilAdvice(in.SoilType),
		lightAdvice(in.LightConditions),
		healthAdvice(in.HealthStatus),
	} {
		if s != "" {
			recs = append(recs, s)
		}
	}
	return models.Nourishment{Recommendations: recs}
}

func soilAdvice(s models.SoilType) string {
	switch s {
	case models.SoilClay:
		return "Consider adding sand to improve drainage."
	case models.SoilSandy:
		return "Add organic matter to improve soil structure."
	case models.SoilLoamy:
		return ""
	}
	return ""
}

func lightAdvice(l models.LightLevel) string {
	switch l {
	case models.LightLow:
		return "Move the plant to a brighter location."
	case models.LightMedium:
		return ""
	case models.LightHigh:
		return "Ensure the plant is not exposed to direct sunlight for too long."
	}
	return ""
}

func healthAdvice(h models.HealthStatus) string {
	switch h {
	case models.HealthUnhealthy:
		return "Check for pests or diseases and treat accordingly."
	case models.HealthHealthy:
		return "Continue with your current care routine."
	}
	return ""
}
