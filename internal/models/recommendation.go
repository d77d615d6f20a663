package models

// Variant names the form a recommendation was produced for.
type Variant string

const (
	VariantNourishment Variant = "nourishment"
	VariantCarePlan    Variant = "care_plan"
)

// NourishmentInput is the nourishment form submission.
type NourishmentInput struct {
	Species         Species      `json:"species" validate:"required,oneof=tomato basil sunflower orchid cactus"`
	SoilType        SoilType     `json:"soilType" validate:"required,oneof=clay sandy loamy"`
	LightConditions LightLevel   `json:"lightConditions" validate:"required,oneof=low medium high"`
	HealthStatus    HealthStatus `json:"healthStatus" validate:"required,oneof=healthy unhealthy"`
}

// Nourishment holds the advisory sentences for a NourishmentInput, ordered
// soil, light, health. It may be empty.
type Nourishment struct {
	Recommendations []string `json:"recommendations"`
}

// CareInput is the care plan form submission. LightConditions is collected
// alongside the other fields but no care plan rule reads it.
type CareInput struct {
	PlantType       PlantType  `json:"plantType" validate:"required,oneof=creeper shrub tree perennial annual vine herb other"`
	Location        Location   `json:"location" validate:"required,oneof=indoor outdoor"`
	SoilType        GardenSoil `json:"soilType" validate:"required,oneof=clay loam sand silt peat-moss chalky sandy-loam clay-loam"`
	LightConditions LightLevel `json:"lightConditions" validate:"required,oneof=low medium high"`
}

// CarePlan is the three-field result of the care plan form.
type CarePlan struct {
	Fertilizer       string `json:"fertilizer"`
	WateringSchedule string `json:"wateringSchedule"`
	CareTips         string `json:"careTips"`
}

// FieldLabels maps JSON field names to the labels shown on the forms.
var FieldLabels = map[string]string{
	"species":         "Plant species",
	"soilType":        "Soil type",
	"lightConditions": "Light conditions",
	"healthStatus":    "Health status",
	"plantType":       "Plant type",
	"location":        "Location",
}
