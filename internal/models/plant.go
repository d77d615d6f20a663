package models

// Species is the plant species picked on the nourishment form.
// The nourishment rules never read it; it only has to be selected.
type Species string

const (
	SpeciesTomato    Species = "tomato"
	SpeciesBasil     Species = "basil"
	SpeciesSunflower Species = "sunflower"
	SpeciesOrchid    Species = "orchid"
	SpeciesCactus    Species = "cactus"
)

// AllSpecies lists the species in form order.
var AllSpecies = []Species{
	SpeciesTomato,
	SpeciesBasil,
	SpeciesSunflower,
	SpeciesOrchid,
	SpeciesCactus,
}

var speciesLabels = map[Species]string{
	SpeciesTomato:    "Tomato",
	SpeciesBasil:     "Basil",
	SpeciesSunflower: "Sunflower",
	SpeciesOrchid:    "Orchid",
	SpeciesCactus:    "Cactus",
}

func (s Species) IsValid() bool {
	_, ok := speciesLabels[s]
	return ok
}

func (s Species) Label() string {
	return speciesLabels[s]
}

// SoilType is the coarse soil classification used by the nourishment form.
type SoilType string

const (
	SoilClay  SoilType = "clay"
	SoilSandy SoilType = "sandy"
	SoilLoamy SoilType = "loamy"
)

var AllSoilTypes = []SoilType{SoilClay, SoilSandy, SoilLoamy}

var soilTypeLabels = map[SoilType]string{
	SoilClay:  "Clay",
	SoilSandy: "Sandy",
	SoilLoamy: "Loamy",
}

func (s SoilType) IsValid() bool {
	_, ok := soilTypeLabels[s]
	return ok
}

func (s SoilType) Label() string {
	return soilTypeLabels[s]
}

// GardenSoil is the finer soil classification used by the care plan form.
// Its values overlap SoilType only on "clay".
type GardenSoil string

const (
	GardenSoilClay      GardenSoil = "clay"
	GardenSoilLoam      GardenSoil = "loam"
	GardenSoilSand      GardenSoil = "sand"
	GardenSoilSilt      GardenSoil = "silt"
	GardenSoilPeatMoss  GardenSoil = "peat-moss"
	GardenSoilChalky    GardenSoil = "chalky"
	GardenSoilSandyLoam GardenSoil = "sandy-loam"
	GardenSoilClayLoam  GardenSoil = "clay-loam"
)

var AllGardenSoils = []GardenSoil{
	GardenSoilClay,
	GardenSoilLoam,
	GardenSoilSand,
	GardenSoilSilt,
	GardenSoilPeatMoss,
	GardenSoilChalky,
	GardenSoilSandyLoam,
	GardenSoilClayLoam,
}

var gardenSoilLabels = map[GardenSoil]string{
	GardenSoilClay:      "Clay",
	GardenSoilLoam:      "Loam",
	GardenSoilSand:      "Sand",
	GardenSoilSilt:      "Silt",
	GardenSoilPeatMoss:  "Peat Moss",
	GardenSoilChalky:    "Chalky",
	GardenSoilSandyLoam: "Sandy Loam",
	GardenSoilClayLoam:  "Clay Loam",
}

func (s GardenSoil) IsValid() bool {
	_, ok := gardenSoilLabels[s]
	return ok
}

func (s GardenSoil) Label() string {
	return gardenSoilLabels[s]
}

// LightLevel describes how much light the plant receives.
type LightLevel string

const (
	LightLow    LightLevel = "low"
	LightMedium LightLevel = "medium"
	LightHigh   LightLevel = "high"
)

var AllLightLevels = []LightLevel{LightLow, LightMedium, LightHigh}

var lightLevelLabels = map[LightLevel]string{
	LightLow:    "Low",
	LightMedium: "Medium",
	LightHigh:   "High",
}

func (l LightLevel) IsValid() bool {
	_, ok := lightLevelLabels[l]
	return ok
}

func (l LightLevel) Label() string {
	return lightLevelLabels[l]
}

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

var AllHealthStatuses = []HealthStatus{HealthHealthy, HealthUnhealthy}

var healthStatusLabels = map[HealthStatus]string{
	HealthHealthy:   "Healthy",
	HealthUnhealthy: "Unhealthy",
}

func (h HealthStatus) IsValid() bool {
	_, ok := healthStatusLabels[h]
	return ok
}

func (h HealthStatus) Label() string {
	return healthStatusLabels[h]
}

// PlantType is the growth habit picked on the care plan form.
type PlantType string

const (
	PlantTypeCreeper   PlantType = "creeper"
	PlantTypeShrub     PlantType = "shrub"
	PlantTypeTree      PlantType = "tree"
	PlantTypePerennial PlantType = "perennial"
	PlantTypeAnnual    PlantType = "annual"
	PlantTypeVine      PlantType = "vine"
	PlantTypeHerb      PlantType = "herb"
	PlantTypeOther     PlantType = "other"
)

var AllPlantTypes = []PlantType{
	PlantTypeCreeper,
	PlantTypeShrub,
	PlantTypeTree,
	PlantTypePerennial,
	PlantTypeAnnual,
	PlantTypeVine,
	PlantTypeHerb,
	PlantTypeOther,
}

var plantTypeLabels = map[PlantType]string{
	PlantTypeCreeper:   "Creeper",
	PlantTypeShrub:     "Shrub",
	PlantTypeTree:      "Tree",
	PlantTypePerennial: "Perennial",
	PlantTypeAnnual:    "Annual",
	PlantTypeVine:      "Vine",
	PlantTypeHerb:      "Herb",
	PlantTypeOther:     "Other",
}

func (p PlantType) IsValid() bool {
	_, ok := plantTypeLabels[p]
	return ok
}

func (p PlantType) Label() string {
	return plantTypeLabels[p]
}

type Location string

const (
	LocationIndoor  Location = "indoor"
	LocationOutdoor Location = "outdoor"
)

var AllLocations = []Location{LocationIndoor, LocationOutdoor}

var locationLabels = map[Location]string{
	LocationIndoor:  "Indoor",
	LocationOutdoor: "Outdoor",
}

func (l Location) IsValid() bool {
	_, ok := locationLabels[l]
	return ok
}

func (l Location) Label() string {
	return locationLabels[l]
}
