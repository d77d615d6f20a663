package models

// Option is a single dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one form field and its closed set of values.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// FormOptions lists the fields of both forms in display order.
type FormOptions struct {
	Nourishment []Field `json:"nourishment"`
	CarePlan    []Field `json:"carePlan"`
}

type labeled interface {
	~string
	Label() string
}

func optionsOf[T labeled](values []T) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: string(v), Label: v.Label()})
	}
	return opts
}

func field(name string, opts []Option) Field {
	return Field{Name: name, Label: FieldLabels[name], Options: opts}
}

// Options builds the option catalog for both forms.
func Options() FormOptions {
	return FormOptions{
		Nourishment: []Field{
			field("species", optionsOf(AllSpecies)),
			field("soilType", optionsOf(AllSoilTypes)),
			field("lightConditions", optionsOf(AllLightLevels)),
			field("healthStatus", optionsOf(AllHealthStatuses)),
		},
		CarePlan: []Field{
			field("plantType", optionsOf(AllPlantTypes)),
			field("location", optionsOf(AllLocations)),
			field("soilType", optionsOf(AllGardenSoils)),
			field("lightConditions", optionsOf(AllLightLevels)),
		},
	}
}
