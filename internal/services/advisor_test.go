package services

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/recommend"
	"github.com/HammerMeetNail/plantcare/internal/validation"
)

func newTestService(buf *bytes.Buffer) *AdvisorService {
	return NewAdvisorService(logging.New().SetOutput(buf))
}

func TestAdvisorService_Nourish(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	got, err := svc.Nourish(context.Background(), models.NourishmentInput{
		Species:         models.SpeciesSunflower,
		SoilType:        models.SoilClay,
		LightConditions: models.LightLow,
		HealthStatus:    models.HealthUnhealthy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Consider adding sand to improve drainage.",
		"Move the plant to a brighter location.",
		"Check for pests or diseases and treat accordingly.",
	}
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Errorf("expected %q, got %q", want, got.Recommendations)
	}
}

func TestAdvisorService_Nourish_RejectsMissingField(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	_, err := svc.Nourish(context.Background(), models.NourishmentInput{
		Species:         models.SpeciesTomato,
		SoilType:        models.SoilLoamy,
		LightConditions: models.LightMedium,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var verr *validation.RequestValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a RequestValidationError, got %T", err)
	}
	if _, ok := verr.Fields()["healthStatus"]; !ok {
		t.Errorf("expected healthStatus error, got %v", verr.Fields())
	}
	if !strings.Contains(buf.String(), "Rejected incomplete submission") {
		t.Errorf("expected rejection to be logged, got %q", buf.String())
	}
}

func TestAdvisorService_PlanCare(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	got, err := svc.PlanCare(context.Background(), models.CareInput{
		PlantType:       models.PlantTypeTree,
		Location:        models.LocationOutdoor,
		SoilType:        models.GardenSoilLoam,
		LightConditions: models.LightHigh,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := recommend.BaseCareTips +
		" Protect from extreme weather conditions." +
		" Ensure deep watering and regular pruning." +
		" Ideal soil type for most plants."
	if got.CareTips != want {
		t.Errorf("expected %q, got %q", want, got.CareTips)
	}
	if got.Fertilizer != "General Purpose Fertilizer" || got.WateringSchedule != "Once a week" {
		t.Errorf("unexpected constants: %+v", got)
	}
}

func TestAdvisorService_PlanCare_RejectsOutOfEnum(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(&buf)

	_, err := svc.PlanCare(context.Background(), models.CareInput{
		PlantType:       "cactus",
		Location:        models.LocationIndoor,
		SoilType:        models.GardenSoilPeatMoss,
		LightConditions: models.LightLow,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdvisorService_OptionsAndRules(t *testing.T) {
	svc := NewAdvisorService(nil)

	if !reflect.DeepEqual(svc.Options(), models.Options()) {
		t.Error("expected options to match the model catalog")
	}
	if len(svc.Rules().Nourishment) == 0 || len(svc.Rules().CarePlan) == 0 {
		t.Error("expected non-empty rule tables")
	}
}

func TestCarePlanClauses(t *testing.T) {
	tests := []struct {
		in   models.CareInput
		want int
	}{
		{models.CareInput{PlantType: models.PlantTypeTree, Location: models.LocationOutdoor, SoilType: models.GardenSoilLoam}, 3},
		{models.CareInput{PlantType: models.PlantTypeOther, Location: models.LocationIndoor, SoilType: models.GardenSoilSilt}, 2},
	}
	for _, tt := range tests {
		if got := carePlanClauses(recommend.CarePlan(tt.in)); got != tt.want {
			t.Errorf("%+v: expected %d clauses, got %d", tt.in, tt.want, got)
		}
	}
}
