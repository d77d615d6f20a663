package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/metrics"
	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/recommend"
	"github.com/HammerMeetNail/plantcare/internal/validation"
)

// ErrInvalidInput wraps the *validation.RequestValidationError for a
// submission that is missing fields or has values outside their enum.
var ErrInvalidInput = errors.New("invalid input")

// AdvisorService is what a form submission calls: it rejects incomplete
// input and otherwise runs the rule engine.
type AdvisorService struct {
	logger *logging.Logger
}

func NewAdvisorService(logger *logging.Logger) *AdvisorService {
	if logger == nil {
		logger = logging.Default
	}
	return &AdvisorService{logger: logger}
}

func (s *AdvisorService) Nourish(ctx context.Context, in models.NourishmentInput) (*models.Nourishment, error) {
	if err := s.validate(ctx, models.VariantNourishment, &in); err != nil {
		return nil, err
	}

	result := recommend.Nourishment(in)
	metrics.RecordRecommendation(string(models.VariantNourishment), len(result.Recommendations))
	logging.FromContext(ctx, s.logger).Debug("Nourishment recommendations generated", map[string]interface{}{
		"species": in.Species,
		"soil":    in.SoilType,
		"light":   in.LightConditions,
		"health":  in.HealthStatus,
		"count":   len(result.Recommendations),
	})
	return &result, nil
}

func (s *AdvisorService) PlanCare(ctx context.Context, in models.CareInput) (*models.CarePlan, error) {
	if err := s.validate(ctx, models.VariantCarePlan, &in); err != nil {
		return nil, err
	}

	plan := recommend.CarePlan(in)
	metrics.RecordRecommendation(string(models.VariantCarePlan), carePlanClauses(plan))
	logging.FromContext(ctx, s.logger).Debug("Care plan generated", map[string]interface{}{
		"plant_type": in.PlantType,
		"location":   in.Location,
		"soil":       in.SoilType,
	})
	return &plan, nil
}

// Options returns the dropdown values for both forms.
func (s *AdvisorService) Options() models.FormOptions {
	return models.Options()
}

// Rules returns the rule tables behind both forms.
func (s *AdvisorService) Rules() recommend.RuleTables {
	return recommend.Rules()
}

func (s *AdvisorService) validate(ctx context.Context, variant models.Variant, in interface{}) error {
	verr := validation.ValidateStruct(in)
	if verr == nil {
		return nil
	}

	fields := verr.Fields()
	for field := range fields {
		metrics.RecordValidationFailure(string(variant), field)
	}
	logging.FromContext(ctx, s.logger).Info("Rejected incomplete submission", map[string]interface{}{
		"variant": variant,
		"fields":  fields,
	})
	return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
}

// carePlanClauses counts the sentences appended to the base care tips.
func carePlanClauses(plan models.CarePlan) int {
	return strings.Count(strings.TrimPrefix(plan.CareTips, recommend.BaseCareTips), ".")
}
