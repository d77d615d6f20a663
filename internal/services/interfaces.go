package services

import (
	"context"

	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/recommend"
)

// AdvisorServiceInterface defines the contract for plant care recommendations.
type AdvisorServiceInterface interface {
	Nourish(ctx context.Context, in models.NourishmentInput) (*models.Nourishment, error)
	PlanCare(ctx context.Context, in models.CareInput) (*models.CarePlan, error)
	Options() models.FormOptions
	Rules() recommend.RuleTables
}

var _ AdvisorServiceInterface = (*AdvisorService)(nil)
