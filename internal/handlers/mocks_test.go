package handlers

import (
	"context"

	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/recommend"
	"github.com/HammerMeetNail/plantcare/internal/services"
)

type mockAdvisorService struct {
	NourishFunc  func(ctx context.Context, in models.NourishmentInput) (*models.Nourishment, error)
	PlanCareFunc func(ctx context.Context, in models.CareInput) (*models.CarePlan, error)
}

func (m *mockAdvisorService) Nourish(ctx context.Context, in models.NourishmentInput) (*models.Nourishment, error) {
	if m.NourishFunc != nil {
		return m.NourishFunc(ctx, in)
	}
	return &models.Nourishment{}, nil
}

func (m *mockAdvisorService) PlanCare(ctx context.Context, in models.CareInput) (*models.CarePlan, error) {
	if m.PlanCareFunc != nil {
		return m.PlanCareFunc(ctx, in)
	}
	return &models.CarePlan{}, nil
}

func (m *mockAdvisorService) Options() models.FormOptions {
	return models.Options()
}

func (m *mockAdvisorService) Rules() recommend.RuleTables {
	return recommend.Rules()
}

var _ services.AdvisorServiceInterface = (*mockAdvisorService)(nil)
