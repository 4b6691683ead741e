package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fitsphere/backend/internal/types"
)

// MockPlanService is a mock implementation of the plan service
type MockPlanService struct {
	mock.Mock
}

// GetPlans mocks the GetPlans method
func (m *MockPlanService) GetPlans(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlanResponse), args.Error(1)
}

// Regenerate mocks the Regenerate method
func (m *MockPlanService) Regenerate(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlanResponse), args.Error(1)
}

// Nutrition mocks the Nutrition method
func (m *MockPlanService) Nutrition(ctx context.Context, userID uuid.UUID) (*types.NutritionalNeeds, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.NutritionalNeeds), args.Error(1)
}
