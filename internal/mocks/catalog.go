package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fitsphere/backend/internal/models"
)

// MockFoodCatalog is a mock implementation of the food catalog
type MockFoodCatalog struct {
	mock.Mock
}

// FindByDietTypesAndMealType mocks the FindByDietTypesAndMealType method
func (m *MockFoodCatalog) FindByDietTypesAndMealType(ctx context.Context, dietTypes []models.DietType, mealType models.MealType) ([]models.Food, error) {
	args := m.Called(ctx, dietTypes, mealType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Food), args.Error(1)
}

// MockExerciseCatalog is a mock implementation of the exercise catalog
type MockExerciseCatalog struct {
	mock.Mock
}

// FindByMuscleGroupAndDifficulty mocks the FindByMuscleGroupAndDifficulty method
func (m *MockExerciseCatalog) FindByMuscleGroupAndDifficulty(ctx context.Context, group models.MuscleGroup, difficulty models.Difficulty) ([]models.Exercise, error) {
	args := m.Called(ctx, group, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}

// FindByCategoryAndDifficulty mocks the FindByCategoryAndDifficulty method
func (m *MockExerciseCatalog) FindByCategoryAndDifficulty(ctx context.Context, category models.ExerciseCategory, difficulty models.Difficulty) ([]models.Exercise, error) {
	args := m.Called(ctx, category, difficulty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exercise), args.Error(1)
}
