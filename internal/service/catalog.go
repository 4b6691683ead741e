package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
)

// FoodCatalogService serves read-only food lookups
type FoodCatalogService struct {
	db *gorm.DB
}

// NewFoodCatalogService creates a new FoodCatalogService instance
func NewFoodCatalogService(db *gorm.DB) *FoodCatalogService {
	return &FoodCatalogService{db: db}
}

// FindByDietTypesAndMealType lists foods of a meal type whose diet type is in the allowed set
func (s *FoodCatalogService) FindByDietTypesAndMealType(ctx context.Context, dietTypes []models.DietType, mealType models.MealType) ([]models.Food, error) {
	var foods []models.Food
	err := s.db.WithContext(ctx).
		Where("diet_type IN ? AND meal_type = ?", dietTypes, mealType).
		Order("name").
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// ExerciseCatalogService serves read-only exercise lookups
type ExerciseCatalogService struct {
	db *gorm.DB
}

// NewExerciseCatalogService creates a new ExerciseCatalogService instance
func NewExerciseCatalogService(db *gorm.DB) *ExerciseCatalogService {
	return &ExerciseCatalogService{db: db}
}

// FindByMuscleGroupAndDifficulty lists exercises targeting a muscle group at a difficulty
func (s *ExerciseCatalogService) FindByMuscleGroupAndDifficulty(ctx context.Context, group models.MuscleGroup, difficulty models.Difficulty) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.WithContext(ctx).
		Where("muscle_group = ? AND difficulty = ?", group, difficulty).
		Order("name").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// FindByCategoryAndDifficulty lists exercises of a category at a difficulty
func (s *ExerciseCatalogService) FindByCategoryAndDifficulty(ctx context.Context, category models.ExerciseCategory, difficulty models.Difficulty) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.WithContext(ctx).
		Where("category = ? AND difficulty = ?", category, difficulty).
		Order("name").
		Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}
