package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/types"
)

// IFoodCatalog is the read-only food lookup the diet generator consumes
type IFoodCatalog interface {
	FindByDietTypesAndMealType(ctx context.Context, dietTypes []models.DietType, mealType models.MealType) ([]models.Food, error)
}

// IExerciseCatalog is the read-only exercise lookup the workout generator consumes
type IExerciseCatalog interface {
	FindByMuscleGroupAndDifficulty(ctx context.Context, group models.MuscleGroup, difficulty models.Difficulty) ([]models.Exercise, error)
	FindByCategoryAndDifficulty(ctx context.Context, category models.ExerciseCategory, difficulty models.Difficulty) ([]models.Exercise, error)
}

// IPlanCache is a best-effort cache: reads that fail behave as misses and
// writes never surface errors to the caller.
type IPlanCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Put(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
	HealthCheck(ctx context.Context) bool
}

// IDietPlanService generates and stores weekly diet plans
type IDietPlanService interface {
	Generate(ctx context.Context, profile *models.UserProfile, needs types.NutritionalNeeds) (*models.DietPlan, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.DietPlan, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

// IWorkoutPlanService generates and stores weekly workout plans
type IWorkoutPlanService interface {
	Generate(ctx context.Context, profile *models.UserProfile) (*models.WorkoutPlan, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.WorkoutPlan, error)
	DeleteAllForUser(ctx context.Context, userID uuid.UUID) error
}

// IPlanService coordinates cache, store and the generators
type IPlanService interface {
	GetPlans(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error)
	Regenerate(ctx context.Context, userID uuid.UUID) (*types.PlanResponse, error)
	Nutrition(ctx context.Context, userID uuid.UUID) (*types.NutritionalNeeds, error)
}
