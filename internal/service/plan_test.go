package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/mocks"
	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/testhelpers"
)

// planHarness wires a PlanService over sqlite with real catalogs and the
// in-memory cache stand-in
type planHarness struct {
	db      *gorm.DB
	cache   *mocks.MemoryCache
	plans   *PlanService
	diet    *DietPlanService
	workout *WorkoutPlanService
	userID  uuid.UUID
}

func newPlanHarness(t *testing.T) *planHarness {
	t.Helper()

	db := testhelpers.NewTestDB(t)
	cache := mocks.NewMemoryCache()

	profile := vegProfile()
	require.NoError(t, db.Create(profile).Error)
	seedCatalogTables(t, db)

	profiles := NewProfileService(db, cache)
	diet := NewDietPlanService(db, NewFoodCatalogService(db), NewPicker())
	workout := NewWorkoutPlanService(db, NewExerciseCatalogService(db), NewPicker())
	plans := NewPlanService(profiles, NewNutritionCalculator(), diet, workout, cache)

	return &planHarness{
		db:      db,
		cache:   cache,
		plans:   plans,
		diet:    diet,
		workout: workout,
		userID:  profile.UserID,
	}
}

func seedCatalogTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	foods := append(breakfastFoods(), mainFoods(models.MealLunch)...)
	foods = append(foods, mainFoods(models.MealDinner)...)
	foods = append(foods, snackFoods()...)
	for _, food := range foods {
		require.NoError(t, db.Create(&food).Error)
	}

	// The harness profile is moderately active, so every exercise sits at the
	// intermediate tier
	exercises := []models.Exercise{
		testExercise("Running", models.ExerciseCardio, models.MuscleFullBody, 10),
		testExercise("Bench press", models.ExerciseStrength, models.MuscleChest, 6),
		testExercise("Pull-up", models.ExerciseStrength, models.MuscleBack, 7),
		testExercise("Curl", models.ExerciseStrength, models.MuscleArms, 4),
		testExercise("Press", models.ExerciseStrength, models.MuscleShoulders, 5),
		testExercise("Squat", models.ExerciseStrength, models.MuscleLegs, 8),
		testExercise("Plank", models.ExerciseStrength, models.MuscleCore, 4),
		testExercise("Burpee", models.ExerciseStrength, models.MuscleFullBody, 9),
	}
	for _, exercise := range exercises {
		require.NoError(t, db.Create(&exercise).Error)
	}
}

func TestGetPlansGeneratesOnFirstRequest(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	response, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)

	require.NotNil(t, response.DietPlan)
	assert.Len(t, response.DietPlan.Days, 7)
	require.NotNil(t, response.WorkoutPlan)
	assert.Len(t, response.WorkoutPlan.Days, 7)
	assert.Positive(t, response.NutritionalNeeds.Calories)

	// Every artifact lands in the cache alongside the combined payload
	assert.True(t, h.cache.Contains(PlanResponseKey(h.userID)))
	assert.True(t, h.cache.Contains(DietPlanKey(h.userID)))
	assert.True(t, h.cache.Contains(WorkoutPlanKey(h.userID)))
	assert.True(t, h.cache.Contains(NutritionKey(h.userID)))
}

func TestGetPlansIsIdempotentAcrossCacheLoss(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	first, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)

	// A cold cache must not trigger regeneration; the stored plans win
	h.cache.Invalidate(ctx, UserKeys(h.userID)...)

	second, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, first.DietPlan.ID, second.DietPlan.ID)
	assert.Equal(t, first.WorkoutPlan.ID, second.WorkoutPlan.ID)
}

func TestGetPlansServesCachedResponse(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	first, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)

	// With the combined entry still cached the store is never consulted
	require.NoError(t, h.diet.DeleteAllForUser(ctx, h.userID))
	require.NoError(t, h.workout.DeleteAllForUser(ctx, h.userID))

	second, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, first.DietPlan.ID, second.DietPlan.ID)
}

func TestRegenerateReplacesStoredPlans(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	before, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)

	after, err := h.plans.Regenerate(ctx, h.userID)
	require.NoError(t, err)
	assert.NotEqual(t, before.DietPlan.ID, after.DietPlan.ID)
	assert.NotEqual(t, before.WorkoutPlan.ID, after.WorkoutPlan.ID)

	// The old plans are gone for good; reads resolve to the fresh ones
	latestDiet, err := h.diet.Latest(ctx, h.userID)
	require.NoError(t, err)
	require.NotNil(t, latestDiet)
	assert.Equal(t, after.DietPlan.ID, latestDiet.ID)

	latestWorkout, err := h.workout.Latest(ctx, h.userID)
	require.NoError(t, err)
	require.NotNil(t, latestWorkout)
	assert.Equal(t, after.WorkoutPlan.ID, latestWorkout.ID)

	assert.True(t, h.cache.Contains(PlanResponseKey(h.userID)))
}

func TestGetPlansWithoutProfile(t *testing.T) {
	h := newPlanHarness(t)

	_, err := h.plans.GetPlans(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRegenerateWithoutProfile(t *testing.T) {
	h := newPlanHarness(t)

	_, err := h.plans.Regenerate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestNutritionServedFromCacheOnRepeat(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	first, err := h.plans.Nutrition(ctx, h.userID)
	require.NoError(t, err)
	assert.True(t, h.cache.Contains(NutritionKey(h.userID)))

	// Removing the profile behind the cache proves the repeat read is a hit
	require.NoError(t, h.db.Where("user_id = ?", h.userID).Delete(&models.UserProfile{}).Error)

	second, err := h.plans.Nutrition(ctx, h.userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWorkoutPlanViewDerivedFields(t *testing.T) {
	h := newPlanHarness(t)
	ctx := context.Background()

	response, err := h.plans.GetPlans(ctx, h.userID)
	require.NoError(t, err)

	for _, day := range response.WorkoutPlan.Days {
		if day.IsRestDay {
			assert.Empty(t, day.Exercises)
			assert.Zero(t, day.TotalCaloriesBurned)
			assert.Zero(t, day.EstimatedDurationMinutes)
			continue
		}
		require.NotEmpty(t, day.Exercises)
		assert.Positive(t, day.TotalCaloriesBurned)
		assert.Positive(t, day.EstimatedDurationMinutes)
		for _, e := range day.Exercises {
			assert.Positive(t, e.CaloriesBurned)
		}
	}
}
