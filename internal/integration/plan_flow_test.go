package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitsphere/backend/internal/mocks"
	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/service"
	"github.com/fitsphere/backend/internal/testhelpers"
	"github.com/fitsphere/backend/internal/types"
)

// TestPlanLifecycle drives the full register, generate, regenerate flow
// against a containerized PostgreSQL with the shipped catalogs.
func TestPlanLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()

	require.NoError(t, service.NewSeedService(db).SeedAll(ctx))

	cache := mocks.NewMemoryCache()
	auth := service.NewAuthService(db, "integration-secret")
	profiles := service.NewProfileService(db, cache)
	diet := service.NewDietPlanService(db, service.NewFoodCatalogService(db), service.NewPicker())
	workout := service.NewWorkoutPlanService(db, service.NewExerciseCatalogService(db), service.NewPicker())
	plans := service.NewPlanService(profiles, service.NewNutritionCalculator(), diet, workout, cache)

	token, err := auth.Register(ctx, &types.RegisterRequest{
		Name:           "Ravi",
		Email:          "ravi@example.com",
		Password:       "long-enough-password",
		WeightKg:       82,
		HeightCm:       178,
		Age:            28,
		Sex:            string(models.SexMale),
		Goal:           string(models.GoalMuscleGain),
		ActivityLevel:  string(models.ActivityModeratelyActive),
		DietPreference: string(models.DietNonVeg),
	})
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	userID := claims.UserID

	first, err := plans.GetPlans(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, first.DietPlan)
	require.NotNil(t, first.WorkoutPlan)
	require.Len(t, first.DietPlan.Days, 7)
	require.Len(t, first.WorkoutPlan.Days, 7)

	for _, day := range first.DietPlan.Days {
		require.Len(t, day.Meals, 4)
		for _, meal := range day.Meals {
			assert.NotEmpty(t, meal.Items, "%s %s should draw from the seeded catalog", day.DayName, meal.MealType)
		}
	}

	// Muscle gain plans rest on Wednesday and Sunday
	assert.True(t, first.WorkoutPlan.Days[2].IsRestDay)
	assert.True(t, first.WorkoutPlan.Days[6].IsRestDay)
	assert.Equal(t, models.PlanMuscleGain, first.WorkoutPlan.PlanType)

	// Repeated reads hand back the stored plans
	repeat, err := plans.GetPlans(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.DietPlan.ID, repeat.DietPlan.ID)
	assert.Equal(t, first.WorkoutPlan.ID, repeat.WorkoutPlan.ID)

	// Regenerate replaces both halves
	fresh, err := plans.Regenerate(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, first.DietPlan.ID, fresh.DietPlan.ID)
	assert.NotEqual(t, first.WorkoutPlan.ID, fresh.WorkoutPlan.ID)

	latest, err := diet.Latest(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, fresh.DietPlan.ID, latest.ID)

	// A profile change flows into the next nutrition read
	newWeight := 90.0
	_, err = profiles.UpdateProfile(ctx, userID, &types.UpdateProfileRequest{WeightKg: &newWeight})
	require.NoError(t, err)

	needs, err := plans.Nutrition(ctx, userID)
	require.NoError(t, err)
	assert.Greater(t, needs.Calories, fresh.NutritionalNeeds.Calories)
}

// TestSeedingIsIdempotent runs the catalog import twice and checks the second
// pass creates nothing new.
func TestSeedingIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()
	seeder := service.NewSeedService(db)

	require.NoError(t, seeder.SeedAll(ctx))

	var foodsAfterFirst, exercisesAfterFirst int64
	require.NoError(t, db.Model(&models.Food{}).Count(&foodsAfterFirst).Error)
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exercisesAfterFirst).Error)
	assert.Positive(t, foodsAfterFirst)
	assert.Positive(t, exercisesAfterFirst)

	require.NoError(t, seeder.SeedAll(ctx))

	var foodsAfterSecond, exercisesAfterSecond int64
	require.NoError(t, db.Model(&models.Food{}).Count(&foodsAfterSecond).Error)
	require.NoError(t, db.Model(&models.Exercise{}).Count(&exercisesAfterSecond).Error)
	assert.Equal(t, foodsAfterFirst, foodsAfterSecond)
	assert.Equal(t, exercisesAfterFirst, exercisesAfterSecond)
}
