package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitsphere/backend/internal/mocks"
	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/testhelpers"
	"github.com/fitsphere/backend/internal/types"
)

// fixedPicker always picks index 0 and never shuffles, pinning selections
type fixedPicker struct{}

func (fixedPicker) Intn(n int) int                   { return 0 }
func (fixedPicker) Shuffle(n int, swap func(i, j int)) {}

func testFood(name string, calories float64, category models.FoodCategory, mealType models.MealType) models.Food {
	return models.Food{
		ID:              uuid.New(),
		Name:            name,
		CaloriesPer100g: calories,
		ProteinPer100g:  10,
		CarbsPer100g:    20,
		FatPer100g:      5,
		FiberPer100g:    2,
		DietType:        models.DietVeg,
		MealType:        mealType,
		Category:        category,
	}
}

func breakfastFoods() []models.Food {
	return []models.Food{
		testFood("Oats", 100, models.CategoryGrains, models.MealBreakfast),
		testFood("Muesli", 100, models.CategoryGrains, models.MealBreakfast),
		testFood("Yogurt", 100, models.CategoryDairy, models.MealBreakfast),
		testFood("Banana", 100, models.CategoryFruits, models.MealBreakfast),
	}
}

func mainFoods(mealType models.MealType) []models.Food {
	return []models.Food{
		testFood("Rice "+string(mealType), 100, models.CategoryGrains, mealType),
		testFood("Lentils "+string(mealType), 100, models.CategoryProtein, mealType),
		testFood("Greens "+string(mealType), 100, models.CategoryVegetables, mealType),
	}
}

func snackFoods() []models.Food {
	return []models.Food{
		testFood("Apple", 100, models.CategoryFruits, models.MealSnack),
		testFood("Almonds", 100, models.CategoryNuts, models.MealSnack),
	}
}

func vegProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:         uuid.New(),
		WeightKg:       70,
		HeightCm:       175,
		Age:            30,
		Sex:            models.SexMale,
		Goal:           models.GoalMaintenance,
		ActivityLevel:  models.ActivityModeratelyActive,
		DietPreference: models.DietVeg,
	}
}

func expectMenus(catalog *mocks.MockFoodCatalog, breakfast, lunch, dinner, snack []models.Food) {
	dietTypes := []models.DietType{models.DietVeg, models.DietVegan}
	catalog.On("FindByDietTypesAndMealType", mock.Anything, dietTypes, models.MealBreakfast).Return(breakfast, nil)
	catalog.On("FindByDietTypesAndMealType", mock.Anything, dietTypes, models.MealLunch).Return(lunch, nil)
	catalog.On("FindByDietTypesAndMealType", mock.Anything, dietTypes, models.MealDinner).Return(dinner, nil)
	catalog.On("FindByDietTypesAndMealType", mock.Anything, dietTypes, models.MealSnack).Return(snack, nil)
}

func TestGenerateDietPlanShape(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, breakfastFoods(), mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	needs := types.NutritionalNeeds{Calories: 2000, Protein: 120, Carbs: 250, Fat: 55}

	plan, err := svc.Generate(context.Background(), vegProfile(), needs)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, plan.ID)

	require.Len(t, plan.Days, 7)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.DayNumber)
		assert.Equal(t, models.DayNames[i], day.DayName)
		require.Len(t, day.Meals, 4)
		assert.Equal(t, models.MealBreakfast, day.Meals[0].MealType)
		assert.Equal(t, models.MealLunch, day.Meals[1].MealType)
		assert.Equal(t, models.MealDinner, day.Meals[2].MealType)
		assert.Equal(t, models.MealSnack, day.Meals[3].MealType)
	}
}

func TestDietPlanMealCalorieSplit(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, breakfastFoods(), mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	// Large enough that every serving stays above its floor, and foods carry
	// exactly 100 kcal/100g so quantities map 1:1 to calories
	needs := types.NutritionalNeeds{Calories: 4000}

	plan, err := svc.Generate(context.Background(), vegProfile(), needs)
	require.NoError(t, err)

	day := plan.Days[0]
	assert.InDelta(t, 1000, day.Meals[0].TotalCalories, 1e-6) // 25%
	assert.InDelta(t, 1400, day.Meals[1].TotalCalories, 1e-6) // 35%
	assert.InDelta(t, 1200, day.Meals[2].TotalCalories, 1e-6) // 30%
	assert.InDelta(t, 400, day.Meals[3].TotalCalories, 1e-6)  // 10%
	assert.InDelta(t, 4000, day.TotalCalories, 1e-6)
}

func TestBreakfastDeterministicFirstMatch(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, breakfastFoods(), mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	plan, err := svc.Generate(context.Background(), vegProfile(), types.NutritionalNeeds{Calories: 4000})
	require.NoError(t, err)

	breakfast := plan.Days[0].Meals[0]
	require.Len(t, breakfast.Items, 3)
	// First grains entry wins over the second; dairy satisfies the
	// protein-or-dairy slot
	assert.Equal(t, "Oats", breakfast.Items[0].Food.Name)
	assert.Equal(t, "Yogurt", breakfast.Items[1].Food.Name)
	assert.Equal(t, "Banana", breakfast.Items[2].Food.Name)

	// 40% / 35% / remainder of the 1000 kcal breakfast share
	assert.InDelta(t, 400, breakfast.Items[0].QuantityGrams, 1e-6)
	assert.InDelta(t, 350, breakfast.Items[1].QuantityGrams, 1e-6)
	assert.InDelta(t, 250, breakfast.Items[2].QuantityGrams, 1e-6)
}

func TestQuantityFloorAppliesToDenseFoods(t *testing.T) {
	dense := testFood("Ghee", 900, models.CategoryGrains, models.MealBreakfast)
	// A near-zero calorie share still yields the floor serving
	assert.Equal(t, 50.0, quantityFor(dense, 1, 50))

	zero := testFood("Water", 0, models.CategoryVegetables, models.MealLunch)
	assert.Equal(t, 150.0, quantityFor(zero, 500, 150))
}

func TestDietPlanFallsBackToLunchList(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	// Breakfast has no candidates; the lunch list fills in
	expectMenus(catalog, []models.Food{}, mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	plan, err := svc.Generate(context.Background(), vegProfile(), types.NutritionalNeeds{Calories: 2000})
	require.NoError(t, err)

	breakfast := plan.Days[0].Meals[0]
	require.NotEmpty(t, breakfast.Items)
	assert.Equal(t, "Rice LUNCH", breakfast.Items[0].Food.Name)
}

func TestDietPlanEmptyCatalogYieldsEmptyMeals(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, []models.Food{}, []models.Food{}, []models.Food{}, []models.Food{})

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	plan, err := svc.Generate(context.Background(), vegProfile(), types.NutritionalNeeds{Calories: 2000})
	require.NoError(t, err)

	// The 7x4 shape survives a completely empty catalog
	require.Len(t, plan.Days, 7)
	for _, day := range plan.Days {
		require.Len(t, day.Meals, 4)
		for _, meal := range day.Meals {
			assert.Empty(t, meal.Items)
			assert.Zero(t, meal.TotalCalories)
		}
	}
}

func TestAllowedDietTypes(t *testing.T) {
	assert.ElementsMatch(t, []models.DietType{models.DietVeg, models.DietVegan}, allowedDietTypes(models.DietVeg))
	assert.ElementsMatch(t, []models.DietType{models.DietVeg, models.DietNonVeg, models.DietVegan}, allowedDietTypes(models.DietNonVeg))
	assert.ElementsMatch(t, []models.DietType{models.DietVegan}, allowedDietTypes(models.DietVegan))
	assert.ElementsMatch(t, []models.DietType{models.DietVeg, models.DietNonVeg, models.DietVegan}, allowedDietTypes(models.DietType("PESCATARIAN")))
}

func TestDietPlanLatestReturnsNewestHydrated(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, breakfastFoods(), mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	profile := vegProfile()

	first, err := svc.Generate(context.Background(), profile, types.NutritionalNeeds{Calories: 2000})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), profile, types.NutritionalNeeds{Calories: 2100})
	require.NoError(t, err)

	latest, err := svc.Latest(context.Background(), profile.UserID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	// Duplicate rows are never merged; the newest one wins
	assert.Equal(t, second.ID, latest.ID)
	assert.NotEqual(t, first.ID, latest.ID)

	// The slot and item order must survive the round trip through the
	// database, not just the in-memory assembly
	require.Len(t, latest.Days, 7)
	for _, day := range latest.Days {
		require.Len(t, day.Meals, 4)
		assert.Equal(t, models.MealBreakfast, day.Meals[0].MealType)
		assert.Equal(t, models.MealLunch, day.Meals[1].MealType)
		assert.Equal(t, models.MealDinner, day.Meals[2].MealType)
		assert.Equal(t, models.MealSnack, day.Meals[3].MealType)
	}

	breakfast := latest.Days[0].Meals[0]
	require.Len(t, breakfast.Items, 3)
	assert.Equal(t, "Oats", breakfast.Items[0].Food.Name)
	assert.Equal(t, "Yogurt", breakfast.Items[1].Food.Name)
	assert.Equal(t, "Banana", breakfast.Items[2].Food.Name)
}

func TestDietPlanDeleteAllForUser(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	catalog := new(mocks.MockFoodCatalog)
	expectMenus(catalog, breakfastFoods(), mainFoods(models.MealLunch), mainFoods(models.MealDinner), snackFoods())

	svc := NewDietPlanService(db, catalog, fixedPicker{})
	profile := vegProfile()

	_, err := svc.Generate(context.Background(), profile, types.NutritionalNeeds{Calories: 2000})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAllForUser(context.Background(), profile.UserID))

	latest, err := svc.Latest(context.Background(), profile.UserID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}
