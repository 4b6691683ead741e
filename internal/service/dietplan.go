package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/types"
)

// Per-day calorie split across the four meal slots
const (
	breakfastShare = 0.25
	lunchShare     = 0.35
	dinnerShare    = 0.30
	snackShare     = 0.10
)

// Minimum serving sizes in grams per assembly role
const (
	breakfastGrainsFloor  = 50
	breakfastProteinFloor = 30
	breakfastFruitFloor   = 100
	mainGrainsFloor       = 80
	mainProteinFloor      = 100
	mainVegetablesFloor   = 150
	snackFloor            = 50
)

// DietPlanService assembles and stores 7-day meal plans
type DietPlanService struct {
	db      *gorm.DB
	catalog IFoodCatalog
	rng     Picker
}

// NewDietPlanService creates a new DietPlanService instance
func NewDietPlanService(db *gorm.DB, catalog IFoodCatalog, rng Picker) *DietPlanService {
	return &DietPlanService{db: db, catalog: catalog, rng: rng}
}

// Generate assembles a Monday-to-Sunday meal plan against the calorie and
// macro targets and persists it. Meal slots with no candidate foods come out
// empty rather than failing; the 7x4 shape is unconditional.
func (s *DietPlanService) Generate(ctx context.Context, profile *models.UserProfile, needs types.NutritionalNeeds) (*models.DietPlan, error) {
	menus, err := s.loadMenus(ctx, profile.DietPreference)
	if err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}

	plan := &models.DietPlan{
		UserID:             profile.UserID,
		DailyCalorieTarget: needs.Calories,
		DailyProteinTarget: needs.Protein,
		DailyCarbsTarget:   needs.Carbs,
		DailyFatTarget:     needs.Fat,
	}
	// First save obtains the plan id, second one attaches the week
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create diet plan: %w", err)
	}

	days := make([]models.DayMealPlan, 0, 7)
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		day := models.DayMealPlan{
			DietPlanID: plan.ID,
			DayNumber:  dayNumber,
			DayName:    models.DayNames[dayNumber-1],
		}
		day.Meals = []models.Meal{
			s.buildBreakfast(menus[models.MealBreakfast], needs.Calories*breakfastShare),
			s.buildMainMeal(models.MealLunch, menus[models.MealLunch], needs.Calories*lunchShare),
			s.buildMainMeal(models.MealDinner, menus[models.MealDinner], needs.Calories*dinnerShare),
			s.buildSnack(menus[models.MealSnack], needs.Calories*snackShare),
		}
		for i := range day.Meals {
			day.Meals[i].Position = i + 1
			for j := range day.Meals[i].Items {
				day.Meals[i].Items[j].Position = j + 1
			}
		}
		day.Recalculate()
		days = append(days, day)
	}

	plan.Days = days
	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to save diet plan days: %w", err)
	}
	return plan, nil
}

// Latest returns the most recently created plan for the user, fully hydrated,
// or nil when none exists
func (s *DietPlanService) Latest(ctx context.Context, userID uuid.UUID) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := s.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Meals", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Days.Meals.Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Days.Meals.Items.Food").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteAllForUser removes every diet plan stored for the user
func (s *DietPlanService) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.DietPlan{}).Error
}

// allowedDietTypes expands a dietary preference into the food diet types it
// accepts. Unknown preferences place no restriction.
func allowedDietTypes(pref models.DietType) []models.DietType {
	switch pref {
	case models.DietVeg:
		return []models.DietType{models.DietVeg, models.DietVegan}
	case models.DietNonVeg:
		return []models.DietType{models.DietVeg, models.DietNonVeg, models.DietVegan}
	case models.DietVegan:
		return []models.DietType{models.DietVegan}
	default:
		return []models.DietType{models.DietVeg, models.DietNonVeg, models.DietVegan}
	}
}

// loadMenus fetches the candidate foods for each meal slot once per
// generation. A slot with no foods borrows the lunch list.
func (s *DietPlanService) loadMenus(ctx context.Context, pref models.DietType) (map[models.MealType][]models.Food, error) {
	dietTypes := allowedDietTypes(pref)

	menus := make(map[models.MealType][]models.Food, 4)
	for _, mealType := range []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack} {
		foods, err := s.catalog.FindByDietTypesAndMealType(ctx, dietTypes, mealType)
		if err != nil {
			return nil, err
		}
		menus[mealType] = foods
	}

	lunch := menus[models.MealLunch]
	for mealType, foods := range menus {
		if len(foods) == 0 {
			menus[mealType] = lunch
		}
	}
	return menus, nil
}

// buildBreakfast assembles a deterministic breakfast: the first catalog match
// per category, sized as grains 40%, protein or dairy 35%, fruit remainder.
func (s *DietPlanService) buildBreakfast(foods []models.Food, mealCalories float64) models.Meal {
	meal := models.Meal{MealType: models.MealBreakfast}

	grainsCalories := mealCalories * 0.40
	proteinCalories := mealCalories * 0.35
	fruitCalories := mealCalories - grainsCalories - proteinCalories

	if grains := firstByCategory(foods, models.CategoryGrains); grains != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*grains, quantityFor(*grains, grainsCalories, breakfastGrainsFloor)))
	}
	if protein := firstByCategory(foods, models.CategoryProtein, models.CategoryDairy); protein != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*protein, quantityFor(*protein, proteinCalories, breakfastProteinFloor)))
	}
	if fruit := firstByCategory(foods, models.CategoryFruits); fruit != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*fruit, quantityFor(*fruit, fruitCalories, breakfastFruitFloor)))
	}

	meal.Recalculate()
	return meal
}

// buildMainMeal assembles a lunch or dinner with a random pick per category
// for variety: grains 35%, protein 45%, vegetables remainder.
func (s *DietPlanService) buildMainMeal(mealType models.MealType, foods []models.Food, mealCalories float64) models.Meal {
	meal := models.Meal{MealType: mealType}

	grainsCalories := mealCalories * 0.35
	proteinCalories := mealCalories * 0.45
	vegetableCalories := mealCalories - grainsCalories - proteinCalories

	if grains := s.randomByCategory(foods, models.CategoryGrains); grains != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*grains, quantityFor(*grains, grainsCalories, mainGrainsFloor)))
	}
	if protein := s.randomByCategory(foods, models.CategoryProtein); protein != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*protein, quantityFor(*protein, proteinCalories, mainProteinFloor)))
	}
	if vegetables := s.randomByCategory(foods, models.CategoryVegetables); vegetables != nil {
		meal.Items = append(meal.Items, models.NewFoodItem(*vegetables, quantityFor(*vegetables, vegetableCalories, mainVegetablesFloor)))
	}

	meal.Recalculate()
	return meal
}

// buildSnack assembles a single-item snack from the fruit, nut and dairy
// candidates. No candidates means an empty meal, never an error.
func (s *DietPlanService) buildSnack(foods []models.Food, mealCalories float64) models.Meal {
	meal := models.Meal{MealType: models.MealSnack}

	var candidates []models.Food
	for _, food := range foods {
		switch food.Category {
		case models.CategoryFruits, models.CategoryNuts, models.CategoryDairy:
			candidates = append(candidates, food)
		}
	}
	if len(candidates) == 0 {
		return meal
	}

	pick := candidates[s.rng.Intn(len(candidates))]
	meal.Items = append(meal.Items, models.NewFoodItem(pick, quantityFor(pick, mealCalories, snackFloor)))
	meal.Recalculate()
	return meal
}

// firstByCategory returns the first food in catalog order matching any of the
// given categories, or nil
func firstByCategory(foods []models.Food, categories ...models.FoodCategory) *models.Food {
	for i := range foods {
		for _, category := range categories {
			if foods[i].Category == category {
				return &foods[i]
			}
		}
	}
	return nil
}

// randomByCategory returns a uniformly random food of the category, or nil
func (s *DietPlanService) randomByCategory(foods []models.Food, category models.FoodCategory) *models.Food {
	var candidates []models.Food
	for _, food := range foods {
		if food.Category == category {
			candidates = append(candidates, food)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	return &pick
}

// quantityFor sizes a serving to hit the calorie share, never below the floor.
// Foods with no calorie data get the floor serving.
func quantityFor(food models.Food, targetCalories, floorGrams float64) float64 {
	if food.CaloriesPer100g <= 0 {
		return floorGrams
	}
	quantity := targetCalories / food.CaloriesPer100g * 100
	if quantity < floorGrams {
		return floorGrams
	}
	return quantity
}
