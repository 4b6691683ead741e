package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
)

// SeedService imports the built-in food and exercise catalogs. Seeding is an
// explicit deployment-time step (cmd/seed_catalog), and upserting by name
// makes it safe to run repeatedly.
type SeedService struct {
	db *gorm.DB
}

// NewSeedService creates a new SeedService instance
func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{db: db}
}

// SeedAll imports both catalogs
func (s *SeedService) SeedAll(ctx context.Context) error {
	if err := s.SeedFoods(ctx); err != nil {
		return err
	}
	return s.SeedExercises(ctx)
}

// SeedFoods upserts the food catalog by name
func (s *SeedService) SeedFoods(ctx context.Context) error {
	created := 0
	for _, food := range defaultFoods {
		result := s.db.WithContext(ctx).Where("name = ?", food.Name).FirstOrCreate(&models.Food{}, food)
		if result.Error != nil {
			return fmt.Errorf("failed to seed food %q: %w", food.Name, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("[Seed] foods: %d created, %d already present", created, len(defaultFoods)-created)
	return nil
}

// SeedExercises upserts the exercise catalog by name
func (s *SeedService) SeedExercises(ctx context.Context) error {
	created := 0
	for _, exercise := range defaultExercises {
		result := s.db.WithContext(ctx).Where("name = ?", exercise.Name).FirstOrCreate(&models.Exercise{}, exercise)
		if result.Error != nil {
			return fmt.Errorf("failed to seed exercise %q: %w", exercise.Name, result.Error)
		}
		created += int(result.RowsAffected)
	}
	log.Printf("[Seed] exercises: %d created, %d already present", created, len(defaultExercises)-created)
	return nil
}

// food is a shorthand constructor for the seed table
func food(name string, cal, protein, carbs, fat, fiber float64, diet models.DietType, meal models.MealType, category models.FoodCategory) models.Food {
	return models.Food{
		Name:            name,
		CaloriesPer100g: cal,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
		FiberPer100g:    fiber,
		DietType:        diet,
		MealType:        meal,
		Category:        category,
	}
}

var defaultFoods = []models.Food{
	// Breakfast
	food("Oatmeal", 389, 16.9, 66.3, 6.9, 10.6, models.DietVegan, models.MealBreakfast, models.CategoryGrains),
	food("Whole Wheat Bread", 247, 13.0, 41.0, 3.4, 7.0, models.DietVegan, models.MealBreakfast, models.CategoryGrains),
	food("Poha", 130, 2.6, 26.9, 1.2, 1.0, models.DietVegan, models.MealBreakfast, models.CategoryGrains),
	food("Scrambled Eggs", 148, 10.0, 1.6, 11.0, 0, models.DietNonVeg, models.MealBreakfast, models.CategoryProtein),
	food("Greek Yogurt", 59, 10.0, 3.6, 0.4, 0, models.DietVeg, models.MealBreakfast, models.CategoryDairy),
	food("Paneer Bhurji", 265, 18.0, 4.0, 20.0, 0.5, models.DietVeg, models.MealBreakfast, models.CategoryProtein),
	food("Tofu Scramble", 83, 10.0, 2.3, 4.2, 1.2, models.DietVegan, models.MealBreakfast, models.CategoryProtein),
	food("Banana", 89, 1.1, 22.8, 0.3, 2.6, models.DietVegan, models.MealBreakfast, models.CategoryFruits),
	food("Apple", 52, 0.3, 13.8, 0.2, 2.4, models.DietVegan, models.MealBreakfast, models.CategoryFruits),
	food("Milk", 61, 3.2, 4.8, 3.3, 0, models.DietVeg, models.MealBreakfast, models.CategoryDairy),

	// Lunch
	food("Brown Rice", 111, 2.6, 23.0, 0.9, 1.8, models.DietVegan, models.MealLunch, models.CategoryGrains),
	food("Quinoa", 120, 4.4, 21.3, 1.9, 2.8, models.DietVegan, models.MealLunch, models.CategoryGrains),
	food("Whole Wheat Roti", 264, 9.6, 55.0, 1.3, 9.8, models.DietVegan, models.MealLunch, models.CategoryGrains),
	food("Grilled Chicken Breast", 165, 31.0, 0, 3.6, 0, models.DietNonVeg, models.MealLunch, models.CategoryProtein),
	food("Baked Salmon", 208, 20.0, 0, 13.0, 0, models.DietNonVeg, models.MealLunch, models.CategoryProtein),
	food("Chickpea Curry", 164, 8.9, 27.4, 2.6, 7.6, models.DietVegan, models.MealLunch, models.CategoryProtein),
	food("Dal Tadka", 116, 9.0, 20.1, 0.4, 7.9, models.DietVegan, models.MealLunch, models.CategoryProtein),
	food("Paneer Tikka", 270, 20.0, 6.0, 19.0, 0.8, models.DietVeg, models.MealLunch, models.CategoryProtein),
	food("Mixed Vegetable Salad", 33, 1.5, 6.5, 0.3, 2.5, models.DietVegan, models.MealLunch, models.CategoryVegetables),
	food("Steamed Broccoli", 35, 2.4, 7.2, 0.4, 3.3, models.DietVegan, models.MealLunch, models.CategoryVegetables),
	food("Spinach Saute", 41, 2.9, 3.8, 1.6, 2.4, models.DietVegan, models.MealLunch, models.CategoryVegetables),

	// Dinner
	food("Basmati Rice", 121, 2.5, 25.2, 0.4, 0.6, models.DietVegan, models.MealDinner, models.CategoryGrains),
	food("Millet Khichdi", 119, 4.0, 22.0, 1.5, 2.3, models.DietVegan, models.MealDinner, models.CategoryGrains),
	food("Sweet Potato", 86, 1.6, 20.1, 0.1, 3.0, models.DietVegan, models.MealDinner, models.CategoryGrains),
	food("Grilled Fish", 128, 26.0, 0, 2.7, 0, models.DietNonVeg, models.MealDinner, models.CategoryProtein),
	food("Turkey Meatballs", 170, 22.0, 3.0, 8.0, 0.5, models.DietNonVeg, models.MealDinner, models.CategoryProtein),
	food("Lentil Soup", 52, 4.0, 8.5, 0.4, 3.0, models.DietVegan, models.MealDinner, models.CategoryProtein),
	food("Rajma Masala", 127, 8.7, 22.8, 0.5, 6.4, models.DietVegan, models.MealDinner, models.CategoryProtein),
	food("Palak Paneer", 180, 11.0, 6.0, 13.0, 2.4, models.DietVeg, models.MealDinner, models.CategoryProtein),
	food("Roasted Vegetables", 62, 2.0, 10.0, 2.0, 3.8, models.DietVegan, models.MealDinner, models.CategoryVegetables),
	food("Cucumber Salad", 16, 0.7, 3.6, 0.1, 0.5, models.DietVegan, models.MealDinner, models.CategoryVegetables),

	// Snacks
	food("Almonds", 579, 21.2, 21.6, 49.9, 12.5, models.DietVegan, models.MealSnack, models.CategoryNuts),
	food("Walnuts", 654, 15.2, 13.7, 65.2, 6.7, models.DietVegan, models.MealSnack, models.CategoryNuts),
	food("Peanut Butter", 588, 25.1, 20.0, 50.0, 6.0, models.DietVegan, models.MealSnack, models.CategoryNuts),
	food("Orange", 47, 0.9, 11.8, 0.1, 2.4, models.DietVegan, models.MealSnack, models.CategoryFruits),
	food("Grapes", 69, 0.7, 18.1, 0.2, 0.9, models.DietVegan, models.MealSnack, models.CategoryFruits),
	food("Cottage Cheese Cubes", 98, 11.1, 3.4, 4.3, 0, models.DietVeg, models.MealSnack, models.CategoryDairy),
	food("Buttermilk", 40, 3.3, 4.8, 0.9, 0, models.DietVeg, models.MealSnack, models.CategoryDairy),
}

// exercise is a shorthand constructor for the seed table
func exercise(name string, category models.ExerciseCategory, group models.MuscleGroup, equipment string, difficulty models.Difficulty, cpm float64, description, instructions string) models.Exercise {
	return models.Exercise{
		Name:                    name,
		Category:                category,
		MuscleGroup:             group,
		Equipment:               equipment,
		Difficulty:              difficulty,
		CaloriesBurnedPerMinute: cpm,
		Description:             description,
		Instructions:            instructions,
	}
}

var defaultExercises = []models.Exercise{
	// Cardio
	exercise("Brisk Walking", models.ExerciseCardio, models.MuscleFullBody, "None", models.DifficultyBeginner, 5, "Low-impact steady-state cardio.", "Walk at a pace where talking is possible but singing is not."),
	exercise("Stationary Cycling", models.ExerciseCardio, models.MuscleLegs, "Exercise Bike", models.DifficultyBeginner, 7, "Joint-friendly cycling.", "Keep a steady cadence with light resistance."),
	exercise("Jogging", models.ExerciseCardio, models.MuscleFullBody, "None", models.DifficultyIntermediate, 9, "Steady-state running.", "Hold a conversational pace for the full duration."),
	exercise("Jump Rope", models.ExerciseCardio, models.MuscleFullBody, "Rope", models.DifficultyIntermediate, 11, "High-coordination conditioning.", "Jump low and land softly, rotating the rope from the wrists."),
	exercise("Running Intervals", models.ExerciseCardio, models.MuscleFullBody, "None", models.DifficultyAdvanced, 13, "Alternating sprint and recovery blocks.", "Sprint 1 minute, recover 1 minute, repeat."),
	exercise("Rowing Machine", models.ExerciseCardio, models.MuscleFullBody, "Rower", models.DifficultyAdvanced, 12, "Full-body pulling cardio.", "Drive with the legs first, then lean back and pull."),

	// Chest
	exercise("Knee Push-Up", models.ExerciseStrength, models.MuscleChest, "None", models.DifficultyBeginner, 4, "Regressed push-up.", "Lower the chest to the floor with knees down, press back up."),
	exercise("Push-Up", models.ExerciseStrength, models.MuscleChest, "None", models.DifficultyIntermediate, 6, "Bodyweight pressing staple.", "Keep a straight line from head to heels."),
	exercise("Barbell Bench Press", models.ExerciseStrength, models.MuscleChest, "Barbell", models.DifficultyAdvanced, 7, "Loaded horizontal press.", "Lower the bar to mid-chest and press to lockout."),

	// Back
	exercise("Band Row", models.ExerciseStrength, models.MuscleBack, "Resistance Band", models.DifficultyBeginner, 4, "Band-resisted row.", "Pull the band to the ribs, squeezing the shoulder blades."),
	exercise("Dumbbell Row", models.ExerciseStrength, models.MuscleBack, "Dumbbell", models.DifficultyIntermediate, 6, "Single-arm rowing.", "Row the dumbbell to the hip with a flat back."),
	exercise("Pull-Up", models.ExerciseStrength, models.MuscleBack, "Pull-Up Bar", models.DifficultyAdvanced, 8, "Vertical bodyweight pull.", "Pull the chin over the bar without swinging."),

	// Arms
	exercise("Band Curl", models.ExerciseStrength, models.MuscleArms, "Resistance Band", models.DifficultyBeginner, 3.5, "Band biceps curl.", "Curl to shoulder height, control the descent."),
	exercise("Dumbbell Curl", models.ExerciseStrength, models.MuscleArms, "Dumbbell", models.DifficultyIntermediate, 5, "Classic biceps curl.", "Keep the elbows pinned to the sides."),
	exercise("Close-Grip Bench Press", models.ExerciseStrength, models.MuscleArms, "Barbell", models.DifficultyAdvanced, 7, "Triceps-dominant press.", "Press with hands shoulder-width apart, elbows tucked."),

	// Shoulders
	exercise("Wall Handstand Hold", models.ExerciseStrength, models.MuscleShoulders, "None", models.DifficultyBeginner, 4, "Isometric shoulder hold.", "Hold an inverted position against the wall."),
	exercise("Dumbbell Shoulder Press", models.ExerciseStrength, models.MuscleShoulders, "Dumbbell", models.DifficultyIntermediate, 6, "Seated overhead press.", "Press the dumbbells overhead without arching the back."),
	exercise("Barbell Overhead Press", models.ExerciseStrength, models.MuscleShoulders, "Barbell", models.DifficultyAdvanced, 7.5, "Standing overhead press.", "Brace the trunk and press the bar to lockout."),

	// Legs
	exercise("Bodyweight Squat", models.ExerciseStrength, models.MuscleLegs, "None", models.DifficultyBeginner, 5, "Foundational squat pattern.", "Sit back and down until thighs are parallel."),
	exercise("Walking Lunge", models.ExerciseStrength, models.MuscleLegs, "None", models.DifficultyBeginner, 5.5, "Alternating lunge steps.", "Step forward and drop the back knee toward the floor."),
	exercise("Goblet Squat", models.ExerciseStrength, models.MuscleLegs, "Dumbbell", models.DifficultyIntermediate, 6.5, "Front-loaded squat.", "Hold a dumbbell at the chest and squat between the heels."),
	exercise("Romanian Deadlift", models.ExerciseStrength, models.MuscleLegs, "Barbell", models.DifficultyIntermediate, 7, "Hip hinge under load.", "Push the hips back with a soft knee bend."),
	exercise("Barbell Back Squat", models.ExerciseStrength, models.MuscleLegs, "Barbell", models.DifficultyAdvanced, 8, "Loaded squat staple.", "Squat to depth with the bar on the upper back."),
	exercise("Barbell Deadlift", models.ExerciseStrength, models.MuscleLegs, "Barbell", models.DifficultyAdvanced, 9, "Heavy hinge from the floor.", "Stand up with the bar keeping it against the legs."),

	// Core / full body
	exercise("Plank", models.ExerciseStrength, models.MuscleCore, "None", models.DifficultyBeginner, 3.5, "Isometric trunk hold.", "Hold a straight line on the forearms."),
	exercise("Dead Bug", models.ExerciseStrength, models.MuscleCore, "None", models.DifficultyBeginner, 3, "Anti-extension core drill.", "Lower opposite arm and leg while the back stays flat."),
	exercise("Hanging Knee Raise", models.ExerciseStrength, models.MuscleCore, "Pull-Up Bar", models.DifficultyIntermediate, 5, "Hanging core flexion.", "Raise the knees to the chest without swinging."),
	exercise("Ab Wheel Rollout", models.ExerciseStrength, models.MuscleCore, "Ab Wheel", models.DifficultyAdvanced, 6, "Long-lever anti-extension.", "Roll out as far as the trunk can stay rigid."),
	exercise("Glute Bridge", models.ExerciseStrength, models.MuscleFullBody, "None", models.DifficultyBeginner, 4, "Hip extension from the floor.", "Drive the hips up and squeeze at the top."),
	exercise("Kettlebell Swing", models.ExerciseStrength, models.MuscleFullBody, "Kettlebell", models.DifficultyIntermediate, 10, "Ballistic hip hinge.", "Snap the hips forward to float the bell to chest height."),
	exercise("Burpee", models.ExerciseStrength, models.MuscleFullBody, "None", models.DifficultyIntermediate, 10, "Squat-thrust with jump.", "Drop to the floor, pop up and jump."),
	exercise("Barbell Clean and Press", models.ExerciseStrength, models.MuscleFullBody, "Barbell", models.DifficultyAdvanced, 11, "Explosive full-body lift.", "Clean the bar to the shoulders, then press overhead."),
}
