package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
)

// Migrate runs the schema migrations for all application models
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Food{},
		&models.Exercise{},
		&models.DietPlan{},
		&models.DayMealPlan{},
		&models.Meal{},
		&models.FoodItem{},
		&models.WorkoutPlan{},
		&models.DayWorkoutPlan{},
		&models.WorkoutExercise{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
