package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food is a catalog entry with nutrition facts per 100 grams.
type Food struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string       `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CaloriesPer100g float64      `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64      `gorm:"not null" json:"protein_per_100g"`
	CarbsPer100g    float64      `gorm:"not null" json:"carbs_per_100g"`
	FatPer100g      float64      `gorm:"not null" json:"fat_per_100g"`
	FiberPer100g    float64      `gorm:"not null" json:"fiber_per_100g"`
	DietType        DietType     `gorm:"size:10;not null;index" json:"diet_type"`
	MealType        MealType     `gorm:"size:10;not null;index" json:"meal_type"`
	Category        FoodCategory `gorm:"size:20;not null" json:"category"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// BeforeCreate assigns an ID when none is set
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
