package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is a catalog entry describing one movement.
type Exercise struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Name                    string           `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Category                ExerciseCategory `gorm:"size:20;not null;index" json:"category"`
	MuscleGroup             MuscleGroup      `gorm:"size:20;not null;index" json:"muscle_group"`
	Equipment               string           `gorm:"size:100" json:"equipment"`
	Difficulty              Difficulty       `gorm:"size:20;not null;index" json:"difficulty"`
	CaloriesBurnedPerMinute float64          `gorm:"not null" json:"calories_burned_per_minute"`
	Description             string           `gorm:"type:text" json:"description"`
	Instructions            string           `gorm:"type:text" json:"instructions"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// BeforeCreate assigns an ID when none is set
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
