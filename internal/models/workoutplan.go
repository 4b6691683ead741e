package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutPlan is a full week of workouts for one user. It always carries
// exactly seven days, Monday through Sunday.
type WorkoutPlan struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanType        PlanType         `gorm:"size:20;not null" json:"plan_type"`
	DifficultyLevel Difficulty       `gorm:"size:20;not null" json:"difficulty_level"`
	Days            []DayWorkoutPlan `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE" json:"days"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

// BeforeCreate assigns an ID when none is set
func (p *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DayWorkoutPlan is a single day of a workout plan.
type DayWorkoutPlan struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	WorkoutPlanID uuid.UUID         `gorm:"type:uuid;not null;index" json:"-"`
	DayNumber     int               `gorm:"not null" json:"day_number"`
	DayName       string            `gorm:"size:10;not null" json:"day_name"`
	FocusArea     FocusArea         `gorm:"size:20;not null" json:"focus_area"`
	IsRestDay     bool              `gorm:"not null" json:"is_rest_day"`
	Exercises     []WorkoutExercise `gorm:"foreignKey:DayWorkoutPlanID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// BeforeCreate assigns an ID when none is set
func (d *DayWorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TotalCaloriesBurned sums the derived calorie burn over the day's exercises
func (d *DayWorkoutPlan) TotalCaloriesBurned() float64 {
	total := 0.0
	for i := range d.Exercises {
		total += d.Exercises[i].CaloriesBurned()
	}
	return total
}

// EstimatedDurationMinutes estimates the day's length. Exercises with an
// explicit duration count as-is; the rest are estimated from their set, rep
// and rest scheme. The total is truncated to whole minutes.
func (d *DayWorkoutPlan) EstimatedDurationMinutes() int {
	totalSeconds := 0
	for i := range d.Exercises {
		e := &d.Exercises[i]
		if e.DurationMinutes > 0 {
			totalSeconds += e.DurationMinutes * 60
		} else {
			totalSeconds += e.Sets*e.Reps*3 + e.Sets*e.RestSeconds
		}
	}
	return totalSeconds / 60
}

// WorkoutExercise is an exercise scheduled in a day with its set/rep scheme.
// Position fixes the in-day order on reload. Calorie burn is never stored; it
// is always derived via CaloriesBurned.
type WorkoutExercise struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DayWorkoutPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ExerciseID       uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Exercise         Exercise  `gorm:"foreignKey:ExerciseID" json:"exercise"`
	Position         int       `gorm:"not null" json:"-"`
	Sets             int       `gorm:"not null" json:"sets"`
	Reps             int       `gorm:"not null" json:"reps"`
	DurationMinutes  int       `gorm:"not null" json:"duration_minutes"`
	WeightKg         float64   `json:"weight_kg"`
	RestSeconds      int       `gorm:"not null" json:"rest_seconds"`
}

// BeforeCreate assigns an ID when none is set
func (e *WorkoutExercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// CaloriesBurned derives the calorie burn for this entry. Timed exercises burn
// for their explicit duration; set-based ones burn for an estimated duration
// of sets × (reps × 0.05 + rest/60) minutes.
func (e *WorkoutExercise) CaloriesBurned() float64 {
	cpm := e.Exercise.CaloriesBurnedPerMinute
	if e.DurationMinutes > 0 {
		return cpm * float64(e.DurationMinutes)
	}
	estimatedMinutes := float64(e.Sets) * (float64(e.Reps)*0.05 + float64(e.RestSeconds)/60)
	return cpm * estimatedMinutes
}
