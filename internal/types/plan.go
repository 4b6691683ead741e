package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/fitsphere/backend/internal/models"
)

// NutritionalNeeds carries the daily energy and macro targets for a profile.
// All values are rounded to one decimal.
type NutritionalNeeds struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// PlanResponse is the combined payload for a user's plans
type PlanResponse struct {
	NutritionalNeeds NutritionalNeeds `json:"nutritional_needs"`
	DietPlan         *models.DietPlan `json:"diet_plan"`
	WorkoutPlan      *WorkoutPlanView `json:"workout_plan"`
}

// WorkoutPlanView is the read model for a workout plan. Calorie burn and
// duration are derived at view-build time, never read from storage.
type WorkoutPlanView struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	PlanType        models.PlanType   `json:"plan_type"`
	DifficultyLevel models.Difficulty `json:"difficulty_level"`
	Days            []WorkoutDayView  `json:"days"`
	CreatedAt       time.Time         `json:"created_at"`
}

// WorkoutDayView is the read model for one workout day
type WorkoutDayView struct {
	DayNumber                int                   `json:"day_number"`
	DayName                  string                `json:"day_name"`
	FocusArea                models.FocusArea      `json:"focus_area"`
	IsRestDay                bool                  `json:"is_rest_day"`
	Exercises                []WorkoutExerciseView `json:"exercises"`
	TotalCaloriesBurned      float64               `json:"total_calories_burned"`
	EstimatedDurationMinutes int                   `json:"estimated_duration_minutes"`
}

// WorkoutExerciseView is the read model for one scheduled exercise
type WorkoutExerciseView struct {
	Exercise        models.Exercise `json:"exercise"`
	Sets            int             `json:"sets"`
	Reps            int             `json:"reps"`
	DurationMinutes int             `json:"duration_minutes"`
	WeightKg        float64         `json:"weight_kg"`
	RestSeconds     int             `json:"rest_seconds"`
	CaloriesBurned  float64         `json:"calories_burned"`
}

// NewWorkoutPlanView builds the read model, recomputing all derived values
func NewWorkoutPlanView(plan *models.WorkoutPlan) *WorkoutPlanView {
	if plan == nil {
		return nil
	}
	view := &WorkoutPlanView{
		ID:              plan.ID,
		UserID:          plan.UserID,
		PlanType:        plan.PlanType,
		DifficultyLevel: plan.DifficultyLevel,
		CreatedAt:       plan.CreatedAt,
		Days:            make([]WorkoutDayView, 0, len(plan.Days)),
	}
	for i := range plan.Days {
		day := &plan.Days[i]
		dayView := WorkoutDayView{
			DayNumber:                day.DayNumber,
			DayName:                  day.DayName,
			FocusArea:                day.FocusArea,
			IsRestDay:                day.IsRestDay,
			Exercises:                make([]WorkoutExerciseView, 0, len(day.Exercises)),
			TotalCaloriesBurned:      day.TotalCaloriesBurned(),
			EstimatedDurationMinutes: day.EstimatedDurationMinutes(),
		}
		for j := range day.Exercises {
			e := &day.Exercises[j]
			dayView.Exercises = append(dayView.Exercises, WorkoutExerciseView{
				Exercise:        e.Exercise,
				Sets:            e.Sets,
				Reps:            e.Reps,
				DurationMinutes: e.DurationMinutes,
				WeightKg:        e.WeightKg,
				RestSeconds:     e.RestSeconds,
				CaloriesBurned:  e.CaloriesBurned(),
			})
		}
		view.Days = append(view.Days, dayView)
	}
	return view
}
