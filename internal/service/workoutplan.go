package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitsphere/backend/internal/models"
)

const exercisesPerDay = 6

// weeklyFocusSchedules fixes the focus area per (plan type, day number)
var weeklyFocusSchedules = map[models.PlanType][7]models.FocusArea{
	models.PlanWeightLoss: {
		models.FocusCardio, models.FocusUpperBody, models.FocusCardio,
		models.FocusLowerBody, models.FocusFullBody, models.FocusCardio, models.FocusRest,
	},
	models.PlanMuscleGain: {
		models.FocusUpperBody, models.FocusLowerBody, models.FocusRest,
		models.FocusUpperBody, models.FocusLowerBody, models.FocusFullBody, models.FocusRest,
	},
	models.PlanStrength: {
		models.FocusUpperBody, models.FocusLowerBody, models.FocusRest,
		models.FocusUpperBody, models.FocusLowerBody, models.FocusFullBody, models.FocusRest,
	},
	models.PlanMixed: {
		models.FocusUpperBody, models.FocusCardio, models.FocusLowerBody,
		models.FocusRest, models.FocusFullBody, models.FocusCardio, models.FocusRest,
	},
}

// focusMuscleGroups maps a focus area to the muscle groups it pulls from.
// Cardio days query by exercise category instead.
var focusMuscleGroups = map[models.FocusArea][]models.MuscleGroup{
	models.FocusUpperBody: {models.MuscleChest, models.MuscleBack, models.MuscleArms, models.MuscleShoulders},
	models.FocusLowerBody: {models.MuscleLegs},
	models.FocusFullBody:  {models.MuscleFullBody, models.MuscleCore},
}

var cardioDurations = map[models.Difficulty]int{
	models.DifficultyBeginner:     15,
	models.DifficultyIntermediate: 25,
	models.DifficultyAdvanced:     35,
}

var strengthSets = map[models.Difficulty]int{
	models.DifficultyBeginner:     2,
	models.DifficultyIntermediate: 3,
	models.DifficultyAdvanced:     4,
}

var strengthRests = map[models.Difficulty]int{
	models.DifficultyBeginner:     90,
	models.DifficultyIntermediate: 60,
	models.DifficultyAdvanced:     45,
}

// WorkoutPlanService assembles and stores 7-day workout plans
type WorkoutPlanService struct {
	db      *gorm.DB
	catalog IExerciseCatalog
	rng     Picker
}

// NewWorkoutPlanService creates a new WorkoutPlanService instance
func NewWorkoutPlanService(db *gorm.DB, catalog IExerciseCatalog, rng Picker) *WorkoutPlanService {
	return &WorkoutPlanService{db: db, catalog: catalog, rng: rng}
}

// planTypeForGoal maps the user's goal onto a plan orientation. Unknown goals
// get the mixed schedule.
func planTypeForGoal(goal models.Goal) models.PlanType {
	switch goal {
	case models.GoalWeightLoss:
		return models.PlanWeightLoss
	case models.GoalMuscleGain:
		return models.PlanMuscleGain
	case models.GoalWeightGain:
		return models.PlanStrength
	default:
		return models.PlanMixed
	}
}

// difficultyForActivity maps activity level onto workout difficulty. Unknown
// levels stay at beginner.
func difficultyForActivity(level models.ActivityLevel) models.Difficulty {
	switch level {
	case models.ActivitySedentary, models.ActivityLightlyActive:
		return models.DifficultyBeginner
	case models.ActivityModeratelyActive:
		return models.DifficultyIntermediate
	case models.ActivityVeryActive, models.ActivityExtremelyActive:
		return models.DifficultyAdvanced
	default:
		return models.DifficultyBeginner
	}
}

// Generate assembles a Monday-to-Sunday workout schedule for the profile and
// persists it. Days that find fewer than six exercises keep whatever matched;
// rest days carry no exercises at all.
func (s *WorkoutPlanService) Generate(ctx context.Context, profile *models.UserProfile) (*models.WorkoutPlan, error) {
	planType := planTypeForGoal(profile.Goal)
	difficulty := difficultyForActivity(profile.ActivityLevel)
	schedule, ok := weeklyFocusSchedules[planType]
	if !ok {
		schedule = weeklyFocusSchedules[models.PlanMixed]
	}

	plan := &models.WorkoutPlan{
		UserID:          profile.UserID,
		PlanType:        planType,
		DifficultyLevel: difficulty,
	}
	// First save obtains the plan id, second one attaches the week
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout plan: %w", err)
	}

	days := make([]models.DayWorkoutPlan, 0, 7)
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		focus := schedule[dayNumber-1]
		day := models.DayWorkoutPlan{
			WorkoutPlanID: plan.ID,
			DayNumber:     dayNumber,
			DayName:       models.DayNames[dayNumber-1],
			FocusArea:     focus,
			IsRestDay:     focus == models.FocusRest,
		}
		if !day.IsRestDay {
			exercises, err := s.selectExercises(ctx, focus, difficulty)
			if err != nil {
				return nil, fmt.Errorf("failed to select exercises for day %d: %w", dayNumber, err)
			}
			day.Exercises = s.parameterize(exercises, planType, difficulty)
		}
		days = append(days, day)
	}

	plan.Days = days
	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to save workout plan days: %w", err)
	}
	return plan, nil
}

// Latest returns the most recently created plan for the user, fully hydrated,
// or nil when none exists
func (s *WorkoutPlanService) Latest(ctx context.Context, userID uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	err := s.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Days.Exercises.Exercise").
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

// DeleteAllForUser removes every workout plan stored for the user
func (s *WorkoutPlanService) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.WorkoutPlan{}).Error
}

// selectExercises gathers the candidate pool for a focus area, shuffles it
// uniformly and takes the first six (or fewer)
func (s *WorkoutPlanService) selectExercises(ctx context.Context, focus models.FocusArea, difficulty models.Difficulty) ([]models.Exercise, error) {
	var pool []models.Exercise

	if focus == models.FocusCardio {
		exercises, err := s.catalog.FindByCategoryAndDifficulty(ctx, models.ExerciseCardio, difficulty)
		if err != nil {
			return nil, err
		}
		pool = exercises
	} else {
		for _, group := range focusMuscleGroups[focus] {
			exercises, err := s.catalog.FindByMuscleGroupAndDifficulty(ctx, group, difficulty)
			if err != nil {
				return nil, err
			}
			pool = append(pool, exercises...)
		}
	}

	s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > exercisesPerDay {
		pool = pool[:exercisesPerDay]
	}
	return pool, nil
}

// parameterize assigns the set/rep/rest/duration scheme to each selected
// exercise. The exercise's own category decides cardio vs strength treatment.
func (s *WorkoutPlanService) parameterize(exercises []models.Exercise, planType models.PlanType, difficulty models.Difficulty) []models.WorkoutExercise {
	result := make([]models.WorkoutExercise, 0, len(exercises))
	for i, exercise := range exercises {
		entry := models.WorkoutExercise{ExerciseID: exercise.ID, Exercise: exercise, Position: i + 1}
		if exercise.Category == models.ExerciseCardio {
			entry.Sets = 1
			entry.Reps = 0
			entry.RestSeconds = 60
			entry.DurationMinutes = cardioDurations[difficulty]
		} else {
			entry.Sets = strengthSets[difficulty]
			entry.Reps = repsForPlanType(planType)
			entry.RestSeconds = strengthRests[difficulty]
			entry.DurationMinutes = 0
		}
		result = append(result, entry)
	}
	return result
}

// repsForPlanType picks the rep scheme for strength work
func repsForPlanType(planType models.PlanType) int {
	switch planType {
	case models.PlanStrength, models.PlanMuscleGain:
		return 8
	case models.PlanWeightLoss:
		return 15
	default:
		return 12
	}
}
