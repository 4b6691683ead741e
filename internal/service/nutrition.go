package service

import (
	"math"

	"github.com/fitsphere/backend/internal/models"
	"github.com/fitsphere/backend/internal/types"
)

// activityMultipliers maps activity levels to their TDEE multiplier
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:        1.2,
	models.ActivityLightlyActive:    1.375,
	models.ActivityModeratelyActive: 1.55,
	models.ActivityVeryActive:       1.725,
	models.ActivityExtremelyActive:  1.9,
}

// goalCalorieDeltas maps goals to the adjustment applied on top of TDEE
var goalCalorieDeltas = map[models.Goal]float64{
	models.GoalWeightLoss:  -500,
	models.GoalWeightGain:  500,
	models.GoalMuscleGain:  300,
	models.GoalMaintenance: 0,
}

// NutritionCalculator computes daily energy and macro targets from a profile.
// It is pure and does no I/O.
type NutritionCalculator struct{}

// NewNutritionCalculator creates a new NutritionCalculator instance
func NewNutritionCalculator() *NutritionCalculator {
	return &NutritionCalculator{}
}

// CalculateNeeds derives the daily targets for a profile using the
// Mifflin-St Jeor equation. Unrecognized activity levels fall back to the
// sedentary multiplier and unrecognized goals to a zero calorie delta; callers
// never see an error for a malformed enum.
func (c *NutritionCalculator) CalculateNeeds(profile *models.UserProfile) types.NutritionalNeeds {
	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		multiplier = 1.2
	}
	tdee := roundTo1Decimal(bmr * multiplier)

	calories := tdee + goalCalorieDeltas[profile.Goal]

	proteinPerKg := 1.6
	switch profile.Goal {
	case models.GoalWeightLoss:
		proteinPerKg = 2.0
	case models.GoalMuscleGain:
		proteinPerKg = 1.8
	}
	protein := roundTo1Decimal(proteinPerKg * profile.WeightKg)

	fat := roundTo1Decimal(calories * 0.25 / 9)

	// Can go negative when protein and fat already exceed the calorie target;
	// the value is propagated as-is.
	carbs := roundTo1Decimal((calories - protein*4 - fat*9) / 4)

	return types.NutritionalNeeds{
		Calories: roundTo1Decimal(calories),
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// roundTo1Decimal rounds half away from zero to one decimal place
func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}
