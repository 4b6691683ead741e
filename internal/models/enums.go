package models

// Sex is the biological sex used by the BMR formula.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// Goal is the user's training goal.
type Goal string

const (
	GoalWeightLoss  Goal = "WEIGHT_LOSS"
	GoalWeightGain  Goal = "WEIGHT_GAIN"
	GoalMuscleGain  Goal = "MUSCLE_GAIN"
	GoalMaintenance Goal = "MAINTENANCE"
)

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
	ActivityExtremelyActive  ActivityLevel = "EXTREMELY_ACTIVE"
)

// DietType classifies foods and user dietary preference.
type DietType string

const (
	DietVeg    DietType = "VEG"
	DietNonVeg DietType = "NON_VEG"
	DietVegan  DietType = "VEGAN"
)

// MealType is the slot a food is served in.
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

// FoodCategory groups foods for meal assembly.
type FoodCategory string

const (
	CategoryGrains     FoodCategory = "GRAINS"
	CategoryProtein    FoodCategory = "PROTEIN"
	CategoryVegetables FoodCategory = "VEGETABLES"
	CategoryFruits     FoodCategory = "FRUITS"
	CategoryDairy      FoodCategory = "DAIRY"
	CategoryNuts       FoodCategory = "NUTS"
)

// ExerciseCategory is the broad training modality of an exercise.
type ExerciseCategory string

const (
	ExerciseCardio      ExerciseCategory = "CARDIO"
	ExerciseStrength    ExerciseCategory = "STRENGTH"
	ExerciseFlexibility ExerciseCategory = "FLEXIBILITY"
)

// MuscleGroup is the primary muscle group an exercise targets.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "CHEST"
	MuscleBack      MuscleGroup = "BACK"
	MuscleArms      MuscleGroup = "ARMS"
	MuscleShoulders MuscleGroup = "SHOULDERS"
	MuscleLegs      MuscleGroup = "LEGS"
	MuscleCore      MuscleGroup = "CORE"
	MuscleFullBody  MuscleGroup = "FULL_BODY"
)

// Difficulty is the intensity tier of an exercise or workout plan.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// FocusArea is the training emphasis assigned to a workout day.
type FocusArea string

const (
	FocusCardio    FocusArea = "CARDIO"
	FocusUpperBody FocusArea = "UPPER_BODY"
	FocusLowerBody FocusArea = "LOWER_BODY"
	FocusFullBody  FocusArea = "FULL_BODY"
	FocusRest      FocusArea = "REST"
)

// PlanType is the overall orientation of a workout plan.
type PlanType string

const (
	PlanWeightLoss PlanType = "WEIGHT_LOSS"
	PlanMuscleGain PlanType = "MUSCLE_GAIN"
	PlanStrength   PlanType = "STRENGTH"
	PlanMixed      PlanType = "MIXED"
)

// DayNames lists the fixed Monday-first day sequence every plan uses.
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
