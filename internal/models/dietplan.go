package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietPlan is a full week of meals for one user. It always carries exactly
// seven days, Monday through Sunday.
type DietPlan struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	DailyCalorieTarget float64        `gorm:"not null" json:"daily_calorie_target"`
	DailyProteinTarget float64        `gorm:"not null" json:"daily_protein_target"`
	DailyCarbsTarget   float64        `gorm:"not null" json:"daily_carbs_target"`
	DailyFatTarget     float64        `gorm:"not null" json:"daily_fat_target"`
	Days               []DayMealPlan  `gorm:"foreignKey:DietPlanID;constraint:OnDelete:CASCADE" json:"days"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns an ID when none is set
func (p *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// DayMealPlan is a single day's four meals with aggregated daily totals.
type DayMealPlan struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DietPlanID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	DayNumber     int       `gorm:"not null" json:"day_number"`
	DayName       string    `gorm:"size:10;not null" json:"day_name"`
	Meals         []Meal    `gorm:"foreignKey:DayMealPlanID;constraint:OnDelete:CASCADE" json:"meals"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	TotalFiber    float64   `json:"total_fiber"`
}

// BeforeCreate assigns an ID when none is set
func (d *DayMealPlan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Recalculate refreshes the day totals from its meals
func (d *DayMealPlan) Recalculate() {
	d.TotalCalories, d.TotalProtein, d.TotalCarbs, d.TotalFat, d.TotalFiber = 0, 0, 0, 0, 0
	for i := range d.Meals {
		d.Meals[i].Recalculate()
		d.TotalCalories += d.Meals[i].TotalCalories
		d.TotalProtein += d.Meals[i].TotalProtein
		d.TotalCarbs += d.Meals[i].TotalCarbs
		d.TotalFat += d.Meals[i].TotalFat
		d.TotalFiber += d.Meals[i].TotalFiber
	}
}

// Meal is one meal slot of a day with its ordered food items. Position fixes
// the breakfast-to-snack order on reload; row order alone does not survive a
// round trip through the database.
type Meal struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DayMealPlanID uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	MealType      MealType   `gorm:"size:10;not null" json:"meal_type"`
	Position      int        `gorm:"not null" json:"-"`
	Items         []FoodItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"items"`
	TotalCalories float64    `json:"total_calories"`
	TotalProtein  float64    `json:"total_protein"`
	TotalCarbs    float64    `json:"total_carbs"`
	TotalFat      float64    `json:"total_fat"`
	TotalFiber    float64    `json:"total_fiber"`
}

// BeforeCreate assigns an ID when none is set
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Recalculate refreshes the meal totals from its items
func (m *Meal) Recalculate() {
	m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFat, m.TotalFiber = 0, 0, 0, 0, 0
	for _, item := range m.Items {
		m.TotalCalories += item.Calories
		m.TotalProtein += item.Protein
		m.TotalCarbs += item.Carbs
		m.TotalFat += item.Fat
		m.TotalFiber += item.Fiber
	}
}

// FoodItem is a food reference plus a quantity in grams. Its macro fields are
// derived from the food's per-100g values and must be refreshed through
// SetQuantity whenever the quantity changes.
type FoodItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MealID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	FoodID        uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Food          Food      `gorm:"foreignKey:FoodID" json:"food"`
	Position      int       `gorm:"not null" json:"-"`
	QuantityGrams float64   `gorm:"not null" json:"quantity_grams"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbs         float64   `json:"carbs"`
	Fat           float64   `json:"fat"`
	Fiber         float64   `json:"fiber"`
}

// BeforeCreate assigns an ID when none is set
func (i *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// NewFoodItem builds an item for the given food and quantity
func NewFoodItem(food Food, quantityGrams float64) FoodItem {
	item := FoodItem{FoodID: food.ID, Food: food}
	item.SetQuantity(quantityGrams)
	return item
}

// SetQuantity updates the quantity and recomputes the derived macro fields
func (i *FoodItem) SetQuantity(grams float64) {
	factor := grams / 100
	i.QuantityGrams = grams
	i.Calories = i.Food.CaloriesPer100g * factor
	i.Protein = i.Food.ProteinPer100g * factor
	i.Carbs = i.Food.CarbsPer100g * factor
	i.Fat = i.Food.FatPer100g * factor
	i.Fiber = i.Food.FiberPer100g * factor
}
