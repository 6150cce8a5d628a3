package domain

import (
	"time"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

// MealType names a slot of the day.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
)

// MealTypes lists the slots in the order they happen during a day.
var MealTypes = []MealType{MealBreakfast, MealMorningSnack, MealLunch, MealAfternoonSnack, MealDinner}

// Valid reports whether m is a known slot.
func (m MealType) Valid() bool {
	for _, known := range MealTypes {
		if m == known {
			return true
		}
	}
	return false
}

// DietType is a dietary preference chosen on the profile form.
type DietType string

const (
	DietBalanced   DietType = "balanced"
	DietLowCarb    DietType = "low_carb"
	DietKeto       DietType = "keto"
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
	DietPaleo      DietType = "paleo"
)

// DietTypes lists the accepted preferences in form order.
var DietTypes = []DietType{DietBalanced, DietLowCarb, DietKeto, DietVegetarian, DietVegan, DietPaleo}

// Valid reports whether d is one of DietTypes.
func (d DietType) Valid() bool {
	for _, known := range DietTypes {
		if d == known {
			return true
		}
	}
	return false
}

// DietNames converts diets to their string values.
func DietNames(diets []DietType) []string {
	names := make([]string, 0, len(diets))
	for _, d := range diets {
		names = append(names, string(d))
	}
	return names
}

// ParseDiets converts stored names back to diet types.
func ParseDiets(names []string) []DietType {
	diets := make([]DietType, 0, len(names))
	for _, n := range names {
		if n != "" {
			diets = append(diets, DietType(n))
		}
	}
	return diets
}

// UserProfile is the stored profile with the targets computed from it.
type UserProfile struct {
	UserID    string
	Name      string
	Profile   nutrition.Profile
	DietTypes []DietType
	Targets   nutrition.Targets
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MenuEntry places a recipe into a day and meal slot of a weekly menu.
type MenuEntry struct {
	ID        string
	UserID    string
	Date      time.Time
	MealType  MealType
	RecipeID  string
	Servings  int
	CreatedAt time.Time
}

// ConsumptionKind distinguishes recipe meals from manually described food.
type ConsumptionKind string

const (
	ConsumptionRecipe ConsumptionKind = "recipe"
	ConsumptionManual ConsumptionKind = "manual"
)

// ConsumptionEntry is one eaten item on a given day.
type ConsumptionEntry struct {
	ID          string
	UserID      string
	Date        time.Time
	Kind        ConsumptionKind
	MealType    MealType
	RecipeID    string
	Description string
	Portions    float64
	Intake      nutrition.Intake
	LoggedAt    time.Time
}

// DailyTotals is the running sum of a day's consumption.
type DailyTotals struct {
	Date   time.Time
	Intake nutrition.Intake
}

// HydrationDay tracks cups of water drunk on a day.
type HydrationDay struct {
	UserID    string
	Date      time.Time
	Cups      int
	GoalCups  int
	CupML     int
	UpdatedAt time.Time
}
