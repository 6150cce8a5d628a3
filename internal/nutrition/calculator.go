// Package nutrition computes daily caloric and macronutrient targets from a user profile.
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProfile is returned when a profile cannot produce targets.
var ErrInvalidProfile = errors.New("invalid profile")

// Sex selects the basal metabolic rate formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// OtherSexFormula is the formula applied to SexOther profiles.
const OtherSexFormula = SexFemale

// ActivityLevel is one of five ordered tiers.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists the tiers from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.20,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.90,
}

// Multiplier returns the TDEE multiplier for the tier.
func (a ActivityLevel) Multiplier() (float64, bool) {
	m, ok := activityMultipliers[a]
	return m, ok
}

// Goal adjusts the maintenance calories.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

var goalFactors = map[Goal]float64{
	GoalLose:     0.85,
	GoalMaintain: 1.0,
	GoalGain:     1.15,
}

// Profile holds the physical attributes used by Compute.
type Profile struct {
	WeightKG      float64       `json:"weight_kg"`
	HeightCM      float64       `json:"height_cm"`
	AgeYears      int           `json:"age_years"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
}

// Targets are the derived daily goals.
type Targets struct {
	DailyCalories int `json:"daily_calories"`
	ProteinG      int `json:"protein_g"`
	CarbsG        int `json:"carbs_g"`
	FatG          int `json:"fat_g"`
}

// Validate reports the first attribute that prevents target computation.
func (p Profile) Validate() error {
	switch {
	case p.WeightKG <= 0 || math.IsNaN(p.WeightKG) || math.IsInf(p.WeightKG, 0):
		return fmt.Errorf("%w: weight must be > 0", ErrInvalidProfile)
	case p.HeightCM <= 0 || math.IsNaN(p.HeightCM) || math.IsInf(p.HeightCM, 0):
		return fmt.Errorf("%w: height must be > 0", ErrInvalidProfile)
	case p.AgeYears <= 0:
		return fmt.Errorf("%w: age must be > 0", ErrInvalidProfile)
	}
	switch p.Sex {
	case SexMale, SexFemale, SexOther:
	default:
		return fmt.Errorf("%w: unknown sex %q", ErrInvalidProfile, p.Sex)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, p.ActivityLevel)
	}
	if _, ok := goalFactors[p.Goal]; !ok {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidProfile, p.Goal)
	}
	return nil
}

// BMR returns the basal metabolic rate in kcal/day without rounding.
func BMR(p Profile) float64 {
	w, h, a := p.WeightKG, p.HeightCM, float64(p.AgeYears)
	sex := p.Sex
	if sex == SexOther {
		sex = OtherSexFormula
	}
	if sex == SexMale {
		return 88.362 + 13.397*w + 4.799*h - 5.677*a
	}
	return 447.593 + 9.247*w + 3.098*h - 4.330*a
}

// Compute derives the daily calorie target and the 30/40/30 macro split.
// Rounding happens once on the calorie total and once per macro.
func Compute(p Profile) (Targets, error) {
	if err := p.Validate(); err != nil {
		return Targets{}, err
	}

	multiplier := activityMultipliers[p.ActivityLevel]
	calories := math.Round(BMR(p) * multiplier * goalFactors[p.Goal])
	if calories <= 0 {
		return Targets{}, fmt.Errorf("%w: non-positive calorie target", ErrInvalidProfile)
	}

	return MacroSplit(int(calories)), nil
}

// MacroSplit distributes calories as 30% protein, 40% carbs and 30% fat.
func MacroSplit(dailyCalories int) Targets {
	kcal := float64(dailyCalories)
	return Targets{
		DailyCalories: dailyCalories,
		ProteinG:      int(math.Round(kcal * 0.30 / 4)),
		CarbsG:        int(math.Round(kcal * 0.40 / 4)),
		FatG:          int(math.Round(kcal * 0.30 / 9)),
	}
}
