package domain

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
	"github.com/Remoratrader/nutria-app/internal/observability"
)

// Portion limits for a logged recipe meal.
const (
	MinPortions = 0.1
	MaxPortions = 10
)

// LogMealInput records that the caller ate portions of a catalog recipe today.
type LogMealInput struct {
	UserID   string
	RecipeID string
	MealType MealType
	Portions float64
}

// Validate checks the portion range and meal slot.
func (in LogMealInput) Validate() error {
	if strings.TrimSpace(in.RecipeID) == "" {
		return fmt.Errorf("%w: recipe_id is required", ErrValidation)
	}
	if math.IsNaN(in.Portions) || in.Portions < MinPortions || in.Portions > MaxPortions {
		return fmt.Errorf("%w: portions must be between %.1f and %d", ErrValidation, MinPortions, MaxPortions)
	}
	if in.MealType != "" && !in.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal_type %q", ErrValidation, in.MealType)
	}
	return nil
}

// ManualFoodInput records a food that is not in the catalog.
type ManualFoodInput struct {
	UserID      string
	Description string
	MealType    MealType
	Intake      nutrition.Intake
}

// Validate requires a description and non-negative nutrition.
func (in ManualFoodInput) Validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	for name, v := range map[string]float64{
		"calories": in.Intake.Calories,
		"protein":  in.Intake.ProteinG,
		"carbs":    in.Intake.CarbsG,
		"fat":      in.Intake.FatG,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrValidation, name)
		}
	}
	if in.MealType != "" && !in.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal_type %q", ErrValidation, in.MealType)
	}
	return nil
}

// LogMeal stores a recipe meal scaled by portions.
func (s *Service) LogMeal(ctx context.Context, in LogMealInput) (*ConsumptionEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	recipe, ok := s.recipes.Get(in.RecipeID)
	if !ok {
		return nil, ErrRecipeNotFound
	}

	entry := s.newConsumption(in.UserID, ConsumptionRecipe, in.MealType)
	entry.RecipeID = recipe.ID
	entry.Description = recipe.Name
	entry.Portions = in.Portions
	entry.Intake = recipe.Intake().Scale(in.Portions)
	return s.logConsumption(ctx, entry)
}

// LogManualFood stores a manually described food as one portion.
func (s *Service) LogManualFood(ctx context.Context, in ManualFoodInput) (*ConsumptionEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	entry := s.newConsumption(in.UserID, ConsumptionManual, in.MealType)
	entry.Description = strings.TrimSpace(in.Description)
	entry.Portions = 1
	entry.Intake = in.Intake
	return s.logConsumption(ctx, entry)
}

func (s *Service) newConsumption(userID string, kind ConsumptionKind, meal MealType) ConsumptionEntry {
	now := s.now()
	return ConsumptionEntry{
		ID:       s.newID(),
		UserID:   userID,
		Date:     Day(now, s.loc),
		Kind:     kind,
		MealType: meal,
		LoggedAt: now.UTC(),
	}
}

func (s *Service) logConsumption(ctx context.Context, entry ConsumptionEntry) (*ConsumptionEntry, error) {
	if err := s.repo.LogConsumption(ctx, entry); err != nil {
		return nil, err
	}
	observability.RecordMealLogged(entry.LoggedAt)
	return &entry, nil
}

// DaySummary is the consumption of a day against the caller's targets.
type DaySummary struct {
	Date      time.Time
	Entries   []ConsumptionEntry
	Consumed  nutrition.Intake
	Targets   *nutrition.Targets
	Remaining *nutrition.Intake
}

// Today summarises what the caller has eaten today.
func (s *Service) Today(ctx context.Context, userID string) (*DaySummary, error) {
	day := s.today()
	entries, err := s.repo.ListConsumption(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	intakes := make([]nutrition.Intake, 0, len(entries))
	for _, e := range entries {
		intakes = append(intakes, e.Intake)
	}
	summary := &DaySummary{Date: day, Entries: entries, Consumed: nutrition.Sum(intakes...)}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		targets := profile.Targets
		remaining := nutrition.Remaining(targets, summary.Consumed)
		summary.Targets = &targets
		summary.Remaining = &remaining
	}
	return summary, nil
}

// DayProgress compares one day's calories with the target.
type DayProgress struct {
	Date           time.Time
	Calories       float64
	TargetCalories int
}

// WeeklyProgress reports the last seven days, oldest first, including days without consumption.
func (s *Service) WeeklyProgress(ctx context.Context, userID string) ([]DayProgress, error) {
	to := s.today()
	from := to.AddDate(0, 0, -(DaysPerWeek - 1))

	totals, err := s.repo.DailyTotals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]float64, len(totals))
	for _, t := range totals {
		byDay[t.Date.Format(dayKey)] = t.Intake.Calories
	}

	target := 0
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		target = profile.Targets.DailyCalories
	}

	progress := make([]DayProgress, 0, DaysPerWeek)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		progress = append(progress, DayProgress{
			Date:           d,
			Calories:       byDay[d.Format(dayKey)],
			TargetCalories: target,
		})
	}
	return progress, nil
}

const dayKey = "2006-01-02"
