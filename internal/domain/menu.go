package domain

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Remoratrader/nutria-app/internal/observability"
)

// AddMenuEntryInput places a recipe into the menu.
type AddMenuEntryInput struct {
	UserID     string
	WeekOffset int
	DayIndex   int
	MealType   MealType
	RecipeID   string
	Servings   int
}

// Validate checks the slot coordinates and servings.
func (in AddMenuEntryInput) Validate() error {
	if in.DayIndex < 0 || in.DayIndex >= DaysPerWeek {
		return fmt.Errorf("%w: day_index must be between 0 and %d", ErrValidation, DaysPerWeek-1)
	}
	if !in.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal_type %q", ErrValidation, in.MealType)
	}
	if strings.TrimSpace(in.RecipeID) == "" {
		return fmt.Errorf("%w: recipe_id is required", ErrValidation)
	}
	if in.Servings < 1 {
		return fmt.Errorf("%w: servings must be at least 1", ErrValidation)
	}
	return nil
}

// WeekMenu is the menu for one week.
type WeekMenu struct {
	Week    Week
	Entries []MenuEntry
}

// GetWeekMenu lists the entries of the week at offset, ordered by day then slot.
func (s *Service) GetWeekMenu(ctx context.Context, userID string, weekOffset int) (*WeekMenu, error) {
	week := WeekAt(s.now(), weekOffset, s.loc)
	entries, err := s.repo.ListMenu(ctx, userID, week.Start, week.End)
	if err != nil {
		return nil, err
	}
	sortMenu(entries)
	return &WeekMenu{Week: week, Entries: entries}, nil
}

// AddMenuEntry stores a new slot assignment for a catalog recipe.
func (s *Service) AddMenuEntry(ctx context.Context, in AddMenuEntryInput) (*MenuEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, ok := s.recipes.Get(in.RecipeID); !ok {
		return nil, ErrRecipeNotFound
	}

	week := WeekAt(s.now(), in.WeekOffset, s.loc)
	entry := MenuEntry{
		ID:        s.newID(),
		UserID:    in.UserID,
		Date:      week.Start.AddDate(0, 0, in.DayIndex),
		MealType:  in.MealType,
		RecipeID:  in.RecipeID,
		Servings:  in.Servings,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.AddMenuEntry(ctx, entry); err != nil {
		return nil, err
	}
	observability.RecordMenuChange("added")
	return &entry, nil
}

// RemoveMenuEntry deletes one of the caller's entries.
func (s *Service) RemoveMenuEntry(ctx context.Context, userID, entryID string) error {
	removed, err := s.repo.RemoveMenuEntry(ctx, userID, entryID, s.now().UTC())
	if err != nil {
		return err
	}
	if !removed {
		return ErrMenuEntryNotFound
	}
	observability.RecordMenuChange("removed")
	return nil
}

func sortMenu(entries []MenuEntry) {
	slot := make(map[MealType]int, len(MealTypes))
	for i, m := range MealTypes {
		slot[m] = i
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		if slot[entries[i].MealType] != slot[entries[j].MealType] {
			return slot[entries[i].MealType] < slot[entries[j].MealType]
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
