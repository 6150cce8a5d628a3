package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Remoratrader/nutria-app/internal/catalog"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nutria.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutria.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)

	missing, err := store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.Nil(t, missing)

	created := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	profile := domain.UserProfile{
		UserID: "user-1",
		Name:   "Ana",
		Profile: nutrition.Profile{
			WeightKG: 70, HeightCM: 175, AgeYears: 30,
			Sex: nutrition.SexMale, ActivityLevel: nutrition.ActivityModerate, Goal: nutrition.GoalMaintain,
		},
		DietTypes: []domain.DietType{domain.DietVegan, domain.DietPaleo},
		Targets:   nutrition.Targets{DailyCalories: 2628, ProteinG: 197, CarbsG: 263, FatG: 88},
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, store.SaveProfile(ctx, profile))

	profile.Name = "Ana Maria"
	profile.DietTypes = []domain.DietType{domain.DietKeto}
	profile.Profile.Goal = nutrition.GoalLose
	profile.CreatedAt = created.Add(time.Hour)
	profile.UpdatedAt = created.Add(time.Hour)
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, nutrition.GoalLose, got.Profile.Goal)
	require.Equal(t, []domain.DietType{domain.DietKeto}, got.DietTypes)
	require.Equal(t, profile.Targets, got.Targets)
	require.True(t, got.CreatedAt.Equal(created), "created_at must survive updates")
	require.True(t, got.UpdatedAt.Equal(created.Add(time.Hour)))
}

func TestMenuEntriesAreScopedByUserAndRange(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	for _, e := range []domain.MenuEntry{
		{ID: "e1", UserID: "user-1", Date: day(2025, 10, 12), MealType: domain.MealLunch, RecipeID: "1", Servings: 2, CreatedAt: now},
		{ID: "e2", UserID: "user-1", Date: day(2025, 10, 18), MealType: domain.MealDinner, RecipeID: "2", Servings: 1, CreatedAt: now},
		{ID: "e3", UserID: "user-1", Date: day(2025, 10, 19), MealType: domain.MealDinner, RecipeID: "3", Servings: 1, CreatedAt: now},
		{ID: "e4", UserID: "user-2", Date: day(2025, 10, 13), MealType: domain.MealLunch, RecipeID: "4", Servings: 1, CreatedAt: now},
	} {
		require.NoError(t, store.AddMenuEntry(ctx, e))
	}

	entries, err := store.ListMenu(ctx, "user-1", day(2025, 10, 12), day(2025, 10, 18))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "e1", entries[0].ID)
	require.Equal(t, 2, entries[0].Servings)
	require.True(t, entries[0].Date.Equal(day(2025, 10, 12)))
	require.Equal(t, "e2", entries[1].ID)

	removed, err := store.RemoveMenuEntry(ctx, "user-2", "e1", now)
	require.NoError(t, err)
	require.False(t, removed)

	removed, err = store.RemoveMenuEntry(ctx, "user-1", "e1", now)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = store.RemoveMenuEntry(ctx, "user-1", "e1", now)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	at := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	added, err := store.ToggleFavorite(ctx, "user-1", "7", at)
	require.NoError(t, err)
	require.True(t, added)
	added, err = store.ToggleFavorite(ctx, "user-1", "3", at.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, added)

	ids, err := store.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"7", "3"}, ids)

	added, err = store.ToggleFavorite(ctx, "user-1", "7", at.Add(2*time.Minute))
	require.NoError(t, err)
	require.False(t, added)

	ids, err = store.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"3"}, ids)

	others, err := store.ListFavorites(ctx, "user-2")
	require.NoError(t, err)
	require.Empty(t, others)
}

func TestLogConsumptionKeepsDailyTotals(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	logged := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.LogConsumption(ctx, domain.ConsumptionEntry{
		ID: "c1", UserID: "user-1", Date: day(2025, 10, 15), Kind: domain.ConsumptionRecipe,
		MealType: domain.MealLunch, RecipeID: "1", Description: "Feijoada Leve", Portions: 1.5,
		Intake: nutrition.Intake{Calories: 600, ProteinG: 45, CarbsG: 60, FatG: 15}, LoggedAt: logged,
	}))
	require.NoError(t, store.LogConsumption(ctx, domain.ConsumptionEntry{
		ID: "c2", UserID: "user-1", Date: day(2025, 10, 15), Kind: domain.ConsumptionManual,
		Description: "Banana", Portions: 1,
		Intake: nutrition.Intake{Calories: 90, CarbsG: 23}, LoggedAt: logged.Add(time.Hour),
	}))
	require.NoError(t, store.LogConsumption(ctx, domain.ConsumptionEntry{
		ID: "c3", UserID: "user-1", Date: day(2025, 10, 13), Kind: domain.ConsumptionManual,
		Description: "Pão", Portions: 1,
		Intake: nutrition.Intake{Calories: 150}, LoggedAt: logged.AddDate(0, 0, -2),
	}))

	entries, err := store.ListConsumption(ctx, "user-1", day(2025, 10, 15))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "c1", entries[0].ID)
	require.Equal(t, domain.ConsumptionRecipe, entries[0].Kind)
	require.InDelta(t, 1.5, entries[0].Portions, 1e-9)
	require.Equal(t, "Banana", entries[1].Description)

	totals, err := store.DailyTotals(ctx, "user-1", day(2025, 10, 9), day(2025, 10, 15))
	require.NoError(t, err)
	require.Len(t, totals, 2)
	require.True(t, totals[0].Date.Equal(day(2025, 10, 13)))
	require.InDelta(t, 150, totals[0].Intake.Calories, 1e-9)
	require.True(t, totals[1].Date.Equal(day(2025, 10, 15)))
	require.InDelta(t, 690, totals[1].Intake.Calories, 1e-9)
	require.InDelta(t, 83, totals[1].Intake.CarbsG, 1e-9)
}

func TestAdjustHydrationClampsAtZero(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	today := day(2025, 10, 15)
	defaults := domain.HydrationDay{GoalCups: 8, CupML: 250, UpdatedAt: time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)}

	none, err := store.GetHydration(ctx, "user-1", today)
	require.NoError(t, err)
	require.Nil(t, none)

	h, err := store.AdjustHydration(ctx, "user-1", today, -1, defaults)
	require.NoError(t, err)
	require.Equal(t, 0, h.Cups)
	require.Equal(t, 8, h.GoalCups)

	h, err = store.AdjustHydration(ctx, "user-1", today, 3, defaults)
	require.NoError(t, err)
	require.Equal(t, 3, h.Cups)

	h, err = store.AdjustHydration(ctx, "user-1", today, -5, defaults)
	require.NoError(t, err)
	require.Equal(t, 0, h.Cups)

	got, err := store.GetHydration(ctx, "user-1", today)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 0, got.Cups)
	require.Equal(t, 250, got.CupML)
	require.True(t, got.Date.Equal(today))
}

func TestServiceOverSQLite(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	now := time.Date(2025, 10, 15, 13, 30, 0, 0, time.UTC)
	svc := domain.NewService(store, catalog.New(), domain.WithClock(func() time.Time { return now }))

	_, err := svc.LogManualFood(ctx, domain.ManualFoodInput{
		UserID: "user-1", Description: "Iogurte", Intake: nutrition.Intake{Calories: 120, ProteinG: 10},
	})
	require.NoError(t, err)

	progress, err := svc.WeeklyProgress(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, progress, domain.DaysPerWeek)
	require.InDelta(t, 120, progress[len(progress)-1].Calories, 1e-9)
	require.Zero(t, progress[0].Calories)
}
