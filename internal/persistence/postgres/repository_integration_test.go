//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/events"
	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("nutria"),
		postgrescontainer.WithUsername("nutria"),
		postgrescontainer.WithPassword("nutria"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	// Second run must be a no-op.
	require.NoError(t, Migrate(ctx, pool))
	return pool
}

func TestRepositoryProfileAndOutbox(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)
	repo := NewRepository(pool)

	userID := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)
	profile := domain.UserProfile{
		UserID: userID,
		Name:   "Ana",
		Profile: nutrition.Profile{
			WeightKG: 70, HeightCM: 175, AgeYears: 30,
			Sex: nutrition.SexMale, ActivityLevel: nutrition.ActivityModerate, Goal: nutrition.GoalMaintain,
		},
		DietTypes: []domain.DietType{domain.DietVegan, domain.DietPaleo},
		Targets:   nutrition.Targets{DailyCalories: 2628, ProteinG: 197, CarbsG: 263, FatG: 88},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.SaveProfile(ctx, profile))

	stored, err := repo.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, profile.Targets, stored.Targets)
	require.Equal(t, nutrition.ActivityModerate, stored.Profile.ActivityLevel)
	require.Equal(t, profile.DietTypes, stored.DietTypes)

	other, err := repo.GetProfile(ctx, uuid.NewString())
	require.NoError(t, err)
	require.Nil(t, other, "profiles must not leak across users")

	var eventType, topic, subject, key string
	err = pool.QueryRow(ctx, `SELECT event_type, topic, schema_subject, partition_key FROM outbox WHERE user_id=$1`, userID).
		Scan(&eventType, &topic, &subject, &key)
	require.NoError(t, err)
	require.Equal(t, events.TypeProfileTargetsUpdated, eventType)
	require.Equal(t, events.TopicNutritionProfile, topic)
	require.Equal(t, "nutrition_profile_events-profile.targets_updated", subject)
	require.Equal(t, userID, key)
}

func TestRepositoryMenuAndConsumption(t *testing.T) {
	ctx := context.Background()
	pool := startPostgres(t)
	repo := NewRepository(pool)

	userID := uuid.NewString()
	day := time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC)
	entry := domain.MenuEntry{
		ID: uuid.NewString(), UserID: userID, Date: day, MealType: domain.MealLunch,
		RecipeID: "5", Servings: 2, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.AddMenuEntry(ctx, entry))

	entries, err := repo.ListMenu(ctx, userID, day.AddDate(0, 0, -2), day.AddDate(0, 0, 4))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].Servings)
	require.True(t, entries[0].Date.Equal(day))

	removed, err := repo.RemoveMenuEntry(ctx, uuid.NewString(), entry.ID, time.Now())
	require.NoError(t, err)
	require.False(t, removed)
	removed, err = repo.RemoveMenuEntry(ctx, userID, entry.ID, time.Now())
	require.NoError(t, err)
	require.True(t, removed)

	for _, kcal := range []float64{400, 250} {
		require.NoError(t, repo.LogConsumption(ctx, domain.ConsumptionEntry{
			ID: uuid.NewString(), UserID: userID, Date: day, Kind: domain.ConsumptionManual,
			Description: "Lanche", Portions: 1, Intake: nutrition.Intake{Calories: kcal, ProteinG: 10},
			LoggedAt: time.Now().UTC(),
		}))
	}

	logged, err := repo.ListConsumption(ctx, userID, day)
	require.NoError(t, err)
	require.Len(t, logged, 2)

	totals, err := repo.DailyTotals(ctx, userID, day, day)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	require.InDelta(t, 650, totals[0].Intake.Calories, 1e-9)
	require.InDelta(t, 20, totals[0].Intake.ProteinG, 1e-9)

	var outboxCount int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM outbox WHERE user_id=$1`, userID).Scan(&outboxCount))
	require.Equal(t, 4, outboxCount)
}

func TestRepositoryFavoritesAndHydration(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(startPostgres(t))
	userID := uuid.NewString()

	added, err := repo.ToggleFavorite(ctx, userID, "12", time.Now())
	require.NoError(t, err)
	require.True(t, added)
	ids, err := repo.ListFavorites(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []string{"12"}, ids)
	added, err = repo.ToggleFavorite(ctx, userID, "12", time.Now())
	require.NoError(t, err)
	require.False(t, added)

	day := time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC)
	none, err := repo.GetHydration(ctx, userID, day)
	require.NoError(t, err)
	require.Nil(t, none)

	defaults := domain.HydrationDay{GoalCups: 8, CupML: 250, UpdatedAt: time.Now().UTC()}
	h, err := repo.AdjustHydration(ctx, userID, day, 2, defaults)
	require.NoError(t, err)
	require.Equal(t, 2, h.Cups)
	h, err = repo.AdjustHydration(ctx, userID, day, -5, defaults)
	require.NoError(t, err)
	require.Equal(t, 0, h.Cups)
	require.Equal(t, 8, h.GoalCups)
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
