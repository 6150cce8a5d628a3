// Package postgres stores NutrIA data in PostgreSQL and records outbox events in the same transaction.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/events"
)

// Repository provides Postgres-backed persistence and outbox writes.
type Repository struct {
	pool *pgxpool.Pool
}

var _ domain.Repository = (*Repository)(nil)

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// inUserTx runs fn in a transaction scoped to userID for row level security.
func (r *Repository) inUserTx(ctx context.Context, userID string, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT set_config('app.user_id', $1, true)", userID); err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetProfile returns the stored profile or nil when absent.
func (r *Repository) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	const query = `SELECT user_id, name, weight_kg, height_cm, age_years, sex, activity_level, goal, diet_types,
            daily_calories, protein_g, carbs_g, fat_g, created_at, updated_at
        FROM profiles WHERE user_id=$1`

	var profile *domain.UserProfile
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		var (
			p     domain.UserProfile
			diets []string
		)
		err := tx.QueryRow(ctx, query, userID).Scan(
			&p.UserID, &p.Name,
			&p.Profile.WeightKG, &p.Profile.HeightCM, &p.Profile.AgeYears,
			&p.Profile.Sex, &p.Profile.ActivityLevel, &p.Profile.Goal, &diets,
			&p.Targets.DailyCalories, &p.Targets.ProteinG, &p.Targets.CarbsG, &p.Targets.FatG,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		p.DietTypes = domain.ParseDiets(diets)
		profile = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// SaveProfile upserts the profile and records profile.targets_updated.
func (r *Repository) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	const stmt = `INSERT INTO profiles (user_id, name, weight_kg, height_cm, age_years, sex, activity_level, goal,
            daily_calories, protein_g, carbs_g, fat_g, created_at, updated_at, diet_types)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        ON CONFLICT (user_id) DO UPDATE SET
            name=EXCLUDED.name, weight_kg=EXCLUDED.weight_kg, height_cm=EXCLUDED.height_cm,
            age_years=EXCLUDED.age_years, sex=EXCLUDED.sex, activity_level=EXCLUDED.activity_level,
            goal=EXCLUDED.goal, diet_types=EXCLUDED.diet_types, daily_calories=EXCLUDED.daily_calories, protein_g=EXCLUDED.protein_g,
            carbs_g=EXCLUDED.carbs_g, fat_g=EXCLUDED.fat_g, updated_at=EXCLUDED.updated_at`

	return r.inUserTx(ctx, p.UserID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, stmt,
			p.UserID, p.Name,
			p.Profile.WeightKG, p.Profile.HeightCM, p.Profile.AgeYears,
			string(p.Profile.Sex), string(p.Profile.ActivityLevel), string(p.Profile.Goal),
			p.Targets.DailyCalories, p.Targets.ProteinG, p.Targets.CarbsG, p.Targets.FatG,
			p.CreatedAt, p.UpdatedAt, domain.DietNames(p.DietTypes),
		); err != nil {
			return err
		}

		return insertOutbox(ctx, tx, outboxRecord{
			userID:        p.UserID,
			aggregateType: "profile",
			aggregateID:   p.UserID,
			eventType:     events.TypeProfileTargetsUpdated,
			dedupeKey:     fmt.Sprintf("%s:%s:%d", p.UserID, events.TypeProfileTargetsUpdated, p.UpdatedAt.UnixNano()),
			payload: events.ProfileTargetsUpdated{
				UserID:        p.UserID,
				DailyCalories: p.Targets.DailyCalories,
				ProteinG:      p.Targets.ProteinG,
				CarbsG:        p.Targets.CarbsG,
				FatG:          p.Targets.FatG,
				Goal:          string(p.Profile.Goal),
				ActivityLevel: string(p.Profile.ActivityLevel),
				OccurredAt:    p.UpdatedAt,
				Version:       events.Version,
			},
		})
	})
}

// ListMenu returns the user's entries dated within [from, to].
func (r *Repository) ListMenu(ctx context.Context, userID string, from, to time.Time) ([]domain.MenuEntry, error) {
	const query = `SELECT entry_id, user_id, menu_date, meal_type, recipe_id, servings, created_at
        FROM menu_entries WHERE user_id=$1 AND menu_date BETWEEN $2 AND $3
        ORDER BY menu_date, created_at, entry_id`

	entries := make([]domain.MenuEntry, 0)
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, userID, from, to)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var e domain.MenuEntry
			if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.MealType, &e.RecipeID, &e.Servings, &e.CreatedAt); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// AddMenuEntry inserts the entry and records menu.entry_added.
func (r *Repository) AddMenuEntry(ctx context.Context, e domain.MenuEntry) error {
	const stmt = `INSERT INTO menu_entries (entry_id, user_id, menu_date, meal_type, recipe_id, servings, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	return r.inUserTx(ctx, e.UserID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, stmt, e.ID, e.UserID, e.Date, string(e.MealType), e.RecipeID, e.Servings, e.CreatedAt); err != nil {
			return err
		}
		return insertOutbox(ctx, tx, outboxRecord{
			userID:        e.UserID,
			aggregateType: "menu_entry",
			aggregateID:   e.ID,
			eventType:     events.TypeMenuEntryAdded,
			dedupeKey:     fmt.Sprintf("%s:%s", e.ID, events.TypeMenuEntryAdded),
			payload: events.MenuEntryAdded{
				EntryID:    e.ID,
				UserID:     e.UserID,
				Date:       e.Date.Format(events.DateLayout),
				MealType:   string(e.MealType),
				RecipeID:   e.RecipeID,
				Servings:   e.Servings,
				OccurredAt: e.CreatedAt,
				Version:    events.Version,
			},
		})
	})
}

// RemoveMenuEntry deletes the entry and records menu.entry_removed when it existed.
func (r *Repository) RemoveMenuEntry(ctx context.Context, userID, entryID string, removedAt time.Time) (bool, error) {
	removed := false
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM menu_entries WHERE entry_id=$1 AND user_id=$2`, entryID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		removed = true
		return insertOutbox(ctx, tx, outboxRecord{
			userID:        userID,
			aggregateType: "menu_entry",
			aggregateID:   entryID,
			eventType:     events.TypeMenuEntryRemoved,
			dedupeKey:     fmt.Sprintf("%s:%s", entryID, events.TypeMenuEntryRemoved),
			payload: events.MenuEntryRemoved{
				EntryID:   entryID,
				UserID:    userID,
				RemovedAt: removedAt,
				Version:   events.Version,
			},
		})
	})
	return removed, err
}

// ListFavorites returns favourite recipe ids in the order they were added.
func (r *Repository) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT recipe_id FROM favorites WHERE user_id=$1 ORDER BY created_at, recipe_id`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ToggleFavorite removes the favourite when present and inserts it otherwise.
func (r *Repository) ToggleFavorite(ctx context.Context, userID, recipeID string, at time.Time) (bool, error) {
	added := false
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM favorites WHERE user_id=$1 AND recipe_id=$2`, userID, recipeID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, `INSERT INTO favorites (user_id, recipe_id, created_at) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, userID, recipeID, at); err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

// LogConsumption stores the entry, bumps the day's totals and records meal.logged.
func (r *Repository) LogConsumption(ctx context.Context, e domain.ConsumptionEntry) error {
	const insertEntry = `INSERT INTO consumption_entries (entry_id, user_id, consumed_on, kind, meal_type, recipe_id, description,
            portions, calories, protein_g, carbs_g, fat_g, logged_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`

	const upsertTotals = `INSERT INTO daily_consumption (user_id, consumed_on, calories, protein_g, carbs_g, fat_g, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (user_id, consumed_on) DO UPDATE SET
            calories = daily_consumption.calories + EXCLUDED.calories,
            protein_g = daily_consumption.protein_g + EXCLUDED.protein_g,
            carbs_g = daily_consumption.carbs_g + EXCLUDED.carbs_g,
            fat_g = daily_consumption.fat_g + EXCLUDED.fat_g,
            updated_at = EXCLUDED.updated_at`

	return r.inUserTx(ctx, e.UserID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertEntry,
			e.ID, e.UserID, e.Date, string(e.Kind), string(e.MealType), e.RecipeID, e.Description,
			e.Portions, e.Intake.Calories, e.Intake.ProteinG, e.Intake.CarbsG, e.Intake.FatG, e.LoggedAt,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upsertTotals,
			e.UserID, e.Date, e.Intake.Calories, e.Intake.ProteinG, e.Intake.CarbsG, e.Intake.FatG, e.LoggedAt,
		); err != nil {
			return err
		}
		return insertOutbox(ctx, tx, outboxRecord{
			userID:        e.UserID,
			aggregateType: "consumption",
			aggregateID:   e.ID,
			eventType:     events.TypeMealLogged,
			dedupeKey:     fmt.Sprintf("%s:%s", e.ID, events.TypeMealLogged),
			payload: events.MealLogged{
				EntryID:     e.ID,
				UserID:      e.UserID,
				Date:        e.Date.Format(events.DateLayout),
				MealType:    string(e.MealType),
				RecipeID:    e.RecipeID,
				Description: e.Description,
				Portions:    e.Portions,
				Calories:    e.Intake.Calories,
				ProteinG:    e.Intake.ProteinG,
				CarbsG:      e.Intake.CarbsG,
				FatG:        e.Intake.FatG,
				OccurredAt:  e.LoggedAt,
				Version:     events.Version,
			},
		})
	})
}

// ListConsumption returns the entries logged on day.
func (r *Repository) ListConsumption(ctx context.Context, userID string, day time.Time) ([]domain.ConsumptionEntry, error) {
	const query = `SELECT entry_id, user_id, consumed_on, kind, meal_type, recipe_id, description,
            portions, calories, protein_g, carbs_g, fat_g, logged_at
        FROM consumption_entries WHERE user_id=$1 AND consumed_on=$2
        ORDER BY logged_at, entry_id`

	entries := make([]domain.ConsumptionEntry, 0)
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, userID, day)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e domain.ConsumptionEntry
			if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Kind, &e.MealType, &e.RecipeID, &e.Description,
				&e.Portions, &e.Intake.Calories, &e.Intake.ProteinG, &e.Intake.CarbsG, &e.Intake.FatG, &e.LoggedAt); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DailyTotals reads the per-day rollup for [from, to].
func (r *Repository) DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotals, error) {
	const query = `SELECT consumed_on, calories, protein_g, carbs_g, fat_g
        FROM daily_consumption WHERE user_id=$1 AND consumed_on BETWEEN $2 AND $3
        ORDER BY consumed_on`

	totals := make([]domain.DailyTotals, 0)
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, userID, from, to)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var t domain.DailyTotals
			if err := rows.Scan(&t.Date, &t.Intake.Calories, &t.Intake.ProteinG, &t.Intake.CarbsG, &t.Intake.FatG); err != nil {
				return err
			}
			totals = append(totals, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// GetHydration returns the day's record or nil when none exists.
func (r *Repository) GetHydration(ctx context.Context, userID string, day time.Time) (*domain.HydrationDay, error) {
	var record *domain.HydrationDay
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		h := domain.HydrationDay{UserID: userID}
		err := tx.QueryRow(ctx, `SELECT day, cups, goal_cups, cup_ml, updated_at FROM hydration WHERE user_id=$1 AND day=$2`, userID, day).
			Scan(&h.Date, &h.Cups, &h.GoalCups, &h.CupML, &h.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		record = &h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// AdjustHydration applies delta atomically, clamping the count at zero.
func (r *Repository) AdjustHydration(ctx context.Context, userID string, day time.Time, delta int, defaults domain.HydrationDay) (domain.HydrationDay, error) {
	const stmt = `INSERT INTO hydration (user_id, day, cups, goal_cups, cup_ml, updated_at)
        VALUES ($1, $2, GREATEST($3::int, 0), $4, $5, $6)
        ON CONFLICT (user_id, day) DO UPDATE SET
            cups = GREATEST(hydration.cups + $3::int, 0),
            updated_at = EXCLUDED.updated_at
        RETURNING day, cups, goal_cups, cup_ml, updated_at`

	h := domain.HydrationDay{UserID: userID}
	err := r.inUserTx(ctx, userID, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, stmt, userID, day, delta, defaults.GoalCups, defaults.CupML, defaults.UpdatedAt).
			Scan(&h.Date, &h.Cups, &h.GoalCups, &h.CupML, &h.UpdatedAt)
	})
	if err != nil {
		return domain.HydrationDay{}, err
	}
	return h, nil
}

type outboxRecord struct {
	userID        string
	aggregateType string
	aggregateID   string
	eventType     string
	dedupeKey     string
	payload       interface{}
}

func insertOutbox(ctx context.Context, tx pgx.Tx, rec outboxRecord) error {
	body, err := json.Marshal(rec.payload)
	if err != nil {
		return err
	}

	meta, ok := eventCatalog[rec.eventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", rec.eventType)
	}

	const stmt = `INSERT INTO outbox (user_id, aggregate_type, aggregate_id, event_type, topic, schema_subject, partition_key, payload, dedupe_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	_, err = tx.Exec(ctx, stmt,
		rec.userID,
		rec.aggregateType,
		rec.aggregateID,
		rec.eventType,
		meta.Topic,
		meta.SchemaSubject,
		meta.PartitionKeyFn(rec),
		body,
		rec.dedupeKey,
	)
	return err
}

// eventMetadata describes how to route an outbox event.
type eventMetadata struct {
	Topic          string
	SchemaSubject  string
	PartitionKeyFn func(outboxRecord) string
}

func byUser(rec outboxRecord) string { return rec.userID }

var eventCatalog = map[string]eventMetadata{
	events.TypeProfileTargetsUpdated: {
		Topic:          events.TopicNutritionProfile,
		SchemaSubject:  events.SchemaSubject(events.TopicNutritionProfile, events.TypeProfileTargetsUpdated),
		PartitionKeyFn: byUser,
	},
	events.TypeMenuEntryAdded: {
		Topic:          events.TopicMealPlan,
		SchemaSubject:  events.SchemaSubject(events.TopicMealPlan, events.TypeMenuEntryAdded),
		PartitionKeyFn: byUser,
	},
	events.TypeMenuEntryRemoved: {
		Topic:          events.TopicMealPlan,
		SchemaSubject:  events.SchemaSubject(events.TopicMealPlan, events.TypeMenuEntryRemoved),
		PartitionKeyFn: byUser,
	},
	events.TypeMealLogged: {
		Topic:          events.TopicMealPlan,
		SchemaSubject:  events.SchemaSubject(events.TopicMealPlan, events.TypeMealLogged),
		PartitionKeyFn: byUser,
	},
}
