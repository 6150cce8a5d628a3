// Package sqlite stores NutrIA data in a single SQLite file for local and single-node runs.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/persistence/sqlite/migrations"
)

const dayLayout = "2006-01-02"

// Store implements domain.Repository on SQLite.
type Store struct {
	db *sql.DB
}

var _ domain.Repository = (*Store)(nil)

// Open opens the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer keeps daily totals consistent with their entries.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetProfile returns the stored profile or nil when absent.
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var (
		p                    domain.UserProfile
		diets                string
		createdAt, updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT user_id, name, weight_kg, height_cm, age_years, sex, activity_level, goal, diet_types,
            daily_calories, protein_g, carbs_g, fat_g, created_at, updated_at
        FROM profiles WHERE user_id = ?`, userID).Scan(
		&p.UserID, &p.Name,
		&p.Profile.WeightKG, &p.Profile.HeightCM, &p.Profile.AgeYears,
		&p.Profile.Sex, &p.Profile.ActivityLevel, &p.Profile.Goal, &diets,
		&p.Targets.DailyCalories, &p.Targets.ProteinG, &p.Targets.CarbsG, &p.Targets.FatG,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.DietTypes = domain.ParseDiets(strings.Split(diets, ","))
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return &p, nil
}

// SaveProfile upserts the profile, keeping the original creation time.
func (s *Store) SaveProfile(ctx context.Context, p domain.UserProfile) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO profiles (user_id, name, weight_kg, height_cm, age_years, sex, activity_level, goal,
            daily_calories, protein_g, carbs_g, fat_g, created_at, updated_at, diet_types)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (user_id) DO UPDATE SET
            name = excluded.name, weight_kg = excluded.weight_kg, height_cm = excluded.height_cm,
            age_years = excluded.age_years, sex = excluded.sex, activity_level = excluded.activity_level,
            goal = excluded.goal, diet_types = excluded.diet_types, daily_calories = excluded.daily_calories, protein_g = excluded.protein_g,
            carbs_g = excluded.carbs_g, fat_g = excluded.fat_g, updated_at = excluded.updated_at`,
		p.UserID, p.Name,
		p.Profile.WeightKG, p.Profile.HeightCM, p.Profile.AgeYears,
		string(p.Profile.Sex), string(p.Profile.ActivityLevel), string(p.Profile.Goal),
		p.Targets.DailyCalories, p.Targets.ProteinG, p.Targets.CarbsG, p.Targets.FatG,
		toMillis(p.CreatedAt), toMillis(p.UpdatedAt), strings.Join(domain.DietNames(p.DietTypes), ","),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// ListMenu returns the user's entries dated within [from, to].
func (s *Store) ListMenu(ctx context.Context, userID string, from, to time.Time) ([]domain.MenuEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT entry_id, user_id, menu_date, meal_type, recipe_id, servings, created_at
        FROM menu_entries WHERE user_id = ? AND menu_date BETWEEN ? AND ?
        ORDER BY menu_date, created_at, entry_id`, userID, formatDay(from), formatDay(to))
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.MenuEntry, 0)
	for rows.Next() {
		var (
			e         domain.MenuEntry
			date      string
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &date, &e.MealType, &e.RecipeID, &e.Servings, &createdAt); err != nil {
			return nil, fmt.Errorf("scan menu entry: %w", err)
		}
		if e.Date, err = parseDay(date); err != nil {
			return nil, err
		}
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddMenuEntry inserts the entry.
func (s *Store) AddMenuEntry(ctx context.Context, e domain.MenuEntry) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO menu_entries (entry_id, user_id, menu_date, meal_type, recipe_id, servings, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, formatDay(e.Date), string(e.MealType), e.RecipeID, e.Servings, toMillis(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("add menu entry: %w", err)
	}
	return nil
}

// RemoveMenuEntry deletes the entry, reporting false when userID does not own it.
func (s *Store) RemoveMenuEntry(ctx context.Context, userID, entryID string, _ time.Time) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM menu_entries WHERE entry_id = ? AND user_id = ?`, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("remove menu entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListFavorites returns favourite recipe ids in the order they were added.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT recipe_id FROM favorites WHERE user_id = ? ORDER BY created_at, recipe_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ToggleFavorite removes the favourite when present and inserts it otherwise.
func (s *Store) ToggleFavorite(ctx context.Context, userID, recipeID string, at time.Time) (bool, error) {
	added := false
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil || n > 0 {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO favorites (user_id, recipe_id, created_at) VALUES (?, ?, ?)`,
			userID, recipeID, toMillis(at)); err != nil {
			return err
		}
		added = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return added, nil
}

// LogConsumption stores the entry and bumps the day's totals in one transaction.
func (s *Store) LogConsumption(ctx context.Context, e domain.ConsumptionEntry) error {
	day := formatDay(e.Date)
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO consumption_entries (entry_id, user_id, consumed_on, kind, meal_type, recipe_id,
                description, portions, calories, protein_g, carbs_g, fat_g, logged_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.UserID, day, string(e.Kind), string(e.MealType), e.RecipeID, e.Description,
			e.Portions, e.Intake.Calories, e.Intake.ProteinG, e.Intake.CarbsG, e.Intake.FatG, toMillis(e.LoggedAt),
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO daily_consumption (user_id, consumed_on, calories, protein_g, carbs_g, fat_g, updated_at)
            VALUES (?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT (user_id, consumed_on) DO UPDATE SET
                calories = daily_consumption.calories + excluded.calories,
                protein_g = daily_consumption.protein_g + excluded.protein_g,
                carbs_g = daily_consumption.carbs_g + excluded.carbs_g,
                fat_g = daily_consumption.fat_g + excluded.fat_g,
                updated_at = excluded.updated_at`,
			e.UserID, day, e.Intake.Calories, e.Intake.ProteinG, e.Intake.CarbsG, e.Intake.FatG, toMillis(e.LoggedAt),
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("log consumption: %w", err)
	}
	return nil
}

// ListConsumption returns the entries logged on day.
func (s *Store) ListConsumption(ctx context.Context, userID string, day time.Time) ([]domain.ConsumptionEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT entry_id, user_id, consumed_on, kind, meal_type, recipe_id, description,
            portions, calories, protein_g, carbs_g, fat_g, logged_at
        FROM consumption_entries WHERE user_id = ? AND consumed_on = ?
        ORDER BY logged_at, entry_id`, userID, formatDay(day))
	if err != nil {
		return nil, fmt.Errorf("list consumption: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ConsumptionEntry, 0)
	for rows.Next() {
		var (
			e        domain.ConsumptionEntry
			date     string
			loggedAt int64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &date, &e.Kind, &e.MealType, &e.RecipeID, &e.Description,
			&e.Portions, &e.Intake.Calories, &e.Intake.ProteinG, &e.Intake.CarbsG, &e.Intake.FatG, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		if e.Date, err = parseDay(date); err != nil {
			return nil, err
		}
		e.LoggedAt = fromMillis(loggedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DailyTotals reads the per-day rollup for [from, to].
func (s *Store) DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotals, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT consumed_on, calories, protein_g, carbs_g, fat_g
        FROM daily_consumption WHERE user_id = ? AND consumed_on BETWEEN ? AND ?
        ORDER BY consumed_on`, userID, formatDay(from), formatDay(to))
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	totals := make([]domain.DailyTotals, 0)
	for rows.Next() {
		var (
			t    domain.DailyTotals
			date string
		)
		if err := rows.Scan(&date, &t.Intake.Calories, &t.Intake.ProteinG, &t.Intake.CarbsG, &t.Intake.FatG); err != nil {
			return nil, err
		}
		if t.Date, err = parseDay(date); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// GetHydration returns the day's record or nil when none exists.
func (s *Store) GetHydration(ctx context.Context, userID string, day time.Time) (*domain.HydrationDay, error) {
	h := domain.HydrationDay{UserID: userID, Date: truncateDay(day)}
	var updatedAt int64
	err := s.db.QueryRowContext(ctx, `SELECT cups, goal_cups, cup_ml, updated_at FROM hydration WHERE user_id = ? AND day = ?`,
		userID, formatDay(day)).Scan(&h.Cups, &h.GoalCups, &h.CupML, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hydration: %w", err)
	}
	h.UpdatedAt = fromMillis(updatedAt)
	return &h, nil
}

// AdjustHydration applies delta atomically, clamping the count at zero.
func (s *Store) AdjustHydration(ctx context.Context, userID string, day time.Time, delta int, defaults domain.HydrationDay) (domain.HydrationDay, error) {
	h := domain.HydrationDay{UserID: userID, Date: truncateDay(day)}
	var updatedAt int64
	err := s.db.QueryRowContext(ctx, `INSERT INTO hydration (user_id, day, cups, goal_cups, cup_ml, updated_at)
        VALUES (?1, ?2, MAX(?3, 0), ?4, ?5, ?6)
        ON CONFLICT (user_id, day) DO UPDATE SET
            cups = MAX(hydration.cups + ?3, 0),
            updated_at = excluded.updated_at
        RETURNING cups, goal_cups, cup_ml, updated_at`,
		userID, formatDay(day), delta, defaults.GoalCups, defaults.CupML, toMillis(defaults.UpdatedAt),
	).Scan(&h.Cups, &h.GoalCups, &h.CupML, &updatedAt)
	if err != nil {
		return domain.HydrationDay{}, fmt.Errorf("adjust hydration: %w", err)
	}
	h.UpdatedAt = fromMillis(updatedAt)
	return h, nil
}

func formatDay(t time.Time) string {
	return t.Format(dayLayout)
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
