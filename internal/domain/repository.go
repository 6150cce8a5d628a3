package domain

import (
	"context"
	"time"
)

// ProfileRepository stores profiles. Get returns nil, nil when the user has none.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile UserProfile) error
}

// MenuRepository stores weekly menu entries.
type MenuRepository interface {
	ListMenu(ctx context.Context, userID string, from, to time.Time) ([]MenuEntry, error)
	AddMenuEntry(ctx context.Context, entry MenuEntry) error
	// RemoveMenuEntry reports false when the entry does not exist for userID.
	RemoveMenuEntry(ctx context.Context, userID, entryID string, removedAt time.Time) (bool, error)
}

// FavoriteRepository stores favourite recipe ids.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context, userID string) ([]string, error)
	// ToggleFavorite adds the recipe when absent and removes it otherwise, reporting whether it was added.
	ToggleFavorite(ctx context.Context, userID, recipeID string, at time.Time) (bool, error)
}

// ConsumptionRepository stores eaten items and keeps per-day totals in step with them.
type ConsumptionRepository interface {
	LogConsumption(ctx context.Context, entry ConsumptionEntry) error
	ListConsumption(ctx context.Context, userID string, day time.Time) ([]ConsumptionEntry, error)
	// DailyTotals returns the days in [from, to] that have any consumption, oldest first.
	DailyTotals(ctx context.Context, userID string, from, to time.Time) ([]DailyTotals, error)
}

// HydrationRepository stores water intake. Get returns nil, nil for a day without records.
type HydrationRepository interface {
	GetHydration(ctx context.Context, userID string, day time.Time) (*HydrationDay, error)
	// AdjustHydration adds delta cups for the day, never going below zero.
	AdjustHydration(ctx context.Context, userID string, day time.Time, delta int, defaults HydrationDay) (HydrationDay, error)
}

// Repository is implemented by every storage backend.
type Repository interface {
	ProfileRepository
	MenuRepository
	FavoriteRepository
	ConsumptionRepository
	HydrationRepository
}
