// Package events defines the payloads NutrIA publishes through the outbox.
package events

import "time"

// Event types carried in the event_type header.
const (
	TypeProfileTargetsUpdated = "profile.targets_updated"
	TypeMenuEntryAdded        = "menu.entry_added"
	TypeMenuEntryRemoved      = "menu.entry_removed"
	TypeMealLogged            = "meal.logged"
)

// Kafka topics.
const (
	TopicNutritionProfile = "nutrition_profile_events"
	TopicMealPlan         = "meal_plan_events"
)

// Version is stamped on every payload.
const Version = "v1"

// DateLayout formats calendar days inside payloads.
const DateLayout = "2006-01-02"

// ProfileTargetsUpdated is emitted whenever a profile is saved and its targets recomputed.
type ProfileTargetsUpdated struct {
	UserID        string    `json:"user_id"`
	DailyCalories int       `json:"daily_calories"`
	ProteinG      int       `json:"protein_g"`
	CarbsG        int       `json:"carbs_g"`
	FatG          int       `json:"fat_g"`
	Goal          string    `json:"goal"`
	ActivityLevel string    `json:"activity_level"`
	OccurredAt    time.Time `json:"occurred_at"`
	Version       string    `json:"version"`
}

// MenuEntryAdded records a recipe placed into a weekly menu slot.
type MenuEntryAdded struct {
	EntryID    string    `json:"entry_id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"`
	MealType   string    `json:"meal_type"`
	RecipeID   string    `json:"recipe_id"`
	Servings   int       `json:"servings"`
	OccurredAt time.Time `json:"occurred_at"`
	Version    string    `json:"version"`
}

// MenuEntryRemoved records a menu slot being cleared.
type MenuEntryRemoved struct {
	EntryID   string    `json:"entry_id"`
	UserID    string    `json:"user_id"`
	RemovedAt time.Time `json:"removed_at"`
	Version   string    `json:"version"`
}

// MealLogged records consumption of a recipe or a manually described food.
type MealLogged struct {
	EntryID     string    `json:"entry_id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	MealType    string    `json:"meal_type,omitempty"`
	RecipeID    string    `json:"recipe_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Portions    float64   `json:"portions"`
	Calories    float64   `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatG        float64   `json:"fat_g"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     string    `json:"version"`
}

// SchemaSubject names the registry subject of an event type on a topic (topic-record strategy).
func SchemaSubject(topic, eventType string) string {
	return topic + "-" + eventType
}
