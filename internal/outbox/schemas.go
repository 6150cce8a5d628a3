package outbox

import "github.com/Remoratrader/nutria-app/internal/events"

const profileTargetsUpdatedSchema = `{
  "type": "object",
  "title": "ProfileTargetsUpdated",
  "properties": {
    "user_id": {"type": "string"},
    "daily_calories": {"type": "integer", "minimum": 0},
    "protein_g": {"type": "integer", "minimum": 0},
    "carbs_g": {"type": "integer", "minimum": 0},
    "fat_g": {"type": "integer", "minimum": 0},
    "goal": {"type": "string", "enum": ["lose", "maintain", "gain"]},
    "activity_level": {"type": "string"},
    "occurred_at": {"type": "string", "format": "date-time"},
    "version": {"type": "string"}
  },
  "required": ["user_id", "daily_calories", "protein_g", "carbs_g", "fat_g", "goal", "activity_level", "occurred_at", "version"],
  "additionalProperties": false
}`

const menuEntryAddedSchema = `{
  "type": "object",
  "title": "MenuEntryAdded",
  "properties": {
    "entry_id": {"type": "string"},
    "user_id": {"type": "string"},
    "date": {"type": "string", "format": "date"},
    "meal_type": {"type": "string", "enum": ["breakfast", "morning_snack", "lunch", "afternoon_snack", "dinner"]},
    "recipe_id": {"type": "string"},
    "servings": {"type": "integer", "minimum": 1},
    "occurred_at": {"type": "string", "format": "date-time"},
    "version": {"type": "string"}
  },
  "required": ["entry_id", "user_id", "date", "meal_type", "recipe_id", "servings", "occurred_at", "version"],
  "additionalProperties": false
}`

const menuEntryRemovedSchema = `{
  "type": "object",
  "title": "MenuEntryRemoved",
  "properties": {
    "entry_id": {"type": "string"},
    "user_id": {"type": "string"},
    "removed_at": {"type": "string", "format": "date-time"},
    "version": {"type": "string"}
  },
  "required": ["entry_id", "user_id", "removed_at", "version"],
  "additionalProperties": false
}`

const mealLoggedSchema = `{
  "type": "object",
  "title": "MealLogged",
  "properties": {
    "entry_id": {"type": "string"},
    "user_id": {"type": "string"},
    "date": {"type": "string", "format": "date"},
    "meal_type": {"type": "string"},
    "recipe_id": {"type": "string"},
    "description": {"type": "string"},
    "portions": {"type": "number", "exclusiveMinimum": 0},
    "calories": {"type": "number", "minimum": 0},
    "protein_g": {"type": "number", "minimum": 0},
    "carbs_g": {"type": "number", "minimum": 0},
    "fat_g": {"type": "number", "minimum": 0},
    "occurred_at": {"type": "string", "format": "date-time"},
    "version": {"type": "string"}
  },
  "required": ["entry_id", "user_id", "date", "portions", "calories", "protein_g", "carbs_g", "fat_g", "occurred_at", "version"],
  "additionalProperties": false
}`

// schemaCatalog maps event types to the JSON schema registered for them.
var schemaCatalog = map[string]string{
	events.TypeProfileTargetsUpdated: profileTargetsUpdatedSchema,
	events.TypeMenuEntryAdded:        menuEntryAddedSchema,
	events.TypeMenuEntryRemoved:      menuEntryRemovedSchema,
	events.TypeMealLogged:            mealLoggedSchema,
}
