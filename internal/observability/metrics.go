// Package observability exposes Prometheus metrics for the NutrIA domain.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	targetsComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "nutrition",
		Name:      "targets_computed_total",
		Help:      "Nutrition targets computed, labeled by goal.",
	}, []string{"goal"})

	invalidProfiles = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "nutrition",
		Name:      "invalid_profiles_total",
		Help:      "Profiles rejected by validation or the calculator.",
	})

	shoppingListItems = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nutria",
		Subsystem: "shopping",
		Name:      "list_items",
		Help:      "Number of lines in consolidated shopping lists.",
		Buckets:   prometheus.LinearBuckets(0, 5, 10),
	})

	unresolvedRecipes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "shopping",
		Name:      "unresolved_recipes_total",
		Help:      "Selection entries skipped because the recipe no longer exists.",
	})

	mealLoggedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nutria",
		Subsystem: "persistence",
		Name:      "last_meal_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recent consumption entry persisted.",
	})

	menuChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nutria",
		Subsystem: "menu",
		Name:      "changes_total",
		Help:      "Weekly menu mutations, labeled by action.",
	}, []string{"action"})
)

func init() {
	prometheus.MustRegister(targetsComputed, invalidProfiles, shoppingListItems, unresolvedRecipes, mealLoggedGauge, menuChanges)
}

// RecordTargetsComputed counts a successful calculator run.
func RecordTargetsComputed(goal string) {
	targetsComputed.WithLabelValues(goal).Inc()
}

// RecordInvalidProfile counts a rejected profile.
func RecordInvalidProfile() {
	invalidProfiles.Inc()
}

// RecordShoppingList observes the size of a consolidated list and how many recipes were skipped.
func RecordShoppingList(items, unresolved int) {
	shoppingListItems.Observe(float64(items))
	if unresolved > 0 {
		unresolvedRecipes.Add(float64(unresolved))
	}
}

// RecordMealLogged updates the consumption watermark gauge.
func RecordMealLogged(ts time.Time) {
	if ts.IsZero() {
		return
	}
	mealLoggedGauge.Set(float64(ts.Unix()))
}

// RecordMenuChange counts an added or removed menu entry.
func RecordMenuChange(action string) {
	menuChanges.WithLabelValues(action).Inc()
}
