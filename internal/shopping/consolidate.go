// Package shopping merges the ingredients of selected recipes into a shopping list.
package shopping

import (
	"sort"

	"github.com/Remoratrader/nutria-app/internal/catalog"
)

// Selection maps a recipe id to how many times it was picked.
type Selection map[string]int

// Set records count for id; a count of zero or less removes the entry.
func (s Selection) Set(id string, count int) {
	if count <= 0 {
		delete(s, id)
		return
	}
	s[id] = count
}

// Add increments the count for id by delta, removing the entry when it drops to zero.
func (s Selection) Add(id string, delta int) {
	s.Set(id, s[id]+delta)
}

// IDs returns the recipe ids with a positive count in ascending order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id, count := range s {
		if count > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// RecipeLookup resolves a recipe by id.
type RecipeLookup interface {
	Get(id string) (catalog.Recipe, bool)
}

// LookupFunc adapts a function to RecipeLookup.
type LookupFunc func(id string) (catalog.Recipe, bool)

// Get implements RecipeLookup.
func (f LookupFunc) Get(id string) (catalog.Recipe, bool) { return f(id) }

// Item is one consolidated line of the shopping list.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Consolidate sums ingredient quantities by name across the selection.
// Recipes that can no longer be resolved are skipped. When a name appears
// with different units the quantities are still added and the last unit wins.
func Consolidate(selection Selection, lookup RecipeLookup) []Item {
	items := make([]Item, 0)
	index := make(map[string]int)

	for _, id := range selection.IDs() {
		recipe, ok := lookup.Get(id)
		if !ok {
			continue
		}
		count := float64(selection[id])
		for _, ing := range recipe.Ingredients {
			qty := ing.Quantity * count
			if i, seen := index[ing.Name]; seen {
				items[i].Quantity += qty
				items[i].Unit = ing.Unit
				continue
			}
			index[ing.Name] = len(items)
			items = append(items, Item{Name: ing.Name, Quantity: qty, Unit: ing.Unit})
		}
	}
	return items
}

// Conflict names an ingredient that was requested in more than one unit.
type Conflict struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

// ConsolidateByUnit keys the merge by (name, unit) so incompatible units stay
// on separate lines, and reports every name that was split.
func ConsolidateByUnit(selection Selection, lookup RecipeLookup) ([]Item, []Conflict) {
	type key struct{ name, unit string }

	items := make([]Item, 0)
	index := make(map[key]int)
	units := make(map[string][]string)
	var order []string

	for _, id := range selection.IDs() {
		recipe, ok := lookup.Get(id)
		if !ok {
			continue
		}
		count := float64(selection[id])
		for _, ing := range recipe.Ingredients {
			k := key{ing.Name, ing.Unit}
			if i, seen := index[k]; seen {
				items[i].Quantity += ing.Quantity * count
				continue
			}
			index[k] = len(items)
			items = append(items, Item{Name: ing.Name, Quantity: ing.Quantity * count, Unit: ing.Unit})
			if _, known := units[ing.Name]; !known {
				order = append(order, ing.Name)
			}
			units[ing.Name] = append(units[ing.Name], ing.Unit)
		}
	}

	var conflicts []Conflict
	for _, name := range order {
		if len(units[name]) > 1 {
			conflicts = append(conflicts, Conflict{Name: name, Units: units[name]})
		}
	}
	return items, conflicts
}
