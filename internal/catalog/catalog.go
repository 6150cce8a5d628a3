// Package catalog holds the recipe reference data and recipes generated at runtime.
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

// ErrRecipeNotFound is returned when a recipe id is unknown.
var ErrRecipeNotFound = errors.New("recipe not found")

const (
	// CategoryAll disables category filtering.
	CategoryAll = "Todos"
	// CategoryInnovative groups recipes built around supplements; hidden unless requested.
	CategoryInnovative = "Inovadora"
)

// Categories lists the browsable categories in display order.
var Categories = []string{
	"Brasileiro",
	"Fitness",
	"Mediterrânea",
	"Italiana",
	"Francesa",
	"Árabe",
	"Fast Food",
	"Asiático",
	"Vegana",
	CategoryInnovative,
}

// Ingredient is one line of a recipe, quantities are per serving.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Macros are optional per-serving macronutrient grams.
type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Recipe is immutable once added to the catalog.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Icon         string       `json:"icon"`
	Calories     float64      `json:"calories"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions,omitempty"`
	Macros       Macros       `json:"macros"`
	Generated    bool         `json:"generated"`
}

// Intake returns the nutrition of a single serving.
func (r Recipe) Intake() nutrition.Intake {
	return nutrition.Intake{
		Calories: r.Calories,
		ProteinG: r.Macros.ProteinG,
		CarbsG:   r.Macros.CarbsG,
		FatG:     r.Macros.FatG,
	}
}

func (r Recipe) clone() Recipe {
	out := r
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	return out
}

// Query filters catalog listings.
type Query struct {
	Category   string
	Text       string
	Innovative bool
	After      *Cursor
	Limit      int
}

// Cursor marks the last recipe of a previous page.
type Cursor struct {
	Name string
	ID   string
}

// Catalog stores recipes in memory, guarded for concurrent readers.
type Catalog struct {
	mu      sync.RWMutex
	recipes map[string]Recipe
}

// New builds a catalog seeded with the reference recipes.
func New() *Catalog {
	return NewWith(seedRecipes...)
}

// NewWith builds a catalog holding exactly the supplied recipes.
func NewWith(recipes ...Recipe) *Catalog {
	c := &Catalog{recipes: make(map[string]Recipe, len(recipes))}
	for _, r := range recipes {
		c.recipes[r.ID] = r.clone()
	}
	return c
}

// Get returns a copy of the recipe, ok=false when missing.
func (c *Catalog) Get(id string) (Recipe, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.recipes[id]
	if !ok {
		return Recipe{}, false
	}
	return r.clone(), true
}

// Add appends runtime recipes. Existing ids are left untouched.
func (c *Catalog) Add(_ context.Context, recipes ...Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range recipes {
		if strings.TrimSpace(r.ID) == "" {
			return errors.New("recipe id is required")
		}
		if _, exists := c.recipes[r.ID]; exists {
			continue
		}
		c.recipes[r.ID] = r.clone()
	}
	return nil
}

// List applies the query and returns one page plus the cursor of the next page.
func (c *Catalog) List(q Query) ([]Recipe, *Cursor) {
	c.mu.RLock()
	matches := make([]Recipe, 0, len(c.recipes))
	needle := fold(q.Text)
	for _, r := range c.recipes {
		if !q.Innovative && r.Category == CategoryInnovative {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && r.Category != q.Category {
			continue
		}
		if needle != "" && !matchesText(r, needle) {
			continue
		}
		matches = append(matches, r.clone())
	}
	c.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return less(matches[i].Name, matches[i].ID, matches[j].Name, matches[j].ID)
	})

	if q.After != nil {
		start := sort.Search(len(matches), func(i int) bool {
			return less(q.After.Name, q.After.ID, matches[i].Name, matches[i].ID)
		})
		matches = matches[start:]
	}

	if q.Limit <= 0 || len(matches) <= q.Limit {
		return matches, nil
	}
	page := matches[:q.Limit]
	last := page[len(page)-1]
	return page, &Cursor{Name: last.Name, ID: last.ID}
}

func less(nameA, idA, nameB, idB string) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}

func matchesText(r Recipe, needle string) bool {
	if strings.Contains(fold(r.Name), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(fold(ing.Name), needle) {
			return true
		}
	}
	return false
}

// fold lowercases and strips diacritics so "brocolis" matches "Brócolis".
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
