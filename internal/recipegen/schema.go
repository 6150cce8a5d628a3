package recipegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Remoratrader/nutria-app/internal/catalog"
)

// ErrSchemaMismatch reports a model answer that does not satisfy RecipeSchema.
var ErrSchemaMismatch = errors.New("generated recipes do not match schema")

// Schema is the subset of the OpenAPI schema object understood by the model API.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// RecipeSchema describes an array of recipes with every field required.
func RecipeSchema() *Schema {
	ingredient := &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"name":     {Type: "STRING"},
			"quantity": {Type: "NUMBER"},
			"unit":     {Type: "STRING"},
		},
		Required: []string{"name", "quantity", "unit"},
	}
	recipe := &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"name":         {Type: "STRING"},
			"category":     {Type: "STRING"},
			"icon":         {Type: "STRING"},
			"calories":     {Type: "NUMBER"},
			"ingredients":  {Type: "ARRAY", Items: ingredient},
			"instructions": {Type: "STRING"},
		},
		Required: []string{"name", "category", "icon", "calories", "ingredients", "instructions"},
	}
	return &Schema{Type: "ARRAY", Items: recipe}
}

type wireIngredient struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

type wireRecipe struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Icon         *string          `json:"icon"`
	Calories     *float64         `json:"calories"`
	Ingredients  []wireIngredient `json:"ingredients"`
	Instructions *string          `json:"instructions"`
}

// DecodeRecipes parses the model's JSON text into recipes without ids.
// Missing required fields, negative numbers and an empty array are rejected.
func DecodeRecipes(text string) ([]catalog.Recipe, error) {
	var raw []wireRecipe
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty recipe list", ErrSchemaMismatch)
	}

	recipes := make([]catalog.Recipe, 0, len(raw))
	for i, r := range raw {
		recipe, err := r.toRecipe()
		if err != nil {
			return nil, fmt.Errorf("%w: recipe %d: %v", ErrSchemaMismatch, i, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (r wireRecipe) toRecipe() (catalog.Recipe, error) {
	var missing []string
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Category == nil {
		missing = append(missing, "category")
	}
	if r.Icon == nil {
		missing = append(missing, "icon")
	}
	if r.Calories == nil {
		missing = append(missing, "calories")
	}
	if r.Ingredients == nil {
		missing = append(missing, "ingredients")
	}
	if r.Instructions == nil {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return catalog.Recipe{}, fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	if *r.Calories < 0 {
		return catalog.Recipe{}, errors.New("calories must not be negative")
	}

	ingredients := make([]catalog.Ingredient, 0, len(r.Ingredients))
	for j, ing := range r.Ingredients {
		if ing.Name == nil || ing.Quantity == nil || ing.Unit == nil {
			return catalog.Recipe{}, fmt.Errorf("ingredient %d missing name, quantity or unit", j)
		}
		if *ing.Quantity < 0 {
			return catalog.Recipe{}, fmt.Errorf("ingredient %d has negative quantity", j)
		}
		ingredients = append(ingredients, catalog.Ingredient{Name: *ing.Name, Quantity: *ing.Quantity, Unit: *ing.Unit})
	}

	return catalog.Recipe{
		Name:         strings.TrimSpace(*r.Name),
		Category:     *r.Category,
		Icon:         *r.Icon,
		Calories:     *r.Calories,
		Ingredients:  ingredients,
		Instructions: *r.Instructions,
	}, nil
}
