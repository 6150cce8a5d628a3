package recipegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Remoratrader/nutria-app/internal/catalog"
)

const validAnswer = `[
  {"name":"Bowl de Quinoa","category":"Vegana","icon":"🥗","calories":480,
   "ingredients":[{"name":"Quinoa","quantity":80,"unit":"g"},{"name":"Grão-de-bico","quantity":100,"unit":"g"}],
   "instructions":"Cozinhe a quinoa e misture."}
]`

func TestDecodeRecipes(t *testing.T) {
	recipes, err := DecodeRecipes(validAnswer)
	require.NoError(t, err)
	require.Equal(t, []catalog.Recipe{{
		Name:     "Bowl de Quinoa",
		Category: "Vegana",
		Icon:     "🥗",
		Calories: 480,
		Ingredients: []catalog.Ingredient{
			{Name: "Quinoa", Quantity: 80, Unit: "g"},
			{Name: "Grão-de-bico", Quantity: 100, Unit: "g"},
		},
		Instructions: "Cozinhe a quinoa e misture.",
	}}, recipes)
}

func TestDecodeRecipesRejectsMismatches(t *testing.T) {
	cases := map[string]string{
		"not json":           `here are your recipes`,
		"object not array":   `{"name":"x"}`,
		"empty array":        `[]`,
		"missing calories":   `[{"name":"x","category":"c","icon":"i","ingredients":[],"instructions":""}]`,
		"missing ingredient": `[{"name":"x","category":"c","icon":"i","calories":1,"instructions":""}]`,
		"ingredient no unit": `[{"name":"x","category":"c","icon":"i","calories":1,"ingredients":[{"name":"a","quantity":1}],"instructions":""}]`,
		"negative calories":  `[{"name":"x","category":"c","icon":"i","calories":-5,"ingredients":[],"instructions":""}]`,
		"string quantity":    `[{"name":"x","category":"c","icon":"i","calories":1,"ingredients":[{"name":"a","quantity":"2","unit":"g"}],"instructions":""}]`,
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRecipes(text)
			require.ErrorIs(t, err, ErrSchemaMismatch)
		})
	}
}

func TestRecipeSchemaRequiresEveryField(t *testing.T) {
	schema := RecipeSchema()
	require.Equal(t, "ARRAY", schema.Type)
	require.ElementsMatch(t, []string{"name", "category", "icon", "calories", "ingredients", "instructions"}, schema.Items.Required)
	require.ElementsMatch(t, []string{"name", "quantity", "unit"}, schema.Items.Properties["ingredients"].Items.Required)
}

func TestBuildPromptDefaultsCalories(t *testing.T) {
	require.Contains(t, BuildPrompt("  algo leve  ", 0, nil), "aproximadamente 2000 kcal")
	require.Contains(t, BuildPrompt("algo leve", 1800, nil), "aproximadamente 1800 kcal")
	require.Contains(t, BuildPrompt("algo leve", 1800, nil), `"algo leve"`)
	require.NotContains(t, BuildPrompt("algo leve", 1800, nil), "preferências")
}

func TestBuildPromptAddsDietPreferences(t *testing.T) {
	prompt := BuildPrompt("almoço", 1800, []string{"vegan", "low_carb"})
	require.Contains(t, prompt, "preferências alimentares do usuário: vegan, low_carb.")
}
