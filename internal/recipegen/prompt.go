package recipegen

import (
	"fmt"
	"strings"
)

// DefaultCalorieHint is used when the caller has no computed target.
const DefaultCalorieHint = 2000

const promptTemplate = `Você é um chef nutricionista para o app "NutrIA". Um usuário precisa de um cardápio com uma necessidade calórica diária de aproximadamente %d kcal. O pedido do usuário é: "%s". Gere uma lista de receitas em JSON que atendam a esse pedido. Atribua um emoji apropriado no campo 'icon'. Categorias podem ser: %s.`

var promptCategories = []string{
	"Brasileiro", "Fitness", "Mediterranea", "Asiatico", "Vegana",
	"Italiana", "Francesa", "Árabe", "Fast Food", "Inovadora",
}

const dietTemplate = ` Respeite as preferências alimentares do usuário: %s.`

// BuildPrompt renders the model instruction for a user request.
// diets, when present, are appended as a preference constraint.
func BuildPrompt(request string, dailyCalories int, diets []string) string {
	if dailyCalories <= 0 {
		dailyCalories = DefaultCalorieHint
	}
	prompt := fmt.Sprintf(promptTemplate, dailyCalories, strings.TrimSpace(request), strings.Join(promptCategories, ", "))
	if len(diets) > 0 {
		prompt += fmt.Sprintf(dietTemplate, strings.Join(diets, ", "))
	}
	return prompt
}
