package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/catalog"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/recipegen"
	"github.com/Remoratrader/nutria-app/internal/shopping"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	cursor, err := catalog.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid cursor")
		return
	}

	items, next := h.recipes.List(catalog.Query{
		Category:   r.URL.Query().Get("category"),
		Text:       r.URL.Query().Get("q"),
		Innovative: queryBool(r, "innovative"),
		After:      cursor,
		Limit:      limit,
	})
	writeJSON(w, http.StatusOK, ListRecipesResponse{
		Items:      items,
		NextCursor: next.Encode(),
	})
}

func (h *Handler) recipeByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/recipes/")
	switch id {
	case "":
		writeError(w, http.StatusBadRequest, "invalid_request", "missing recipe id")
	case "categories":
		h.categories(w, r)
	case "generate":
		h.generateRecipes(w, r)
	default:
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		recipe, ok := h.recipes.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "recipe not found")
			return
		}
		writeJSON(w, http.StatusOK, recipe)
	}
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{
		All:        catalog.CategoryAll,
		Categories: catalog.Categories,
	})
}

func (h *Handler) generateRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeRecipesGenerate)
	if !ok {
		return
	}
	if h.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", "recipe generation is not configured")
		return
	}

	var req GenerateRecipesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", recipegen.ErrPromptRequired.Error())
		return
	}

	genReq := recipegen.Request{Prompt: req.Prompt, DailyCalories: req.DailyCalories}
	profile, err := h.service.GetProfile(r.Context(), claims.UserID)
	switch {
	case err == nil:
		if genReq.DailyCalories <= 0 {
			genReq.DailyCalories = profile.Targets.DailyCalories
		}
		genReq.Diets = domain.DietNames(profile.DietTypes)
	case !errors.Is(err, domain.ErrProfileNotFound):
		writeServiceError(w, err)
		return
	}

	recipes, err := h.generator.Generate(r.Context(), genReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := GenerateRecipesResponse{Recipes: recipes}
	if req.Select {
		selection := shopping.Selection{}
		for _, recipe := range recipes {
			selection.Set(recipe.ID, 1)
		}
		resp.Selection = selection
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListRecipesResponse packages one catalog page.
type ListRecipesResponse struct {
	Items      []catalog.Recipe `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// CategoriesResponse lists the browsable categories.
type CategoriesResponse struct {
	All        string   `json:"all"`
	Categories []string `json:"categories"`
}

// GenerateRecipesRequest is the payload for POST /v1/recipes/generate.
type GenerateRecipesRequest struct {
	Prompt        string `json:"prompt"`
	DailyCalories int    `json:"daily_calories"`
	Select        bool   `json:"select"`
}

// GenerateRecipesResponse returns the new recipes and, when requested, a selection of all of them.
type GenerateRecipesResponse struct {
	Recipes   []catalog.Recipe   `json:"recipes"`
	Selection shopping.Selection `json:"selection,omitempty"`
}
