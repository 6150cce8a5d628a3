// Package api exposes HTTP handlers for the NutrIA backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/catalog"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/recipegen"
)

// RecipeCatalog is the read side of the recipe catalog.
type RecipeCatalog interface {
	Get(id string) (catalog.Recipe, bool)
	List(q catalog.Query) ([]catalog.Recipe, *catalog.Cursor)
}

// RecipeGenerator produces recipes from a free-text request.
type RecipeGenerator interface {
	Generate(ctx context.Context, req recipegen.Request) ([]catalog.Recipe, error)
}

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service   *domain.Service
	recipes   RecipeCatalog
	generator RecipeGenerator
}

// NewHandler builds a Handler. generator may be nil, in which case generation answers 503.
func NewHandler(service *domain.Service, recipes RecipeCatalog, generator RecipeGenerator) *Handler {
	return &Handler{service: service, recipes: recipes, generator: generator}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/profile", h.profile)
	mux.HandleFunc("/v1/nutrition/targets", h.nutritionTargets)
	mux.HandleFunc("/v1/recipes", h.listRecipes)
	mux.HandleFunc("/v1/recipes/", h.recipeByID)
	mux.HandleFunc("/v1/menu", h.menu)
	mux.HandleFunc("/v1/menu/", h.menuEntryByID)
	mux.HandleFunc("/v1/shopping-list", h.shoppingList)
	mux.HandleFunc("/v1/favorites", h.favorites)
	mux.HandleFunc("/v1/favorites/", h.toggleFavorite)
	mux.HandleFunc("/v1/consumption/meals", h.logMeal)
	mux.HandleFunc("/v1/consumption/manual", h.logManualFood)
	mux.HandleFunc("/v1/consumption/today", h.today)
	mux.HandleFunc("/v1/progress/weekly", h.weeklyProgress)
	mux.HandleFunc("/v1/hydration", h.hydration)
	mux.HandleFunc("/v1/hydration/cups", h.adjustCups)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// authorize resolves the caller and checks that one of scopes was granted.
// It writes the error response itself and reports false when the request must stop.
func authorize(w http.ResponseWriter, r *http.Request, scopes ...string) (*auth.Claims, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return nil, false
	}
	if !claims.HasAny(scopes...) {
		writeError(w, http.StatusForbidden, "forbidden", "scope "+scopes[0]+" required")
		return nil, false
	}
	return claims, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
}

// queryInt parses an optional integer parameter, falling back to def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

// writeServiceError maps domain and generation errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsInvalidInput(err), errors.Is(err, recipegen.ErrPromptRequired):
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "not_found", "profile not found")
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, catalog.ErrRecipeNotFound):
		writeError(w, http.StatusNotFound, "not_found", "recipe not found")
	case errors.Is(err, domain.ErrMenuEntryNotFound):
		writeError(w, http.StatusNotFound, "not_found", "menu entry not found")
	case errors.Is(err, recipegen.ErrUpstream),
		errors.Is(err, recipegen.ErrEmptyResponse),
		errors.Is(err, recipegen.ErrSchemaMismatch):
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
