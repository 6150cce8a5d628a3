package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/shopping"
)

const dateLayout = "2006-01-02"

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getMenu(w, r)
	case http.MethodPost:
		h.addMenuEntry(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeMenuRead, auth.ScopeMenuWrite)
	if !ok {
		return
	}
	offset, err := queryInt(r, "week_offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	menu, err := h.service.GetWeekMenu(r.Context(), claims.UserID, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := WeekMenuResponse{
		WeekOffset: offset,
		WeekStart:  menu.Week.Start.Format(dateLayout),
		WeekEnd:    menu.Week.End.Format(dateLayout),
		Entries:    make([]MenuEntryView, 0, len(menu.Entries)),
	}
	for _, entry := range menu.Entries {
		resp.Entries = append(resp.Entries, h.toMenuEntryView(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) addMenuEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeMenuWrite)
	if !ok {
		return
	}

	var req AddMenuEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	servings := 1
	if req.Servings != nil {
		servings = *req.Servings
	}

	entry, err := h.service.AddMenuEntry(r.Context(), domain.AddMenuEntryInput{
		UserID:     claims.UserID,
		WeekOffset: req.WeekOffset,
		DayIndex:   req.DayIndex,
		MealType:   domain.MealType(req.MealType),
		RecipeID:   req.RecipeID,
		Servings:   servings,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toMenuEntryView(*entry))
}

func (h *Handler) menuEntryByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/menu/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing menu entry id")
		return
	}
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeMenuWrite)
	if !ok {
		return
	}

	if err := h.service.RemoveMenuEntry(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shoppingList(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeMenuRead, auth.ScopeMenuWrite)
	if !ok {
		return
	}
	split := queryBool(r, "split_units")

	switch r.Method {
	case http.MethodPost:
		var req ShoppingListRequest
		if !decodeBody(w, r, &req) {
			return
		}
		selection := shopping.Selection{}
		for id, count := range req.Selection {
			selection.Set(id, count)
		}
		list := h.service.BuildShoppingList(r.Context(), selection, split || req.SplitUnits)
		writeJSON(w, http.StatusOK, toShoppingListResponse(list))
	case http.MethodGet:
		offset, err := queryInt(r, "week_offset", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		list, err := h.service.BuildWeekShoppingList(r.Context(), claims.UserID, offset, split)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toShoppingListResponse(list))
	default:
		methodNotAllowed(w)
	}
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeMenuRead, auth.ScopeMenuWrite)
	if !ok {
		return
	}

	recipes, err := h.service.Favorites(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListRecipesResponse{Items: recipes})
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/favorites/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing recipe id")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeMenuWrite)
	if !ok {
		return
	}

	favorite, err := h.service.ToggleFavorite(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := FavoriteResponse{RecipeID: id, Favorite: favorite, Status: "removed"}
	if favorite {
		resp.Status = "added"
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddMenuEntryRequest is the payload for POST /v1/menu. Servings defaults to 1 when omitted.
type AddMenuEntryRequest struct {
	WeekOffset int    `json:"week_offset"`
	DayIndex   int    `json:"day_index"`
	MealType   string `json:"meal_type"`
	RecipeID   string `json:"recipe_id"`
	Servings   *int   `json:"servings"`
}

// MenuEntryView exposes one menu slot.
type MenuEntryView struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	DayIndex   int       `json:"day_index"`
	MealType   string    `json:"meal_type"`
	RecipeID   string    `json:"recipe_id"`
	RecipeName string    `json:"recipe_name,omitempty"`
	Icon       string    `json:"icon,omitempty"`
	Servings   int       `json:"servings"`
	CreatedAt  time.Time `json:"created_at"`
}

// WeekMenuResponse lists one week of the menu.
type WeekMenuResponse struct {
	WeekOffset int             `json:"week_offset"`
	WeekStart  string          `json:"week_start"`
	WeekEnd    string          `json:"week_end"`
	Entries    []MenuEntryView `json:"entries"`
}

// ShoppingListRequest is the payload for POST /v1/shopping-list.
type ShoppingListRequest struct {
	Selection  map[string]int `json:"selection"`
	SplitUnits bool           `json:"split_units"`
}

// ShoppingListResponse is a consolidated list ready to share.
type ShoppingListResponse struct {
	Items     []shopping.Item     `json:"items"`
	Conflicts []shopping.Conflict `json:"conflicts,omitempty"`
	ShareText string              `json:"share_text"`
	ShareURL  string              `json:"share_url"`
}

// FavoriteResponse reports the state after a toggle.
type FavoriteResponse struct {
	RecipeID string `json:"recipe_id"`
	Favorite bool   `json:"favorite"`
	Status   string `json:"status"`
}

// toMenuEntryView derives day_index from the weekday since weeks start on Sunday.
func (h *Handler) toMenuEntryView(e domain.MenuEntry) MenuEntryView {
	view := MenuEntryView{
		ID:        e.ID,
		Date:      e.Date.Format(dateLayout),
		DayIndex:  int(e.Date.Weekday()),
		MealType:  string(e.MealType),
		RecipeID:  e.RecipeID,
		Servings:  e.Servings,
		CreatedAt: e.CreatedAt,
	}
	if recipe, ok := h.recipes.Get(e.RecipeID); ok {
		view.RecipeName = recipe.Name
		view.Icon = recipe.Icon
	}
	return view
}

func toShoppingListResponse(list domain.ShoppingList) ShoppingListResponse {
	return ShoppingListResponse{
		Items:     list.Items,
		Conflicts: list.Conflicts,
		ShareText: shopping.ShareText(list.Items),
		ShareURL:  list.ShareURL,
	}
}
