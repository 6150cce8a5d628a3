package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

func (h *Handler) logMeal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	var req LogMealRequest
	if !decodeBody(w, r, &req) {
		return
	}
	portions := 1.0
	if req.Portions != nil {
		portions = *req.Portions
	}

	entry, err := h.service.LogMeal(r.Context(), domain.LogMealInput{
		UserID:   claims.UserID,
		RecipeID: req.RecipeID,
		MealType: domain.MealType(req.MealType),
		Portions: portions,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConsumptionView(*entry))
}

func (h *Handler) logManualFood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	var req ManualFoodRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.service.LogManualFood(r.Context(), domain.ManualFoodInput{
		UserID:      claims.UserID,
		Description: req.Description,
		MealType:    domain.MealType(req.MealType),
		Intake: nutrition.Intake{
			Calories: req.Calories,
			ProteinG: req.Protein,
			CarbsG:   req.Carbs,
			FatG:     req.Fat,
		},
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toConsumptionView(*entry))
}

func (h *Handler) today(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileRead, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	summary, err := h.service.Today(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := TodayResponse{
		Date:      summary.Date.Format(dateLayout),
		Entries:   make([]ConsumptionView, 0, len(summary.Entries)),
		Consumed:  summary.Consumed,
		Targets:   summary.Targets,
		Remaining: summary.Remaining,
	}
	for _, e := range summary.Entries {
		resp.Entries = append(resp.Entries, toConsumptionView(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) weeklyProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileRead, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	days, err := h.service.WeeklyProgress(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := WeeklyProgressResponse{Days: make([]DayProgressView, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, DayProgressView{
			Date:           d.Date.Format(dateLayout),
			Weekday:        int(d.Date.Weekday()),
			Calories:       d.Calories,
			TargetCalories: d.TargetCalories,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) hydration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileRead, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	status, err := h.service.Hydration(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHydrationView(*status))
}

func (h *Handler) adjustCups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	claims, ok := authorize(w, r, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	var req AdjustCupsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	status, err := h.service.AdjustCups(r.Context(), claims.UserID, req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHydrationView(*status))
}

// LogMealRequest is the payload for POST /v1/consumption/meals. Portions defaults to 1.
type LogMealRequest struct {
	RecipeID string   `json:"recipe_id"`
	MealType string   `json:"meal_type"`
	Portions *float64 `json:"portions"`
}

// ManualFoodRequest is the payload for POST /v1/consumption/manual.
type ManualFoodRequest struct {
	Description string  `json:"description"`
	MealType    string  `json:"meal_type"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
}

// AdjustCupsRequest is the payload for POST /v1/hydration/cups.
type AdjustCupsRequest struct {
	Delta int `json:"delta"`
}

const maxCupDelta = 20

// Validate rejects no-op and implausibly large adjustments.
func (r AdjustCupsRequest) Validate() error {
	if r.Delta == 0 {
		return errors.New("delta must not be zero")
	}
	if r.Delta > maxCupDelta || r.Delta < -maxCupDelta {
		return errors.New("delta must be between -20 and 20")
	}
	return nil
}

// ConsumptionView exposes one logged item.
type ConsumptionView struct {
	ID          string           `json:"id"`
	Date        string           `json:"date"`
	Kind        string           `json:"kind"`
	MealType    string           `json:"meal_type,omitempty"`
	RecipeID    string           `json:"recipe_id,omitempty"`
	Description string           `json:"description"`
	Portions    float64          `json:"portions"`
	Intake      nutrition.Intake `json:"intake"`
	LoggedAt    time.Time        `json:"logged_at"`
}

// TodayResponse summarises today's consumption against the targets.
type TodayResponse struct {
	Date      string             `json:"date"`
	Entries   []ConsumptionView  `json:"entries"`
	Consumed  nutrition.Intake   `json:"consumed"`
	Targets   *nutrition.Targets `json:"targets,omitempty"`
	Remaining *nutrition.Intake  `json:"remaining,omitempty"`
}

// DayProgressView is one day of the weekly chart.
type DayProgressView struct {
	Date           string  `json:"date"`
	Weekday        int     `json:"weekday"`
	Calories       float64 `json:"calories"`
	TargetCalories int     `json:"target_calories"`
}

// WeeklyProgressResponse lists the last seven days, oldest first.
type WeeklyProgressResponse struct {
	Days []DayProgressView `json:"days"`
}

// HydrationView reports today's water intake.
type HydrationView struct {
	Date              string  `json:"date"`
	Cups              int     `json:"cups"`
	GoalCups          int     `json:"goal_cups"`
	CupML             int     `json:"cup_ml"`
	ConsumedML        int     `json:"consumed_ml"`
	RecommendedLiters float64 `json:"recommended_liters"`
}

func toConsumptionView(e domain.ConsumptionEntry) ConsumptionView {
	return ConsumptionView{
		ID:          e.ID,
		Date:        e.Date.Format(dateLayout),
		Kind:        string(e.Kind),
		MealType:    string(e.MealType),
		RecipeID:    e.RecipeID,
		Description: e.Description,
		Portions:    e.Portions,
		Intake:      e.Intake,
		LoggedAt:    e.LoggedAt,
	}
}

func toHydrationView(s domain.HydrationStatus) HydrationView {
	return HydrationView{
		Date:              s.Date.Format(dateLayout),
		Cups:              s.Cups,
		GoalCups:          s.GoalCups,
		CupML:             s.CupML,
		ConsumedML:        s.ConsumedML,
		RecommendedLiters: s.RecommendedLiters,
	}
}
