package api

import (
	"net/http"
	"time"

	"github.com/Remoratrader/nutria-app/internal/auth"
	"github.com/Remoratrader/nutria-app/internal/domain"
	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut:
		h.saveProfile(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeProfileRead, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(*profile))
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := authorize(w, r, auth.ScopeProfileWrite)
	if !ok {
		return
	}

	var req SaveProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.service.SaveProfile(r.Context(), domain.SaveProfileInput{
		UserID:    claims.UserID,
		Name:      req.Name,
		Profile:   req.Profile,
		DietTypes: req.DietTypes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileView(*profile))
}

// nutritionTargets runs the calculator without touching storage.
func (h *Handler) nutritionTargets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	if _, ok := authorize(w, r, auth.ScopeProfileRead, auth.ScopeProfileWrite); !ok {
		return
	}

	var p nutrition.Profile
	if !decodeBody(w, r, &p) {
		return
	}
	targets, err := h.service.ComputeTargets(p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TargetsResponse{
		Targets:     targets,
		WaterLiters: nutrition.WaterIntakeLiters(p.WeightKG, p.ActivityLevel),
	})
}

// SaveProfileRequest is the payload for PUT /v1/profile.
type SaveProfileRequest struct {
	Name      string            `json:"name"`
	DietTypes []domain.DietType `json:"diet_types"`
	nutrition.Profile
}

// TargetsResponse is the calculator output.
type TargetsResponse struct {
	nutrition.Targets
	WaterLiters float64 `json:"water_liters"`
}

// ProfileView exposes a stored profile with its targets.
type ProfileView struct {
	UserID    string            `json:"user_id"`
	Name      string            `json:"name"`
	DietTypes []domain.DietType `json:"diet_types"`
	nutrition.Profile
	Targets     nutrition.Targets `json:"targets"`
	WaterLiters float64           `json:"water_liters"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func toProfileView(p domain.UserProfile) ProfileView {
	return ProfileView{
		UserID:      p.UserID,
		Name:        p.Name,
		DietTypes:   p.DietTypes,
		Profile:     p.Profile,
		Targets:     p.Targets,
		WaterLiters: nutrition.WaterIntakeLiters(p.Profile.WeightKG, p.Profile.ActivityLevel),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
