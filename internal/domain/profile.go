package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
	"github.com/Remoratrader/nutria-app/internal/observability"
)

// Profile form limits.
const (
	MinNameLength = 2
	MinAge        = 10
	MaxAge        = 120
	MinWeightKG   = 20
	MaxWeightKG   = 300
	MinHeightCM   = 100
	MaxHeightCM   = 250
)

// SaveProfileInput captures the profile form.
type SaveProfileInput struct {
	UserID    string
	Name      string
	Profile   nutrition.Profile
	DietTypes []DietType
}

// Validate applies the form limits on top of the calculator's own checks.
func (in SaveProfileInput) Validate() error {
	var problems []string
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < MinNameLength {
		problems = append(problems, fmt.Sprintf("name must have at least %d characters", MinNameLength))
	}
	if in.Profile.AgeYears < MinAge || in.Profile.AgeYears > MaxAge {
		problems = append(problems, fmt.Sprintf("age must be between %d and %d", MinAge, MaxAge))
	}
	if in.Profile.WeightKG < MinWeightKG || in.Profile.WeightKG > MaxWeightKG {
		problems = append(problems, fmt.Sprintf("weight must be between %d and %d kg", MinWeightKG, MaxWeightKG))
	}
	if in.Profile.HeightCM < MinHeightCM || in.Profile.HeightCM > MaxHeightCM {
		problems = append(problems, fmt.Sprintf("height must be between %d and %d cm", MinHeightCM, MaxHeightCM))
	}
	if len(in.DietTypes) == 0 {
		problems = append(problems, "at least one diet type is required")
	}
	for _, d := range in.DietTypes {
		if !d.Valid() {
			problems = append(problems, fmt.Sprintf("unknown diet type %q", d))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// ComputeTargets runs the calculator without persisting anything.
func (s *Service) ComputeTargets(p nutrition.Profile) (nutrition.Targets, error) {
	targets, err := nutrition.Compute(p)
	if err != nil {
		observability.RecordInvalidProfile()
		return nutrition.Targets{}, err
	}
	observability.RecordTargetsComputed(string(p.Goal))
	return targets, nil
}

// SaveProfile validates the form, recomputes targets and stores both.
func (s *Service) SaveProfile(ctx context.Context, in SaveProfileInput) (*UserProfile, error) {
	if err := in.Validate(); err != nil {
		observability.RecordInvalidProfile()
		return nil, err
	}
	targets, err := s.ComputeTargets(in.Profile)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile := UserProfile{
		UserID:    in.UserID,
		Name:      strings.TrimSpace(in.Name),
		Profile:   in.Profile,
		DietTypes: uniqueDiets(in.DietTypes),
		Targets:   targets,
		CreatedAt: now,
		UpdatedAt: now,
	}
	existing, err := s.repo.GetProfile(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// uniqueDiets drops repeated selections, keeping the first occurrence.
func uniqueDiets(in []DietType) []DietType {
	seen := make(map[DietType]struct{}, len(in))
	out := make([]DietType, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

// GetProfile fetches the caller's stored profile.
func (s *Service) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// IsInvalidInput reports whether err came from validation rather than infrastructure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, nutrition.ErrInvalidProfile)
}
