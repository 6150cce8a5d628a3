package domain

import (
	"context"
	"time"

	"github.com/Remoratrader/nutria-app/internal/nutrition"
)

// HydrationStatus is today's water intake with the recommendation for the caller.
type HydrationStatus struct {
	Date              time.Time
	Cups              int
	GoalCups          int
	CupML             int
	ConsumedML        int
	RecommendedLiters float64
}

// Hydration reports today's cups and the recommended intake.
func (s *Service) Hydration(ctx context.Context, userID string) (*HydrationStatus, error) {
	day := s.today()
	record, err := s.repo.GetHydration(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if record == nil {
		defaults := defaultHydration(userID, day)
		record = &defaults
	}
	return s.hydrationStatus(ctx, *record)
}

// AdjustCups adds delta cups to today's count, never dropping below zero.
func (s *Service) AdjustCups(ctx context.Context, userID string, delta int) (*HydrationStatus, error) {
	day := s.today()
	defaults := defaultHydration(userID, day)
	defaults.UpdatedAt = s.now().UTC()

	record, err := s.repo.AdjustHydration(ctx, userID, day, delta, defaults)
	if err != nil {
		return nil, err
	}
	return s.hydrationStatus(ctx, record)
}

func (s *Service) hydrationStatus(ctx context.Context, record HydrationDay) (*HydrationStatus, error) {
	recommended := nutrition.DefaultWaterLiters
	profile, err := s.repo.GetProfile(ctx, record.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		recommended = nutrition.WaterIntakeLiters(profile.Profile.WeightKG, profile.Profile.ActivityLevel)
	}
	return &HydrationStatus{
		Date:              record.Date,
		Cups:              record.Cups,
		GoalCups:          record.GoalCups,
		CupML:             record.CupML,
		ConsumedML:        record.Cups * record.CupML,
		RecommendedLiters: recommended,
	}, nil
}

func defaultHydration(userID string, day time.Time) HydrationDay {
	return HydrationDay{
		UserID:   userID,
		Date:     day,
		GoalCups: nutrition.DefaultCupGoal,
		CupML:    nutrition.DefaultCupML,
	}
}
