// Package domain orchestrates NutrIA workflows over the storage backends.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Remoratrader/nutria-app/internal/shopping"
)

var (
	// ErrValidation wraps input that fails range or format checks.
	ErrValidation = errors.New("validation failed")
	// ErrProfileNotFound is returned when the user has not saved a profile.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrRecipeNotFound is returned when a referenced recipe is not in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrMenuEntryNotFound is returned when a menu entry does not belong to the caller.
	ErrMenuEntryNotFound = errors.New("menu entry not found")
)

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		s.loc = loc
	}
}

// WithIDFunc overrides how entity ids are minted.
func WithIDFunc(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// Service orchestrates profile, menu, consumption and hydration workflows.
type Service struct {
	repo    Repository
	recipes shopping.RecipeLookup
	now     func() time.Time
	loc     *time.Location
	newID   func() string
	tracer  trace.Tracer
}

// NewService constructs a Service.
func NewService(repo Repository, recipes shopping.RecipeLookup, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		recipes: recipes,
		now:     time.Now,
		loc:     time.UTC,
		newID:   uuid.NewString,
		tracer:  otel.Tracer("github.com/Remoratrader/nutria-app/internal/domain"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return Day(s.now(), s.loc)
}
