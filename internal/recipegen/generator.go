package recipegen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Remoratrader/nutria-app/internal/catalog"
)

// ErrPromptRequired is returned when the request text is blank.
var ErrPromptRequired = errors.New("prompt is required")

// IDPrefix marks recipes that came from the model.
const IDPrefix = "ai-"

// Model returns structured JSON text for a prompt.
type Model interface {
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (string, error)
}

// RecipeStore keeps generated recipes so later lookups resolve them.
type RecipeStore interface {
	Add(ctx context.Context, recipes ...catalog.Recipe) error
}

// Request is a user's generation request.
type Request struct {
	Prompt        string
	DailyCalories int
	// Diets are the caller's dietary preferences, passed to the model as a hint.
	Diets []string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger overrides the logger used to report failures.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithIDFunc overrides how recipe ids are minted.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

// WithTracer overrides the tracer used for generation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Generator) {
		g.tracer = tracer
	}
}

// Generator turns free-text requests into catalog recipes.
type Generator struct {
	model  Model
	store  RecipeStore
	logger *log.Logger
	tracer trace.Tracer
	newID  func() string
}

// NewGenerator constructs a Generator. store may be nil when results should not be kept.
func NewGenerator(model Model, store RecipeStore, opts ...Option) *Generator {
	g := &Generator{
		model:  model,
		store:  store,
		logger: log.New(log.Writer(), "[recipegen] ", log.LstdFlags|log.Lshortfile),
		tracer: otel.Tracer("github.com/Remoratrader/nutria-app/internal/recipegen"),
		newID:  func() string { return IDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the model for recipes, validates the answer and assigns ids.
func (g *Generator) Generate(ctx context.Context, req Request) ([]catalog.Recipe, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrPromptRequired
	}

	ctx, span := g.tracer.Start(ctx, "recipegen.Generate")
	defer span.End()
	span.SetAttributes(attribute.Int("nutria.daily_calories", req.DailyCalories))

	start := time.Now()
	recipes, err := g.generate(ctx, req)
	generationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordFailure(failureReason(err))
		g.logger.Printf("generation failed: %v", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("nutria.recipes", len(recipes)))
	recipesGenerated.Add(float64(len(recipes)))
	return recipes, nil
}

func (g *Generator) generate(ctx context.Context, req Request) ([]catalog.Recipe, error) {
	text, err := g.model.GenerateJSON(ctx, BuildPrompt(req.Prompt, req.DailyCalories, req.Diets), RecipeSchema())
	if err != nil {
		return nil, err
	}

	recipes, err := DecodeRecipes(text)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].ID = g.newID()
		recipes[i].Generated = true
	}

	if g.store != nil {
		if err := g.store.Add(ctx, recipes...); err != nil {
			return nil, fmt.Errorf("store generated recipes: %w", err)
		}
	}
	return recipes, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "internal"
	}
}
