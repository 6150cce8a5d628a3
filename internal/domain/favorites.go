package domain

import (
	"context"

	"github.com/Remoratrader/nutria-app/internal/catalog"
)

// Favorites lists the caller's favourite recipes that still resolve in the catalog.
func (s *Service) Favorites(ctx context.Context, userID string) ([]catalog.Recipe, error) {
	ids, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipes := make([]catalog.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := s.recipes.Get(id); ok {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// ToggleFavorite flips the favourite state of a recipe and reports whether it is now a favourite.
func (s *Service) ToggleFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	if _, ok := s.recipes.Get(recipeID); !ok {
		return false, ErrRecipeNotFound
	}
	return s.repo.ToggleFavorite(ctx, userID, recipeID, s.now().UTC())
}
