package domain

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Remoratrader/nutria-app/internal/observability"
	"github.com/Remoratrader/nutria-app/internal/shopping"
)

// ShoppingList is a consolidated list ready to display or share.
type ShoppingList struct {
	Items     []shopping.Item
	Conflicts []shopping.Conflict
	ShareURL  string
}

// BuildShoppingList consolidates an explicit selection. With splitUnits the
// merge keys by name and unit and reports names seen with several units.
func (s *Service) BuildShoppingList(ctx context.Context, selection shopping.Selection, splitUnits bool) ShoppingList {
	_, span := s.tracer.Start(ctx, "domain.BuildShoppingList")
	defer span.End()

	var list ShoppingList
	if splitUnits {
		list.Items, list.Conflicts = shopping.ConsolidateByUnit(selection, s.recipes)
	} else {
		list.Items = shopping.Consolidate(selection, s.recipes)
	}
	list.ShareURL = shopping.ShareURL(list.Items)

	unresolved := 0
	for _, id := range selection.IDs() {
		if _, ok := s.recipes.Get(id); !ok {
			unresolved++
		}
	}
	span.SetAttributes(
		attribute.Int("nutria.selection.recipes", len(selection)),
		attribute.Int("nutria.shopping.items", len(list.Items)),
		attribute.Int("nutria.shopping.unresolved", unresolved),
	)
	observability.RecordShoppingList(len(list.Items), unresolved)
	return list
}

// WeekSelection turns a week's menu into a selection keyed by recipe with summed servings.
func (s *Service) WeekSelection(ctx context.Context, userID string, weekOffset int) (shopping.Selection, error) {
	menu, err := s.GetWeekMenu(ctx, userID, weekOffset)
	if err != nil {
		return nil, err
	}
	selection := shopping.Selection{}
	for _, entry := range menu.Entries {
		selection.Add(entry.RecipeID, entry.Servings)
	}
	return selection, nil
}

// BuildWeekShoppingList consolidates the ingredients of every recipe on the week's menu.
func (s *Service) BuildWeekShoppingList(ctx context.Context, userID string, weekOffset int, splitUnits bool) (ShoppingList, error) {
	selection, err := s.WeekSelection(ctx, userID, weekOffset)
	if err != nil {
		return ShoppingList{}, err
	}
	return s.BuildShoppingList(ctx, selection, splitUnits), nil
}
