package shoppinglist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram-backend/domain"
)

type (
	ShoppingListService interface {
		BuildShoppingList(ctx context.Context, userID string) (domain.ShoppingList, error)
		RenderShoppingList(list domain.ShoppingList) string
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

// BuildShoppingList aggregates the ingredient lines of every recipe in the
// user's cart, summed per (name, measurement unit). An empty cart yields an
// empty list, not an error.
func (s *shoppingListService) BuildShoppingList(ctx context.Context, userID string) (domain.ShoppingList, error) {
	items, err := s.shoppingListRepository.GetCartIngredientTotals(ctx, userID)
	if err != nil {
		return domain.ShoppingList{}, err
	}

	names, err := s.shoppingListRepository.GetCartRecipeNames(ctx, userID)
	if err != nil {
		return domain.ShoppingList{}, err
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})

	if items == nil {
		items = []domain.ShoppingListItem{}
	}
	if names == nil {
		names = []string{}
	}
	return domain.ShoppingList{Items: items, Recipes: names}, nil
}

// RenderShoppingList produces the downloadable plain-text report.
func (s *shoppingListService) RenderShoppingList(list domain.ShoppingList) string {
	var b strings.Builder

	b.WriteString("Список покупок:\n\n")
	for _, item := range list.Items {
		b.WriteString(fmt.Sprintf("- %s (%s) — %d\n", item.Name, item.MeasurementUnit, item.Total))
	}

	b.WriteString("\nРецепты в списке покупок:\n")
	for _, name := range list.Recipes {
		b.WriteString(fmt.Sprintf("- %s\n", name))
	}

	return b.String()
}
