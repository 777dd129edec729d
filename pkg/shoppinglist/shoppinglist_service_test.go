package shoppinglist

import (
	"context"
	"testing"

	"foodgram-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShoppingListRepository struct {
	items   []domain.ShoppingListItem
	recipes []string
}

func (f *fakeShoppingListRepository) GetCartIngredientTotals(_ context.Context, _ string) ([]domain.ShoppingListItem, error) {
	return f.items, nil
}

func (f *fakeShoppingListRepository) GetCartRecipeNames(_ context.Context, _ string) ([]string, error) {
	return f.recipes, nil
}

func TestBuildShoppingList_SortsCaseInsensitively(t *testing.T) {
	repository := &fakeShoppingListRepository{
		items: []domain.ShoppingListItem{
			{Name: "sugar", MeasurementUnit: "g", Total: 50},
			{Name: "Flour", MeasurementUnit: "g", Total: 300},
			{Name: "egg", MeasurementUnit: "pcs", Total: 2},
		},
		recipes: []string{"Cake", "Pancakes"},
	}
	service := NewShoppingListService(repository)

	list, err := service.BuildShoppingList(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, list.Items, 3)
	assert.Equal(t, "egg", list.Items[0].Name)
	assert.Equal(t, "Flour", list.Items[1].Name)
	assert.Equal(t, "sugar", list.Items[2].Name)
	assert.Equal(t, 300, list.Items[1].Total)
}

func TestBuildShoppingList_EmptyCart(t *testing.T) {
	service := NewShoppingListService(&fakeShoppingListRepository{})

	list, err := service.BuildShoppingList(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotNil(t, list.Items)
	assert.NotNil(t, list.Recipes)
	assert.Empty(t, list.Items)
	assert.Empty(t, list.Recipes)
}

func TestRenderShoppingList(t *testing.T) {
	service := NewShoppingListService(&fakeShoppingListRepository{})

	list := domain.ShoppingList{
		Items: []domain.ShoppingListItem{
			{Name: "egg", MeasurementUnit: "pcs", Total: 2},
			{Name: "flour", MeasurementUnit: "g", Total: 300},
		},
		Recipes: []string{"Pancakes"},
	}

	want := "Список покупок:\n\n" +
		"- egg (pcs) — 2\n" +
		"- flour (g) — 300\n" +
		"\nРецепты в списке покупок:\n" +
		"- Pancakes\n"
	assert.Equal(t, want, service.RenderShoppingList(list))
}

func TestRenderShoppingList_Empty(t *testing.T) {
	service := NewShoppingListService(&fakeShoppingListRepository{})

	want := "Список покупок:\n\n\nРецепты в списке покупок:\n"
	assert.Equal(t, want, service.RenderShoppingList(domain.ShoppingList{}))
}
