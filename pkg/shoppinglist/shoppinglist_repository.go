package shoppinglist

import (
	"context"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		GetCartIngredientTotals(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
		GetCartRecipeNames(ctx context.Context, userID string) ([]string, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) GetCartIngredientTotals(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem

	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("LOWER(ingredients.name) asc").
		Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *shoppingListRepository) GetCartRecipeNames(ctx context.Context, userID string) ([]string, error) {
	var names []string

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Select("recipes.name").
		Joins("JOIN shopping_cart_entries ON shopping_cart_entries.recipe_id = recipes.id").
		Where("shopping_cart_entries.user_id = ?", userID).
		Order("recipes.name asc").
		Scan(&names).Error; err != nil {
		return nil, err
	}

	return names, nil
}
