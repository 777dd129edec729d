package domain

import (
	"errors"
)

// CollectionKind selects which membership table a collection operation
// targets. Favorites and the shopping cart share identical add/remove
// semantics and differ only in the backing table.
type CollectionKind string

const (
	CollectionFavorite     CollectionKind = "favorite"
	CollectionShoppingCart CollectionKind = "shopping_cart"
)

var (
	MessageSuccessAddToCollection      = "recipe added to collection"
	MessageSuccessRemoveFromCollection = "recipe removed from collection"
	MessageSuccessGetShoppingList      = "success get shopping list"

	MessageFailedAddToCollection      = "failed to add recipe to collection"
	MessageFailedRemoveFromCollection = "failed to remove recipe from collection"
	MessageFailedGetShoppingList      = "failed to get shopping list"

	ErrUnknownCollectionKind = errors.New("unknown collection kind")
	ErrAlreadyInCollection   = errors.New("recipe is already in collection")
	ErrNotInCollection       = errors.New("recipe is not in collection")
	ErrOwnRecipeFavorite     = errors.New("you cannot favorite your own recipe")
)

type (
	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Total           int    `json:"total"`
	}

	ShoppingList struct {
		Items   []ShoppingListItem `json:"items"`
		Recipes []string           `json:"recipes"`
	}
)
