package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetLink         = "success get short link"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetLink         = "failed to get short link"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeAlreadyExists = errors.New("recipe with this name already exists for this author")
	ErrNotRecipeAuthor     = errors.New("only the author can modify this recipe")
	ErrEmptyIngredientList = errors.New("recipe must have at least one ingredient")
	ErrDuplicateIngredient = errors.New("ingredients must be unique")
	ErrUnknownIngredient   = errors.New("one or more ingredients do not exist")
	ErrInvalidAmount       = errors.New("ingredient amount must be at least 1")
	ErrMissingField        = errors.New("required recipe field is missing")
	ErrInvalidCookingTime  = errors.New("cooking time must be at least 1 minute")
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=256"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=256"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required,min=1"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required"`
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Author           UserProfile                `json:"author"`
		Name             string                     `json:"name"`
		Text             string                     `json:"text"`
		Image            string                     `json:"image,omitempty"`
		CookingTime      int                        `json:"cooking_time"`
		DatePublished    time.Time                  `json:"date_published"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	}

	RecipeShortResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image,omitempty"`
		CookingTime int    `json:"cooking_time"`
	}

	RecipeListFilter struct {
		AuthorID         string
		IsFavorited      bool
		IsInShoppingCart bool
	}

	ShortLinkResponse struct {
		ShortLink string `json:"short-link"`
	}
)
