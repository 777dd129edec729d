package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/internal/utils"
	"foodgram-backend/internal/utils/storage"
	"foodgram-backend/pkg/ingredient"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, authorID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, authorID string) error
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeListFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error)
		BuildShortLink(ctx context.Context, recipeID string) (domain.ShortLinkResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		storage              storage.Storage
	}

	composition struct {
		ingredientID uuid.UUID
		amount       int
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ingredientRepository ingredient.IngredientRepository, storage storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		storage:              storage,
	}
}

// validateComposition enforces the recipe composition invariants: a
// non-empty, duplicate-free ingredient list with every amount >= 1 and
// every ingredient id resolving to a stored ingredient.
func (s *recipeService) validateComposition(ctx context.Context, ingredients []domain.RecipeIngredientRequest) ([]composition, error) {
	if len(ingredients) == 0 {
		return nil, domain.ErrEmptyIngredientList
	}

	seen := make(map[string]bool, len(ingredients))
	parsed := make([]composition, 0, len(ingredients))
	ids := make([]string, 0, len(ingredients))
	for _, item := range ingredients {
		if seen[item.ID] {
			return nil, domain.ErrDuplicateIngredient
		}
		seen[item.ID] = true

		if item.Amount < domain.MinIngredientAmount {
			return nil, domain.ErrInvalidAmount
		}

		id, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, domain.ErrUnknownIngredient
		}
		parsed = append(parsed, composition{ingredientID: id, amount: item.Amount})
		ids = append(ids, item.ID)
	}

	stored, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(stored) != len(ids) {
		return nil, domain.ErrUnknownIngredient
	}

	return parsed, nil
}

func validateScalars(name, text string, cookingTime int, image string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		return domain.ErrMissingField
	}
	if cookingTime == 0 {
		return domain.ErrMissingField
	}
	if image == "" {
		return domain.ErrMissingField
	}
	if cookingTime < domain.MinCookingTime {
		return domain.ErrInvalidCookingTime
	}
	return nil
}

func (s *recipeService) uploadImage(ctx context.Context, recipeID uuid.UUID, image string) (string, error) {
	ext, raw, err := utils.DecodeBase64Image(image)
	if err != nil {
		return "", domain.ErrInvalidImagePayload
	}
	key := fmt.Sprintf("recipes/images/%s.%s", recipeID.String(), ext)
	return s.storage.UploadBytes(ctx, key, "image/"+ext, raw)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	// Composition problems take precedence over scalar field problems.
	parsed, err := s.validateComposition(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := validateScalars(req.Name, req.Text, req.CookingTime, req.Image); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipeID := uuid.New()
	imageURL, err := s.uploadImage(ctx, recipeID, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := entities.Recipe{
		ID:            recipeID,
		AuthorID:      authorUUID,
		Name:          strings.TrimSpace(req.Name),
		Text:          strings.TrimSpace(req.Text),
		ImageURL:      imageURL,
		CookingTime:   req.CookingTime,
		DatePublished: time.Now(),
	}
	for _, item := range parsed {
		recipe.RecipeIngredients = append(recipe.RecipeIngredients, &entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: item.ingredientID,
			Amount:       item.amount,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID.String(), authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, authorID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.AuthorID.String() != authorID {
		return domain.RecipeResponse{}, domain.ErrNotRecipeAuthor
	}

	parsed, err := s.validateComposition(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := validateScalars(req.Name, req.Text, req.CookingTime, req.Image); err != nil {
		return domain.RecipeResponse{}, err
	}

	imageURL, err := s.uploadImage(ctx, recipe.ID, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.ImageURL = imageURL
	recipe.Name = strings.TrimSpace(req.Name)
	recipe.Text = strings.TrimSpace(req.Text)
	recipe.CookingTime = req.CookingTime

	links := make([]*entities.RecipeIngredient, 0, len(parsed))
	for _, item := range parsed {
		links = append(links, &entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipe.ID,
			IngredientID: item.ingredientID,
			Amount:       item.amount,
		})
	}

	recipe.RecipeIngredients = nil
	if err := s.recipeRepository.ReplaceRecipe(ctx, recipe, links); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID, authorID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, authorID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID.String() != authorID {
		return domain.ErrNotRecipeAuthor
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	isFavorited, isInCart := s.viewerFlags(ctx, viewerID, recipeID)
	return toRecipeResponse(recipe, isFavorited, isInCart), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeListFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, viewerID, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		isFavorited, isInCart := s.viewerFlags(ctx, viewerID, recipe.ID.String())
		result = append(result, toRecipeResponse(recipe, isFavorited, isInCart))
	}
	return result, count, nil
}

func (s *recipeService) BuildShortLink(ctx context.Context, recipeID string) (domain.ShortLinkResponse, error) {
	exists, err := s.recipeRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return domain.ShortLinkResponse{}, err
	}
	if !exists {
		return domain.ShortLinkResponse{}, domain.ErrRecipeNotFound
	}
	return domain.ShortLinkResponse{
		ShortLink: fmt.Sprintf("%s/s/%s", utils.GetConfig("APP_URL"), recipeID),
	}, nil
}

func (s *recipeService) viewerFlags(ctx context.Context, viewerID, recipeID string) (bool, bool) {
	if viewerID == "" {
		return false, false
	}
	isFavorited, err := s.recipeRepository.IsFavorited(ctx, viewerID, recipeID)
	if err != nil {
		isFavorited = false
	}
	isInCart, err := s.recipeRepository.IsInShoppingCart(ctx, viewerID, recipeID)
	if err != nil {
		isInCart = false
	}
	return isFavorited, isInCart
}

func toRecipeResponse(recipe *entities.Recipe, isFavorited, isInCart bool) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Name:             recipe.Name,
		Text:             recipe.Text,
		Image:            recipe.ImageURL,
		CookingTime:      recipe.CookingTime,
		DatePublished:    recipe.DatePublished,
		Ingredients:      make([]domain.RecipeIngredientResponse, 0, len(recipe.RecipeIngredients)),
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
	}
	if recipe.Author != nil {
		res.Author = domain.UserProfile{
			ID:        recipe.Author.ID.String(),
			Email:     recipe.Author.Email,
			Username:  recipe.Author.Username,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
			Avatar:    recipe.Author.AvatarURL,
		}
	}
	for _, link := range recipe.RecipeIngredients {
		item := domain.RecipeIngredientResponse{
			ID:     link.IngredientID.String(),
			Amount: link.Amount,
		}
		if link.Ingredient != nil {
			item.Name = link.Ingredient.Name
			item.MeasurementUnit = link.Ingredient.MeasurementUnit
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	return res
}

// ToShortResponse is the compact recipe view used by collection and
// subscription payloads.
func ToShortResponse(recipe *entities.Recipe) domain.RecipeShortResponse {
	return domain.RecipeShortResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}
