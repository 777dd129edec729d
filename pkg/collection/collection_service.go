package collection

import (
	"context"
	"errors"

	"foodgram-backend/domain"
	"foodgram-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionService interface {
		Add(ctx context.Context, kind domain.CollectionKind, userID, recipeID string) (domain.RecipeShortResponse, error)
		Remove(ctx context.Context, kind domain.CollectionKind, userID, recipeID string) error
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
		forbidOwnFavorite    bool
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository, forbidOwnFavorite bool) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
		forbidOwnFavorite:    forbidOwnFavorite,
	}
}

// Add puts a recipe into the user's favorite or shopping-cart set. The
// existence pre-check keeps the common path friendly; the unique index on
// (user_id, recipe_id) is what actually guarantees at-most-one membership,
// so a duplicate-key insert from a concurrent identical request is
// translated to ErrAlreadyInCollection here.
func (s *collectionService) Add(ctx context.Context, kind domain.CollectionKind, userID, recipeID string) (domain.RecipeShortResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeShortResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeShortResponse{}, domain.ErrParseUUID
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeShortResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeShortResponse{}, err
	}

	if s.forbidOwnFavorite && kind == domain.CollectionFavorite && target.AuthorID == userUUID {
		return domain.RecipeShortResponse{}, domain.ErrOwnRecipeFavorite
	}

	exists, err := s.collectionRepository.Exists(ctx, kind, userUUID, recipeUUID)
	if err != nil {
		return domain.RecipeShortResponse{}, err
	}
	if exists {
		return domain.RecipeShortResponse{}, domain.ErrAlreadyInCollection
	}

	if err := s.collectionRepository.Insert(ctx, kind, userUUID, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShortResponse{}, domain.ErrAlreadyInCollection
		}
		return domain.RecipeShortResponse{}, err
	}

	return recipe.ToShortResponse(target), nil
}

// Remove deletes the membership row. Removing an absent membership is an
// error, not a no-op, so a client repeating the call sees
// ErrNotInCollection on the second attempt.
func (s *collectionService) Remove(ctx context.Context, kind domain.CollectionKind, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	exists, err := s.recipeRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}

	return s.collectionRepository.Delete(ctx, kind, userUUID, recipeUUID)
}
