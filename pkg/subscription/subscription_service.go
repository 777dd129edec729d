package subscription

import (
	"context"
	"errors"
	"strconv"

	"foodgram-backend/domain"
	"foodgram-backend/entities"
	"foodgram-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SubscriptionService interface {
		Subscribe(ctx context.Context, userID, authorID string, recipesLimit string) (domain.SubscriptionResponse, error)
		Unsubscribe(ctx context.Context, userID, authorID string) error
		ListSubscriptions(ctx context.Context, userID string, recipesLimit string, page, limit int) ([]domain.SubscriptionResponse, int64, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository) SubscriptionService {
	return &subscriptionService{subscriptionRepository: subscriptionRepository}
}

// parseRecipesLimit reads the optional recipes_limit query value. Malformed
// or non-positive values are treated as absent rather than rejected.
func parseRecipesLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID string, recipesLimit string) (domain.SubscriptionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.SubscriptionResponse{}, domain.ErrParseUUID
	}
	if userUUID == authorUUID {
		return domain.SubscriptionResponse{}, domain.ErrSelfSubscription
	}

	author, err := s.subscriptionRepository.GetAuthorByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionResponse{}, domain.ErrUserNotFound
		}
		return domain.SubscriptionResponse{}, err
	}

	exists, err := s.subscriptionRepository.Exists(ctx, userUUID, authorUUID)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	if exists {
		return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
	}

	if err := s.subscriptionRepository.Insert(ctx, userUUID, authorUUID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.SubscriptionResponse{}, domain.ErrAlreadySubscribed
		}
		return domain.SubscriptionResponse{}, err
	}

	return s.toSubscriptionResponse(ctx, author, parseRecipesLimit(recipesLimit))
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.subscriptionRepository.GetAuthorByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.subscriptionRepository.Delete(ctx, userUUID, authorUUID)
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID string, recipesLimit string, page, limit int) ([]domain.SubscriptionResponse, int64, error) {
	authors, count, err := s.subscriptionRepository.ListAuthors(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	previewLimit := parseRecipesLimit(recipesLimit)
	result := make([]domain.SubscriptionResponse, 0, len(authors))
	for _, author := range authors {
		res, err := s.toSubscriptionResponse(ctx, author, previewLimit)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}

// toSubscriptionResponse composes the author profile with a capped recipe
// preview and the author's true recipe count, which may exceed the preview
// length.
func (s *subscriptionService) toSubscriptionResponse(ctx context.Context, author *entities.User, previewLimit int) (domain.SubscriptionResponse, error) {
	recipes, err := s.subscriptionRepository.GetRecipesByAuthor(ctx, author.ID.String(), previewLimit)
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}
	recipesCount, err := s.subscriptionRepository.CountRecipesByAuthor(ctx, author.ID.String())
	if err != nil {
		return domain.SubscriptionResponse{}, err
	}

	preview := make([]domain.RecipeShortResponse, 0, len(recipes))
	for _, item := range recipes {
		preview = append(preview, recipe.ToShortResponse(item))
	}

	return domain.SubscriptionResponse{
		UserProfile: domain.UserProfile{
			ID:           author.ID.String(),
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			Avatar:       author.AvatarURL,
			IsSubscribed: true,
		},
		Recipes:      preview,
		RecipesCount: recipesCount,
	}, nil
}
