package collection

import (
	"context"
	"time"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CollectionRepository interface {
		Exists(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) (bool, error)
		Insert(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error
		Delete(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error
	}

	collectionRepository struct {
		db *gorm.DB
	}

	// collectionAccessor binds a CollectionKind to its membership table.
	// Dispatch happens through the lookup table below, never through
	// reflection on the entity types.
	collectionAccessor struct {
		model  func() any
		record func(userID, recipeID uuid.UUID) any
	}
)

var collectionAccessors = map[domain.CollectionKind]collectionAccessor{
	domain.CollectionFavorite: {
		model: func() any { return &entities.Favorite{} },
		record: func(userID, recipeID uuid.UUID) any {
			return &entities.Favorite{
				ID:        uuid.New(),
				UserID:    userID,
				RecipeID:  recipeID,
				CreatedAt: time.Now(),
			}
		},
	},
	domain.CollectionShoppingCart: {
		model: func() any { return &entities.ShoppingCartEntry{} },
		record: func(userID, recipeID uuid.UUID) any {
			return &entities.ShoppingCartEntry{
				ID:        uuid.New(),
				UserID:    userID,
				RecipeID:  recipeID,
				CreatedAt: time.Now(),
			}
		},
	},
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Exists(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) (bool, error) {
	accessor, ok := collectionAccessors[kind]
	if !ok {
		return false, domain.ErrUnknownCollectionKind
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(accessor.model()).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *collectionRepository) Insert(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error {
	accessor, ok := collectionAccessors[kind]
	if !ok {
		return domain.ErrUnknownCollectionKind
	}
	return r.db.WithContext(ctx).Create(accessor.record(userID, recipeID)).Error
}

func (r *collectionRepository) Delete(ctx context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error {
	accessor, ok := collectionAccessors[kind]
	if !ok {
		return domain.ErrUnknownCollectionKind
	}

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(accessor.model())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotInCollection
	}
	return nil
}
