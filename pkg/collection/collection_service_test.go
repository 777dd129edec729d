package collection

import (
	"context"
	"fmt"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCollectionRepository struct {
	members map[string]bool
}

func newFakeCollectionRepository() *fakeCollectionRepository {
	return &fakeCollectionRepository{members: make(map[string]bool)}
}

func membershipKey(kind domain.CollectionKind, userID, recipeID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/%s", kind, userID, recipeID)
}

func (f *fakeCollectionRepository) Exists(_ context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) (bool, error) {
	return f.members[membershipKey(kind, userID, recipeID)], nil
}

func (f *fakeCollectionRepository) Insert(_ context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error {
	key := membershipKey(kind, userID, recipeID)
	if f.members[key] {
		return gorm.ErrDuplicatedKey
	}
	f.members[key] = true
	return nil
}

func (f *fakeCollectionRepository) Delete(_ context.Context, kind domain.CollectionKind, userID, recipeID uuid.UUID) error {
	key := membershipKey(kind, userID, recipeID)
	if !f.members[key] {
		return domain.ErrNotInCollection
	}
	delete(f.members, key)
	return nil
}

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	f.recipes[recipe.ID.String()] = recipe
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, _ string, _ domain.RecipeListFilter, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepository) ReplaceRecipe(_ context.Context, _ *entities.Recipe, _ []*entities.RecipeIngredient) error {
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeRecipeRepository) RecipeExists(_ context.Context, id string) (bool, error) {
	_, ok := f.recipes[id]
	return ok, nil
}

func (f *fakeRecipeRepository) IsFavorited(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (f *fakeRecipeRepository) IsInShoppingCart(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func seedRecipe(authorID uuid.UUID) (*fakeRecipeRepository, *entities.Recipe) {
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        "Pancakes",
		CookingTime: 20,
	}
	return &fakeRecipeRepository{recipes: map[string]*entities.Recipe{recipe.ID.String(): recipe}}, recipe
}

func TestAdd_ReturnsShortRecipe(t *testing.T) {
	recipeRepository, recipe := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)

	res, err := service.Add(context.Background(), domain.CollectionFavorite, uuid.NewString(), recipe.ID.String())
	require.NoError(t, err)

	assert.Equal(t, recipe.ID.String(), res.ID)
	assert.Equal(t, "Pancakes", res.Name)
	assert.Equal(t, 20, res.CookingTime)
}

func TestAdd_TwiceFails(t *testing.T) {
	recipeRepository, recipe := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)
	userID := uuid.NewString()

	for _, kind := range []domain.CollectionKind{domain.CollectionFavorite, domain.CollectionShoppingCart} {
		_, err := service.Add(context.Background(), kind, userID, recipe.ID.String())
		require.NoError(t, err)

		_, err = service.Add(context.Background(), kind, userID, recipe.ID.String())
		assert.ErrorIs(t, err, domain.ErrAlreadyInCollection)
	}
}

func TestAdd_KindsAreIndependent(t *testing.T) {
	recipeRepository, recipe := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)
	userID := uuid.NewString()

	_, err := service.Add(context.Background(), domain.CollectionFavorite, userID, recipe.ID.String())
	require.NoError(t, err)

	// favoriting does not put the recipe into the cart
	_, err = service.Add(context.Background(), domain.CollectionShoppingCart, userID, recipe.ID.String())
	assert.NoError(t, err)
}

func TestAdd_UnknownRecipe(t *testing.T) {
	recipeRepository, _ := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)

	_, err := service.Add(context.Background(), domain.CollectionFavorite, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAdd_OwnRecipeFavorite(t *testing.T) {
	authorID := uuid.New()
	recipeRepository, recipe := seedRecipe(authorID)

	strict := NewCollectionService(newFakeCollectionRepository(), recipeRepository, true)
	_, err := strict.Add(context.Background(), domain.CollectionFavorite, authorID.String(), recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrOwnRecipeFavorite)

	// the rule never applies to the shopping cart
	_, err = strict.Add(context.Background(), domain.CollectionShoppingCart, authorID.String(), recipe.ID.String())
	assert.NoError(t, err)

	relaxed := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)
	_, err = relaxed.Add(context.Background(), domain.CollectionFavorite, authorID.String(), recipe.ID.String())
	assert.NoError(t, err)
}

func TestRemove_SecondRemovalFails(t *testing.T) {
	recipeRepository, recipe := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)
	userID := uuid.NewString()

	_, err := service.Add(context.Background(), domain.CollectionShoppingCart, userID, recipe.ID.String())
	require.NoError(t, err)

	err = service.Remove(context.Background(), domain.CollectionShoppingCart, userID, recipe.ID.String())
	require.NoError(t, err)

	err = service.Remove(context.Background(), domain.CollectionShoppingCart, userID, recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotInCollection)
}

func TestRemove_UnknownRecipe(t *testing.T) {
	recipeRepository, _ := seedRecipe(uuid.New())
	service := NewCollectionService(newFakeCollectionRepository(), recipeRepository, false)

	err := service.Remove(context.Background(), domain.CollectionFavorite, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRepository_UnknownKind(t *testing.T) {
	repository := NewCollectionRepository(nil)

	_, err := repository.Exists(context.Background(), domain.CollectionKind("bogus"), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnknownCollectionKind)

	err = repository.Insert(context.Background(), domain.CollectionKind("bogus"), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnknownCollectionKind)

	err = repository.Delete(context.Background(), domain.CollectionKind("bogus"), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUnknownCollectionKind)
}
