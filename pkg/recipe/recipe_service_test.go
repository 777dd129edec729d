package recipe

import (
	"context"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testImage = "data:image/png;base64,aGVsbG8="

type fakeRecipeRepository struct {
	recipes       map[string]*entities.Recipe
	replacedLinks []*entities.RecipeIngredient
	deletedID     string
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: make(map[string]*entities.Recipe)}
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
	var all []*entities.Recipe
	for _, recipe := range f.recipes {
		all = append(all, recipe)
	}
	return all, int64(len(all)), nil
}

func (f *fakeRecipeRepository) ReplaceRecipe(_ context.Context, recipe *entities.Recipe, links []*entities.RecipeIngredient) error {
	f.recipes[recipe.ID.String()] = recipe
	f.replacedLinks = links
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	f.deletedID = id
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

type fakeIngredientRepository struct {
	known map[string]*entities.Ingredient
}

func newFakeIngredientRepository(ids ...uuid.UUID) *fakeIngredientRepository {
	known := make(map[string]*entities.Ingredient, len(ids))
	for _, id := range ids {
		known[id.String()] = &entities.Ingredient{ID: id, Name: "flour", MeasurementUnit: "g"}
	}
	return &fakeIngredientRepository{known: known}
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, _ *entities.Ingredient) error {
	return nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ingredient, ok := f.known[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ingredient, nil
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(_ context.Context, ids []string) ([]*entities.Ingredient, error) {
	var found []*entities.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.known[id]; ok {
			found = append(found, ingredient)
		}
	}
	return found, nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, _ string) ([]*entities.Ingredient, error) {
	var all []*entities.Ingredient
	for _, ingredient := range f.known {
		all = append(all, ingredient)
	}
	return all, nil
}

type fakeStorage struct{}

func (f *fakeStorage) UploadBytes(_ context.Context, key, _ string, _ []byte) (string, error) {
	return "https://bucket.s3.eu-north-1.amazonaws.com/" + key, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, _ string) error {
	return nil
}

func validCreateRequest(ingredientIDs ...uuid.UUID) domain.CreateRecipeRequest {
	req := domain.CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook the beets first.",
		Image:       testImage,
		CookingTime: 45,
	}
	for _, id := range ingredientIDs {
		req.Ingredients = append(req.Ingredients, domain.RecipeIngredientRequest{ID: id.String(), Amount: 100})
	}
	return req
}

func TestCreateRecipe_EmptyIngredientList(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(), &fakeStorage{})

	req := validCreateRequest()
	_, err := service.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrEmptyIngredientList)
}

func TestCreateRecipe_DuplicateIngredient(t *testing.T) {
	ingredientID := uuid.New()
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(ingredientID), &fakeStorage{})

	req := validCreateRequest(ingredientID, ingredientID)
	_, err := service.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)
}

func TestCreateRecipe_InvalidAmount(t *testing.T) {
	ingredientID := uuid.New()
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(ingredientID), &fakeStorage{})

	for _, amount := range []int{0, -5} {
		req := validCreateRequest(ingredientID)
		req.Ingredients[0].Amount = amount

		_, err := service.CreateRecipe(context.Background(), req, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %d should be rejected", amount)
	}
}

func TestCreateRecipe_UnknownIngredient(t *testing.T) {
	known := uuid.New()
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(known), &fakeStorage{})

	req := validCreateRequest(known, uuid.New())
	_, err := service.CreateRecipe(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
}

func TestCreateRecipe_MalformedIngredientID(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(), &fakeStorage{})

	req := validCreateRequest()
	req.Ingredients = []domain.RecipeIngredientRequest{{ID: "not-a-uuid", Amount: 10}}

	_, err := service.CreateRecipe(context.Background(), req, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnknownIngredient)
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	ingredientID := uuid.New()
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(ingredientID), &fakeStorage{})

	blankName := validCreateRequest(ingredientID)
	blankName.Name = "   "
	_, err := service.CreateRecipe(context.Background(), blankName, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMissingField)

	noCookingTime := validCreateRequest(ingredientID)
	noCookingTime.CookingTime = 0
	_, err = service.CreateRecipe(context.Background(), noCookingTime, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMissingField)

	noImage := validCreateRequest(ingredientID)
	noImage.Image = ""
	_, err = service.CreateRecipe(context.Background(), noImage, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestCreateRecipe_DuplicateIngredientBeatsScalarErrors(t *testing.T) {
	ingredientID := uuid.New()
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(ingredientID), &fakeStorage{})

	// composition errors win even when scalar fields are also invalid
	blankName := validCreateRequest(ingredientID, ingredientID)
	blankName.Name = "   "
	_, err := service.CreateRecipe(context.Background(), blankName, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)

	noCookingTime := validCreateRequest(ingredientID, ingredientID)
	noCookingTime.CookingTime = 0
	_, err = service.CreateRecipe(context.Background(), noCookingTime, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)
}

func TestCreateRecipe_Success(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(first, second), &fakeStorage{})

	req := validCreateRequest(first, second)
	req.Ingredients[1].Amount = 3

	res, err := service.CreateRecipe(context.Background(), req, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "Borscht", res.Name)
	assert.Len(t, res.Ingredients, 2)

	stored := recipeRepository.recipes[res.ID]
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.RecipeIngredients[0].Amount)
	assert.Equal(t, 3, stored.RecipeIngredients[1].Amount)
}

func TestUpdateRecipe_NotAuthor(t *testing.T) {
	ingredientID := uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(ingredientID), &fakeStorage{})

	authorID := uuid.NewString()
	created, err := service.CreateRecipe(context.Background(), validCreateRequest(ingredientID), authorID)
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Stolen",
		Text:        "text",
		Image:       testImage,
		CookingTime: 10,
		Ingredients: []domain.RecipeIngredientRequest{{ID: ingredientID.String(), Amount: 1}},
	}
	_, err = service.UpdateRecipe(context.Background(), created.ID, update, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotRecipeAuthor)
}

func TestUpdateRecipe_ReplacesIngredientLinks(t *testing.T) {
	old, replacement := uuid.New(), uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(old, replacement), &fakeStorage{})

	authorID := uuid.NewString()
	created, err := service.CreateRecipe(context.Background(), validCreateRequest(old), authorID)
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Borscht v2",
		Text:        "Now with more beets.",
		Image:       testImage,
		CookingTime: 60,
		Ingredients: []domain.RecipeIngredientRequest{{ID: replacement.String(), Amount: 7}},
	}
	_, err = service.UpdateRecipe(context.Background(), created.ID, update, authorID)
	require.NoError(t, err)

	require.Len(t, recipeRepository.replacedLinks, 1)
	assert.Equal(t, replacement, recipeRepository.replacedLinks[0].IngredientID)
	assert.Equal(t, 7, recipeRepository.replacedLinks[0].Amount)
}

func TestUpdateRecipe_DuplicateIngredientBeatsScalarErrors(t *testing.T) {
	ingredientID := uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(ingredientID), &fakeStorage{})

	authorID := uuid.NewString()
	created, err := service.CreateRecipe(context.Background(), validCreateRequest(ingredientID), authorID)
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "   ",
		Text:        "text",
		Image:       testImage,
		CookingTime: 10,
		Ingredients: []domain.RecipeIngredientRequest{
			{ID: ingredientID.String(), Amount: 1},
			{ID: ingredientID.String(), Amount: 2},
		},
	}
	_, err = service.UpdateRecipe(context.Background(), created.ID, update, authorID)
	assert.ErrorIs(t, err, domain.ErrDuplicateIngredient)
}

func TestUpdateRecipe_MissingImage(t *testing.T) {
	ingredientID := uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(ingredientID), &fakeStorage{})

	authorID := uuid.NewString()
	created, err := service.CreateRecipe(context.Background(), validCreateRequest(ingredientID), authorID)
	require.NoError(t, err)

	update := domain.UpdateRecipeRequest{
		Name:        "Borscht v2",
		Text:        "text",
		CookingTime: 10,
		Ingredients: []domain.RecipeIngredientRequest{{ID: ingredientID.String(), Amount: 1}},
	}
	_, err = service.UpdateRecipe(context.Background(), created.ID, update, authorID)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestDeleteRecipe_OnlyAuthor(t *testing.T) {
	ingredientID := uuid.New()
	recipeRepository := newFakeRecipeRepository()
	service := NewRecipeService(recipeRepository, newFakeIngredientRepository(ingredientID), &fakeStorage{})

	authorID := uuid.NewString()
	created, err := service.CreateRecipe(context.Background(), validCreateRequest(ingredientID), authorID)
	require.NoError(t, err)

	err = service.DeleteRecipe(context.Background(), created.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotRecipeAuthor)

	err = service.DeleteRecipe(context.Background(), created.ID, authorID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, recipeRepository.deletedID)
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepository(), newFakeIngredientRepository(), &fakeStorage{})

	err := service.DeleteRecipe(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
