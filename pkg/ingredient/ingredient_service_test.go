package ingredient

import (
	"context"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeIngredientRepository struct {
	created   []*entities.Ingredient
	createErr error
}

func (f *fakeIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, ingredient)
	return nil
}

func (f *fakeIngredientRepository) GetIngredientByID(_ context.Context, _ string) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(_ context.Context, _ []string) ([]*entities.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredientRepository) GetIngredients(_ context.Context, _ string) ([]*entities.Ingredient, error) {
	return f.created, nil
}

func TestNormalizeIngredient(t *testing.T) {
	name, unit := NormalizeIngredient("  Flour ", " G ")
	assert.Equal(t, "flour", name)
	assert.Equal(t, "g", unit)
}

func TestCreateIngredient_Normalizes(t *testing.T) {
	repository := &fakeIngredientRepository{}
	service := NewIngredientService(repository)

	res, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:            "  Sugar ",
		MeasurementUnit: "G",
	})
	require.NoError(t, err)

	assert.Equal(t, "sugar", res.Name)
	assert.Equal(t, "g", res.MeasurementUnit)
	require.Len(t, repository.created, 1)
	assert.Equal(t, "sugar", repository.created[0].Name)
}

func TestCreateIngredient_BlankFields(t *testing.T) {
	service := NewIngredientService(&fakeIngredientRepository{})

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:            "   ",
		MeasurementUnit: "g",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidIngredientName)

	_, err = service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:            "salt",
		MeasurementUnit: " ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMeasurementUnit)
}

func TestCreateIngredient_Duplicate(t *testing.T) {
	service := NewIngredientService(&fakeIngredientRepository{createErr: gorm.ErrDuplicatedKey})

	_, err := service.CreateIngredient(context.Background(), domain.CreateIngredientRequest{
		Name:            "salt",
		MeasurementUnit: "g",
	})
	assert.ErrorIs(t, err, domain.ErrIngredientAlreadyExists)
}

func TestGetIngredientDetail_NotFound(t *testing.T) {
	service := NewIngredientService(&fakeIngredientRepository{})

	_, err := service.GetIngredientDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}
