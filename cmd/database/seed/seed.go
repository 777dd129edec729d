package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"foodgram-backend/entities"
	"foodgram-backend/pkg/ingredient"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ingredientSeed struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// SeedIngredients loads the ingredient catalog from a JSON file. Rows that
// already exist are skipped, so re-running the seed is safe.
func SeedIngredients(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading ingredient seed file: %w", err)
	}

	var seeds []ingredientSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("parsing ingredient seed file: %w", err)
	}

	rows := make([]entities.Ingredient, 0, len(seeds))
	for _, seed := range seeds {
		name, unit := ingredient.NormalizeIngredient(seed.Name, seed.MeasurementUnit)
		if name == "" || unit == "" {
			continue
		}
		rows = append(rows, entities.Ingredient{
			ID:              uuid.New(),
			Name:            name,
			MeasurementUnit: unit,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500).Error
}
