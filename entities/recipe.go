package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID      uuid.UUID `gorm:"not null;uniqueIndex:uidx_recipe_name_author" json:"author_id"`
	Name          string    `gorm:"not null;uniqueIndex:uidx_recipe_name_author" json:"name"`
	Text          string    `gorm:"type:text;not null" json:"text"`
	ImageURL      string    `json:"image_url,omitempty"`
	CookingTime   int       `gorm:"not null" json:"cooking_time"`
	DatePublished time.Time `gorm:"type:timestamp" json:"date_published"`

	Author            *User               `gorm:"foreignKey:AuthorID"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `gorm:"not null;uniqueIndex:uidx_recipe_ingredient" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"not null;uniqueIndex:uidx_recipe_ingredient" json:"ingredient_id"`
	Amount       int       `gorm:"not null" json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
