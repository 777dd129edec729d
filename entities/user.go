package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `gorm:"not null" json:"-"`
	AvatarURL string    `json:"avatar,omitempty"`
	Verified  bool      `gorm:"default:false" json:"verified"`

	Recipes []*Recipe `gorm:"foreignKey:AuthorID"`
	Timestamp
}
