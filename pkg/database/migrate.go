package database

import (
	carddomain "howtouseai-backend/internal/card/domain"
	categorydomain "howtouseai-backend/internal/category/domain"
	likedomain "howtouseai-backend/internal/like/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the category, card and card_like tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&categorydomain.Category{}, &carddomain.Card{}, &likedomain.CardLike{})
}
