package domain

import (
	"time"

	categorydomain "howtouseai-backend/internal/category/domain"
	likedomain "howtouseai-backend/internal/like/domain"
	"howtouseai-backend/pkg/apperror"
)

// Card is a tip or guide created by an anonymous device.
// UUID is the creator's device identifier and acts as the ownership token.
type Card struct {
	ID            uint                    `gorm:"primaryKey"`
	UUID          string                  `gorm:"column:uuid;size:255;not null;uniqueIndex:idx_card_title_uuid,priority:2"`
	Title         string                  `gorm:"size:255;not null;uniqueIndex:idx_card_title_uuid,priority:1"`
	CategoryID    uint                    `gorm:"column:category_id;not null;index"`
	Category      categorydomain.Category `gorm:"foreignKey:CategoryID"`
	Tags          string                  `gorm:"type:text"`
	Situation     string                  `gorm:"type:text"`
	UsageExamples string                  `gorm:"column:usage_examples;type:text"`
	Content       string                  `gorm:"type:text"`
	CreatedAt     time.Time               `gorm:"column:created_at"`

	// Likes exists for the foreign key only; it has no ON DELETE CASCADE.
	Likes []likedomain.CardLike `gorm:"foreignKey:CardID"`
}

func (Card) TableName() string { return "card" }

// OwnedBy reports whether uuid is the card's creator.
func (c *Card) OwnedBy(uuid string) bool {
	return uuid != "" && c.UUID == uuid
}

var (
	ErrCardNotFound = apperror.NotFound(
		"CARD_NOT_FOUND", "card not found", "Card not found.", "Card not found in database")
	ErrCardAlreadyExists = apperror.AlreadyExists(
		"DUPLICATE_CARD", "card title already exists", "Card creation failed.", "Card title already exists for this user")
	ErrUnauthorizedAccess = apperror.Unauthorized(
		"UNAUTHORIZED_ACCESS", "access denied", "Access denied.", "User does not have permission to access this resource")
)

const MaxTitleLength = 255

var ErrInvalidCard = apperror.Validation(
	"VALIDATION_ERROR", "invalid card input", "Input validation failed.", "")
