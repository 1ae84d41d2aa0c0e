package domain

import (
	"time"

	"howtouseai-backend/pkg/apperror"
)

// Category groups cards under a named icon
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_category_name"`
	IconURL   string    `gorm:"column:icon_url;size:500"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Category) TableName() string { return "category" }

var (
	ErrCategoryNotFound = apperror.NotFound(
		"CATEGORY_NOT_FOUND", "category not found", "Category not found.", "Category not found in database")
	ErrCategoryAlreadyExists = apperror.AlreadyExists(
		"DUPLICATE_CATEGORY", "category name already exists", "Category creation failed.", "Category name already exists in database")
)

const MaxNameLength = 100

var ErrInvalidCategoryName = apperror.Validation(
	"VALIDATION_ERROR", "category name is required and must be at most 100 characters", "Input validation failed.", "name")
