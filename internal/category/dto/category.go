package dto

import (
	"time"

	"howtouseai-backend/internal/category/domain"
	"howtouseai-backend/pkg/storage"
)

type CreateCategoryRequest struct {
	Name string        `form:"name" binding:"required,max=100"`
	Icon *storage.File `form:"-"`
}

// UpdateCategoryRequest leaves a field unchanged when it is nil or blank
type UpdateCategoryRequest struct {
	Name *string       `form:"name" binding:"omitempty,max=100"`
	Icon *storage.File `form:"-"`
}

type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"iconUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCategoryResponse(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		IconURL:   c.IconURL,
		CreatedAt: c.CreatedAt,
	}
}
