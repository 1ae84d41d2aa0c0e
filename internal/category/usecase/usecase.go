package usecase

import (
	"context"

	"howtouseai-backend/internal/category/dto"
	"howtouseai-backend/pkg/storage"
)

// CategoryUsecase defines the interface for category business logic
type CategoryUsecase interface {
	// ListCategories returns all categories sorted by name ascending
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)

	GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error)

	// CreateCategory rejects duplicate names before the icon is stored
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)

	// UpdateCategory keeps the current name or icon when none is supplied
	UpdateCategory(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
}

// IconStorer persists an uploaded icon and returns its public URL
type IconStorer interface {
	Store(ctx context.Context, f *storage.File) (string, error)
}
