package repository

import (
	"context"

	"howtouseai-backend/internal/category/domain"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// FindAll returns every category ordered by name ascending
	FindAll(ctx context.Context) ([]*domain.Category, error)

	// FindByID returns nil, nil when the category does not exist
	FindByID(ctx context.Context, id uint) (*domain.Category, error)

	ExistsByName(ctx context.Context, name string) (bool, error)

	Create(ctx context.Context, category *domain.Category) error

	Update(ctx context.Context, category *domain.Category) error
}
