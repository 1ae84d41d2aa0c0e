package repository

import (
	"context"

	"howtouseai-backend/internal/card/domain"
)

// CardFilter narrows a card listing. Zero values mean no filter.
type CardFilter struct {
	CategoryID uint
	Tag        string
}

// CardRepository defines the interface for card data access
type CardRepository interface {
	// Create inserts a new card
	Create(ctx context.Context, card *domain.Card) error

	// FindByID finds a card with its category; returns nil, nil when absent
	FindByID(ctx context.Context, id uint) (*domain.Card, error)

	ExistsByID(ctx context.Context, id uint) (bool, error)

	ExistsByTitleAndUUID(ctx context.Context, title, uuid string) (bool, error)

	// FindPage lists cards by like count descending, then newest first
	FindPage(ctx context.Context, filter CardFilter, limit, offset int) ([]*domain.Card, int64, error)

	// FindCandidates returns up to limit cards in listing order for in-memory ranking
	FindCandidates(ctx context.Context, filter CardFilter, limit int) ([]*domain.Card, error)

	// Update saves every mutable column of the card
	Update(ctx context.Context, card *domain.Card) error

	// DeleteWithLikes removes the card's likes and then the card in one transaction
	DeleteWithLikes(ctx context.Context, id uint) error
}
