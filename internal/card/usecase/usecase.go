package usecase

import (
	"context"

	"howtouseai-backend/internal/card/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// searchCandidates bounds how many cards a search ranks in memory
	searchCandidates = 500
)

// CardUsecase defines the interface for card business logic
type CardUsecase interface {
	// ListCards returns one page ordered by like count, then newest first
	ListCards(ctx context.Context, query dto.ListQuery) (*dto.CardPage, error)

	// GetCard returns a card; likedByUser reflects requesterUUID
	GetCard(ctx context.Context, id uint, requesterUUID string) (*dto.CardResponse, error)

	// SearchCards ranks cards by typo-tolerant match on title, tags and situation
	SearchCards(ctx context.Context, query dto.SearchQuery) ([]*dto.CardResponse, error)

	CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardResponse, error)

	// UpdateCard applies a partial update on behalf of the card's owner
	UpdateCard(ctx context.Context, id uint, req *dto.UpdateCardRequest) (*dto.CardResponse, error)

	// DeleteCard deletes a card and its likes on behalf of the card's owner
	DeleteCard(ctx context.Context, id uint, uuid string) error
}
