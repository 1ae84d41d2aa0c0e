package usecase

import (
	"context"

	"howtouseai-backend/internal/like/dto"
)

// CardLikeUsecase defines the interface for card like business logic
type CardLikeUsecase interface {
	// ToggleLike flips the like state of (cardID, uuid)
	ToggleLike(ctx context.Context, cardID uint, uuid string) (*dto.LikeResponse, error)

	// RemoveLike clears the like of (cardID, uuid); removing an absent like is not an error
	RemoveLike(ctx context.Context, cardID uint, uuid string) (*dto.LikeResponse, error)
}

// CardChecker reports whether a card exists
type CardChecker interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
