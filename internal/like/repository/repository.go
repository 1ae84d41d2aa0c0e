package repository

import "context"

// CardLikeRepository defines the interface for card like data access
type CardLikeRepository interface {
	// Toggle removes the (card, uuid) like if present, otherwise adds it, and
	// returns the resulting state with the card's like count read in the same transaction
	Toggle(ctx context.Context, cardID uint, uuid string) (liked bool, count int64, err error)

	// Remove deletes the (card, uuid) like if present and returns the card's like count
	Remove(ctx context.Context, cardID uint, uuid string) (int64, error)

	Exists(ctx context.Context, cardID uint, uuid string) (bool, error)

	CountByCardID(ctx context.Context, cardID uint) (int64, error)

	// CountByCardIDs returns like counts keyed by card ID; cards without likes are absent
	CountByCardIDs(ctx context.Context, cardIDs []uint) (map[uint]int64, error)

	// LikedCardIDs returns the subset of cardIDs liked by uuid
	LikedCardIDs(ctx context.Context, uuid string, cardIDs []uint) (map[uint]bool, error)
}
