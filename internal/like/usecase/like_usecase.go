package usecase

import (
	"context"
	"fmt"
	"strings"

	carddomain "howtouseai-backend/internal/card/domain"
	"howtouseai-backend/internal/like/domain"
	"howtouseai-backend/internal/like/dto"
	"howtouseai-backend/internal/like/repository"

	"go.uber.org/zap"
)

// cardLikeUsecase implements CardLikeUsecase interface
type cardLikeUsecase struct {
	likeRepo repository.CardLikeRepository
	cards    CardChecker
}

// NewCardLikeUsecase creates a new instance of cardLikeUsecase
func NewCardLikeUsecase(likeRepo repository.CardLikeRepository, cards CardChecker) CardLikeUsecase {
	return &cardLikeUsecase{
		likeRepo: likeRepo,
		cards:    cards,
	}
}

func (u *cardLikeUsecase) ToggleLike(ctx context.Context, cardID uint, uuid string) (*dto.LikeResponse, error) {
	if err := u.checkRequest(ctx, cardID, uuid); err != nil {
		return nil, err
	}

	liked, count, err := u.likeRepo.Toggle(ctx, cardID, uuid)
	if err != nil {
		return nil, err
	}

	zap.L().Info("like toggled", zap.Uint("card_id", cardID), zap.String("uuid", uuid), zap.Bool("liked", liked), zap.Int64("likes_count", count))
	return &dto.LikeResponse{Liked: liked, LikesCount: count}, nil
}

func (u *cardLikeUsecase) RemoveLike(ctx context.Context, cardID uint, uuid string) (*dto.LikeResponse, error) {
	if err := u.checkRequest(ctx, cardID, uuid); err != nil {
		return nil, err
	}

	count, err := u.likeRepo.Remove(ctx, cardID, uuid)
	if err != nil {
		return nil, err
	}

	zap.L().Info("like removed", zap.Uint("card_id", cardID), zap.String("uuid", uuid), zap.Int64("likes_count", count))
	return &dto.LikeResponse{Liked: false, LikesCount: count}, nil
}

func (u *cardLikeUsecase) checkRequest(ctx context.Context, cardID uint, uuid string) error {
	if strings.TrimSpace(uuid) == "" {
		return domain.ErrUUIDRequired
	}

	exists, err := u.cards.ExistsByID(ctx, cardID)
	if err != nil {
		return err
	}
	if !exists {
		zap.L().Warn("like on missing card", zap.Uint("card_id", cardID), zap.String("uuid", uuid))
		return fmt.Errorf("%w: ID %d", carddomain.ErrCardNotFound, cardID)
	}
	return nil
}
