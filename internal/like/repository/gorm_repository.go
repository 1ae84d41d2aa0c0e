package repository

import (
	"context"
	"time"

	"howtouseai-backend/internal/like/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormCardLikeRepository implements CardLikeRepository using GORM
type gormCardLikeRepository struct {
	db *gorm.DB
}

// NewGormCardLikeRepository creates a new GORM-based CardLikeRepository
func NewGormCardLikeRepository(db *gorm.DB) CardLikeRepository {
	return &gormCardLikeRepository{db: db}
}

func (r *gormCardLikeRepository) Toggle(ctx context.Context, cardID uint, uuid string) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("card_id = ? AND uuid = ?", cardID, uuid).Delete(&domain.CardLike{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// The unique (card_id, uuid) index turns a concurrent duplicate into a no-op
			like := &domain.CardLike{CardID: cardID, UUID: uuid, CreatedAt: time.Now()}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&domain.CardLike{}).Where("card_id = ?", cardID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (r *gormCardLikeRepository) Remove(ctx context.Context, cardID uint, uuid string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ? AND uuid = ?", cardID, uuid).Delete(&domain.CardLike{}).Error; err != nil {
			return err
		}
		return tx.Model(&domain.CardLike{}).Where("card_id = ?", cardID).Count(&count).Error
	})
	return count, err
}

func (r *gormCardLikeRepository) Exists(ctx context.Context, cardID uint, uuid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CardLike{}).
		Where("card_id = ? AND uuid = ?", cardID, uuid).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCardLikeRepository) CountByCardID(ctx context.Context, cardID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CardLike{}).Where("card_id = ?", cardID).Count(&count).Error
	return count, err
}

func (r *gormCardLikeRepository) CountByCardIDs(ctx context.Context, cardIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(cardIDs))
	if len(cardIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CardID uint
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.CardLike{}).
		Select("card_id, COUNT(*) AS total").
		Where("card_id IN ?", cardIDs).
		Group("card_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CardID] = row.Total
	}
	return counts, nil
}

func (r *gormCardLikeRepository) LikedCardIDs(ctx context.Context, uuid string, cardIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool)
	if uuid == "" || len(cardIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).Model(&domain.CardLike{}).
		Where("uuid = ? AND card_id IN ?", uuid, cardIDs).
		Pluck("card_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
