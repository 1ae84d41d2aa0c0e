package repository

import (
	"context"
	"errors"
	"time"

	"howtouseai-backend/internal/card/domain"
	likedomain "howtouseai-backend/internal/like/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const likesCountOrder = "(SELECT COUNT(*) FROM card_like WHERE card_like.card_id = card.id) DESC, card.created_at DESC, card.id DESC"

// gormCardRepository implements CardRepository using GORM
type gormCardRepository struct {
	db *gorm.DB
}

// NewGormCardRepository creates a new GORM-based CardRepository
func NewGormCardRepository(db *gorm.DB) CardRepository {
	return &gormCardRepository{db: db}
}

func (r *gormCardRepository) Create(ctx context.Context, card *domain.Card) error {
	card.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(card).Error
}

func (r *gormCardRepository) FindByID(ctx context.Context, id uint) (*domain.Card, error) {
	var card domain.Card
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *gormCardRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Card{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *gormCardRepository) ExistsByTitleAndUUID(ctx context.Context, title, uuid string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Card{}).
		Where("title = ? AND uuid = ?", title, uuid).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCardRepository) FindPage(ctx context.Context, filter CardFilter, limit, offset int) ([]*domain.Card, int64, error) {
	var cards []*domain.Card
	var total int64

	query := r.filtered(ctx, filter)

	// Count total
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Session(&gorm.Session{}).Preload("Category").
		Order(likesCountOrder).
		Limit(limit).Offset(offset).
		Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

func (r *gormCardRepository) FindCandidates(ctx context.Context, filter CardFilter, limit int) ([]*domain.Card, error) {
	var cards []*domain.Card
	err := r.filtered(ctx, filter).Preload("Category").
		Order(likesCountOrder).
		Limit(limit).
		Find(&cards).Error
	return cards, err
}

func (r *gormCardRepository) filtered(ctx context.Context, filter CardFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&domain.Card{})
	if filter.CategoryID != 0 {
		query = query.Where("card.category_id = ?", filter.CategoryID)
	}
	if filter.Tag != "" {
		query = query.Where("card.tags LIKE ?", "%"+filter.Tag+"%")
	}
	return query
}

func (r *gormCardRepository) Update(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Model(card).Omit(clause.Associations).
		Updates(map[string]interface{}{
			"title":          card.Title,
			"category_id":    card.CategoryID,
			"tags":           card.Tags,
			"situation":      card.Situation,
			"usage_examples": card.UsageExamples,
			"content":        card.Content,
		}).Error
}

func (r *gormCardRepository) DeleteWithLikes(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("card_id = ?", id).Delete(&likedomain.CardLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Card{}, "id = ?", id).Error
	})
}
