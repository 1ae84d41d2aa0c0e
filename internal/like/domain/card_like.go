package domain

import "time"

// CardLike records that the device identified by UUID liked a card.
// At most one row exists per (CardID, UUID).
type CardLike struct {
	ID        uint      `gorm:"primaryKey"`
	CardID    uint      `gorm:"column:card_id;not null;uniqueIndex:idx_card_like_card_uuid,priority:1"`
	UUID      string    `gorm:"column:uuid;size:255;not null;uniqueIndex:idx_card_like_card_uuid,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CardLike) TableName() string { return "card_like" }
