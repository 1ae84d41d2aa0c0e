package dto

import (
	"time"

	"howtouseai-backend/internal/card/domain"
	categorydto "howtouseai-backend/internal/category/dto"
)

type CreateCardRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	CategoryID    uint    `json:"categoryId" binding:"required"`
	UUID          string  `json:"uuid" binding:"required"`
	Tags          *string `json:"tags"`
	Situation     *string `json:"situation"`
	UsageExamples *string `json:"usageExamples"`
	Content       *string `json:"content"`
}

// UpdateCardRequest uses nil for "keep the current value"
type UpdateCardRequest struct {
	UUID          string  `json:"uuid" binding:"required"`
	Title         *string `json:"title" binding:"omitempty,max=255"`
	CategoryID    *uint   `json:"categoryId"`
	Tags          *string `json:"tags"`
	Situation     *string `json:"situation"`
	UsageExamples *string `json:"usageExamples"`
	Content       *string `json:"content"`
}

type DeleteCardRequest struct {
	UUID string `json:"uuid" form:"uuid"`
}

// ListQuery selects one page of cards. Page is zero-based.
type ListQuery struct {
	Page          int    `form:"page"`
	Size          int    `form:"size"`
	CategoryID    uint   `form:"categoryId"`
	Tag           string `form:"tag"`
	RequesterUUID string `form:"uuid"`
}

// SearchQuery ranks cards by how well title, tags and situation match Q.
type SearchQuery struct {
	Q             string `form:"q" binding:"required"`
	Size          int    `form:"size"`
	CategoryID    uint   `form:"categoryId"`
	RequesterUUID string `form:"uuid"`
}

type CardResponse struct {
	ID            uint                          `json:"id"`
	UUID          string                        `json:"uuid"`
	Title         string                        `json:"title"`
	Category      *categorydto.CategoryResponse `json:"category"`
	Tags          string                        `json:"tags"`
	Situation     string                        `json:"situation"`
	UsageExamples string                        `json:"usageExamples"`
	Content       string                        `json:"content"`
	CreatedAt     time.Time                     `json:"createdAt"`
	LikesCount    int64                         `json:"likesCount"`
	LikedByUser   bool                          `json:"likedByUser"`
}

type CardPage struct {
	Content       []*CardResponse `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
	First         bool            `json:"first"`
	Last          bool            `json:"last"`
}

func NewCardResponse(c *domain.Card, likesCount int64, likedByUser bool) *CardResponse {
	return &CardResponse{
		ID:            c.ID,
		UUID:          c.UUID,
		Title:         c.Title,
		Category:      categorydto.NewCategoryResponse(&c.Category),
		Tags:          c.Tags,
		Situation:     c.Situation,
		UsageExamples: c.UsageExamples,
		Content:       c.Content,
		CreatedAt:     c.CreatedAt,
		LikesCount:    likesCount,
		LikedByUser:   likedByUser,
	}
}

// NewCardPage assembles page metadata the way the web client expects it.
func NewCardPage(content []*CardResponse, page, size int, total int64) *CardPage {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &CardPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
