package delivery

import (
	"net/http"

	"howtouseai-backend/internal/card/dto"
	"howtouseai-backend/internal/card/usecase"
	"howtouseai-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	cardUsecase usecase.CardUsecase
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardUsecase usecase.CardUsecase) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
	}
}

// GetCards returns one page of cards, most liked first
// GET /api/cards?page=&size=&categoryId=&tag=&uuid=
func (h *CardHandler) GetCards(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	page, err := h.cardUsecase.ListCards(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page, "Cards retrieved successfully.")
}

// SearchCards returns cards ranked by typo-tolerant text match
// GET /api/cards/search?q=&size=&categoryId=&uuid=
func (h *CardHandler) SearchCards(c *gin.Context) {
	var query dto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	cards, err := h.cardUsecase.SearchCards(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, cards, "Cards retrieved successfully.")
}

// GetCardByID returns a single card
// GET /api/cards/:id?uuid=
func (h *CardHandler) GetCardByID(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	card, err := h.cardUsecase.GetCard(c.Request.Context(), id, c.Query("uuid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, card, "Card retrieved successfully.")
}

// CreateCard creates a card owned by the request uuid
// POST /api/cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	card, err := h.cardUsecase.CreateCard(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, card, "Card created successfully.")
}

// UpdateCard updates a card; only its creator may do so
// PUT /api/cards/:id
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	card, err := h.cardUsecase.UpdateCard(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, card, "Card updated successfully.")
}

// DeleteCard deletes a card and its likes
// DELETE /api/cards/:id?uuid=
func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.DeleteCardRequest
	req.UUID = c.Query("uuid")
	if req.UUID == "" && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}

	if err := h.cardUsecase.DeleteCard(c.Request.Context(), id, req.UUID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Card deleted successfully.")
}
