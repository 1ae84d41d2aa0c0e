package delivery

import (
	"net/http"

	"howtouseai-backend/internal/like/dto"
	"howtouseai-backend/internal/like/usecase"
	"howtouseai-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// LikeHandler handles card like HTTP requests
type LikeHandler struct {
	likeUsecase usecase.CardLikeUsecase
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeUsecase usecase.CardLikeUsecase) *LikeHandler {
	return &LikeHandler{
		likeUsecase: likeUsecase,
	}
}

// ToggleLike likes or unlikes a card for the request uuid
// POST /api/cards/:id/like
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.LikeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.likeUsecase.ToggleLike(c.Request.Context(), id, req.UUID)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Card unliked."
	if res.Liked {
		message = "Card liked."
	}
	response.Success(c, http.StatusOK, res, message)
}

// RemoveLike clears the like of the request uuid
// DELETE /api/cards/:id/like?uuid=
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	id, ok := response.ParamID(c, "id")
	if !ok {
		return
	}

	res, err := h.likeUsecase.RemoveLike(c.Request.Context(), id, c.Query("uuid"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, "Card unliked.")
}
