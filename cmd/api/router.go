package api

import (
	"net/http"
	"strings"

	"howtouseai-backend/internal/auth/delivery"
	"howtouseai-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HowToUseAI API is running.")
	})

	// Stored category icons
	r.GET("/images/categories/:name", h.serveIcon)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", h.health)

		// Category routes (public)
		categories := api.Group("/categories")
		{
			categories.GET("", h.categoryHandler.GetCategories)
			categories.GET("/:id", h.categoryHandler.GetCategoryByID)
		}

		// Admin routes (protected when ADMIN_JWT_SECRET is set)
		admin := api.Group("/admin")
		admin.Use(delivery.AdminMiddleware(h.authUsecase))
		{
			admin.POST("/categories", h.categoryHandler.CreateCategory)
			admin.PUT("/categories/:id", h.categoryHandler.UpdateCategory)
		}

		// Card routes, ownership is checked against the request uuid
		cards := api.Group("/cards")
		{
			cards.GET("", h.cardHandler.GetCards)
			cards.POST("", h.cardHandler.CreateCard)
			cards.GET("/search", h.cardHandler.SearchCards)
			cards.GET("/:id", h.cardHandler.GetCardByID)
			cards.PUT("/:id", h.cardHandler.UpdateCard)
			cards.DELETE("/:id", h.cardHandler.DeleteCard)
			cards.POST("/:id/like", h.likeHandler.ToggleLike)
			cards.DELETE("/:id/like", h.likeHandler.RemoveLike)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		// Browsers ask for it on every page load
		if strings.HasSuffix(c.Request.URL.Path, "favicon.ico") {
			zap.L().Debug("favicon requested", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		response.Failure(c, http.StatusNotFound, "NOT_FOUND", "resource not found", c.Request.URL.Path, "Resource not found.")
	})
}

// health reports API and database status
// GET /api/health
func (h *Handler) health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}

// serveIcon streams a stored category icon
// GET /images/categories/:name
func (h *Handler) serveIcon(c *gin.Context) {
	obj, err := h.icons.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer obj.Body.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
}
