package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	authUsecase "howtouseai-backend/internal/auth/usecase"
	cardDelivery "howtouseai-backend/internal/card/delivery"
	cardRepo "howtouseai-backend/internal/card/repository"
	cardUsecasePkg "howtouseai-backend/internal/card/usecase"
	categoryDelivery "howtouseai-backend/internal/category/delivery"
	categoryRepo "howtouseai-backend/internal/category/repository"
	categoryUsecasePkg "howtouseai-backend/internal/category/usecase"
	likeDelivery "howtouseai-backend/internal/like/delivery"
	likeRepo "howtouseai-backend/internal/like/repository"
	likeUsecasePkg "howtouseai-backend/internal/like/usecase"
	"howtouseai-backend/pkg/config"
	"howtouseai-backend/pkg/storage"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type Handler struct {
	db              *gorm.DB
	config          *config.Config
	icons           *storage.IconStore
	authUsecase     authUsecase.AuthUsecase
	categoryHandler *categoryDelivery.CategoryHandler
	cardHandler     *cardDelivery.CardHandler
	likeHandler     *likeDelivery.LikeHandler
}

// NewHandler wires repositories, usecases and HTTP handlers.
func NewHandler(db *gorm.DB, cfg *config.Config, icons *storage.IconStore) *Handler {
	// Initialize repositories (dependency injection)
	categoryRepository := categoryRepo.NewGormCategoryRepository(db)
	cardRepository := cardRepo.NewGormCardRepository(db)
	likeRepository := likeRepo.NewGormCardLikeRepository(db)

	// Initialize use cases
	categoryUc := categoryUsecasePkg.NewCategoryUsecase(categoryRepository, icons)
	cardUc := cardUsecasePkg.NewCardUsecase(cardRepository, categoryRepository, likeRepository)
	likeUc := likeUsecasePkg.NewCardLikeUsecase(likeRepository, cardRepository)
	authUc := authUsecase.NewAuthUsecase(cfg.AdminJWTSecret)

	if !authUc.Enabled() {
		zap.L().Warn("ADMIN_JWT_SECRET not set, admin routes are open")
	}

	return &Handler{
		db:              db,
		config:          cfg,
		icons:           icons,
		authUsecase:     authUc,
		categoryHandler: categoryDelivery.NewCategoryHandler(categoryUc),
		cardHandler:     cardDelivery.NewCardHandler(cardUc),
		likeHandler:     likeDelivery.NewLikeHandler(likeUc),
	}
}

// Router builds the gin engine with middleware and routes.
func (h *Handler) Router() *gin.Engine {
	if h.config.GinMode != "" {
		gin.SetMode(h.config.GinMode)
	}

	r := gin.New()
	r.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(zap.L(), true))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h)
	return r
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
