package delivery

import (
	"strings"

	"howtouseai-backend/internal/auth/domain"
	"howtouseai-backend/internal/auth/usecase"
	"howtouseai-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminMiddleware requires a valid admin bearer token. It lets every request
// through when no secret is configured.
func AdminMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authUsecase.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, domain.ErrMissingToken)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, domain.ErrInvalidToken)
			c.Abort()
			return
		}

		admin, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		zap.L().Debug("admin authenticated", zap.String("subject", admin.Subject))
		c.Set("admin", admin)
		c.Next()
	}
}
