package usecase

import (
	"time"

	"howtouseai-backend/internal/auth/domain"
)

// AuthUsecase issues and validates admin bearer tokens
type AuthUsecase interface {
	// Enabled reports whether a signing secret is configured
	Enabled() bool

	IssueAdminToken(subject string, ttl time.Duration) (string, error)

	ValidateToken(tokenString string) (*domain.Admin, error)
}
