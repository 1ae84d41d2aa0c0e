package domain

import "howtouseai-backend/pkg/apperror"

// RoleAdmin is the only role the API issues tokens for.
const RoleAdmin = "admin"

// Admin is the identity carried by a validated admin token.
type Admin struct {
	Subject string
	Role    string
}

var (
	ErrMissingToken = apperror.Unauthenticated(
		"UNAUTHENTICATED", "authorization header required", "Authentication required.", "")
	ErrInvalidToken = apperror.Unauthenticated(
		"UNAUTHENTICATED", "invalid or expired token", "Authentication required.", "")
	ErrMissingSecret = apperror.Internal(
		"INTERNAL_SERVER_ERROR", "admin token secret is not configured", "Token could not be issued.", "")
)
