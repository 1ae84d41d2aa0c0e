package usecase

import (
	"fmt"
	"time"

	"howtouseai-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	secret []byte
}

// NewAuthUsecase creates a new instance of authUsecase. An empty secret
// disables token checks.
func NewAuthUsecase(secret string) AuthUsecase {
	return &authUsecase{secret: []byte(secret)}
}

func (u *authUsecase) Enabled() bool {
	return len(u.secret) > 0
}

func (u *authUsecase) IssueAdminToken(subject string, ttl time.Duration) (string, error) {
	if !u.Enabled() {
		return "", domain.ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": domain.RoleAdmin,
		"jti":  uuid.New().String(),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}

func (u *authUsecase) ValidateToken(tokenString string) (*domain.Admin, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: role %q", domain.ErrInvalidToken, role)
	}

	subject, _ := claims.GetSubject()
	return &domain.Admin{Subject: subject, Role: role}, nil
}
