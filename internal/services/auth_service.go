package services

import (
	"context"
	"time"

	"bmaBack/internal/models"
	"bmaBack/utils"
)

// IdentityProvider checks a credential pair and returns the matching user.
// Implementations return models.ErrInvalidCredentials on a bad pair.
type IdentityProvider interface {
	Login(ctx context.Context, email, password string) (models.User, error)
}

type AuthService struct {
	Identity IdentityProvider
	Tokens   *utils.Manager
	TokenTTL time.Duration
}

// VerifyLogin validates credentials and issues a signed agent token.
func (s *AuthService) VerifyLogin(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.Identity.Login(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.Tokens.NewJWT(user.Email, user.RoleID, s.TokenTTL)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
