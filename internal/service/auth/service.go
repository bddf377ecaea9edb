package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/rrservice/service-dashboard-go/internal/domain/auth"
	"github.com/rrservice/service-dashboard-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	username string
	password string
	jwt.Service
}

func NewAuthService(username, password string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		username: username,
		password: password,
		Service:  jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.username)) != 1 {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !a.passwordMatches(req.Password) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateAccessToken(a.username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// passwordMatches accepts either a bcrypt hash or a plain secret in
// configuration. Plain secrets are compared in constant time.
func (a *AuthServiceImpl) passwordMatches(candidate string) bool {
	if strings.HasPrefix(a.password, "$2a$") || strings.HasPrefix(a.password, "$2b$") || strings.HasPrefix(a.password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(a.password), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(a.password)) == 1
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.RevokeToken(token)
	return nil
}
