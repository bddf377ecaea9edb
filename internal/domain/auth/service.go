package auth

import "context"

// AuthService is the dashboard login gate: a credential check against the
// two configured secrets, issuing a session token on success.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
}
