package jwt

import (
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and revokes the dashboard session tokens. The dashboard
// has a single configured operator account, so claims carry only the
// username and a token id for revocation.
type Service interface {
	GenerateAccessToken(username string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(username string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"username": username,
		"jti":      uuid.NewString(),
		"type":     "access",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken records the token until its natural expiry would have
// passed anyway; the map is pruned on each lookup.
func (j *JWTService) RevokeToken(token string) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		expDuration = 24 * time.Hour
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Add(expDuration).Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now().Unix()
	for t, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, t)
		}
	}

	_, revoked := j.revokedTokens[token]
	return revoked
}
