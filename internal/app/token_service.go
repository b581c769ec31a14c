package app

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMissing indicates that no token was supplied.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired indicates a well-formed token past its expiration.
	ErrTokenExpired = errors.New("token expired")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	PublicID string `json:"public_id"`
}

// TokenService issues and verifies signed bearer tokens carrying a user's
// public identifier. Tokens are HS256 JWTs; the signing secret is loaded
// once at startup and passed in here.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret. Issued
// tokens expire after ttl.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding publicID.
func (s *TokenService) Issue(publicID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		PublicID: publicID,
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiration and returns the embedded public
// identifier. Failures are reported as ErrTokenMissing, ErrTokenExpired or
// ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.PublicID == "" {
		return "", ErrTokenInvalid
	}
	return claims.PublicID, nil
}
