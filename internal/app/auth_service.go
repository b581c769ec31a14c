// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"

	"weighttrack/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrMissingFields indicates a registration payload without username or password.
	ErrMissingFields = errors.New("username and password are required")
)

// AuthService handles registration, login and token authentication.
type AuthService struct {
	users  domain.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with a fresh public identifier. The username
// must be unused; the uniqueness check is enforced by the repository so
// concurrent registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, username, uuid.NewString(), hash)
}

// dummyDigest is a bcrypt digest of an unguessable throwaway value. It is
// compared on the unknown-user path so login timing does not reveal
// whether a username exists.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login verifies the credentials and issues a bearer token carrying the
// user's public identifier.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		checkPassword(password, dummyDigest)
		return "", ErrInvalidCredentials
	}

	if !checkPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.PublicID)
}

// Authenticate resolves a bearer token to its user. Token failures keep
// their distinct kinds; a token naming an unknown user is invalid.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	publicID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrTokenInvalid
	}
	return user, nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword reports whether plain matches the stored digest. Malformed
// digests simply fail the comparison.
func checkPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
