package auth

import (
	"context"
	"errors"
	"time"

	"groupmeet/config"
	"groupmeet/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login attempt; the
// reason is never distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

// AuthService authenticates the coordinator account. There is exactly one
// coordinator; members never log in.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// DefaultAuthService verifies against the configured bcrypt hash and keeps
// token hashes in the auth cache so issued tokens are revocable.
type DefaultAuthService struct {
	AuthCache *redis.Client
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (string, error) {
	cfg := config.AppConfig
	if cfg.CoordinatorEmail == "" || cfg.CoordinatorPasswordHash == "" {
		return "", errors.New("coordinator login is not configured")
	}
	if email != cfg.CoordinatorEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.CoordinatorPasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken("coordinator", email, tokenTTL)
	if err != nil {
		return "", err
	}
	if err := s.AuthCache.Set(ctx, utils.HashToken(token), "1", tokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *DefaultAuthService) Logout(ctx context.Context, token string) error {
	return s.AuthCache.Del(ctx, utils.HashToken(token)).Err()
}
