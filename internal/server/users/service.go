// Package users holds the credential store and the authentication service:
// registration, login, and session-token issue/verify.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
	"github.com/dmitrijs2005/fileexplorer/internal/server/auth"
	"github.com/dmitrijs2005/fileexplorer/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the fixed cost factor of the stored hashes.
const bcryptCost = 10

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt hash of password. It does not
// log the user in. A taken username yields common.ErrConflict.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a signed session token.
// Unknown usernames and wrong passwords both yield common.ErrUnauthorized
// so the response cannot be used to enumerate users.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthorized
		}
		return "", common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// VerifyToken checks the token signature and expiry and returns the
// username claim.
func (s *Service) VerifyToken(token string) (string, error) {
	return auth.GetUsernameFromToken(token, s.jwtSecret)
}

// TokenValidity reports the configured session token lifetime, used by the
// HTTP layer to set the cookie max age.
func (s *Service) TokenValidity() time.Duration {
	return s.tokenValidityDuration
}
