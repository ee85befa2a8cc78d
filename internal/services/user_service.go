package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopstack/products-api/internal/apperr"
	"github.com/shopstack/products-api/internal/auth"
	"github.com/shopstack/products-api/internal/models"
	repo "github.com/shopstack/products-api/internal/repository"
)

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

// Register validates the signup payload, checks username/email uniqueness
// with a single lookup, hashes the password and persists the user. The raw
// password is never stored.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	req := models.SignupRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}

	if _, err := s.r.FindByUsernameOrEmail(ctx, req.Username, req.Email); err == nil {
		return models.User{}, apperr.ErrDuplicate
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	return s.r.Insert(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
}

// Authenticate verifies the credentials. An unknown username and a failed
// hash comparison return the identical apperr.ErrInvalidCredentials so a
// caller cannot probe which usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.r.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.User{}, apperr.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, apperr.ErrInvalidCredentials
	}
	return u, nil
}
