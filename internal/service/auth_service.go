// Package service implements the application operations on top of the
// authenticator, the access gate, the settlement engine and a storage
// backend. Services classify failures into the shared error taxonomy; the
// HTTP layer only translates, never decides.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evenshare/evenshare/internal/auth"
	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
)

// ErrInvalidInput marks malformed or missing request fields. The caller must
// correct the input; these are never retried.
var ErrInvalidInput = errors.New("invalid input")

// AuthService handles registration, login and profile operations.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.TokenManager
	store         storage.Store
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, tokens *auth.TokenManager, store storage.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		store:         store,
		logger:        logger,
	}
}

// RegisterParams carries the registration request fields. Phone and DOB are
// optional.
type RegisterParams struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	Phone     string
	DOB       string
}

// Register creates a new account and issues its first token.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*models.User, string, error) {
	s.logger.Info("register request", "email", params.Email, "username", params.Username)

	for field, value := range map[string]string{
		"firstName": params.FirstName,
		"lastName":  params.LastName,
		"username":  params.Username,
		"email":     params.Email,
		"password":  params.Password,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
		}
	}

	user := &models.User{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Username:  params.Username,
		Email:     params.Email,
		Phone:     params.Phone,
		DOB:       params.DOB,
	}

	user, err := s.authenticator.Register(ctx, user, params.Password)
	if err != nil {
		s.logger.Warn("registration failed", "email", params.Email, "error", err)
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, "", err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// Login authenticates by email or username and issues a token.
func (s *AuthService) Login(ctx context.Context, emailOrUsername, password string) (*models.User, string, error) {
	if emailOrUsername == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email/username and password required", ErrInvalidInput)
	}

	user, err := s.authenticator.Authenticate(ctx, emailOrUsername, password)
	if err != nil {
		s.logger.Warn("login failed", "key", emailOrUsername)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Profile returns the requester's own account record.
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

// UpdateProfile applies a partial profile update to the requester's own
// account. Absent fields are left unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, patch models.UserPatch) (*models.User, error) {
	user, err := s.store.UpdateUserProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", "user_id", userID)
	return user, nil
}
