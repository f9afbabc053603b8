package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/evenshare/evenshare/internal/models"
	"github.com/evenshare/evenshare/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email/username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrUserExists         = errors.New("email or username already registered")
)

// UserStorage is the slice of the store the authenticator needs. Keeping it
// narrow lets the authenticator stay independent of the storage backend.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmailOrUsername(ctx context.Context, key string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using
// bcrypt. The same one-way hash verification is used on both the register
// and login paths.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: storage}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register hashes the credential and creates the account. The email and
// username must both be unused.
func (a *PasswordAuthenticator) Register(ctx context.Context, user *models.User, credential string) (*models.User, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	for _, key := range []string{user.Email, user.Username} {
		if existing, err := a.storage.FindUserByEmailOrUsername(ctx, key); err == nil && existing != nil {
			return nil, ErrUserExists
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := a.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the password against the stored hash, returning the
// user if valid. Lookup failures and hash mismatches are indistinguishable
// to the caller.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, emailOrUsername, credential string) (*models.User, error) {
	user, err := a.storage.FindUserByEmailOrUsername(ctx, emailOrUsername)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
