package auth

import (
	"context"

	"github.com/evenshare/evenshare/internal/models"
)

// Authenticator defines the interface for credential verification backends.
// This abstraction allows swapping between auth methods (password, passkeys,
// OAuth, etc.) without changing the service layer.
type Authenticator interface {
	// Register creates the account with the given profile and credential.
	// The credential is hashed before it ever reaches storage.
	Register(ctx context.Context, user *models.User, credential string) (*models.User, error)

	// Authenticate verifies the credential for the account matching the
	// email or username and returns the user on success.
	Authenticate(ctx context.Context, emailOrUsername, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's
	// requirements (length, format, etc.).
	ValidateCredential(credential string) error
}
