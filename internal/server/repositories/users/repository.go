package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pharmadmin/internal/server/models"
)

// Repository is the credential store contract. The store, not the service
// layer, enforces the unique-email constraint and the single-use reset-token
// invariant (via atomic conditional updates).
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error

	// SetResetToken stores the digest and expiry of a pending password reset,
	// replacing any earlier pending reset for the user.
	SetResetToken(ctx context.Context, id string, tokenHash string, expiresAt time.Time) error

	// ConsumeResetToken atomically matches an unexpired reset-token digest,
	// overwrites the password hash, and clears both reset fields. It returns
	// the affected user's id, or common.ErrorNotFound if no row matched
	// (unknown digest or expired token alike).
	ConsumeResetToken(ctx context.Context, tokenHash string, now time.Time, newPasswordHash string) (string, error)
}
