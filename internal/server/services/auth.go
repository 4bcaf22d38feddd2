// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, the password-reset flow,
// password changes, and profile reads.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pharmadmin/internal/common"
	"github.com/dmitrijs2005/pharmadmin/internal/dbx"
	"github.com/dmitrijs2005/pharmadmin/internal/server/auth"
	"github.com/dmitrijs2005/pharmadmin/internal/server/config"
	"github.com/dmitrijs2005/pharmadmin/internal/server/hashing"
	"github.com/dmitrijs2005/pharmadmin/internal/server/mail"
	"github.com/dmitrijs2005/pharmadmin/internal/server/models"
	"github.com/dmitrijs2005/pharmadmin/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// UserView is the subset of a user record safe to return to clients.
// It never includes the password hash or reset-token state.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult bundles a session token with the public view of its user.
type AuthResult struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// AuthService provides the credential-lifecycle operations:
//   - Register / Login: create users and mint session tokens
//   - ForgotPassword / ResetPassword: the single-use reset-token flow
//   - ChangePassword / GetProfile: authenticated self-service
type AuthService struct {
	db                           dbx.DB
	repomanager                  repomanager.RepositoryManager
	hasher                       hashing.Hasher
	mailer                       mail.Mailer
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
	resetTokenValidityDuration   time.Duration
	publicBaseURL                string
}

// NewAuthService constructs an AuthService from its injected collaborators
// and server config.
func NewAuthService(db dbx.DB, m repomanager.RepositoryManager, h hashing.Hasher, mailer mail.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		hasher:                       h,
		mailer:                       mailer,
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
		resetTokenValidityDuration:   cfg.ResetTokenValidityDuration,
		publicBaseURL:                cfg.PublicBaseURL,
	}
}

// Register creates a new user and returns a session token bound to it.
// A missing role defaults to editor. Duplicate emails yield ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, common.ErrValidation
	}
	switch role {
	case "":
		role = models.RoleEditor
	case models.RoleEditor, models.RoleAdmin:
	default:
		return nil, common.ErrValidation
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	repo := s.repomanager.Users(s.db)
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.authResult(created)
}

// Login verifies the email/password pair and returns a session token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.authResult(user)
}

// ForgotPassword starts the reset flow: a fresh high-entropy token is
// generated, its digest stored with an expiry, and the plaintext mailed to
// the user as a link. A previously pending token is overwritten. If the mail
// cannot be sent, ErrNotificationFailure is returned; the stored reset state
// stays in place so a retry simply issues a new token.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	plaintext, digest, err := auth.NewResetToken()
	if err != nil {
		return common.ErrorInternal
	}

	expiresAt := time.Now().Add(s.resetTokenValidityDuration)
	if err := repo.SetResetToken(ctx, user.ID, digest, expiresAt); err != nil {
		return common.ErrorInternal
	}

	resetURL := s.resetURL(plaintext)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, resetURL); err != nil {
		return fmt.Errorf("%w: %w", common.ErrNotificationFailure, err)
	}

	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// store clears the token atomically with the password update, so a token can
// be used at most once; unknown and expired tokens fail identically with
// ErrInvalidResetToken.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return common.ErrValidation
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	digest := auth.HashResetToken(token)
	if _, err := repo.ConsumeResetToken(ctx, digest, time.Now(), passwordHash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidResetToken
		}
		return common.ErrorInternal
	}

	return nil
}

// ChangePassword verifies the caller's current password and overwrites the
// stored hash with one computed from the new password. The read and the
// write run in one transaction so the verified hash is the one replaced.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return common.ErrValidation
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return common.ErrorInternal
		}

		if !s.hasher.Verify(currentPassword, user.PasswordHash) {
			return common.ErrIncorrectPassword
		}

		passwordHash, err := s.hasher.Hash(newPassword)
		if err != nil {
			return common.ErrorInternal
		}

		if err := repo.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return common.ErrorInternal
		}

		return nil
	})
}

// GetProfile returns the public view of the user identified by a verified
// session token.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*UserView, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return publicView(user), nil
}

// --- helpers below ---

func (s *AuthService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateSessionToken(user.ID, user.Email, user.Role, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: publicView(user)}, nil
}

func (s *AuthService) resetURL(token string) string {
	return strings.TrimRight(s.publicBaseURL, "/") + "/reset-password/" + token
}

func publicView(user *models.User) *UserView {
	return &UserView{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
