// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package auth implements the admin gate: sign-in, sign-out and session checks.

Architecture:

  - Service: Verifies credentials, issues HS256 session tokens and consults the
    revocation store on every check.
  - Repository: admin_users in Postgres, revoked token IDs in Redis (both with
    in-memory variants for tests and single-instance runs).
  - Gate: [Decide] collapses every non-admin outcome into one redirect.

Only admins may sign in. A wrong password, an unknown email and a valid
non-admin account all produce the same error.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golpohub/golpohub/internal/platform/apperr"
	"github.com/golpohub/golpohub/internal/platform/constants"
	"github.com/golpohub/golpohub/internal/platform/sec"
	"github.com/golpohub/golpohub/internal/platform/validate"
	"github.com/golpohub/golpohub/pkg/uuid"
)

const minPasswordLen = 8

// errInvalidCredentials is the single sign-in failure clients ever see.
var errInvalidCredentials = apperr.Unauthorized("Invalid email or password")

// Service implements the admin authentication use cases.
type Service struct {
	accounts AccountRepository
	revoked  RevocationStore
	tokens   *sec.TokenService
	logger   *slog.Logger
	ttl      time.Duration

	// dummyHash is compared against when the email is unknown, so both
	// failure paths spend one bcrypt comparison.
	dummyHash func() string
}

func NewService(accounts AccountRepository, revoked RevocationStore, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		revoked:  revoked,
		tokens:   tokens,
		logger:   logger,
		ttl:      constants.SessionTTL,
		dummyHash: sync.OnceValue(func() string {
			hash, _ := sec.HashPassword("golpohub-placeholder-password")
			return hash
		}),
	}
}

// Session is an established admin session.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Account   *Account  `json:"account"`
}

/*
Login verifies admin credentials and issues a session token.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Session: Token and account
  - error: VALIDATION_ERROR for empty input, UNAUTHORIZED for every other rejection
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	email = NormalizeEmail(email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByEmail(context, email)
	if err != nil {
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		sec.CheckPasswordHash(password, service.dummyHash())
		service.logger.Info("admin_login_rejected", slog.String("reason", "unknown_email"))
		return nil, errInvalidCredentials
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.logger.Info("admin_login_rejected",
			slog.String("reason", "bad_password"),
			slog.String("account_id", account.ID),
		)
		return nil, errInvalidCredentials
	}

	if !account.IsAdmin {
		service.logger.Warn("admin_login_rejected",
			slog.String("reason", "not_admin"),
			slog.String("account_id", account.ID),
		)
		return nil, errInvalidCredentials
	}

	token, claims, err := service.tokens.IssueToken(account.ID, account.Email, sec.RoleFor(account.IsAdmin), service.ttl)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("admin_logged_in", slog.String("account_id", account.ID))
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		Account:   account,
	}, nil
}

/*
VerifySession validates a raw token and checks it has not been logged out.

Returns:
  - *sec.SessionClaims: The verified claims
  - error: UNAUTHORIZED for invalid, expired or revoked tokens; storage errors otherwise
*/
func (service *Service) VerifySession(context context.Context, token string) (*sec.SessionClaims, error) {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session").WithCause(err)
	}

	revoked, err := service.revoked.IsRevoked(context, claims.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if revoked {
		return nil, apperr.Unauthorized("Session has ended")
	}

	return claims, nil
}

// Logout revokes token for the rest of its lifetime. Invalid tokens are ignored.
func (service *Service) Logout(context context.Context, token string) error {
	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := service.revoked.Revoke(context, claims.ID, remaining); err != nil {
		return apperr.Internal(err)
	}

	service.logger.Info("admin_logged_out", slog.String("account_id", claims.AccountID))
	return nil
}

/*
EnsureAdmin makes sure an admin account exists for email.

Description: A missing account is created with the admin flag; an existing
non-admin account is promoted. An existing password is never overwritten.

Parameters:
  - context: context.Context
  - email: string
  - password: string (used only when creating)

Returns:
  - error: VALIDATION_ERROR or storage errors
*/
func (service *Service) EnsureAdmin(context context.Context, email, password string) error {
	email = NormalizeEmail(email)

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, email).
		Email(FieldEmail, email).
		MinLen(FieldPassword, password, minPasswordLen)
	if err := validator.Err(); err != nil {
		return err
	}

	existing, err := service.accounts.FindByEmail(context, email)
	switch {
	case err == nil && existing.IsAdmin:
		return nil
	case err == nil:
		if err := service.accounts.Promote(context, existing.ID); err != nil {
			return err
		}
		service.logger.Warn("admin_account_promoted", slog.String("account_id", existing.ID))
		return nil
	case !apperr.IsCode(err, apperr.CodeNotFound):
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return fmt.Errorf("auth: ensure admin: %w", err)
	}

	account := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := service.accounts.Create(context, account); err != nil {
		return err
	}

	service.logger.Info("admin_account_created", slog.String("account_id", account.ID))
	return nil
}
