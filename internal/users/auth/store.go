// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"context"
	"time"
)

// AccountRepository persists dashboard accounts.
type AccountRepository interface {
	// FindByEmail returns NOT_FOUND when no account uses email.
	FindByEmail(context context.Context, email string) (*Account, error)
	Create(context context.Context, account *Account) error
	// Promote sets the admin flag on an existing account.
	Promote(context context.Context, id string) error
}

// RevocationStore remembers logged-out session IDs until their natural expiry.
type RevocationStore interface {
	Revoke(context context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
