// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"strings"
	"time"
)

// Account is a dashboard login identity stored in admin_users.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Global field names for validation
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// NormalizeEmail trims and lowercases an address for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
