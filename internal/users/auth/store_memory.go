// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golpohub/golpohub/internal/platform/apperr"
)

// MemoryAccountRepository is an in-process [AccountRepository] used by tests.
type MemoryAccountRepository struct {
	mu      sync.Mutex
	byEmail map[string]Account
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{byEmail: make(map[string]Account)}
}

func (repository *MemoryAccountRepository) FindByEmail(_ context.Context, email string) (*Account, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	account, ok := repository.byEmail[NormalizeEmail(email)]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	return &account, nil
}

func (repository *MemoryAccountRepository) Create(_ context.Context, account *Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	email := NormalizeEmail(account.Email)
	if _, taken := repository.byEmail[email]; taken {
		return apperr.Conflict(resource + " already exists")
	}

	account.Email = email
	account.CreatedAt = time.Now()
	repository.byEmail[email] = *account
	return nil
}

func (repository *MemoryAccountRepository) Promote(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for email, account := range repository.byEmail {
		if account.ID == id {
			account.IsAdmin = true
			repository.byEmail[email] = account
			return nil
		}
	}
	return apperr.NotFound(resource)
}

// # Revocation

// MemoryRevocationStore keeps revoked token IDs in process memory.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (store *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	for id, at := range store.expires {
		if !now.Before(at) {
			delete(store.expires, id)
		}
	}

	if ttl > 0 {
		store.expires[tokenID] = now.Add(ttl)
	}
	return nil
}

func (store *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	at, ok := store.expires[tokenID]
	return ok && store.now().Before(at), nil
}
