// Package memory provides the in-memory account store backing the ledger.
// State lives for the lifetime of the process; accounts are never removed.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kongbank/accounts/pkg/domain"
	"github.com/kongbank/accounts/pkg/repository"
)

// AccountRepository keeps accounts in a map keyed by id plus an insertion
// order slice so List is deterministic. An RWMutex serializes mutations so
// each operation reads and writes one record as one indivisible step even
// under concurrent requests.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
	order    []uuid.UUID
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

// New creates an empty account store.
func New() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create implements repository.AccountRepository.
func (r *AccountRepository) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[a.ID]; exists {
		return fmt.Errorf("account %s already exists", a.ID)
	}
	stored := *a
	r.accounts[a.ID] = &stored
	r.order = append(r.order, a.ID)
	return nil
}

// Get implements repository.AccountRepository.
func (r *AccountRepository) Get(_ context.Context, id uuid.UUID) (*domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

// List implements repository.AccountRepository.
func (r *AccountRepository) List(_ context.Context) []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.accounts[id]
		out = append(out, &cp)
	}
	return out
}

// Update implements repository.AccountRepository. The mutate closure runs
// while the write lock is held, so the read-check-write of a debit or credit
// is one indivisible step per record.
func (r *AccountRepository) Update(_ context.Context, id uuid.UUID, mutate func(*domain.Account) error) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if err := mutate(a); err != nil {
		return nil, err
	}
	cp := *a
	return &cp, nil
}
