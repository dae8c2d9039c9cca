// Package repository defines the persistence seam for the account ledger.
// The ledger service depends on this interface, not on a concrete store, so
// the registry is an explicitly constructed instance wired at startup rather
// than a process-wide global.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kongbank/accounts/pkg/domain"
)

// AccountRepository owns all account records. Callers receive copies for
// reading; mutation happens only inside Update, which the implementation runs
// atomically per record so a check-then-set on the balance cannot lose an
// update under concurrent requests.
type AccountRepository interface {
	// Create inserts a new account. Fails only on an id collision, which the
	// caller treats as an internal error.
	Create(ctx context.Context, a *domain.Account) error

	// Get returns a copy of the account, or ok=false when the id is unknown.
	// Absence is not an error at this layer.
	Get(ctx context.Context, id uuid.UUID) (a *domain.Account, ok bool)

	// List returns copies of all accounts in insertion order. It never fails;
	// an empty registry yields an empty slice.
	List(ctx context.Context) []*domain.Account

	// Update applies mutate to the stored record under the store's write lock
	// and returns a copy of the updated account. When mutate returns an error
	// the record is left untouched. Returns domain.ErrAccountNotFound for an
	// unknown id.
	Update(ctx context.Context, id uuid.UUID, mutate func(*domain.Account) error) (*domain.Account, error)
}
