// Package domain holds the account entity and the business rules governing
// balance mutation. The entity validates its own invariants; callers route all
// mutation through the repository so the rules cannot be bypassed.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the account category, fixed at creation.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
)

// ParseKind converts a wire string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindChecking, KindSavings:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountKind, s)
	}
}

// Account represents a bank account.
//
// Invariants:
//   - ID uniquely identifies the account and never changes.
//   - Kind never changes after creation.
//   - Balance is never negative; it is mutated only through Debit and Credit.
type Account struct {
	ID      uuid.UUID
	Kind    Kind
	Balance float64
}

// New constructs an Account with a freshly generated id. It rejects a negative
// initial balance and an unknown kind; a zero initial balance is valid.
func New(kind Kind, initialBalance float64) (*Account, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if initialBalance < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeInitialBalance, initialBalance)
	}
	return &Account{
		ID:      uuid.New(),
		Kind:    kind,
		Balance: initialBalance,
	}, nil
}

// Debit decreases the balance by amount. The amount must be positive and must
// not exceed the current balance; draining the balance to exactly zero is
// allowed. The comparison is strict (balance < amount) to match the ledger's
// documented semantics for float balances.
func (a *Account) Debit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit of %v", ErrAmountNotPositive, amount)
	}
	if a.Balance < amount {
		return fmt.Errorf("%w: balance is %v, attempted to debit %v",
			ErrInsufficientFunds, a.Balance, amount)
	}
	a.Balance -= amount
	return nil
}

// Credit increases the balance by amount. The amount must be positive; no
// upper bound is enforced.
func (a *Account) Credit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit of %v", ErrAmountNotPositive, amount)
	}
	a.Balance += amount
	return nil
}
