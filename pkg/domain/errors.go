package domain

import "errors"

// Business errors surfaced by ledger operations. Handlers map these to wire
// error codes with errors.Is; none of them is transient.
var (
	// ErrAccountNotFound is returned when the referenced account id is unknown.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountNotPositive is returned when a debit or credit amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrNegativeInitialBalance is returned when an account is created with a negative balance.
	ErrNegativeInitialBalance = errors.New("initial balance must be non-negative")

	// ErrInvalidAccountKind is returned when the account kind is neither checking nor savings.
	ErrInvalidAccountKind = errors.New("invalid account kind")
)
