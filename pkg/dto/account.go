// Package dto holds data transfer objects decoupling the domain entities from
// the wire and from callers that must not mutate ledger state directly.
package dto

import "github.com/google/uuid"

// AccountRead is a read-optimized view of an account for API responses.
type AccountRead struct {
	ID      uuid.UUID `json:"id"`
	Kind    string    `json:"kind"`
	Balance float64   `json:"balance"`
}

// AccountCreate carries the inputs for opening a new account.
type AccountCreate struct {
	Kind           string
	InitialBalance float64
}
