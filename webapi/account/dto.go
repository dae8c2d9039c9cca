package account

// CreateAccountRequest is the body of POST /accounts.
type CreateAccountRequest struct {
	Kind           string  `json:"kind" validate:"required,oneof=checking savings"`
	InitialBalance float64 `json:"initial_balance" validate:"gte=0"`
}

// UpdateBalanceRequest is the body of the debit and credit endpoints. The
// amount sign is checked by the ledger, not here, so the error taxonomy stays
// consistent between HTTP and direct callers.
type UpdateBalanceRequest struct {
	Amount float64 `json:"amount"`
}
