// Package account implements the account ledger: creating accounts, listing
// and fetching them, and adjusting balances via credit and debit.
//
// Validation ordering is fixed and documented here: on both Debit and Credit
// the amount-sign check runs before the existence lookup, so when the amount
// is invalid and the account is unknown at the same time the caller sees
// ErrAmountNotPositive, not ErrAccountNotFound.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kongbank/accounts/pkg/domain"
	"github.com/kongbank/accounts/pkg/dto"
	"github.com/kongbank/accounts/pkg/repository"
)

// Service provides the ledger operations over an AccountRepository.
type Service struct {
	repo   repository.AccountRepository
	logger *slog.Logger
}

// NewService creates a Service with the provided store and logger.
func NewService(repo repository.AccountRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all accounts in insertion order. It never fails; an empty
// ledger yields an empty slice.
func (s *Service) List(ctx context.Context) []dto.AccountRead {
	accounts := s.repo.List(ctx)
	out := make([]dto.AccountRead, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toRead(a))
	}
	return out
}

// Create opens a new account of the given kind with the given initial
// balance and returns it. A negative initial balance or an unknown kind is
// rejected before the registry is touched.
func (s *Service) Create(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error) {
	kind, err := domain.ParseKind(create.Kind)
	if err != nil {
		return nil, err
	}
	a, err := domain.New(kind, create.InitialBalance)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}
	s.logger.Info("account created", "account_id", a.ID, "kind", a.Kind, "balance", a.Balance)
	r := toRead(a)
	return &r, nil
}

// Get fetches one account by id, returning ErrAccountNotFound for an unknown
// id. Read-only.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	a, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
	}
	r := toRead(a)
	return &r, nil
}

// Debit decreases the account's balance by amount and returns the updated
// account. Checks run in order: amount sign, account existence, sufficient
// funds. On any failure the balance is left unchanged.
func (s *Service) Debit(ctx context.Context, id uuid.UUID, amount float64) (*dto.AccountRead, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit of %v", domain.ErrAmountNotPositive, amount)
	}
	a, err := s.repo.Update(ctx, id, func(acc *domain.Account) error {
		return acc.Debit(amount)
	})
	if err != nil {
		s.logger.Warn("debit rejected", "account_id", id, "amount", amount, "error", err)
		return nil, err
	}
	s.logger.Info("account debited", "account_id", id, "amount", amount, "balance", a.Balance)
	r := toRead(a)
	return &r, nil
}

// Credit increases the account's balance by amount and returns the updated
// account. Checks run in order: amount sign, account existence. No upper
// bound is enforced on the balance.
func (s *Service) Credit(ctx context.Context, id uuid.UUID, amount float64) (*dto.AccountRead, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit of %v", domain.ErrAmountNotPositive, amount)
	}
	a, err := s.repo.Update(ctx, id, func(acc *domain.Account) error {
		return acc.Credit(amount)
	})
	if err != nil {
		s.logger.Warn("credit rejected", "account_id", id, "amount", amount, "error", err)
		return nil, err
	}
	s.logger.Info("account credited", "account_id", id, "amount", amount, "balance", a.Balance)
	r := toRead(a)
	return &r, nil
}

func toRead(a *domain.Account) dto.AccountRead {
	return dto.AccountRead{
		ID:      a.ID,
		Kind:    string(a.Kind),
		Balance: a.Balance,
	}
}
