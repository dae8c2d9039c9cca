package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kongbank/accounts/infra/repository/memory"
	"github.com/kongbank/accounts/pkg/domain"
)

func newAccount(t *testing.T, kind domain.Kind, balance float64) *domain.Account {
	t.Helper()
	a, err := domain.New(kind, balance)
	require.NoError(t, err)
	return a
}

func TestCreateAndGet(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindChecking, 100)
	require.NoError(t, repo.Create(ctx, a))

	got, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, domain.KindChecking, got.Kind)
	assert.InDelta(t, 100.0, got.Balance, 0)
}

func TestCreate_DuplicateID(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindChecking, 1)
	require.NoError(t, repo.Create(ctx, a))
	assert.Error(t, repo.Create(ctx, a))
}

func TestGet_Unknown(t *testing.T) {
	repo := memory.New()

	got, ok := repo.Get(context.Background(), uuid.New())
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestGet_ReturnsCopy(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindSavings, 50)
	require.NoError(t, repo.Create(ctx, a))

	got, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	got.Balance = 9999

	again, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	assert.InDelta(t, 50.0, again.Balance, 0)
}

func TestList_InsertionOrder(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	assert.Empty(t, repo.List(ctx))

	first := newAccount(t, domain.KindChecking, 1)
	second := newAccount(t, domain.KindSavings, 2)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	all := repo.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestUpdate(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindChecking, 100)
	require.NoError(t, repo.Create(ctx, a))

	updated, err := repo.Update(ctx, a.ID, func(acc *domain.Account) error {
		return acc.Debit(30)
	})
	require.NoError(t, err)
	assert.InDelta(t, 70.0, updated.Balance, 0)

	got, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	assert.InDelta(t, 70.0, got.Balance, 0)
}

func TestUpdate_Unknown(t *testing.T) {
	repo := memory.New()

	_, err := repo.Update(context.Background(), uuid.New(), func(*domain.Account) error {
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdate_MutateErrorLeavesRecordUntouched(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindSavings, 10)
	require.NoError(t, repo.Create(ctx, a))

	_, err := repo.Update(ctx, a.ID, func(acc *domain.Account) error {
		return acc.Debit(100)
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	got, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	assert.InDelta(t, 10.0, got.Balance, 0)
}

func TestUpdate_ConcurrentCredits(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := newAccount(t, domain.KindChecking, 0)
	require.NoError(t, repo.Create(ctx, a))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, a.ID, func(acc *domain.Account) error {
				return acc.Credit(1)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, ok := repo.Get(ctx, a.ID)
	require.True(t, ok)
	assert.InDelta(t, float64(workers), got.Balance, 0)
}
