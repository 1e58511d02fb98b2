package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

func addr(b byte) domain.Identity {
	var id domain.Identity
	id[0] = b
	return id
}

func TestExecuteCommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	require.NoError(t, repo.CreateAccount(ctx, addr(1), addr(9), 4))

	err := repo.Execute(ctx, []domain.Identity{addr(1), addr(2)}, func(accounts []*domain.Account) error {
		require.Len(t, accounts, 2)
		assert.Equal(t, addr(9), accounts[0].Owner)
		assert.Equal(t, make([]byte, 4), accounts[0].Data)
		assert.True(t, accounts[1].Owner.IsZero())
		accounts[0].Data[0] = 7
		accounts[0].IsSigner = true
		return nil
	})
	require.NoError(t, err)

	got, err := repo.GetAccount(ctx, addr(1))
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 0, 0, 0}, got.Data)
	assert.False(t, got.IsSigner)

	// Untouched placeholder accounts are not materialized.
	got, err = repo.GetAccount(ctx, addr(2))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestExecuteDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	require.NoError(t, repo.CreateAccount(ctx, addr(1), addr(9), 2))

	boom := errors.New("boom")
	err := repo.Execute(ctx, []domain.Identity{addr(1)}, func(accounts []*domain.Account) error {
		accounts[0].Data[0] = 1
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.GetAccount(ctx, addr(1))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, got.Data)
}

func TestExecuteDuplicateAddressesShareAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	err := repo.Execute(ctx, []domain.Identity{addr(3), addr(3)}, func(accounts []*domain.Account) error {
		assert.Same(t, accounts[0], accounts[1])
		return nil
	})
	require.NoError(t, err)
}

func TestExecuteCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewLedgerRepository().Execute(ctx, []domain.Identity{addr(1)}, func([]*domain.Account) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestExecuteSerializesConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	require.NoError(t, repo.CreateAccount(ctx, addr(1), addr(9), 1))
	require.NoError(t, repo.CreateAccount(ctx, addr(2), addr(9), 1))

	var wg sync.WaitGroup
	count := 100
	wg.Add(count)
	for i := 0; i < count; i++ {
		// Alternate the order so lock ordering is exercised.
		keys := []domain.Identity{addr(1), addr(2)}
		if i%2 == 1 {
			keys[0], keys[1] = keys[1], keys[0]
		}
		go func() {
			defer wg.Done()
			_ = repo.Execute(ctx, keys, func(accounts []*domain.Account) error {
				for _, a := range accounts {
					a.Data[0]++
				}
				return nil
			})
		}()
	}
	wg.Wait()

	for _, k := range []domain.Identity{addr(1), addr(2)} {
		got, err := repo.GetAccount(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, byte(count), got.Data[0])
	}
}

func TestCreateAccountExists(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	require.NoError(t, repo.CreateAccount(ctx, addr(1), addr(9), 1))
	require.ErrorIs(t, repo.CreateAccount(ctx, addr(1), addr(9), 1), port.ErrAccountExists)
}

func TestExecutionsAndStats(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	code := domain.CodeNotOwner
	for i, e := range []domain.Execution{
		{CampaignID: 1, Operation: "deposit_rewards", Amount: 500, Status: domain.ExecutionApplied},
		{CampaignID: 1, Operation: "claim_reward", Amount: 200, Nonce: 1, Status: domain.ExecutionApplied},
		{CampaignID: 1, Operation: "deposit_rewards", Amount: 1, Status: domain.ExecutionRejected, ErrorCode: &code},
		{CampaignID: 2, Operation: "deposit_rewards", Amount: 70, Status: domain.ExecutionApplied},
	} {
		e.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.InsertExecution(ctx, &e))
	}

	list, err := repo.ListExecutions(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.ExecutionRejected, list[0].Status)
	assert.Equal(t, "claim_reward", list[1].Operation)

	stats, err := repo.GetStats(ctx, port.StatsReq{From: base, To: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Applied)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, "570", stats.Deposited.String())
	assert.Equal(t, "200", stats.Claimed.String())

	one := uint64(1)
	stats, err = repo.GetStats(ctx, port.StatsReq{From: base, To: base.Add(time.Minute), CampaignID: &one})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Applied)
	assert.Equal(t, int64(0), stats.Rejected)
}

func TestExecutePanicDiscardsAndUnlocks(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository()
	require.NoError(t, repo.CreateAccount(ctx, addr(1), addr(9), 1))

	require.Panics(t, func() {
		_ = repo.Execute(ctx, []domain.Identity{addr(1)}, func(accounts []*domain.Account) error {
			accounts[0].Data[0] = 1
			panic("boom")
		})
	})

	err := repo.Execute(ctx, []domain.Identity{addr(1)}, func(accounts []*domain.Account) error {
		assert.Equal(t, []byte{0}, accounts[0].Data)
		return nil
	})
	require.NoError(t, err)
}
