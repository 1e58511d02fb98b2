// Package memory is an in-process LedgerRepository. Execute takes a mutex
// per address, stages the request's writes on copies of the stored
// accounts and commits them only when the request succeeds.
package memory

import (
	"bytes"
	"context"
	"math/big"
	"slices"
	"sync"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

// LedgerRepository implements port.LedgerRepository in memory.
type LedgerRepository struct {
	mu         sync.Mutex
	locks      map[domain.Identity]*sync.Mutex
	accounts   map[domain.Identity]*domain.Account
	executions []domain.Execution
}

// NewLedgerRepository returns an empty store.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		locks:    make(map[domain.Identity]*sync.Mutex),
		accounts: make(map[domain.Identity]*domain.Account),
	}
}

// Execute implements port.LedgerRepository.
func (r *LedgerRepository) Execute(ctx context.Context, addresses []domain.Identity, fn func([]*domain.Account) error) error {
	keys := uniqueSorted(addresses)
	unlock := r.lock(keys)
	defer unlock()
	if err := ctx.Err(); err != nil {
		return err
	}

	state := newExecutorState(r.load(keys))
	if err := fn(state.accounts(addresses)); err != nil {
		return err
	}
	r.commit(state.updated())
	return nil
}

// lock acquires the per-address mutexes in key order.
func (r *LedgerRepository) lock(keys []domain.Identity) func() {
	r.mu.Lock()
	held := make([]*sync.Mutex, len(keys))
	for i, k := range keys {
		m, ok := r.locks[k]
		if !ok {
			m = &sync.Mutex{}
			r.locks[k] = m
		}
		held[i] = m
	}
	r.mu.Unlock()

	for _, m := range held {
		m.Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (r *LedgerRepository) load(keys []domain.Identity) map[domain.Identity]*domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[domain.Identity]*domain.Account, len(keys))
	for _, k := range keys {
		if a, ok := r.accounts[k]; ok {
			out[k] = a.Clone()
		} else {
			out[k] = &domain.Account{Address: k}
		}
	}
	return out
}

func (r *LedgerRepository) commit(updated []*domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range updated {
		stored := a.Clone()
		stored.IsSigner = false
		r.accounts[a.Address] = stored
	}
}

// CreateAccount implements port.LedgerRepository.
func (r *LedgerRepository) CreateAccount(_ context.Context, address, owner domain.Identity, space int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[address]; ok {
		return port.ErrAccountExists
	}
	r.accounts[address] = &domain.Account{Address: address, Owner: owner, Data: make([]byte, space)}
	return nil
}

// GetAccount implements port.LedgerRepository.
func (r *LedgerRepository) GetAccount(_ context.Context, address domain.Identity) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[address]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

// InsertExecution implements port.LedgerRepository.
func (r *LedgerRepository) InsertExecution(_ context.Context, exec *domain.Execution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executions = append(r.executions, *exec)
	return nil
}

// ListExecutions implements port.LedgerRepository.
func (r *LedgerRepository) ListExecutions(_ context.Context, campaignID uint64, limit int) ([]domain.Execution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Execution
	for i := len(r.executions) - 1; i >= 0 && len(out) < limit; i-- {
		if e := r.executions[i]; e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetStats implements port.LedgerRepository.
func (r *LedgerRepository) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	resp := &port.StatsResp{Deposited: new(big.Int), Claimed: new(big.Int)}
	for _, e := range r.executions {
		if e.CreatedAt.Before(req.From) || e.CreatedAt.After(req.To) {
			continue
		}
		if req.CampaignID != nil && e.CampaignID != *req.CampaignID {
			continue
		}
		if e.Status == domain.ExecutionRejected {
			resp.Rejected++
			continue
		}
		resp.Applied++
		switch e.Operation {
		case domain.TagDepositRewards.String():
			resp.Deposited.Add(resp.Deposited, new(big.Int).SetUint64(e.Amount))
		case domain.TagClaimReward.String():
			resp.Claimed.Add(resp.Claimed, new(big.Int).SetUint64(e.Amount))
		}
	}
	return resp, nil
}

func uniqueSorted(addresses []domain.Identity) []domain.Identity {
	keys := slices.Clone(addresses)
	slices.SortFunc(keys, domain.Identity.Compare)
	return slices.Compact(keys)
}

// executorState holds the uncommitted working copies of one Execute call.
type executorState struct {
	working  map[domain.Identity]*domain.Account
	original map[domain.Identity]*domain.Account
}

func newExecutorState(loaded map[domain.Identity]*domain.Account) *executorState {
	s := &executorState{
		working:  loaded,
		original: make(map[domain.Identity]*domain.Account, len(loaded)),
	}
	for k, a := range loaded {
		s.original[k] = a.Clone()
	}
	return s
}

// accounts lays the working copies out in request order.
func (s *executorState) accounts(addresses []domain.Identity) []*domain.Account {
	out := make([]*domain.Account, len(addresses))
	for i, k := range addresses {
		out[i] = s.working[k]
	}
	return out
}

// updated returns the working copies whose owner or data changed.
func (s *executorState) updated() []*domain.Account {
	var out []*domain.Account
	for k, a := range s.working {
		o := s.original[k]
		if a.Owner != o.Owner || !bytes.Equal(a.Data, o.Data) {
			out = append(out, a)
		}
	}
	return out
}
