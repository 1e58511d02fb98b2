package port

import (
	"context"
	"errors"
	"math/big"
	"time"

	"dropy/internal/core/domain"
)

var (
	ErrAccountExists    = errors.New("account already exists")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidSignature = errors.New("invalid signature")
)

// LedgerRepository is the account store the program runs on. It is an
// outbound port in hexagonal architecture. Implementations must serialize
// concurrent Execute calls that name the same address and must apply the
// writes of one Execute call atomically.
type LedgerRepository interface {
	// Execute locks and loads every account in addresses and passes them to
	// fn in the same order. An address that was never allocated is passed as
	// an account with a zero owner and no data; a repeated address is passed
	// as the same pointer. If fn returns nil every modified account is
	// persisted, otherwise nothing is and fn's error is returned unchanged.
	Execute(ctx context.Context, addresses []domain.Identity, fn func(accounts []*domain.Account) error) error
	// CreateAccount allocates a zeroed buffer of space bytes owned by owner.
	// It returns ErrAccountExists when the address is already allocated.
	CreateAccount(ctx context.Context, address, owner domain.Identity, space int) error
	// GetAccount returns the account at address, or nil if it does not exist.
	GetAccount(ctx context.Context, address domain.Identity) (*domain.Account, error)

	// InsertExecution appends an entry to the execution log.
	InsertExecution(ctx context.Context, exec *domain.Execution) error
	// ListExecutions returns the newest entries for a campaign first.
	ListExecutions(ctx context.Context, campaignID uint64, limit int) ([]domain.Execution, error)
	// GetStats aggregates the execution log over a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the period and, optionally, the campaign to aggregate.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *uint64
}

// StatsResp summarises executions. Deposited and Claimed sum the amounts of
// applied deposits and claims; they are unbounded because they may span
// many campaigns.
type StatsResp struct {
	Applied   int64
	Rejected  int64
	Deposited *big.Int
	Claimed   *big.Int
}
