package port

import (
	"context"

	"dropy/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the reward ledger. It is
// the primary port into the application and plays the role of the host: it
// authenticates signers, runs the program inside one repository unit of
// work and keeps the execution log.
type CampaignUseCase interface {
	// Submit verifies signatures, executes the request and logs the outcome.
	// A request rejected by the program is not an error: the returned
	// execution carries the status and code. Errors are reserved for bad
	// signatures and infrastructure failures.
	Submit(ctx context.Context, req SubmitReq) (*domain.Execution, error)

	// AllocateRecord allocates the canonical record account for a campaign
	// so that it can be initialized. It returns the record address.
	AllocateRecord(ctx context.Context, campaignID uint64) (domain.Identity, error)

	// GetCampaign returns the decoded record of an initialized campaign or
	// ErrCampaignNotFound.
	GetCampaign(ctx context.Context, campaignID uint64) (*CampaignView, error)

	// Addresses returns the derived record and vault addresses.
	Addresses(campaignID uint64) (*CampaignAddresses, error)

	ListExecutions(ctx context.Context, campaignID uint64, limit int) ([]domain.Execution, error)
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// AccountKey is one positional account of a request. Signature is optional;
// when present it must be an ed25519 signature by Address over
// domain.SigningMessage.
type AccountKey struct {
	Address   domain.Identity
	Signature []byte
}

// SubmitReq is a raw request as received from a client.
type SubmitReq struct {
	Data     []byte
	Accounts []AccountKey
}

type CampaignView struct {
	Address   domain.Identity
	Record    domain.CampaignRecord
	Remaining uint64
}

type CampaignAddresses struct {
	CampaignID uint64
	ProgramID  domain.Identity
	Record     domain.Identity
	RecordBump uint8
	Vault      domain.Identity
	VaultBump  uint8
}
