package usecase

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"filippo.io/edwards25519"
	"github.com/google/uuid"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
	"dropy/internal/core/program"
)

// CampaignUseCase is the host around the campaign program. It authenticates
// the accounts of a request, runs the program inside one repository unit of
// work and records every outcome in the execution log.
type CampaignUseCase struct {
	repo    port.LedgerRepository
	program *program.Processor
	logger  *slog.Logger

	// recordSpace is the number of bytes AllocateRecord reserves. It is
	// normally domain.RecordSize.
	recordSpace int

	now func() time.Time
}

// NewCampaignUseCase creates a usecase that stores accounts in repo and
// executes requests with prog.
func NewCampaignUseCase(repo port.LedgerRepository, prog *program.Processor, recordSpace int, logger *slog.Logger) *CampaignUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if recordSpace <= 0 {
		recordSpace = domain.RecordSize
	}
	return &CampaignUseCase{
		repo:        repo,
		program:     prog,
		logger:      logger,
		recordSpace: recordSpace,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit verifies the signatures attached to req, executes it and appends
// an execution log entry. Program rejections are reported in the returned
// execution, not as an error.
func (u *CampaignUseCase) Submit(ctx context.Context, req port.SubmitReq) (*domain.Execution, error) {
	addresses := make([]domain.Identity, len(req.Accounts))
	for i, k := range req.Accounts {
		addresses[i] = k.Address
	}
	signers, err := verifySignatures(req, addresses)
	if err != nil {
		return nil, err
	}

	exec := u.newExecution(req.Data, addresses)
	err = u.repo.Execute(ctx, addresses, func(accounts []*domain.Account) error {
		for i, a := range accounts {
			if signers[i] {
				a.IsSigner = true
			}
		}
		return u.program.Process(accounts, req.Data)
	})
	code, rejected := domain.CodeOf(err)
	if err != nil && !rejected {
		return nil, fmt.Errorf("execute %s: %w", exec.Operation, err)
	}

	exec.Status = domain.ExecutionApplied
	if rejected {
		exec.Status = domain.ExecutionRejected
		exec.ErrorCode = &code
		exec.Error = err.Error()
		u.logger.Info("request rejected",
			slog.String("id", exec.ID.String()),
			slog.String("operation", exec.Operation),
			slog.Uint64("campaign_id", exec.CampaignID),
			slog.String("code", code.String()),
			slog.Any("error", err))
	}
	// The unit of work is already settled; a failed log write must not
	// change the reported outcome.
	if err = u.repo.InsertExecution(ctx, exec); err != nil {
		u.logger.Error("insert execution error", slog.String("id", exec.ID.String()), slog.Any("error", err))
	}
	return exec, nil
}

// verifySignatures checks every supplied signature against the request's
// signing message and reports which positions are signers.
func verifySignatures(req port.SubmitReq, addresses []domain.Identity) ([]bool, error) {
	signers := make([]bool, len(req.Accounts))
	var msg []byte
	for i, k := range req.Accounts {
		if len(k.Signature) == 0 {
			continue
		}
		if msg == nil {
			msg = domain.SigningMessage(req.Data, addresses)
		}
		if len(k.Signature) != ed25519.SignatureSize || weakKey(k.Address) ||
			!ed25519.Verify(ed25519.PublicKey(k.Address[:]), msg, k.Signature) {
			return nil, fmt.Errorf("%w: account %d (%s)", port.ErrInvalidSignature, i, k.Address)
		}
		signers[i] = true
	}
	return signers, nil
}

// weakKey reports whether id cannot act as an ed25519 public key: it is not
// a curve point, or it is a point of small order for which signatures can
// be produced without any private key.
func weakKey(id domain.Identity) bool {
	p, err := new(edwards25519.Point).SetBytes(id[:])
	if err != nil {
		return true
	}
	return new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1
}

// newExecution prefills a log entry from whatever can be decoded of data.
func (u *CampaignUseCase) newExecution(data []byte, addresses []domain.Identity) *domain.Execution {
	exec := &domain.Execution{
		ID:        uuid.New(),
		CreatedAt: u.now(),
	}
	if len(addresses) > 0 {
		exec.Signer = addresses[0]
	}
	ix, err := domain.DecodeInstruction(data)
	if err != nil {
		return exec
	}
	exec.Operation = ix.Tag().String()
	exec.CampaignID = ix.Campaign()
	switch ix := ix.(type) {
	case domain.DepositRewards:
		exec.Amount = ix.Amount
	case domain.ClaimReward:
		exec.Amount = ix.Amount
		exec.Nonce = ix.Nonce
	}
	return exec
}

// AllocateRecord reserves the canonical record account of campaignID,
// owned by the program.
func (u *CampaignUseCase) AllocateRecord(ctx context.Context, campaignID uint64) (domain.Identity, error) {
	addr, _, err := u.program.CampaignAddress(campaignID)
	if err != nil {
		return domain.Identity{}, err
	}
	if err = u.repo.CreateAccount(ctx, addr, u.program.ID(), u.recordSpace); err != nil {
		return domain.Identity{}, err
	}
	u.logger.Info("record allocated", slog.Uint64("campaign_id", campaignID), slog.String("address", addr.String()))
	return addr, nil
}

// GetCampaign reads the record of campaignID from its derived address.
// Unallocated, foreign and never initialized records are all reported as
// port.ErrCampaignNotFound.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID uint64) (*port.CampaignView, error) {
	addr, _, err := u.program.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	acct, err := u.repo.GetAccount(ctx, addr)
	if err != nil {
		return nil, err
	}
	if acct == nil || acct.Owner != u.program.ID() || domain.IsBlankRecord(acct.Data) {
		return nil, port.ErrCampaignNotFound
	}
	rec, err := domain.DecodeRecord(acct.Data)
	if err != nil {
		return nil, err
	}
	if rec.CampaignID != campaignID {
		return nil, errors.Join(port.ErrCampaignNotFound, domain.ErrRecordIDMismatch)
	}
	return &port.CampaignView{Address: addr, Record: rec, Remaining: rec.Remaining()}, nil
}

// Addresses returns the derived addresses a client needs to build requests
// for campaignID.
func (u *CampaignUseCase) Addresses(campaignID uint64) (*port.CampaignAddresses, error) {
	rec, recBump, err := u.program.CampaignAddress(campaignID)
	if err != nil {
		return nil, err
	}
	vault, vaultBump, err := u.program.VaultAddress(campaignID)
	if err != nil {
		return nil, err
	}
	return &port.CampaignAddresses{
		CampaignID: campaignID,
		ProgramID:  u.program.ID(),
		Record:     rec,
		RecordBump: recBump,
		Vault:      vault,
		VaultBump:  vaultBump,
	}, nil
}

// ListExecutions returns the latest log entries for a campaign.
func (u *CampaignUseCase) ListExecutions(ctx context.Context, campaignID uint64, limit int) ([]domain.Execution, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return u.repo.ListExecutions(ctx, campaignID, limit)
}

// GetStats returns aggregated execution stats in a period.
func (u *CampaignUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}
