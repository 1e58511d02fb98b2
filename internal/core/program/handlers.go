package program

import (
	"fmt"
	"log/slog"

	"dropy/internal/core/domain"
	"dropy/internal/core/pda"
)

// Positional account layout of each instruction.
const (
	initAccounts    = 4
	depositAccounts = 2
	claimAccounts   = 3
	closeAccounts   = 2
)

func requireAccounts(accounts []*domain.Account, n int, op domain.Tag) error {
	if len(accounts) < n {
		return fmt.Errorf("%w: %s needs %d accounts, got %d", domain.ErrMalformedRequest, op, n, len(accounts))
	}
	for i, a := range accounts[:n] {
		if a == nil {
			return fmt.Errorf("%w: %s account %d missing", domain.ErrMalformedRequest, op, i)
		}
	}
	return nil
}

// requireSigner also refuses the zero identity, which no key can own.
func requireSigner(a *domain.Account) error {
	if !a.IsSigner || a.Address.IsZero() {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, a.Address)
	}
	return nil
}

func (p *Processor) requireProgramOwned(a *domain.Account) error {
	if a.Owner != p.id {
		return fmt.Errorf("%w: %s owned by %s", domain.ErrWrongOwnerOfRecord, a.Address, a.Owner)
	}
	return nil
}

// loadRecord decodes the record held by a and checks that it belongs to
// this program and to campaignID.
func (p *Processor) loadRecord(a *domain.Account, campaignID uint64) (domain.CampaignRecord, error) {
	if err := p.requireProgramOwned(a); err != nil {
		return domain.CampaignRecord{}, err
	}
	rec, err := domain.DecodeRecord(a.Data)
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	// Initialize always sets an owner; a zero owner means the record was
	// allocated but never initialized.
	if rec.Owner.IsZero() {
		return domain.CampaignRecord{}, fmt.Errorf("%w: %s is not initialized", domain.ErrCorruptRecord, a.Address)
	}
	if rec.CampaignID != campaignID {
		return domain.CampaignRecord{}, fmt.Errorf("%w: record holds %d, request names %d", domain.ErrRecordIDMismatch, rec.CampaignID, campaignID)
	}
	return rec, nil
}

func (p *Processor) initializeCampaign(ix domain.InitializeCampaign, accounts []*domain.Account) error {
	if err := requireAccounts(accounts, initAccounts, ix.Tag()); err != nil {
		return err
	}
	signer, record, valueKind, vault := accounts[0], accounts[1], accounts[2], accounts[3]
	if err := requireSigner(signer); err != nil {
		return err
	}
	if err := p.requireProgramOwned(record); err != nil {
		return err
	}
	if len(record.Data) < domain.RecordSize {
		return fmt.Errorf("%w: %d bytes, need %d", domain.ErrBufferTooSmall, len(record.Data), domain.RecordSize)
	}
	if err := p.validateAddress(pda.CampaignNamespace, ix.CampaignID, record.Address); err != nil {
		return err
	}
	if err := p.validateAddress(pda.VaultNamespace, ix.CampaignID, vault.Address); err != nil {
		return err
	}
	if !domain.IsBlankRecord(record.Data) {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyInitialized, record.Address)
	}

	rec := domain.CampaignRecord{
		CampaignID:   ix.CampaignID,
		Owner:        signer.Address,
		ValueKind:    valueKind.Address,
		VaultAddress: vault.Address,
	}
	if err := rec.EncodeTo(record.Data); err != nil {
		return err
	}
	p.logger.Debug("initialize campaign",
		slog.Uint64("campaign_id", ix.CampaignID),
		slog.String("owner", signer.Address.String()),
		slog.String("vault", vault.Address.String()))
	return nil
}

func (p *Processor) depositRewards(ix domain.DepositRewards, accounts []*domain.Account) error {
	if ix.Amount == 0 {
		return domain.ErrInvalidAmount
	}
	if err := requireAccounts(accounts, depositAccounts, ix.Tag()); err != nil {
		return err
	}
	signer, record := accounts[0], accounts[1]
	if err := requireSigner(signer); err != nil {
		return err
	}
	rec, err := p.loadRecord(record, ix.CampaignID)
	if err != nil {
		return err
	}
	if rec.IsClosed {
		return domain.ErrCampaignClosed
	}
	if rec.Owner != signer.Address {
		return fmt.Errorf("%w: %s", domain.ErrNotOwner, signer.Address)
	}

	total, overflowed := oadd(rec.TotalDeposited, ix.Amount)
	if overflowed {
		return fmt.Errorf("%w: deposit %d onto %d", domain.ErrArithmeticOverflow, ix.Amount, rec.TotalDeposited)
	}
	rec.TotalDeposited = total
	if err = rec.EncodeTo(record.Data); err != nil {
		return err
	}
	p.logger.Debug("deposit rewards",
		slog.Uint64("campaign_id", ix.CampaignID),
		slog.Uint64("amount", ix.Amount),
		slog.Uint64("total_deposited", rec.TotalDeposited))
	return nil
}

// claimReward accepts any signer; only the nonce and the
// remaining balance gate a payout.
func (p *Processor) claimReward(ix domain.ClaimReward, accounts []*domain.Account) error {
	if ix.Amount == 0 {
		return domain.ErrInvalidAmount
	}
	if err := requireAccounts(accounts, claimAccounts, ix.Tag()); err != nil {
		return err
	}
	signer, record, recipient := accounts[0], accounts[1], accounts[2]
	if err := requireSigner(signer); err != nil {
		return err
	}
	rec, err := p.loadRecord(record, ix.CampaignID)
	if err != nil {
		return err
	}
	if rec.IsClosed {
		return domain.ErrCampaignClosed
	}
	if ix.Nonce <= rec.LastNonce {
		return fmt.Errorf("%w: %d after %d", domain.ErrNonceNotIncreasing, ix.Nonce, rec.LastNonce)
	}
	remaining, underflowed := osub(rec.TotalDeposited, rec.TotalClaimed)
	if underflowed {
		return fmt.Errorf("%w: claimed %d exceeds deposited %d", domain.ErrArithmeticOverflow, rec.TotalClaimed, rec.TotalDeposited)
	}
	if ix.Amount > remaining {
		return fmt.Errorf("%w: claim %d, remaining %d", domain.ErrInsufficientRemainingBalance, ix.Amount, remaining)
	}
	claimed, overflowed := oadd(rec.TotalClaimed, ix.Amount)
	if overflowed {
		return fmt.Errorf("%w: claim %d onto %d", domain.ErrArithmeticOverflow, ix.Amount, rec.TotalClaimed)
	}
	rec.TotalClaimed = claimed
	rec.LastNonce = ix.Nonce
	if err = rec.EncodeTo(record.Data); err != nil {
		return err
	}
	p.logger.Debug("claim reward",
		slog.Uint64("campaign_id", ix.CampaignID),
		slog.Uint64("amount", ix.Amount),
		slog.Uint64("nonce", ix.Nonce),
		slog.String("recipient", recipient.Address.String()),
		slog.Uint64("remaining", rec.Remaining()))
	return nil
}

func (p *Processor) closeCampaign(ix domain.CloseCampaign, accounts []*domain.Account) error {
	if err := requireAccounts(accounts, closeAccounts, ix.Tag()); err != nil {
		return err
	}
	signer, record := accounts[0], accounts[1]
	if err := requireSigner(signer); err != nil {
		return err
	}
	rec, err := p.loadRecord(record, ix.CampaignID)
	if err != nil {
		return err
	}
	if rec.Owner != signer.Address {
		return fmt.Errorf("%w: %s", domain.ErrNotOwner, signer.Address)
	}
	if rec.TotalClaimed != rec.TotalDeposited {
		return fmt.Errorf("%w: %d of %d claimed", domain.ErrCampaignNotFullyClaimed, rec.TotalClaimed, rec.TotalDeposited)
	}
	rec.IsClosed = true
	if err = rec.EncodeTo(record.Data); err != nil {
		return err
	}
	p.logger.Debug("close campaign", slog.Uint64("campaign_id", ix.CampaignID))
	return nil
}
