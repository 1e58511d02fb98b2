package db

import (
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"

	"dropy/internal/adapter/usecase"
	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

const (
	demoCampaignID = 1
	demoDeposit    = 1_000_000
)

// DemoOwnerKey is the deterministic key that owns the demo campaign. It is
// derived from a public phrase and must never guard real value.
func DemoOwnerKey() ed25519.PrivateKey {
	seed := sha256.Sum256([]byte("dropy demo campaign owner"))
	return ed25519.NewKeyFromSeed(seed[:])
}

// Seed creates and funds the demo campaign through the normal request
// path. It is a no-op when the campaign record already exists.
func Seed(ctx context.Context, svc port.CampaignUseCase, logger *slog.Logger) error {
	addrs, err := svc.Addresses(demoCampaignID)
	if err != nil {
		return err
	}
	if _, err = svc.AllocateRecord(ctx, demoCampaignID); errors.Is(err, port.ErrAccountExists) {
		logger.Info("demo campaign already seeded", slog.String("record", addrs.Record.String()))
		return nil
	} else if err != nil {
		return err
	}

	key := DemoOwnerKey()
	owner := domain.Identity(key.Public().(ed25519.PublicKey))
	valueKind := domain.Identity(sha256.Sum256([]byte("dropy demo token")))

	steps := []struct {
		ix       domain.Instruction
		accounts []domain.Identity
	}{
		{domain.InitializeCampaign{CampaignID: demoCampaignID}, []domain.Identity{owner, addrs.Record, valueKind, addrs.Vault}},
		{domain.DepositRewards{CampaignID: demoCampaignID, Amount: demoDeposit}, []domain.Identity{owner, addrs.Record}},
	}
	for _, s := range steps {
		req, err := usecase.SignedRequest(s.ix, s.accounts, key)
		if err != nil {
			return err
		}
		exec, err := svc.Submit(ctx, req)
		if err != nil {
			return err
		}
		if exec.Status != domain.ExecutionApplied {
			return fmt.Errorf("seed %s: %s", s.ix.Tag(), exec.Error)
		}
	}
	logger.Info("demo campaign seeded",
		slog.Uint64("campaign_id", demoCampaignID),
		slog.String("owner", owner.String()),
		slog.String("record", addrs.Record.String()))
	return nil
}
