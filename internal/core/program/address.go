package program

import (
	"fmt"

	"dropy/internal/core/domain"
	"dropy/internal/core/pda"
)

// CampaignAddress returns the canonical record address for campaignID.
func (p *Processor) CampaignAddress(campaignID uint64) (domain.Identity, uint8, error) {
	return p.derive(pda.CampaignSeeds(campaignID), p.id)
}

// VaultAddress returns the canonical vault address for campaignID.
func (p *Processor) VaultAddress(campaignID uint64) (domain.Identity, uint8, error) {
	return p.derive(pda.VaultSeeds(campaignID), p.id)
}

// validateAddress checks that supplied is the address derived for
// campaignID under namespace.
func (p *Processor) validateAddress(namespace string, campaignID uint64, supplied domain.Identity) error {
	var (
		want domain.Identity
		err  error
	)
	switch namespace {
	case pda.CampaignNamespace:
		want, _, err = p.CampaignAddress(campaignID)
	case pda.VaultNamespace:
		want, _, err = p.VaultAddress(campaignID)
	default:
		return fmt.Errorf("%w: unknown namespace %q", domain.ErrAddressMismatch, namespace)
	}
	if err != nil {
		return fmt.Errorf("%w: derive %s address: %v", domain.ErrAddressMismatch, namespace, err)
	}
	if supplied != want {
		return fmt.Errorf("%w: %s address %s, want %s", domain.ErrAddressMismatch, namespace, supplied, want)
	}
	return nil
}
