// Package pda derives program addresses: deterministic identities computed
// from seeds and a program identity that, being off the ed25519 curve, have
// no private key. Only the program itself can act for them.
package pda

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"dropy/internal/core/domain"
)

const (
	MaxSeeds   = 16
	MaxSeedLen = 32

	// marker is appended to every preimage so that derived addresses cannot
	// collide with hashes computed for other purposes.
	marker = "ProgramDerivedAddress"

	CampaignNamespace = "campaign"
	VaultNamespace    = "vault"
)

var (
	ErrOnCurve      = errors.New("derived address lies on the ed25519 curve")
	ErrTooManySeeds = errors.New("too many seeds")
	ErrSeedTooLong  = errors.New("seed too long")
	ErrNoViableBump = errors.New("no viable bump seed")
)

// CreateProgramAddress hashes seeds and program into an address. It fails
// with ErrOnCurve when the digest is a valid curve point.
func CreateProgramAddress(seeds [][]byte, program domain.Identity) (domain.Identity, error) {
	var addr domain.Identity
	if len(seeds) > MaxSeeds {
		return addr, fmt.Errorf("%w: %d > %d", ErrTooManySeeds, len(seeds), MaxSeeds)
	}
	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLen {
			return addr, fmt.Errorf("%w: seed %d has %d bytes", ErrSeedTooLong, i, len(s))
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write([]byte(marker))
	copy(addr[:], h.Sum(nil))
	if onCurve(addr) {
		return domain.Identity{}, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress searches bump seeds from 255 down and returns the
// first off-curve address together with its bump.
func FindProgramAddress(seeds [][]byte, program domain.Identity) (domain.Identity, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump, program)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if !errors.Is(err, ErrOnCurve) {
			return domain.Identity{}, 0, err
		}
	}
	return domain.Identity{}, 0, ErrNoViableBump
}

// CampaignSeeds returns the seeds of the record address for campaignID.
func CampaignSeeds(campaignID uint64) [][]byte {
	return namespaced(CampaignNamespace, campaignID)
}

// VaultSeeds returns the seeds of the vault address for campaignID.
func VaultSeeds(campaignID uint64) [][]byte {
	return namespaced(VaultNamespace, campaignID)
}

func namespaced(ns string, campaignID uint64) [][]byte {
	return [][]byte{[]byte(ns), binary.LittleEndian.AppendUint64(nil, campaignID)}
}

func onCurve(addr domain.Identity) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
