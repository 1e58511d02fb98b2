package pda

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"dropy/internal/core/domain"
)

var program = domain.Identity{1, 2, 3, 4, 5, 6, 7, 8}

func TestFindProgramAddressDeterministic(t *testing.T) {
	a1, b1, err := FindProgramAddress(CampaignSeeds(42), program)
	require.NoError(t, err)
	a2, b2, err := FindProgramAddress(CampaignSeeds(42), program)
	require.NoError(t, err)
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
	require.False(t, onCurve(a1))

	again, err := CreateProgramAddress(append(CampaignSeeds(42), []byte{b1}), program)
	require.NoError(t, err)
	require.Equal(t, a1, again)
}

func TestDerivedAddressesAreDistinct(t *testing.T) {
	seen := map[domain.Identity]string{}
	for _, tc := range []struct {
		name    string
		seeds   [][]byte
		program domain.Identity
	}{
		{"campaign 1", CampaignSeeds(1), program},
		{"campaign 2", CampaignSeeds(2), program},
		{"vault 1", VaultSeeds(1), program},
		{"vault 2", VaultSeeds(2), program},
		{"campaign 1 other program", CampaignSeeds(1), domain.Identity{9}},
	} {
		addr, _, err := FindProgramAddress(tc.seeds, tc.program)
		require.NoError(t, err)
		prev, dup := seen[addr]
		require.False(t, dup, "%s collides with %s", tc.name, prev)
		seen[addr] = tc.name
	}
}

func TestCreateProgramAddressLimits(t *testing.T) {
	_, err := CreateProgramAddress([][]byte{bytes.Repeat([]byte{1}, MaxSeedLen+1)}, program)
	require.ErrorIs(t, err, ErrSeedTooLong)

	_, err = CreateProgramAddress(make([][]byte, MaxSeeds+1), program)
	require.ErrorIs(t, err, ErrTooManySeeds)

	_, _, err = FindProgramAddress(make([][]byte, MaxSeeds), program)
	require.ErrorIs(t, err, ErrTooManySeeds)
}

func TestOnCurve(t *testing.T) {
	// The encoding of the identity point (y = 1) is a valid curve point.
	var identityPoint domain.Identity
	identityPoint[0] = 1
	require.True(t, onCurve(identityPoint))
}

func TestNamespacedSeeds(t *testing.T) {
	seeds := CampaignSeeds(0x0102)
	require.Equal(t, []byte("campaign"), seeds[0])
	require.Equal(t, []byte{2, 1, 0, 0, 0, 0, 0, 0}, seeds[1])
	require.Equal(t, []byte("vault"), VaultSeeds(0)[0])
}
