package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityText(t *testing.T) {
	id := filled(0x5A)
	parsed, err := ParseIdentity(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	// The all-zero key has a well known base58 form.
	require.Equal(t, "11111111111111111111111111111111", Identity{}.String())
	require.True(t, Identity{}.IsZero())

	raw, err := json.Marshal(struct{ Owner Identity }{id})
	require.NoError(t, err)
	var back struct{ Owner Identity }
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, id, back.Owner)
}

func TestParseIdentityErrors(t *testing.T) {
	_, err := ParseIdentity("0OIl")
	require.Error(t, err)
	_, err = ParseIdentity("abc")
	require.Error(t, err)
	require.Panics(t, func() { MustParseIdentity("") })
}
