package domain

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
)

// IdentitySize is the width in bytes of every address, owner and value kind.
const IdentitySize = 32

// Identity is a 32-byte account address or public key. Its text form is
// base58, the same encoding wallets display.
type Identity [IdentitySize]byte

// ParseIdentity decodes a base58 identity.
func ParseIdentity(s string) (Identity, error) {
	var id Identity
	raw, err := base58.Decode(s)
	if err != nil {
		return id, fmt.Errorf("decode identity %q: %w", s, err)
	}
	if len(raw) != IdentitySize {
		return id, fmt.Errorf("identity %q: got %d bytes, want %d", s, len(raw), IdentitySize)
	}
	copy(id[:], raw)
	return id, nil
}

// MustParseIdentity is ParseIdentity for compile-time constants. It panics
// on malformed input.
func MustParseIdentity(s string) Identity {
	id, err := ParseIdentity(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the base58 form.
func (id Identity) String() string {
	return base58.Encode(id[:])
}

// IsZero reports whether every byte is zero.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// Compare orders identities bytewise.
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
