package domain

import (
	"encoding/binary"
	"fmt"
)

// Field offsets of the record layout. The layout is a cross-implementation
// contract: little-endian integers, identities as raw bytes, one flag byte.
const (
	offCampaignID     = 0
	offOwner          = offCampaignID + 8
	offValueKind      = offOwner + IdentitySize
	offVault          = offValueKind + IdentitySize
	offTotalDeposited = offVault + IdentitySize
	offTotalClaimed   = offTotalDeposited + 8
	offLastNonce      = offTotalClaimed + 8
	offIsClosed       = offLastNonce + 8
)

// RecordSize is the encoded size of a CampaignRecord: 8+32+32+32+8+8+8+1.
const RecordSize = offIsClosed + 1

// CampaignRecord is the persistent bookkeeping for one campaign.
// CampaignID, Owner, ValueKind and VaultAddress never change after
// initialization. TotalClaimed never exceeds TotalDeposited.
type CampaignRecord struct {
	CampaignID     uint64
	Owner          Identity
	ValueKind      Identity
	VaultAddress   Identity
	TotalDeposited uint64
	TotalClaimed   uint64
	LastNonce      uint64
	IsClosed       bool
}

// Remaining returns TotalDeposited - TotalClaimed, or zero if the record
// is inconsistent.
func (r CampaignRecord) Remaining() uint64 {
	if r.TotalClaimed > r.TotalDeposited {
		return 0
	}
	return r.TotalDeposited - r.TotalClaimed
}

// DecodeRecord parses the fixed layout from the head of buf. Bytes past
// RecordSize are ignored.
func DecodeRecord(buf []byte) (CampaignRecord, error) {
	var r CampaignRecord
	if len(buf) < RecordSize {
		return r, fmt.Errorf("%w: %d bytes, need %d", ErrCorruptRecord, len(buf), RecordSize)
	}
	r.CampaignID = binary.LittleEndian.Uint64(buf[offCampaignID:])
	copy(r.Owner[:], buf[offOwner:offValueKind])
	copy(r.ValueKind[:], buf[offValueKind:offVault])
	copy(r.VaultAddress[:], buf[offVault:offTotalDeposited])
	r.TotalDeposited = binary.LittleEndian.Uint64(buf[offTotalDeposited:])
	r.TotalClaimed = binary.LittleEndian.Uint64(buf[offTotalClaimed:])
	r.LastNonce = binary.LittleEndian.Uint64(buf[offLastNonce:])
	switch buf[offIsClosed] {
	case 0:
	case 1:
		r.IsClosed = true
	default:
		return CampaignRecord{}, fmt.Errorf("%w: closed flag 0x%02x", ErrCorruptRecord, buf[offIsClosed])
	}
	return r, nil
}

// EncodeTo writes r into the first RecordSize bytes of buf.
func (r CampaignRecord) EncodeTo(buf []byte) error {
	if len(buf) < RecordSize {
		return fmt.Errorf("%w: %d bytes, need %d", ErrBufferTooSmall, len(buf), RecordSize)
	}
	binary.LittleEndian.PutUint64(buf[offCampaignID:], r.CampaignID)
	copy(buf[offOwner:offValueKind], r.Owner[:])
	copy(buf[offValueKind:offVault], r.ValueKind[:])
	copy(buf[offVault:offTotalDeposited], r.VaultAddress[:])
	binary.LittleEndian.PutUint64(buf[offTotalDeposited:], r.TotalDeposited)
	binary.LittleEndian.PutUint64(buf[offTotalClaimed:], r.TotalClaimed)
	binary.LittleEndian.PutUint64(buf[offLastNonce:], r.LastNonce)
	buf[offIsClosed] = 0
	if r.IsClosed {
		buf[offIsClosed] = 1
	}
	return nil
}

// Encode returns a fresh RecordSize buffer holding r.
func (r CampaignRecord) Encode() []byte {
	buf := make([]byte, RecordSize)
	_ = r.EncodeTo(buf)
	return buf
}

// IsBlankRecord reports whether the record region of buf is all zero, i.e.
// has never been initialized.
func IsBlankRecord(buf []byte) bool {
	n := min(len(buf), RecordSize)
	for _, b := range buf[:n] {
		if b != 0 {
			return false
		}
	}
	return true
}
