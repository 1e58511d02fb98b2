package domain

import (
	"encoding/binary"
	"fmt"
)

// Tag is the leading discriminant byte of an encoded instruction.
type Tag uint8

const (
	TagInitializeCampaign Tag = 0
	TagDepositRewards     Tag = 1
	TagClaimReward        Tag = 2
	TagCloseCampaign      Tag = 3
)

func (t Tag) String() string {
	switch t {
	case TagInitializeCampaign:
		return "initialize_campaign"
	case TagDepositRewards:
		return "deposit_rewards"
	case TagClaimReward:
		return "claim_reward"
	case TagCloseCampaign:
		return "close_campaign"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

// Instruction is the closed set of operations the program accepts. The
// unexported method keeps implementations inside this package.
type Instruction interface {
	Tag() Tag
	Campaign() uint64
	MarshalBinary() ([]byte, error)
	instruction()
}

// InitializeCampaign creates the record for a campaign.
// Accounts: [signer, record, value kind, vault].
type InitializeCampaign struct {
	CampaignID uint64
}

// DepositRewards adds Amount to the campaign's deposited total.
// Accounts: [signer, record].
type DepositRewards struct {
	CampaignID uint64
	Amount     uint64
}

// ClaimReward pays Amount out of the remaining balance. Nonce must exceed
// the record's last accepted nonce.
// Accounts: [signer, record, recipient].
type ClaimReward struct {
	CampaignID uint64
	Amount     uint64
	Nonce      uint64
}

// CloseCampaign latches a fully claimed campaign closed.
// Accounts: [signer, record].
type CloseCampaign struct {
	CampaignID uint64
}

func (InitializeCampaign) Tag() Tag { return TagInitializeCampaign }
func (DepositRewards) Tag() Tag     { return TagDepositRewards }
func (ClaimReward) Tag() Tag        { return TagClaimReward }
func (CloseCampaign) Tag() Tag      { return TagCloseCampaign }

func (i InitializeCampaign) Campaign() uint64 { return i.CampaignID }
func (i DepositRewards) Campaign() uint64     { return i.CampaignID }
func (i ClaimReward) Campaign() uint64        { return i.CampaignID }
func (i CloseCampaign) Campaign() uint64      { return i.CampaignID }

func (InitializeCampaign) instruction() {}
func (DepositRewards) instruction()     {}
func (ClaimReward) instruction()        {}
func (CloseCampaign) instruction()      {}

func (i InitializeCampaign) MarshalBinary() ([]byte, error) {
	return encodeFields(TagInitializeCampaign, i.CampaignID), nil
}

func (i DepositRewards) MarshalBinary() ([]byte, error) {
	return encodeFields(TagDepositRewards, i.CampaignID, i.Amount), nil
}

func (i ClaimReward) MarshalBinary() ([]byte, error) {
	return encodeFields(TagClaimReward, i.CampaignID, i.Amount, i.Nonce), nil
}

func (i CloseCampaign) MarshalBinary() ([]byte, error) {
	return encodeFields(TagCloseCampaign, i.CampaignID), nil
}

func encodeFields(tag Tag, fields ...uint64) []byte {
	buf := make([]byte, 1, 1+8*len(fields))
	buf[0] = byte(tag)
	for _, f := range fields {
		buf = binary.LittleEndian.AppendUint64(buf, f)
	}
	return buf
}

// fieldCount is the number of u64 fields following each tag.
var fieldCount = map[Tag]int{
	TagInitializeCampaign: 1,
	TagDepositRewards:     2,
	TagClaimReward:        3,
	TagCloseCampaign:      1,
}

// DecodeInstruction parses a tagged little-endian payload. The payload must
// hold exactly the fields of its variant.
func DecodeInstruction(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedRequest)
	}
	tag := Tag(data[0])
	n, ok := fieldCount[tag]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tag %d", ErrMalformedRequest, data[0])
	}
	body := data[1:]
	if len(body) != 8*n {
		return nil, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrMalformedRequest, tag, 8*n, len(body))
	}
	f := make([]uint64, n)
	for i := range f {
		f[i] = binary.LittleEndian.Uint64(body[8*i:])
	}
	switch tag {
	case TagInitializeCampaign:
		return InitializeCampaign{CampaignID: f[0]}, nil
	case TagDepositRewards:
		return DepositRewards{CampaignID: f[0], Amount: f[1]}, nil
	case TagClaimReward:
		return ClaimReward{CampaignID: f[0], Amount: f[1], Nonce: f[2]}, nil
	default:
		return CloseCampaign{CampaignID: f[0]}, nil
	}
}
