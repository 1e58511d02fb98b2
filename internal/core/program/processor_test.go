package program

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dropy/internal/core/domain"
)

func ident(b byte) domain.Identity {
	var id domain.Identity
	for i := range id {
		id[i] = b ^ byte(i)
	}
	return id
}

var (
	testProgram   = ident(0xA1)
	testOwner     = ident(0x01)
	testStranger  = ident(0x02)
	testValueKind = ident(0x03)
	testRecipient = ident(0x04)
)

type fixture struct {
	p      *Processor
	id     uint64
	record *domain.Account
	vault  domain.Identity
}

func newFixture(t require.TestingT, campaignID uint64) *fixture {
	p := New(testProgram)
	recAddr, _, err := p.CampaignAddress(campaignID)
	require.NoError(t, err)
	vaultAddr, _, err := p.VaultAddress(campaignID)
	require.NoError(t, err)
	return &fixture{
		p:  p,
		id: campaignID,
		record: &domain.Account{
			Address: recAddr,
			Owner:   testProgram,
			Data:    make([]byte, domain.RecordSize),
		},
		vault: vaultAddr,
	}
}

func signer(id domain.Identity) *domain.Account {
	return &domain.Account{Address: id, IsSigner: true}
}

func plain(id domain.Identity) *domain.Account {
	return &domain.Account{Address: id}
}

func (f *fixture) run(ix domain.Instruction, accounts ...*domain.Account) error {
	data, err := ix.MarshalBinary()
	if err != nil {
		return err
	}
	return f.p.Process(accounts, data)
}

func (f *fixture) initialize() error {
	return f.run(domain.InitializeCampaign{CampaignID: f.id},
		signer(testOwner), f.record, plain(testValueKind), plain(f.vault))
}

func (f *fixture) deposit(amount uint64) error {
	return f.run(domain.DepositRewards{CampaignID: f.id, Amount: amount}, signer(testOwner), f.record)
}

func (f *fixture) claim(by domain.Identity, amount, nonce uint64) error {
	return f.run(domain.ClaimReward{CampaignID: f.id, Amount: amount, Nonce: nonce},
		signer(by), f.record, plain(testRecipient))
}

func (f *fixture) close() error {
	return f.run(domain.CloseCampaign{CampaignID: f.id}, signer(testOwner), f.record)
}

func (f *fixture) state(t require.TestingT) domain.CampaignRecord {
	rec, err := domain.DecodeRecord(f.record.Data)
	require.NoError(t, err)
	return rec
}

func (f *fixture) snapshot() []byte {
	return bytes.Clone(f.record.Data)
}

func TestScenarioFullLifecycle(t *testing.T) {
	f := newFixture(t, 42)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(1_000_000))

	require.NoError(t, f.claim(testOwner, 400_000, 1))
	require.Equal(t, uint64(600_000), f.state(t).Remaining())

	require.NoError(t, f.claim(testOwner, 600_000, 2))
	require.Equal(t, uint64(0), f.state(t).Remaining())

	require.NoError(t, f.close())
	rec := f.state(t)
	require.Equal(t, domain.CampaignRecord{
		CampaignID:     42,
		Owner:          testOwner,
		ValueKind:      testValueKind,
		VaultAddress:   f.vault,
		TotalDeposited: 1_000_000,
		TotalClaimed:   1_000_000,
		LastNonce:      2,
		IsClosed:       true,
	}, rec)
}

func TestScenarioReplayedClaim(t *testing.T) {
	f := newFixture(t, 7)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(100))
	require.NoError(t, f.claim(testOwner, 10, 1))

	before := f.snapshot()
	err := f.claim(testOwner, 10, 1)
	require.ErrorIs(t, err, domain.ErrNonceNotIncreasing)
	require.Equal(t, before, f.record.Data)
}

func TestScenarioCloseBeforeClaims(t *testing.T) {
	f := newFixture(t, 9)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(100))

	before := f.snapshot()
	err := f.close()
	require.ErrorIs(t, err, domain.ErrCampaignNotFullyClaimed)
	require.Equal(t, before, f.record.Data)
}

func TestClaimZeroAmountRejectedBeforeRecordAccess(t *testing.T) {
	p := New(testProgram)
	data, _ := domain.ClaimReward{CampaignID: 1, Amount: 0, Nonce: 1}.MarshalBinary()
	// No accounts at all: the amount check must fire before any lookup.
	err := p.Process(nil, data)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	data, _ = domain.DepositRewards{CampaignID: 1, Amount: 0}.MarshalBinary()
	require.ErrorIs(t, p.Process(nil, data), domain.ErrInvalidAmount)
}

func TestClaimNonceMustStrictlyIncrease(t *testing.T) {
	f := newFixture(t, 3)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(1000))
	require.NoError(t, f.claim(testOwner, 1, 10))

	for _, tc := range []struct {
		name   string
		amount uint64
		nonce  uint64
	}{
		{"equal nonce", 1, 10},
		{"lower nonce", 1, 9},
		{"zero nonce", 5, 0},
		{"equal nonce over balance", math.MaxUint64, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			before := f.snapshot()
			err := f.claim(testOwner, tc.amount, tc.nonce)
			require.ErrorIs(t, err, domain.ErrNonceNotIncreasing)
			require.Equal(t, before, f.record.Data)
		})
	}

	// Gaps are allowed.
	require.NoError(t, f.claim(testOwner, 1, 1000))
	require.Equal(t, uint64(1000), f.state(t).LastNonce)
}

func TestClaimByNonOwnerSigner(t *testing.T) {
	f := newFixture(t, 11)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(50))

	require.NoError(t, f.claim(testStranger, 20, 1))
	rec := f.state(t)
	require.Equal(t, uint64(20), rec.TotalClaimed)
	require.Equal(t, testOwner, rec.Owner)
}

func TestClaimExceedingRemainingBalance(t *testing.T) {
	f := newFixture(t, 12)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(100))
	require.NoError(t, f.claim(testOwner, 60, 1))

	before := f.snapshot()
	require.ErrorIs(t, f.claim(testOwner, 41, 2), domain.ErrInsufficientRemainingBalance)
	require.Equal(t, before, f.record.Data)
	require.NoError(t, f.claim(testOwner, 40, 2))
}

func TestDepositOverflow(t *testing.T) {
	f := newFixture(t, 13)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(math.MaxUint64))

	before := f.snapshot()
	require.ErrorIs(t, f.deposit(1), domain.ErrArithmeticOverflow)
	require.Equal(t, before, f.record.Data)
}

func TestClaimOnInconsistentRecordOverflows(t *testing.T) {
	f := newFixture(t, 14)
	rec := domain.CampaignRecord{
		CampaignID:     14,
		Owner:          testOwner,
		TotalDeposited: 5,
		TotalClaimed:   10,
	}
	require.NoError(t, rec.EncodeTo(f.record.Data))

	before := f.snapshot()
	require.ErrorIs(t, f.claim(testOwner, 1, 1), domain.ErrArithmeticOverflow)
	require.Equal(t, before, f.record.Data)
}

func TestOwnerOnlyOperations(t *testing.T) {
	f := newFixture(t, 15)
	require.NoError(t, f.initialize())

	err := f.run(domain.DepositRewards{CampaignID: 15, Amount: 1}, signer(testStranger), f.record)
	require.ErrorIs(t, err, domain.ErrNotOwner)

	err = f.run(domain.CloseCampaign{CampaignID: 15}, signer(testStranger), f.record)
	require.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestClosedCampaignIsTerminal(t *testing.T) {
	f := newFixture(t, 16)
	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(10))
	require.NoError(t, f.claim(testOwner, 10, 1))
	require.NoError(t, f.close())

	before := f.snapshot()
	require.ErrorIs(t, f.deposit(1), domain.ErrCampaignClosed)
	require.ErrorIs(t, f.claim(testOwner, 1, 2), domain.ErrCampaignClosed)
	require.ErrorIs(t, f.initialize(), domain.ErrAlreadyInitialized)
	require.Equal(t, before, f.record.Data)

	// Closing again changes nothing.
	require.NoError(t, f.close())
	require.Equal(t, before, f.record.Data)
}

func TestRecordChecks(t *testing.T) {
	f := newFixture(t, 17)
	require.NoError(t, f.initialize())

	t.Run("unsigned", func(t *testing.T) {
		err := f.run(domain.DepositRewards{CampaignID: 17, Amount: 1}, plain(testOwner), f.record)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
	t.Run("campaign id mismatch", func(t *testing.T) {
		err := f.run(domain.DepositRewards{CampaignID: 18, Amount: 1}, signer(testOwner), f.record)
		require.ErrorIs(t, err, domain.ErrRecordIDMismatch)
		err = f.run(domain.CloseCampaign{CampaignID: 18}, signer(testOwner), f.record)
		require.ErrorIs(t, err, domain.ErrRecordIDMismatch)
	})
	t.Run("foreign record", func(t *testing.T) {
		foreign := f.record.Clone()
		foreign.Owner = testStranger
		err := f.run(domain.ClaimReward{CampaignID: 17, Amount: 1, Nonce: 1}, signer(testOwner), foreign, plain(testRecipient))
		require.ErrorIs(t, err, domain.ErrWrongOwnerOfRecord)
	})
	t.Run("truncated record", func(t *testing.T) {
		short := f.record.Clone()
		short.Data = short.Data[:domain.RecordSize-1]
		err := f.run(domain.CloseCampaign{CampaignID: 17}, signer(testOwner), short)
		require.ErrorIs(t, err, domain.ErrCorruptRecord)
	})
	t.Run("missing recipient", func(t *testing.T) {
		err := f.run(domain.ClaimReward{CampaignID: 17, Amount: 1, Nonce: 1}, signer(testOwner), f.record)
		require.ErrorIs(t, err, domain.ErrMalformedRequest)
	})
}

func TestUninitializedRecordRejected(t *testing.T) {
	// Campaign 0 matches the id a zeroed buffer decodes to.
	f := newFixture(t, 0)
	before := f.snapshot()

	require.ErrorIs(t, f.deposit(5), domain.ErrCorruptRecord)
	require.ErrorIs(t, f.claim(testStranger, 1, 1), domain.ErrCorruptRecord)
	require.ErrorIs(t, f.close(), domain.ErrCorruptRecord)
	zero := domain.Identity{}
	err := f.run(domain.CloseCampaign{CampaignID: 0}, signer(zero), f.record)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Equal(t, before, f.record.Data)

	require.NoError(t, f.initialize())
	require.NoError(t, f.deposit(5))
	require.Equal(t, uint64(5), f.state(t).TotalDeposited)
}

func TestInitializeChecks(t *testing.T) {
	const id = 21
	for _, tc := range []struct {
		name   string
		mutate func(f *fixture, accounts []*domain.Account)
		want   error
	}{
		{
			name:   "unsigned initiator",
			mutate: func(_ *fixture, a []*domain.Account) { a[0].IsSigner = false },
			want:   domain.ErrUnauthorized,
		},
		{
			name:   "record owned elsewhere",
			mutate: func(_ *fixture, a []*domain.Account) { a[1].Owner = testStranger },
			want:   domain.ErrWrongOwnerOfRecord,
		},
		{
			name:   "record too small",
			mutate: func(_ *fixture, a []*domain.Account) { a[1].Data = make([]byte, domain.RecordSize-1) },
			want:   domain.ErrBufferTooSmall,
		},
		{
			name:   "record already written",
			mutate: func(_ *fixture, a []*domain.Account) { a[1].Data[domain.RecordSize-1] = 1 },
			want:   domain.ErrAlreadyInitialized,
		},
		{
			name:   "substituted record address",
			mutate: func(_ *fixture, a []*domain.Account) { a[1].Address = testStranger },
			want:   domain.ErrAddressMismatch,
		},
		{
			name: "record derived for another campaign",
			mutate: func(f *fixture, a []*domain.Account) {
				other, _, _ := f.p.CampaignAddress(id + 1)
				a[1].Address = other
			},
			want: domain.ErrAddressMismatch,
		},
		{
			name: "initialized record of another campaign",
			mutate: func(f *fixture, a []*domain.Account) {
				other, _, _ := f.p.CampaignAddress(id + 1)
				a[1].Address = other
				_ = domain.CampaignRecord{CampaignID: id + 1, Owner: testOwner}.EncodeTo(a[1].Data)
			},
			want: domain.ErrAddressMismatch,
		},
		{
			name:   "zero identity initiator",
			mutate: func(_ *fixture, a []*domain.Account) { a[0].Address = domain.Identity{} },
			want:   domain.ErrUnauthorized,
		},
		{
			name:   "substituted vault",
			mutate: func(_ *fixture, a []*domain.Account) { a[3].Address = testStranger },
			want:   domain.ErrAddressMismatch,
		},
		{
			name: "vault swapped with record",
			mutate: func(f *fixture, a []*domain.Account) {
				a[3].Address = f.record.Address
			},
			want: domain.ErrAddressMismatch,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, id)
			accounts := []*domain.Account{signer(testOwner), f.record, plain(testValueKind), plain(f.vault)}
			tc.mutate(f, accounts)
			before := bytes.Clone(accounts[1].Data)
			data, _ := domain.InitializeCampaign{CampaignID: id}.MarshalBinary()
			err := f.p.Process(accounts, data)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, before, accounts[1].Data)
		})
	}

	t.Run("too few accounts", func(t *testing.T) {
		f := newFixture(t, id)
		err := f.run(domain.InitializeCampaign{CampaignID: id}, signer(testOwner), f.record, plain(testValueKind))
		require.ErrorIs(t, err, domain.ErrMalformedRequest)
	})

	t.Run("larger buffer keeps its tail", func(t *testing.T) {
		f := newFixture(t, id)
		f.record.Data = make([]byte, domain.RecordSize+8)
		require.NoError(t, f.initialize())
		require.Equal(t, make([]byte, 8), f.record.Data[domain.RecordSize:])
		require.Equal(t, uint64(id), f.state(t).CampaignID)
	})
}

func TestProcessRejectsMalformedPayload(t *testing.T) {
	p := New(testProgram)
	for _, data := range [][]byte{nil, {9}, {1, 0, 0}} {
		require.ErrorIs(t, p.Process(nil, data), domain.ErrMalformedRequest)
	}
}

// TestLedgerInvariants drives random operation sequences against one record
// and checks the accounting invariants after every step.
func TestLedgerInvariants(t *testing.T) {
	base := newFixture(t, 77)
	rapid.Check(t, func(rt *rapid.T) {
		f := &fixture{p: base.p, id: base.id, vault: base.vault, record: base.record.Clone()}
		f.record.Data = make([]byte, domain.RecordSize)
		require.NoError(rt, f.initialize())

		var nonces []uint64
		closed := false
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			before := f.snapshot()
			prev := f.state(rt)
			var (
				err     error
				isClaim bool
				nonce   uint64
				amount  uint64
			)
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				err = f.deposit(rapid.Uint64Range(0, 1<<62).Draw(rt, "deposit"))
			case 1:
				isClaim = true
				nonce = rapid.Uint64Range(0, 64).Draw(rt, "nonce")
				by := rapid.SampledFrom([]domain.Identity{testOwner, testStranger}).Draw(rt, "claimer")
				amount = rapid.Uint64Range(0, 1<<62).Draw(rt, "claim")
				err = f.claim(by, amount, nonce)
			default:
				err = f.close()
			}

			rec := f.state(rt)
			if err != nil {
				require.Equal(rt, before, f.record.Data)
				if closed && isClaim && amount > 0 {
					require.ErrorIs(rt, err, domain.ErrCampaignClosed)
				}
				continue
			}
			require.LessOrEqual(rt, rec.TotalClaimed, rec.TotalDeposited)
			require.GreaterOrEqual(rt, rec.TotalDeposited, prev.TotalDeposited)
			require.GreaterOrEqual(rt, rec.TotalClaimed, prev.TotalClaimed)
			require.Equal(rt, prev.Owner, rec.Owner)
			require.Equal(rt, prev.VaultAddress, rec.VaultAddress)
			if isClaim {
				require.False(rt, closed)
				if n := len(nonces); n > 0 {
					require.Greater(rt, nonce, nonces[n-1])
				}
				require.Equal(rt, nonce, rec.LastNonce)
				nonces = append(nonces, nonce)
			}
			if rec.IsClosed {
				require.Equal(rt, rec.TotalDeposited, rec.TotalClaimed)
				closed = true
			}
		}
	})
}
