// Package program is the campaign state machine. A Processor decodes one
// request, checks it against the accounts the host supplies and rewrites
// the campaign record in place. It holds no state between calls; the host
// is responsible for locking the accounts and for discarding every write
// when Process returns an error.
package program

import (
	"fmt"
	"log/slog"

	"dropy/internal/core/domain"
	"dropy/internal/core/pda"
)

// Deriver computes a program derived address and its bump for seeds.
type Deriver func(seeds [][]byte, program domain.Identity) (domain.Identity, uint8, error)

// Processor executes requests on behalf of one program identity.
type Processor struct {
	id     domain.Identity
	derive Deriver
	logger *slog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithDeriver replaces the address derivation function.
func WithDeriver(d Deriver) Option {
	return func(p *Processor) { p.derive = d }
}

// WithLogger sets the logger used for per-transition debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Processor acting as programID.
func New(programID domain.Identity, opts ...Option) *Processor {
	p := &Processor{
		id:     programID,
		derive: pda.FindProgramAddress,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the program identity.
func (p *Processor) ID() domain.Identity {
	return p.id
}

// Process decodes data and dispatches it against accounts.
func (p *Processor) Process(accounts []*domain.Account, data []byte) error {
	ix, err := domain.DecodeInstruction(data)
	if err != nil {
		return err
	}
	return p.Dispatch(ix, accounts)
}

// Dispatch routes ix to its handler and returns the handler's result
// unchanged.
func (p *Processor) Dispatch(ix domain.Instruction, accounts []*domain.Account) error {
	switch ix := ix.(type) {
	case domain.InitializeCampaign:
		return p.initializeCampaign(ix, accounts)
	case domain.DepositRewards:
		return p.depositRewards(ix, accounts)
	case domain.ClaimReward:
		return p.claimReward(ix, accounts)
	case domain.CloseCampaign:
		return p.closeCampaign(ix, accounts)
	default:
		return fmt.Errorf("%w: unsupported instruction %T", domain.ErrMalformedRequest, ix)
	}
}
