package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus is the outcome of one submitted request.
type ExecutionStatus string

const (
	ExecutionApplied  ExecutionStatus = "applied"
	ExecutionRejected ExecutionStatus = "rejected"
)

// Execution is an audit entry for a submitted request. It is written after
// the request's own unit of work has committed or rolled back, so rejected
// requests are recorded too. Operation is empty when the payload could not
// be decoded.
type Execution struct {
	ID         uuid.UUID
	CampaignID uint64
	Operation  string
	Signer     Identity
	Amount     uint64
	Nonce      uint64
	Status     ExecutionStatus
	ErrorCode  *Code
	Error      string
	CreatedAt  time.Time
}
