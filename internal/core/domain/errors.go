package domain

import (
	"errors"
	"fmt"
)

// Code is the stable external code of a program error. Values are part of
// the wire contract and must never be renumbered.
type Code uint32

const (
	CodeMalformedRequest Code = iota
	CodeUnauthorized
	CodeWrongOwnerOfRecord
	CodeBufferTooSmall
	CodeAddressMismatch
	CodeCorruptRecord
	CodeRecordIDMismatch
	CodeCampaignClosed
	CodeNotOwner
	CodeInvalidAmount
	CodeNonceNotIncreasing
	CodeArithmeticOverflow
	CodeInsufficientRemainingBalance
	CodeCampaignNotFullyClaimed
	CodeAlreadyInitialized
)

var codeNames = map[Code]string{
	CodeMalformedRequest:             "MalformedRequest",
	CodeUnauthorized:                 "Unauthorized",
	CodeWrongOwnerOfRecord:           "WrongOwnerOfRecord",
	CodeBufferTooSmall:               "BufferTooSmall",
	CodeAddressMismatch:              "AddressMismatch",
	CodeCorruptRecord:                "CorruptRecord",
	CodeRecordIDMismatch:             "RecordIdMismatch",
	CodeCampaignClosed:               "CampaignClosed",
	CodeNotOwner:                     "NotOwner",
	CodeInvalidAmount:                "InvalidAmount",
	CodeNonceNotIncreasing:           "NonceNotIncreasing",
	CodeArithmeticOverflow:           "ArithmeticOverflow",
	CodeInsufficientRemainingBalance: "InsufficientRemainingBalance",
	CodeCampaignNotFullyClaimed:      "CampaignNotFullyClaimed",
	CodeAlreadyInitialized:           "AlreadyInitialized",
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint32(c))
}

// Error is a program error. Two errors are equal under errors.Is when their
// codes match, so the sentinels below can be wrapped with extra context.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrMalformedRequest             = &Error{CodeMalformedRequest, "malformed request"}
	ErrUnauthorized                 = &Error{CodeUnauthorized, "missing required signature"}
	ErrWrongOwnerOfRecord           = &Error{CodeWrongOwnerOfRecord, "record is not owned by this program"}
	ErrBufferTooSmall               = &Error{CodeBufferTooSmall, "record buffer too small"}
	ErrAddressMismatch              = &Error{CodeAddressMismatch, "address does not match derivation"}
	ErrCorruptRecord                = &Error{CodeCorruptRecord, "corrupt campaign record"}
	ErrRecordIDMismatch             = &Error{CodeRecordIDMismatch, "campaign id does not match record"}
	ErrCampaignClosed               = &Error{CodeCampaignClosed, "campaign is closed"}
	ErrNotOwner                     = &Error{CodeNotOwner, "signer is not the campaign owner"}
	ErrInvalidAmount                = &Error{CodeInvalidAmount, "amount must be positive"}
	ErrNonceNotIncreasing           = &Error{CodeNonceNotIncreasing, "nonce not increasing"}
	ErrArithmeticOverflow           = &Error{CodeArithmeticOverflow, "arithmetic overflow"}
	ErrInsufficientRemainingBalance = &Error{CodeInsufficientRemainingBalance, "insufficient remaining balance"}
	ErrCampaignNotFullyClaimed      = &Error{CodeCampaignNotFullyClaimed, "campaign not fully claimed"}
	ErrAlreadyInitialized           = &Error{CodeAlreadyInitialized, "record already initialized"}
)

// CodeOf extracts the program error code from err. ok is false when err is
// nil or does not originate from the program, e.g. a storage failure.
func CodeOf(err error) (code Code, ok bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return 0, false
}
