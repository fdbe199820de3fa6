package engine

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every MalformedError.
var ErrMalformed = errors.New("malformed input")

// MalformedError reports a malformed unit in fatal mode.
//
// In the default replacement mode malformed input is never an error; each
// malformed unit becomes one replacement character instead.
type MalformedError struct {
	// Offset is the stream offset, since the last reset, of the first byte of
	// the malformed unit.
	Offset int64

	// Truncated is set when the stream ended in the middle of a unit.
	Truncated bool
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("%v: truncated sequence at offset %d", ErrMalformed, e.Offset)
	}
	return fmt.Sprintf("%v: invalid sequence at offset %d", ErrMalformed, e.Offset)
}

// Unwrap returns ErrMalformed.
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// IsMalformed returns true if err is, or wraps, a MalformedError.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// ContractError describes a step function that broke the Outcome contract.
//
// These are programming errors in the step, not bad input. The engine panics
// with a *ContractError rather than guess at what the step meant.
type ContractError struct {
	// Code identifies the violated rule.
	Code ContractErrorCode

	// Message is a human-readable description.
	Message string

	// Window is the length of the window handed to the step.
	Window int

	// Read and Need echo the offending Outcome.
	Read int
	Need int
}

// ContractErrorCode categorizes contract violations.
type ContractErrorCode string

const (
	// ErrCodeReadOutOfRange indicates Read was negative or past the window.
	ErrCodeReadOutOfRange ContractErrorCode = "READ_OUT_OF_RANGE"

	// ErrCodeNeedOutOfRange indicates Need was below one or above MaxUnitWidth.
	ErrCodeNeedOutOfRange ContractErrorCode = "NEED_OUT_OF_RANGE"

	// ErrCodeNoProgress indicates the step consumed nothing although the
	// window already held the bytes it asked for.
	ErrCodeNoProgress ContractErrorCode = "NO_PROGRESS"

	// ErrCodeInvalidPastEnd indicates the malformed unit to skip runs past the
	// end of the window.
	ErrCodeInvalidPastEnd ContractErrorCode = "INVALID_PAST_END"
)

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s (window=%d, read=%d, need=%d)", e.Code, e.Message, e.Window, e.Read, e.Need)
}

// IsContractError returns true if err is a ContractError.
// Uses errors.As to handle wrapped errors.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

func newContractError(code ContractErrorCode, message string, window, read, need int) *ContractError {
	return &ContractError{
		Code:    code,
		Message: message,
		Window:  window,
		Read:    read,
		Need:    need,
	}
}
