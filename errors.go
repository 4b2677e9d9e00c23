package drips

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrAmtPerSecZero indicates a stream configuration with no flow rate.
	ErrAmtPerSecZero = errors.New("drips: amtPerSec must be greater than zero")

	// ErrAmtPerSecTooLarge indicates an amtPerSec that doesn't fit in 160 bits.
	ErrAmtPerSecTooLarge = errors.New("drips: amtPerSec exceeds 160 bits")

	// ErrConfigTooLarge indicates a packed configuration wider than 256 bits.
	ErrConfigTooLarge = errors.New("drips: packed configuration exceeds 256 bits")

	// ErrTooManyStreamReceivers indicates more than MaxStreamsReceivers entries.
	ErrTooManyStreamReceivers = errors.New("drips: too many stream receivers (max 100)")

	// ErrTooManySplitsReceivers indicates more than MaxSplitsReceivers entries.
	ErrTooManySplitsReceivers = errors.New("drips: too many splits receivers (max 200)")

	// ErrSplitsWeightZero indicates a splits receiver with zero weight.
	ErrSplitsWeightZero = errors.New("drips: splits weight must be greater than zero")

	// ErrSplitsWeightSum indicates splits weights summing above TotalSplitsWeight.
	ErrSplitsWeightSum = errors.New("drips: splits weights sum exceeds 1000000")

	// ErrReceiversNotSorted indicates receivers out of canonical order or duplicated.
	ErrReceiversNotSorted = errors.New("drips: receivers must be sorted and unique")

	// ErrAccountIDOverflow indicates an account sub-ID that doesn't fit its field.
	ErrAccountIDOverflow = errors.New("drips: account ID overflows its field")

	// ErrEmptyBatch indicates a Caller batch compiled with no calls.
	ErrEmptyBatch = errors.New("drips: batch contains no calls")

	// ErrInvalidHistoryEntry indicates a streams history entry with both or
	// neither of its hash and receiver list set.
	ErrInvalidHistoryEntry = errors.New("drips: history entry must set exactly one of hash and receivers")

	// ErrUnknownNetwork indicates a chain ID with no known deployment.
	ErrUnknownNetwork = errors.New("drips: no known deployment for chain ID")
)

// MethodNotFoundError indicates the contract ABI doesn't have the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("drips: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ReceiverError indicates an invalid entry in a receiver list.
type ReceiverError struct {
	Index int
	Err   error
}

func (e *ReceiverError) Error() string {
	return fmt.Sprintf("drips: receiver %d: %v", e.Index, e.Err)
}

func (e *ReceiverError) Unwrap() error {
	return e.Err
}

// CallError wraps failures of on-chain view calls.
type CallError struct {
	Contract common.Address
	Method   string
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("drips: call %s on %s: %v", e.Method, e.Contract.Hex(), e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// EncodingError indicates a failure during ABI encoding or decoding.
type EncodingError struct {
	Method string
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("drips: encoding %s: %v", e.Method, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
