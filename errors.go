// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

package patricia

import "fmt"

// Sentinel errors returned by Trie operations. Use errors.Is to test for a
// particular kind; the richer *Error wrapper types below carry payload and
// Unwrap to these sentinels.
var (
	// ErrBadKey is returned when a key fails to parse, or parses to a
	// prefix that violates the trie's family or maxbits.
	ErrBadKey = fmt.Errorf("patricia: bad key")

	// ErrNotFound is returned by an exact lookup, delete, Children or
	// Parent call for a prefix that is not stored in the trie.
	ErrNotFound = fmt.Errorf("patricia: not found")

	// ErrFrozen is returned by any mutating operation on a frozen trie.
	ErrFrozen = fmt.Errorf("patricia: trie is frozen")

	// ErrCapacity is returned when an insert would exceed the trie's
	// configured MaxNodes ceiling.
	ErrCapacity = fmt.Errorf("patricia: node capacity exceeded")

	// ErrCorruptState is returned by Restore when a snapshot fails
	// structural validation.
	ErrCorruptState = fmt.Errorf("patricia: corrupt snapshot")
)

// BadKeyError wraps ErrBadKey with the offending input for diagnostics.
type BadKeyError struct {
	Input any
	Err   error // underlying parse error, may be nil
}

func (e *BadKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("patricia: bad key %#v: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("patricia: bad key %#v", e.Input)
}

// Unwrap returns the sentinel value ErrBadKey.
func (e *BadKeyError) Unwrap() error { return ErrBadKey }

func badKey(input any, err error) error {
	return &BadKeyError{Input: input, Err: err}
}

// CorruptStateError wraps ErrCorruptState with a human-readable reason.
type CorruptStateError struct {
	Reason string
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("patricia: corrupt snapshot: %s", e.Reason)
}

// Unwrap returns the sentinel value ErrCorruptState.
func (e *CorruptStateError) Unwrap() error { return ErrCorruptState }

func corruptState(reason string) error {
	return &CorruptStateError{Reason: reason}
}
