// SPDX-License-Identifier: MIT

package cycle

import "errors"

// Sentinel errors for cycle construction and navigation.
// Callers branch with errors.Is; context is attached with %w by the caller.
var (
	// ErrEmptySequence indicates a cycle was requested over no elements.
	ErrEmptySequence = errors.New("cycle: sequence is empty")

	// ErrNegativeState indicates a sequence element below zero.
	ErrNegativeState = errors.New("cycle: negative state")

	// ErrDuplicateState indicates a sequence element that appears twice,
	// which would make the cycle ambiguous to navigate.
	ErrDuplicateState = errors.New("cycle: duplicate state")

	// ErrStateNotFound indicates navigation from a value the cycle does not hold.
	ErrStateNotFound = errors.New("cycle: state not found")
)
