// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sgrams/cycle"
)

// Sentinel errors for catalog lookups and validation.
var (
	// ErrIndexOutOfRange indicates a structure index outside [MinIndex, MaxIndex].
	ErrIndexOutOfRange = errors.New("catalog: index out of range")

	// ErrPatternNotFound indicates a key present in neither the patterns nor
	// the additionalFactors namespace of a structure.
	ErrPatternNotFound = errors.New("catalog: pattern not found")

	// ErrBadDivisor indicates a malformed divisor key.
	ErrBadDivisor = errors.New("catalog: malformed divisor")

	// ErrCatalogInvalid indicates the literal table failed validation.
	ErrCatalogInvalid = errors.New("catalog: invalid literal data")
)

// StateError reports a state that is not part of the resolved pattern.
// It unwraps to cycle.ErrStateNotFound.
type StateError struct {
	Index     int       // owning structure index
	Namespace Namespace // namespace the key resolved in
	Pattern   string    // divisor key
	State     int       // offending value
}

// Error implements error.
func (e *StateError) Error() string {
	return fmt.Sprintf("catalog: state %d not in %s pattern %q of s%d",
		e.State, e.Namespace, e.Pattern, e.Index+1)
}

// Unwrap exposes the cycle sentinel for errors.Is.
func (e *StateError) Unwrap() error { return cycle.ErrStateNotFound }
