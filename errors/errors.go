// Package errors provides error handling for fuzzmap.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrKeyNotFound) {
//	    // handle lookup miss
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Sentinel errors for the lookup error taxonomy.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrKeyNotFound indicates resolution failed at some keypath segment
	// and no default factory was available
	ErrKeyNotFound = New("key not found")

	// ErrInvalidThreshold indicates a similarity threshold outside [0,100]
	ErrInvalidThreshold = New("invalid threshold")

	// ErrTraversal indicates a non-mapping value was reached before the
	// keypath was exhausted
	ErrTraversal = New("cannot traverse non-mapping value")
)

// KeyPathError reports a failed resolution. It carries the full requested
// keypath and the segment at which resolution stopped.
type KeyPathError struct {
	Keypath   []string // requested keypath, pre-split
	Segment   string   // segment that failed to match
	Index     int      // position of the failing segment within Keypath
	BestKey   string   // closest candidate at the failing level, if any
	BestScore int      // score of BestKey, meaningful only when BestKey != ""
}

func (e *KeyPathError) Error() string {
	if e.BestKey != "" {
		return fmt.Sprintf("no match for segment %q (index %d) in keypath %q: best candidate %q scored %d",
			e.Segment, e.Index, strings.Join(e.Keypath, "."), e.BestKey, e.BestScore)
	}
	return fmt.Sprintf("no match for segment %q (index %d) in keypath %q",
		e.Segment, e.Index, strings.Join(e.Keypath, "."))
}

func (e *KeyPathError) Unwrap() error { return ErrKeyNotFound }

// TraversalError reports that resolution descended into a value that is not
// a mapping while keypath segments remained.
type TraversalError struct {
	Keypath []string // requested keypath, pre-split
	Segment string   // segment that could not be applied
	Index   int      // position of the segment within Keypath
	Value   any      // the non-mapping value that was reached
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("cannot apply segment %q (index %d) in keypath %q: reached non-mapping value of type %T",
		e.Segment, e.Index, strings.Join(e.Keypath, "."), e.Value)
}

func (e *TraversalError) Unwrap() error { return ErrTraversal }

// NewInvalidThreshold returns an ErrInvalidThreshold for the given value,
// with a hint naming the valid range.
func NewInvalidThreshold(threshold int) error {
	return WithHint(
		Wrapf(ErrInvalidThreshold, "threshold %d out of range", threshold),
		"thresholds must lie in [0,100]")
}

// IsKeyNotFound checks if an error is or wraps ErrKeyNotFound
func IsKeyNotFound(err error) bool {
	return err != nil && Is(err, ErrKeyNotFound)
}

// IsTraversal checks if an error is or wraps ErrTraversal
func IsTraversal(err error) bool {
	return err != nil && Is(err, ErrTraversal)
}
