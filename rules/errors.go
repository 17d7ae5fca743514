package rules

import (
	"errors"
	"fmt"
)

// Sentinel errors for builder misuse. Builder methods panic with an error
// wrapping one of these when a required function argument is nil.
var (
	// ErrNilCondition indicates a nil predicate passed to And or Or.
	ErrNilCondition = errors.New("condition must not be nil")

	// ErrNilValueFactory indicates a nil factory passed to ThenInContext.
	ErrNilValueFactory = errors.New("value factory must not be nil")

	// ErrNilStreamFactory indicates a nil sub-item sequence factory.
	ErrNilStreamFactory = errors.New("stream factory must not be nil")

	// ErrNilValueSupplier indicates a nil per-sub-item value supplier.
	ErrNilValueSupplier = errors.New("value supplier must not be nil")

	// ErrNilFieldAccessor indicates a nil accessor passed to Field.
	ErrNilFieldAccessor = errors.New("field accessor must not be nil")

	// ErrNilSubBuilder indicates a nil When callback, or a callback returning nil.
	ErrNilSubBuilder = errors.New("sub-condition builder must not be nil")
)

// mustNotBeNil panics with err wrapped in the calling operation's name when
// isNil reports true.
func mustNotBeNil(isNil bool, op string, err error) {
	if isNil {
		panic(fmt.Errorf("rules: %s: %w", op, err))
	}
}
