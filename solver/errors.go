package solver

import "errors"

// Sentinel errors for solver operations.
var (
	// ErrNilContext indicates Solve was called with a nil context.
	ErrNilContext = errors.New("solver: nil context")

	// ErrAborted indicates the context ended before the search completed.
	// The context error is wrapped alongside it.
	ErrAborted = errors.New("solver: search aborted")
)
