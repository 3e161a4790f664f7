package sim

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks a malformed distribution table or simulation config.
// Configuration errors surface before a run starts and are never recovered.
var ErrConfiguration = errors.New("configuration error")

// ErrInvariantViolation marks a logic defect detected while a run is in progress.
// A run that hits one is aborted rather than allowed to produce wrong statistics.
var ErrInvariantViolation = errors.New("internal invariant violation")

var (
	// ErrEmptyQueue is returned by WaitingArea.Pop when the area holds no arrivals.
	ErrEmptyQueue = fmt.Errorf("%w: pop from empty waiting area", ErrInvariantViolation)

	// ErrNonMonotonicCommit is returned by ServerPool.Commit when a service would
	// start before the server's current free time.
	ErrNonMonotonicCommit = fmt.Errorf("%w: service starts before server is free", ErrInvariantViolation)
)
