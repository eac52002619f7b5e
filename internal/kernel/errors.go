package kernel

import (
	"errors"
	"fmt"
)

// ErrContractViolation is wrapped by every error that reports a caller-side
// precondition breach.
var ErrContractViolation = errors.New("step contract violation")

var (
	// ErrNegativeDimension reports n < 0.
	ErrNegativeDimension = fmt.Errorf("%w: negative dimension", ErrContractViolation)
	// ErrDimensionTooLarge reports an n whose n*n cells do not fit in memory.
	ErrDimensionTooLarge = fmt.Errorf("%w: dimension too large", ErrContractViolation)
	// ErrShortBuffer reports a buffer holding fewer than n*n cells.
	ErrShortBuffer = fmt.Errorf("%w: buffer shorter than n*n", ErrContractViolation)
	// ErrAliased reports overlapping input and output buffers.
	ErrAliased = fmt.Errorf("%w: input and output overlap", ErrContractViolation)
	// ErrNilBuffer reports a nil buffer address.
	ErrNilBuffer = fmt.Errorf("%w: nil buffer", ErrContractViolation)
	// ErrMisaligned reports an address not aligned for float32 access.
	ErrMisaligned = fmt.Errorf("%w: misaligned buffer", ErrContractViolation)
)
