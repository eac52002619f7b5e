// Package boundary is the only place where raw buffer addresses from a
// foreign caller become Go slices.
//
// Every check here is O(1): sign and size of n, nil and alignment of both
// addresses, and overlap of the two byte ranges. The extent of a raw buffer
// cannot be verified from its address, so "each buffer holds at least n*n
// floats" remains the caller's obligation. Past these checks the views are
// ordinary bounds-checked slices handed to the kernel package.
package boundary

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"gridstep/internal/core"
	"gridstep/internal/kernel"
)

// Status codes returned across the C boundary.
const (
	StatusOK          int32 = 0
	StatusNegative    int32 = -1
	StatusNil         int32 = -2
	StatusMisaligned  int32 = -3
	StatusAliased     int32 = -4
	StatusTooLarge    int32 = -5
	StatusShortBuffer int32 = -6
	StatusUnknownRule int32 = -7
	StatusInternal    int32 = -99
)

const cellAlign = uintptr(unsafe.Alignof(float32(0)))

var (
	prebuiltOnce sync.Once
	prebuilt     map[string]core.Rule
)

// rule returns the registered rule with its default configuration. Rules are
// built once so a call never allocates.
func rule(name string) (core.Rule, error) {
	prebuiltOnce.Do(func() {
		prebuilt = make(map[string]core.Rule, len(core.Rules()))
		for key, f := range core.Rules() {
			prebuilt[key] = f(nil)
		}
	})
	r, ok := prebuilt[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", core.ErrUnknownRule, name)
	}
	return r, nil
}

// Step advances the grid at in by one step into the grid at out using the
// default rule.
func Step(out, in unsafe.Pointer, n int32) error {
	return StepRule(out, in, n, kernel.DefaultRule)
}

// StepRule is Step with the rule selected by registry name.
func StepRule(out, in unsafe.Pointer, n int32, name string) error {
	r, err := rule(name)
	if err != nil {
		return err
	}
	outCells, inCells, err := Views(out, in, n)
	if err != nil {
		return err
	}
	return kernel.Apply(r, outCells, inCells, int(n))
}

// Views validates the raw arguments and returns exact n*n views over both
// buffers without copying. n == 0 yields two nil slices and never touches the
// addresses.
func Views(out, in unsafe.Pointer, n int32) (outCells, inCells []float32, err error) {
	count, err := kernel.CellCount(int(n))
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return nil, nil, nil
	}
	if out == nil || in == nil {
		return nil, nil, kernel.ErrNilBuffer
	}
	outAddr, inAddr := uintptr(out), uintptr(in)
	if !core.IsAligned(outAddr, cellAlign) || !core.IsAligned(inAddr, cellAlign) {
		return nil, nil, fmt.Errorf("out=%#x in=%#x: %w", outAddr, inAddr, kernel.ErrMisaligned)
	}
	size := uintptr(count) * uintptr(core.CellSize)
	if outAddr+size < outAddr || inAddr+size < inAddr {
		return nil, nil, fmt.Errorf("n=%d wraps the address space: %w", n, kernel.ErrDimensionTooLarge)
	}
	if core.RangesOverlap(outAddr, size, inAddr, size) {
		return nil, nil, kernel.ErrAliased
	}
	outCells = unsafe.Slice((*float32)(out), count)
	inCells = unsafe.Slice((*float32)(in), count)
	return outCells, inCells, nil
}

// Code maps an error from this package onto a stable status code.
func Code(err error) int32 {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, kernel.ErrNegativeDimension):
		return StatusNegative
	case errors.Is(err, kernel.ErrNilBuffer):
		return StatusNil
	case errors.Is(err, kernel.ErrMisaligned):
		return StatusMisaligned
	case errors.Is(err, kernel.ErrAliased):
		return StatusAliased
	case errors.Is(err, kernel.ErrDimensionTooLarge):
		return StatusTooLarge
	case errors.Is(err, kernel.ErrShortBuffer):
		return StatusShortBuffer
	case errors.Is(err, core.ErrUnknownRule):
		return StatusUnknownRule
	default:
		return StatusInternal
	}
}
