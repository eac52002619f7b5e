// Command gridstep builds the C ABI of the step kernel:
//
//	go build -buildmode=c-shared -o libgridstep.so ./cmd/gridstep
//
// The generated header declares:
//
//	void    step(float *r, float *d, int32_t n);
//	int32_t step_checked(float *r, float *d, int32_t n);
//	int32_t step_rule(float *r, float *d, int32_t n, char *rule);
//
// r is the output grid and d the input grid, both row-major with at least n*n
// floats, 4-byte aligned and non-overlapping. step_checked and step_rule
// return 0 on success or a negative status; step reports nothing and leaves r
// untouched when the call is rejected.
package main

import (
	"unsafe"

	"gridstep/internal/boundary"
	_ "gridstep/internal/rules/average"
	_ "gridstep/internal/rules/diffusion"
	_ "gridstep/internal/rules/moore"
	_ "gridstep/internal/rules/shortcut"
)

// call keeps a Go panic from unwinding into the foreign caller.
func call(fn func() error) (code int32) {
	defer func() {
		if recover() != nil {
			code = boundary.StatusInternal
		}
	}()
	return boundary.Code(fn())
}

// stepQuiet runs the default rule and drops the status, leaving r untouched
// when the call is rejected.
func stepQuiet(r, d unsafe.Pointer, n int32) {
	_ = call(func() error {
		return boundary.Step(r, d, n)
	})
}

// stepNamed runs the rule whose name is the size bytes at rule. The name is
// read in place and not retained after return.
func stepNamed(r, d unsafe.Pointer, n int32, rule *byte, size int) int32 {
	if rule == nil {
		return boundary.StatusUnknownRule
	}
	name := unsafe.String(rule, size)
	return call(func() error {
		return boundary.StepRule(r, d, n, name)
	})
}

func main() {}
