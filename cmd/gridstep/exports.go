package main

/*
#include <stdint.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"gridstep/internal/boundary"
)

//export step
func step(r *C.float, d *C.float, n C.int32_t) {
	stepQuiet(unsafe.Pointer(r), unsafe.Pointer(d), int32(n))
}

//export step_checked
func step_checked(r *C.float, d *C.float, n C.int32_t) C.int32_t {
	return C.int32_t(call(func() error {
		return boundary.Step(unsafe.Pointer(r), unsafe.Pointer(d), int32(n))
	}))
}

//export step_rule
func step_rule(r *C.float, d *C.float, n C.int32_t, rule *C.char) C.int32_t {
	var size int
	if rule != nil {
		size = int(C.strlen(rule))
	}
	return C.int32_t(stepNamed(unsafe.Pointer(r), unsafe.Pointer(d), int32(n), (*byte)(unsafe.Pointer(rule)), size))
}
