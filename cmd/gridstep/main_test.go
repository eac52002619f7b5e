package main

import (
	"testing"
	"unsafe"

	"gridstep/internal/boundary"
	"gridstep/internal/kernel"
)

func TestCallMapsErrors(t *testing.T) {
	if got := call(func() error { return nil }); got != boundary.StatusOK {
		t.Fatalf("expected status 0, got %d", got)
	}
	if got := call(func() error { return kernel.ErrAliased }); got != boundary.StatusAliased {
		t.Fatalf("expected aliased status, got %d", got)
	}
}

func TestCallRecoversPanics(t *testing.T) {
	got := call(func() error {
		var cells []float32
		_ = cells[3]
		return nil
	})
	if got != boundary.StatusInternal {
		t.Fatalf("expected internal status after panic, got %d", got)
	}
}

func addr(v []float32) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(v))
}

func TestStepNamed(t *testing.T) {
	in := []float32{0, 8, 2, 1, 0, 9, 4, 5, 0}
	out := make([]float32, 9)
	name := []byte("shortcut\x00")

	if got := stepNamed(addr(out), addr(in), 3, &name[0], len(name)-1); got != boundary.StatusOK {
		t.Fatalf("expected status 0, got %d", got)
	}
	want := []float32{0, 7, 2, 1, 0, 3, 4, 5, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v", i, out[i], want[i])
		}
	}

	if got := stepNamed(addr(out), addr(in), 3, nil, 0); got != boundary.StatusUnknownRule {
		t.Fatalf("nil rule name should report unknown rule, got %d", got)
	}
	bogus := []byte("nope")
	if got := stepNamed(addr(out), addr(in), 3, &bogus[0], len(bogus)); got != boundary.StatusUnknownRule {
		t.Fatalf("unregistered rule should report unknown rule, got %d", got)
	}

	allocs := testing.AllocsPerRun(20, func() {
		stepNamed(addr(out), addr(in), 3, &name[0], len(name)-1)
	})
	if allocs != 0 {
		t.Fatalf("named step allocated %v times", allocs)
	}
}

func TestStepQuietLeavesOutputOnRejection(t *testing.T) {
	buf := make([]float32, 16)
	for i := range buf {
		buf[i] = -1
	}
	stepQuiet(addr(buf[:9]), addr(buf[4:]), 3)
	for i, v := range buf {
		if v != -1 {
			t.Fatalf("cell %d changed to %v on a rejected call", i, v)
		}
	}

	in := []float32{1, 0, 0, 0, 0, 0, 0, 0, 0}
	out := make([]float32, 9)
	stepQuiet(addr(out), addr(in), 3)
	if out[1] != 0.25 || out[3] != 0.25 {
		t.Fatalf("accepted call did not step: %v", out)
	}
}
