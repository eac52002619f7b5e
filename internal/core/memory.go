package core

import "unsafe"

// CellSize is the width of one grid cell in bytes.
const CellSize = int(unsafe.Sizeof(float32(0)))

// IsAligned checks whether addr is a multiple of align. align must be a power
// of two.
func IsAligned(addr uintptr, align uintptr) bool {
	return addr&(align-1) == 0
}

// RangesOverlap reports whether the byte ranges [a, a+aLen) and [b, b+bLen)
// intersect. Empty ranges never overlap.
func RangesOverlap(a, aLen, b, bLen uintptr) bool {
	if aLen == 0 || bLen == 0 {
		return false
	}
	return a < b+bLen && b < a+aLen
}

// CellsOverlap reports whether the first count cells of a and b share memory.
func CellsOverlap(a, b []float32, count int) bool {
	if count <= 0 || len(a) == 0 || len(b) == 0 {
		return false
	}
	size := uintptr(count * CellSize)
	return RangesOverlap(
		uintptr(unsafe.Pointer(unsafe.SliceData(a))), size,
		uintptr(unsafe.Pointer(unsafe.SliceData(b))), size,
	)
}
