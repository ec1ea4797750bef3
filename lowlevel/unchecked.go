// File: lowlevel/unchecked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unchecked positional access primitives. These functions perform no bounds
// checking at all: the caller must hold a proof (a vetted handle from
// core/trusted) that every position is in bounds. The trusted container
// calls into this package after its token check, which is how a vetted
// handle skips per-access re-validation.

package lowlevel

import "unsafe"

// Elem returns a pointer to s[i] without a bounds check.
//
// Contract: i < len(s).
func Elem[T any](s []T, i uint32) *T {
	var t T
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*unsafe.Sizeof(t)))
}

// SubSlice returns s[start:end:end] without bounds checks.
//
// Contract: start <= end <= len(s).
func SubSlice[T any](s []T, start, end uint32) []T {
	var t T
	base := unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(start)*unsafe.Sizeof(t))
	return unsafe.Slice((*T)(base), end-start)
}

// Byte returns s[i] without a bounds check.
//
// Contract: i < len(s).
func Byte(s string, i uint32) byte {
	return *(*byte)(unsafe.Add(unsafe.Pointer(unsafe.StringData(s)), uintptr(i)))
}

// SubString returns s[start:end] without bounds checks and without copying.
//
// Contract: start <= end <= len(s).
func SubString(s string, start, end uint32) string {
	if start == end {
		return ""
	}
	base := (*byte)(unsafe.Add(unsafe.Pointer(unsafe.StringData(s)), uintptr(start)))
	return unsafe.String(base, end-start)
}
