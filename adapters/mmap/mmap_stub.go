// File: adapters/mmap/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback backend for platforms without mmap support.

//go:build !linux

package mmap

// Open always fails with ErrNotSupported on this platform.
func Open(path string) (*Region, error) {
	return nil, ErrNotSupported
}

// Close is a no-op on this platform.
func (r *Region) Close() error {
	r.data = nil
	return nil
}
