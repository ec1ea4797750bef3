// File: adapters/mmap/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux mmap backend via golang.org/x/sys/unix.

//go:build linux

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps path read-only. An empty file yields an empty region.
func Open(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size == 0 {
		return &Region{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Region{data: data}, nil
}

// Close unmaps the region. Containers built over it must not be used
// afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	return unix.Munmap(data)
}
