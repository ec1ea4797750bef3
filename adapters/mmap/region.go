// File: adapters/mmap/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read-only memory-mapped file regions as backing sequences for branded
// containers. The mapping is the "existing sequence" the core needs: the
// container only ever asks for its length and reads through vetted
// handles, so a page-backed byte slice serves as well as a heap one.

package mmap

import (
	"errors"
	"unsafe"

	"github.com/momentics/windex/core/trusted"
)

// ErrNotSupported is returned by Open on platforms without mmap support.
var ErrNotSupported = errors.New("mmap: not supported on this platform")

// Region is a read-only mapped file. It must outlive every container
// built over it; Close unmaps the pages and ends that window.
type Region struct {
	data []byte
}

// Bytes returns the mapped bytes. The slice aliases the mapping and must
// not be written or used after Close.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the mapping size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Container brands the mapping as a byte container. Treat it as
// read-only: the pages are mapped PROT_READ and a SetAt will fault.
func (r *Region) Container() *trusted.Container[byte] {
	return trusted.New(r.data)
}

// Text brands the mapping as a UTF-8 text container without copying.
// Fails like trusted.NewText when the file is not well-formed UTF-8.
func (r *Region) Text() (*trusted.Text, error) {
	if len(r.data) == 0 {
		return trusted.NewText("")
	}
	return trusted.NewText(unsafe.String(unsafe.SliceData(r.data), len(r.data)))
}
