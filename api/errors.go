// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for the windex library.
//
// Every failure in this library is local and recoverable: an operation
// returns an *IndexError to its immediate caller and touches nothing.
// Nothing here aborts the process, and no invalid input is ever clamped.

package api

import "fmt"

// ErrorCode identifies the failure class of an *IndexError.
type ErrorCode int

const (
	CodeOK ErrorCode = iota

	// CodeOutOfBounds: a raw position or span lies outside [0, len].
	CodeOutOfBounds

	// CodeNotBoundary: a position inside a text sequence does not fall on
	// a UTF-8 code point start.
	CodeNotBoundary

	// CodeOverlap: two ranges requested for simultaneous mutable access
	// are not disjoint.
	CodeOverlap

	// CodeTokenMismatch: a handle vetted by a different container instance
	// was presented. This is the runtime substitute for a compile-time
	// brand; see the trusted package documentation.
	CodeTokenMismatch

	// CodeShrink: an end-extension would move a range end backwards.
	CodeShrink

	// CodeNotSupported: the operation is defined but deliberately not
	// available (interior insert on a growable container, mmap on a
	// platform without support).
	CodeNotSupported
)

// String returns the stable name of the code.
func (c ErrorCode) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeOutOfBounds:
		return "out-of-bounds"
	case CodeNotBoundary:
		return "not-a-boundary"
	case CodeOverlap:
		return "overlap"
	case CodeTokenMismatch:
		return "token-mismatch"
	case CodeShrink:
		return "shrink"
	case CodeNotSupported:
		return "not-supported"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// IndexError is the structured error returned by all fallible container
// operations. Pos/End describe the offending position or span; Len is the
// container length at the time of the call.
type IndexError struct {
	Code ErrorCode
	Pos  uint32
	End  uint32
	Len  uint32
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.End > e.Pos {
		return fmt.Sprintf("windex: %s: span [%d,%d) with len %d", e.Code, e.Pos, e.End, e.Len)
	}
	return fmt.Sprintf("windex: %s: position %d with len %d", e.Code, e.Pos, e.Len)
}

// Is reports code equality, so callers can match with errors.Is against a
// bare-code template such as &IndexError{Code: CodeOverlap}.
func (e *IndexError) Is(target error) bool {
	t, ok := target.(*IndexError)
	return ok && t.Code == e.Code
}

// NewError creates an *IndexError for a single position.
func NewError(code ErrorCode, pos, length uint32) *IndexError {
	return &IndexError{Code: code, Pos: pos, Len: length}
}

// NewSpanError creates an *IndexError for a half-open span.
func NewSpanError(code ErrorCode, start, end, length uint32) *IndexError {
	return &IndexError{Code: code, Pos: start, End: end, Len: length}
}
