// File: core/trusted/container.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The branded slice container: sole validation authority for raw
// positions, and owner of every operation needing direct sequence access.
// After the per-call token comparison, element access goes through the
// lowlevel unchecked primitives; the vetting invariants make that sound.

package trusted

import (
	"github.com/momentics/windex/api"
	"github.com/momentics/windex/lowlevel"
)

// Container brands a []T with a capability token. It references the
// backing slice, it does not copy it. Positions are uint32; on platforms
// where len(items) exceeds that, the surplus tail is simply never
// vettable.
type Container[T any] struct {
	items []T
	tok   Token
}

// New constructs a container around items, minting its token.
func New[T any](items []T) *Container[T] {
	return &Container[T]{items: items, tok: newToken()}
}

// Len returns the container length in elements.
func (c *Container[T]) Len() uint32 { return uint32(len(c.items)) }

// IsEmpty reports whether the container holds no elements.
func (c *Container[T]) IsEmpty() bool { return c.Len() == 0 }

// Token returns the container's capability token.
func (c *Container[T]) Token() Token { return c.tok }

// Untrusted returns the backing slice without the branding.
func (c *Container[T]) Untrusted() []T { return c.items }

// AsRange returns the full range [0, len).
func (c *Container[T]) AsRange() Range { return rangeAt(0, c.Len(), c.tok) }

// Start returns the first boundary of the container.
func (c *Container[T]) Start() Index { return indexAt(0, c.tok) }

// End returns the one-past-the-end boundary.
func (c *Container[T]) End() Index { return indexAt(c.Len(), c.tok) }

// Vet validates a raw position as referencing an element. This is the
// sole way to manufacture a NonEmptyIndex from raw input; it fails with
// CodeOutOfBounds iff pos >= Len.
func (c *Container[T]) Vet(pos uint32) (NonEmptyIndex, error) {
	if pos >= c.Len() {
		return NonEmptyIndex{}, api.NewError(api.CodeOutOfBounds, pos, c.Len())
	}
	return nonEmptyAt(pos, c.tok), nil
}

// VetEdge validates a raw position as a boundary, accepting the
// one-past-the-end sentinel.
func (c *Container[T]) VetEdge(pos uint32) (Index, error) {
	if pos > c.Len() {
		return Index{}, api.NewError(api.CodeOutOfBounds, pos, c.Len())
	}
	return indexAt(pos, c.tok), nil
}

// VetRange validates a raw span. It fails with CodeOutOfBounds iff the
// span is inverted or its end exceeds Len.
func (c *Container[T]) VetRange(s api.Span) (Range, error) {
	if s.Inverted() || s.End > c.Len() {
		return Range{}, api.NewSpanError(api.CodeOutOfBounds, s.Start, s.End, c.Len())
	}
	return rangeAt(s.Start, s.End, c.tok), nil
}

// At reads the element at a vetted index without a bounds check. The only
// failure mode is a foreign token.
func (c *Container[T]) At(ix NonEmptyIndex) (T, error) {
	if !ix.tok.Matches(c.tok) {
		var zero T
		return zero, api.NewError(api.CodeTokenMismatch, ix.pos, c.Len())
	}
	return *lowlevel.Elem(c.items, ix.pos), nil
}

// SetAt writes the element at a vetted index without a bounds check.
func (c *Container[T]) SetAt(ix NonEmptyIndex, v T) error {
	if !ix.tok.Matches(c.tok) {
		return api.NewError(api.CodeTokenMismatch, ix.pos, c.Len())
	}
	*lowlevel.Elem(c.items, ix.pos) = v
	return nil
}

// Slice returns the subslice covered by a vetted range, without bounds
// checks. The view aliases the backing sequence.
func (c *Container[T]) Slice(r Range) ([]T, error) {
	if !r.tok.Matches(c.tok) {
		return nil, api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, c.Len())
	}
	return lowlevel.SubSlice(c.items, r.start, r.end), nil
}

// SplitAround returns the two ranges flanking r: [0, r.start) and
// [r.end, len). The only failure mode is a foreign token.
func (c *Container[T]) SplitAround(r Range) (before, after Range, err error) {
	if !r.tok.Matches(c.tok) {
		return Range{}, Range{}, api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, c.Len())
	}
	return rangeAt(0, r.start, c.tok), rangeAt(r.end, c.Len(), c.tok), nil
}

// ScanFrom sweeps forward from ix while pred holds, visiting elements in
// strictly increasing position order, and returns the swept range
// [ix, stop). The result is empty when pred rejects the very first
// element; promote with Range.NonEmpty where at least one step is known.
func (c *Container[T]) ScanFrom(ix NonEmptyIndex, pred func(T) bool) (Range, error) {
	if !ix.tok.Matches(c.tok) {
		return Range{}, api.NewError(api.CodeTokenMismatch, ix.pos, c.Len())
	}
	pos := ix.pos
	for pos < c.Len() && pred(*lowlevel.Elem(c.items, pos)) {
		pos++
	}
	return rangeAt(ix.pos, pos, c.tok), nil
}

// Swap exchanges the elements at two vetted indices. It is its own
// inverse; the only failure mode is a foreign token.
func (c *Container[T]) Swap(i, j NonEmptyIndex) error {
	if !i.tok.Matches(c.tok) {
		return api.NewError(api.CodeTokenMismatch, i.pos, c.Len())
	}
	if !j.tok.Matches(c.tok) {
		return api.NewError(api.CodeTokenMismatch, j.pos, c.Len())
	}
	pi, pj := lowlevel.Elem(c.items, i.pos), lowlevel.Elem(c.items, j.pos)
	*pi, *pj = *pj, *pi
	return nil
}

// Rotate1Up rotates the elements of r one step toward higher positions;
// the last element wraps to the front. Bounds and element multiset are
// preserved. Inverse of Rotate1Down.
func (c *Container[T]) Rotate1Up(r NonEmptyRange) error {
	if !r.tok.Matches(c.tok) {
		return api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, c.Len())
	}
	w := lowlevel.SubSlice(c.items, r.start, r.end)
	last := w[len(w)-1]
	copy(w[1:], w[:len(w)-1])
	w[0] = last
	return nil
}

// Rotate1Down rotates the elements of r one step toward lower positions;
// the first element wraps to the back. Inverse of Rotate1Up.
func (c *Container[T]) Rotate1Down(r NonEmptyRange) error {
	if !r.tok.Matches(c.tok) {
		return api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, c.Len())
	}
	w := lowlevel.SubSlice(c.items, r.start, r.end)
	first := w[0]
	copy(w[:len(w)-1], w[1:])
	w[len(w)-1] = first
	return nil
}

// IndexTwice hands out two independent mutable views, one per range, iff
// the ranges are disjoint. Overlapping requests fail with CodeOverlap and
// are never truncated. The returned slices are genuinely separate
// windows into the backing sequence, so simultaneous mutation through
// both is sound.
func (c *Container[T]) IndexTwice(a, b Range) (va, vb []T, err error) {
	if !a.tok.Matches(c.tok) {
		return nil, nil, api.NewSpanError(api.CodeTokenMismatch, a.start, a.end, c.Len())
	}
	if !b.tok.Matches(c.tok) {
		return nil, nil, api.NewSpanError(api.CodeTokenMismatch, b.start, b.end, c.Len())
	}
	if a.end > b.start && b.end > a.start {
		return nil, nil, api.NewSpanError(api.CodeOverlap, umax(a.start, b.start), umin(a.end, b.end), c.Len())
	}
	return lowlevel.SubSlice(c.items, a.start, a.end), lowlevel.SubSlice(c.items, b.start, b.end), nil
}
