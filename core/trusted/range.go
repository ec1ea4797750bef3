// File: core/trusted/range.go
// Author: momentics <momentics@gmail.com>
//
// Branded range handles and the pure, token-preserving derivation algebra:
// split, join, covering union, end extension, frontiers and unit cursors.
// None of these touch the backing sequence; they only need the proof rules
// and arithmetic on already-vetted positions.

package trusted

import (
	"fmt"

	"github.com/momentics/windex/api"
)

// Range is a vetted half-open span [start, end) with proof Unknown:
// start <= end <= len of the originating container, no emptiness
// guarantee. The zero Range carries the zero token and is rejected by
// every container.
type Range struct {
	start uint32
	end   uint32
	tok   Token
}

// rangeAt is the only constructor. Callers must have vetted
// start <= end <= len for the container owning tok.
func rangeAt(start, end uint32, tok Token) Range {
	return Range{start: start, end: end, tok: tok}
}

// Len returns end-start. Well-defined: the construction invariant
// guarantees start <= end.
func (r Range) Len() uint32 { return r.end - r.start }

// IsEmpty reports whether the range holds no elements.
func (r Range) IsEmpty() bool { return r.start == r.end }

// Span extracts the raw numeric span. This is the irreversible trust
// extraction: the result carries no brand.
func (r Range) Span() api.Span { return api.Span{Start: r.start, End: r.end} }

// Token returns the identity of the container this range was vetted for.
func (r Range) Token() Token { return r.tok }

// Start returns the start boundary. Its proof is Unknown; promote with
// Range.NonEmpty and NonEmptyRange.First when an element is needed.
func (r Range) Start() Index { return indexAt(r.start, r.tok) }

// End returns the end boundary. Its proof is always Unknown: even for a
// non-empty range the exclusive end is not a dereferenceable element.
func (r Range) End() Index { return indexAt(r.end, r.tok) }

// NonEmpty is the single fallible promotion from Unknown to NonEmpty.
func (r Range) NonEmpty() (NonEmptyRange, bool) {
	if r.IsEmpty() {
		return NonEmptyRange{}, false
	}
	return nonEmptyRangeAt(r.start, r.end, r.tok), true
}

// SplitAt splits the range into [start, ix) and [ix, end). It reports
// false, with both halves zero, if ix was vetted for a different
// container or lies outside [start, end]. Both halves carry proof
// Unknown; splitting a NonEmptyRange at its own start leaves the
// receiver itself as the proven-non-empty right half.
func (r Range) SplitAt(ix Index) (left, right Range, ok bool) {
	if !ix.tok.Matches(r.tok) || ix.pos < r.start || ix.pos > r.end {
		return Range{}, Range{}, false
	}
	return rangeAt(r.start, ix.pos, r.tok), rangeAt(ix.pos, r.end, r.tok), true
}

// Join unions this range with an adjacent or overlapping one. It reports
// false on a foreign token or when a genuine gap separates the two spans
// (joining across a gap would cover unvetted positions). On success the
// result is the covering union.
func (r Range) Join(other Range) (Range, bool) {
	if !other.tok.Matches(r.tok) || r.end < other.start || other.end < r.start {
		return Range{}, false
	}
	return rangeAt(umin(r.start, other.start), umax(r.end, other.end), r.tok), true
}

// JoinCover returns the minimal range covering both spans, gap included.
// Unlike Join it never rejects a gap; it reports false only for a foreign
// token.
func (r Range) JoinCover(other Range) (Range, bool) {
	if !other.tok.Matches(r.tok) {
		return Range{}, false
	}
	return rangeAt(umin(r.start, other.start), umax(r.end, other.end), r.tok), true
}

// ExtendEnd widens the range to end at newEnd. It reports false for a
// foreign token or when newEnd would shrink the range. Adjacency is
// deliberately not required: newEnd is itself a vetted boundary of the
// same container, so every covered position is a valid boundary.
func (r Range) ExtendEnd(newEnd Index) (Range, bool) {
	if !newEnd.tok.Matches(r.tok) || newEnd.pos < r.end {
		return Range{}, false
	}
	return rangeAt(r.start, newEnd.pos, r.tok), true
}

// Frontiers returns the two zero-length ranges [start, start) and
// [end, end): insertion-point markers just before and just after this
// range.
func (r Range) Frontiers() (front, back Range) {
	return rangeAt(r.start, r.start, r.tok), rangeAt(r.end, r.end, r.tok)
}

// Contains tries to prove ix references an element inside this range.
func (r Range) Contains(ix Index) (NonEmptyIndex, bool) {
	if !ix.tok.Matches(r.tok) || ix.pos < r.start || ix.pos >= r.end {
		return NonEmptyIndex{}, false
	}
	return nonEmptyAt(ix.pos, ix.tok), true
}

// Forward moves the cursor ix forward by steps unit positions within
// [start, end]. It reports false and leaves the cursor untouched when the
// cursor is foreign, outside the range, or the step would cross the end
// boundary. Never panics; repeated failed calls never move the cursor.
func (r Range) Forward(ix *Index, steps uint32) bool {
	if !ix.tok.Matches(r.tok) || ix.pos < r.start || ix.pos > r.end {
		return false
	}
	next := uint64(ix.pos) + uint64(steps)
	if next > uint64(r.end) {
		return false
	}
	ix.pos = uint32(next)
	return true
}

// Backward is Forward's mirror against the start boundary.
func (r Range) Backward(ix *Index, steps uint32) bool {
	if !ix.tok.Matches(r.tok) || ix.pos < r.start || ix.pos > r.end {
		return false
	}
	if uint64(steps) > uint64(ix.pos)-uint64(r.start) {
		return false
	}
	ix.pos -= steps
	return true
}

// String implements fmt.Stringer.
func (r Range) String() string { return fmt.Sprintf("Range(%d,%d)", r.start, r.end) }

// NonEmptyRange is a vetted span with proof NonEmpty: start < end, so at
// least one element exists. It embeds Range, making proof discard
// implicit.
type NonEmptyRange struct {
	Range
}

// nonEmptyRangeAt is the only constructor. Callers must have vetted
// start < end <= len.
func nonEmptyRangeAt(start, end uint32, tok Token) NonEmptyRange {
	return NonEmptyRange{Range: rangeAt(start, end, tok)}
}

// Erased returns this range without its emptiness proof.
func (r NonEmptyRange) Erased() Range { return r.Range }

// First returns the first element's index. The NonEmpty proof makes this
// total: start < end <= len.
func (r NonEmptyRange) First() NonEmptyIndex {
	return nonEmptyAt(r.start, r.tok)
}

// Start returns the start index with the NonEmpty proof attached.
func (r NonEmptyRange) Start() NonEmptyIndex { return r.First() }

// Join unions with an adjacent or overlapping range. The result keeps the
// NonEmpty proof: a non-empty span unioned with anything is non-empty.
func (r NonEmptyRange) Join(other Range) (NonEmptyRange, bool) {
	j, ok := r.Range.Join(other)
	if !ok {
		return NonEmptyRange{}, false
	}
	return nonEmptyRangeAt(j.start, j.end, j.tok), true
}

// JoinCover returns the covering union, keeping the NonEmpty proof.
func (r NonEmptyRange) JoinCover(other Range) (NonEmptyRange, bool) {
	j, ok := r.Range.JoinCover(other)
	if !ok {
		return NonEmptyRange{}, false
	}
	return nonEmptyRangeAt(j.start, j.end, j.tok), true
}

// ExtendEnd widens the range, keeping the NonEmpty proof.
func (r NonEmptyRange) ExtendEnd(newEnd Index) (NonEmptyRange, bool) {
	e, ok := r.Range.ExtendEnd(newEnd)
	if !ok {
		return NonEmptyRange{}, false
	}
	return nonEmptyRangeAt(e.start, e.end, e.tok), true
}

// Advance moves the range's start up one unit position if the result is
// still non-empty. It reports false, leaving the range untouched, when
// only one element remains.
func (r *NonEmptyRange) Advance() bool {
	if r.start+1 >= r.end {
		return false
	}
	r.start++
	return true
}

func umin(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func umax(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
