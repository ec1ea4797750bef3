// File: core/trusted/index.go
// Author: momentics <momentics@gmail.com>
//
// Branded index handles. An Index is a vetted boundary position; a
// NonEmptyIndex additionally proves an element exists at that position.

package trusted

import "fmt"

// Index is a vetted position with proof Unknown: at creation time
// pos <= len of the originating container, with equality only for the
// one-past-the-end sentinel. An Index can be used to bound slices and
// cursors but not to dereference an element.
//
// The zero Index carries the zero token and is rejected by every
// container.
type Index struct {
	pos uint32
	tok Token
}

// indexAt is the only constructor. Callers must have vetted pos <= len
// for the container owning tok.
func indexAt(pos uint32, tok Token) Index {
	return Index{pos: pos, tok: tok}
}

// Pos extracts the raw numeric position. This is the irreversible trust
// extraction: the result carries no brand.
func (ix Index) Pos() uint32 { return ix.pos }

// Token returns the identity of the container this index was vetted for.
func (ix Index) Token() Token { return ix.tok }

// NonEmptyIn tries to prove this index references an element of b:
// the tokens must match and the position must be strictly inside the
// sequence.
func (ix Index) NonEmptyIn(b Bound) (NonEmptyIndex, bool) {
	if !ix.tok.Matches(b.Token()) || ix.pos >= b.Len() {
		return NonEmptyIndex{}, false
	}
	return nonEmptyAt(ix.pos, ix.tok), true
}

// InRange tries to prove this index references an element inside r.
func (ix Index) InRange(r Range) (NonEmptyIndex, bool) {
	return r.Contains(ix)
}

// String implements fmt.Stringer.
func (ix Index) String() string { return fmt.Sprintf("Index(%d)", ix.pos) }

// NonEmptyIndex is a vetted position with proof NonEmpty: a valid element
// exists at the position (pos < len), so one successor step is always
// legal. It embeds Index, making proof discard implicit.
type NonEmptyIndex struct {
	Index
}

// nonEmptyAt is the only constructor. Callers must have vetted pos < len.
func nonEmptyAt(pos uint32, tok Token) NonEmptyIndex {
	return NonEmptyIndex{Index: indexAt(pos, tok)}
}

// After returns the boundary immediately past this element. The NonEmpty
// proof guarantees pos < len, hence pos+1 <= len: the result is always a
// valid boundary with proof Unknown. For Text containers use Text.After,
// which steps a whole code point.
func (ix NonEmptyIndex) After() Index {
	return indexAt(ix.pos+1, ix.tok)
}

// Erased returns this index without its emptiness proof.
func (ix NonEmptyIndex) Erased() Index { return ix.Index }
