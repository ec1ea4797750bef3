// File: core/trusted/text.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The branded UTF-8 text container. Positions are byte offsets; a
// position is vettable only on a code point boundary, so every vetted
// handle marks whole characters. The backing string is validated as
// UTF-8 exactly once, at construction; afterwards only O(1) leading-byte
// probes are ever needed.

package trusted

import (
	"unicode/utf8"

	"github.com/momentics/windex/api"
	"github.com/momentics/windex/lowlevel"
)

// Text brands an immutable UTF-8 string with a capability token.
type Text struct {
	s   string
	tok Token
}

// NewText constructs a text container around s, minting its token. It
// fails with CodeNotBoundary at the offset of the first invalid byte if
// s is not well-formed UTF-8; the single construction-time pass is what
// lets every later probe be O(1).
func NewText(s string) (*Text, error) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, api.NewError(api.CodeNotBoundary, uint32(i), uint32(len(s)))
		}
		i += size
	}
	return &Text{s: s, tok: newToken()}, nil
}

// isLeading reports whether b starts a UTF-8 code point.
// Equivalent to b < 0x80 || b >= 0xC0.
func isLeading(b byte) bool { return int8(b) >= -0x40 }

// charWidth returns the encoded width of the code point starting with
// leading byte b.
func charWidth(b byte) uint32 {
	switch {
	case b < 0x80:
		return 1
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// Len returns the text length in bytes.
func (t *Text) Len() uint32 { return uint32(len(t.s)) }

// IsEmpty reports whether the text is empty.
func (t *Text) IsEmpty() bool { return t.Len() == 0 }

// Token returns the container's capability token.
func (t *Text) Token() Token { return t.tok }

// Untrusted returns the backing string without the branding.
func (t *Text) Untrusted() string { return t.s }

// AsRange returns the full range [0, len).
func (t *Text) AsRange() Range { return rangeAt(0, t.Len(), t.tok) }

// Start returns the first boundary of the text.
func (t *Text) Start() Index { return indexAt(0, t.tok) }

// End returns the one-past-the-end boundary.
func (t *Text) End() Index { return indexAt(t.Len(), t.tok) }

// boundary reports whether pos is a vettable boundary: the end sentinel
// or the start of a code point.
func (t *Text) boundary(pos uint32) bool {
	return pos == t.Len() || isLeading(lowlevel.Byte(t.s, pos))
}

// Vet validates a raw byte offset as referencing a character. It fails
// with CodeOutOfBounds iff pos >= Len, and with CodeNotBoundary if pos
// lands inside a multi-byte code point.
func (t *Text) Vet(pos uint32) (NonEmptyIndex, error) {
	if pos >= t.Len() {
		return NonEmptyIndex{}, api.NewError(api.CodeOutOfBounds, pos, t.Len())
	}
	if !isLeading(lowlevel.Byte(t.s, pos)) {
		return NonEmptyIndex{}, api.NewError(api.CodeNotBoundary, pos, t.Len())
	}
	return nonEmptyAt(pos, t.tok), nil
}

// VetEdge validates a raw byte offset as a boundary, accepting the
// one-past-the-end sentinel.
func (t *Text) VetEdge(pos uint32) (Index, error) {
	if pos > t.Len() {
		return Index{}, api.NewError(api.CodeOutOfBounds, pos, t.Len())
	}
	if !t.boundary(pos) {
		return Index{}, api.NewError(api.CodeNotBoundary, pos, t.Len())
	}
	return indexAt(pos, t.tok), nil
}

// VetRange validates a raw byte span; both endpoints must be boundaries.
func (t *Text) VetRange(s api.Span) (Range, error) {
	if s.Inverted() || s.End > t.Len() {
		return Range{}, api.NewSpanError(api.CodeOutOfBounds, s.Start, s.End, t.Len())
	}
	if !t.boundary(s.Start) {
		return Range{}, api.NewError(api.CodeNotBoundary, s.Start, t.Len())
	}
	if !t.boundary(s.End) {
		return Range{}, api.NewError(api.CodeNotBoundary, s.End, t.Len())
	}
	return rangeAt(s.Start, s.End, t.tok), nil
}

// CharAt decodes the code point at a vetted index. A handle that has
// drifted off a boundary (through unit-step derivation meant for element
// containers) is rejected with CodeNotBoundary, never decoded.
func (t *Text) CharAt(ix NonEmptyIndex) (rune, error) {
	if !ix.tok.Matches(t.tok) {
		return 0, api.NewError(api.CodeTokenMismatch, ix.pos, t.Len())
	}
	if !isLeading(lowlevel.Byte(t.s, ix.pos)) {
		return 0, api.NewError(api.CodeNotBoundary, ix.pos, t.Len())
	}
	r, _ := utf8.DecodeRuneInString(lowlevel.SubString(t.s, ix.pos, t.Len()))
	return r, nil
}

// Slice returns the substring covered by a vetted range without bounds
// checks, after O(1) boundary probes on both endpoints.
func (t *Text) Slice(r Range) (string, error) {
	if !r.tok.Matches(t.tok) {
		return "", api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, t.Len())
	}
	if !t.boundary(r.start) {
		return "", api.NewError(api.CodeNotBoundary, r.start, t.Len())
	}
	if !t.boundary(r.end) {
		return "", api.NewError(api.CodeNotBoundary, r.end, t.Len())
	}
	return lowlevel.SubString(t.s, r.start, r.end), nil
}

// SplitAround returns the two ranges flanking r: [0, r.start) and
// [r.end, len).
func (t *Text) SplitAround(r Range) (before, after Range, err error) {
	if !r.tok.Matches(t.tok) {
		return Range{}, Range{}, api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, t.Len())
	}
	return rangeAt(0, r.start, t.tok), rangeAt(r.end, t.Len(), t.tok), nil
}

// After returns the boundary one whole code point past ix. The NonEmpty
// proof plus construction-time UTF-8 validation guarantee the result is
// still a boundary <= Len.
func (t *Text) After(ix NonEmptyIndex) (Index, error) {
	if !ix.tok.Matches(t.tok) {
		return Index{}, api.NewError(api.CodeTokenMismatch, ix.pos, t.Len())
	}
	b := lowlevel.Byte(t.s, ix.pos)
	if !isLeading(b) {
		return Index{}, api.NewError(api.CodeNotBoundary, ix.pos, t.Len())
	}
	return indexAt(ix.pos+charWidth(b), t.tok), nil
}

// Advance steps ix one code point forward. ok is false when the
// successor is the end sentinel, i.e. no further element exists.
func (t *Text) Advance(ix NonEmptyIndex) (next NonEmptyIndex, ok bool, err error) {
	after, err := t.After(ix)
	if err != nil {
		return NonEmptyIndex{}, false, err
	}
	if after.pos >= t.Len() {
		return NonEmptyIndex{}, false, nil
	}
	return nonEmptyAt(after.pos, t.tok), true, nil
}

// Forward moves the cursor ix forward by steps whole code points within
// [r.start, r.end]. It reports false and leaves the cursor untouched when
// the step would cross the end boundary. A cursor off a code point
// boundary is rejected with CodeNotBoundary.
func (t *Text) Forward(r Range, ix *Index, steps uint32) (bool, error) {
	pos, err := t.cursorCheck(r, ix)
	if err != nil {
		return false, err
	}
	for ; steps > 0; steps-- {
		if pos == r.end {
			return false, nil
		}
		pos += charWidth(lowlevel.Byte(t.s, pos))
		if pos > r.end {
			return false, nil
		}
	}
	ix.pos = pos
	return true, nil
}

// Backward is Forward's mirror against the start boundary.
func (t *Text) Backward(r Range, ix *Index, steps uint32) (bool, error) {
	pos, err := t.cursorCheck(r, ix)
	if err != nil {
		return false, err
	}
	for ; steps > 0; steps-- {
		if pos == r.start {
			return false, nil
		}
		pos--
		for !isLeading(lowlevel.Byte(t.s, pos)) {
			pos--
		}
		if pos < r.start {
			return false, nil
		}
	}
	ix.pos = pos
	return true, nil
}

func (t *Text) cursorCheck(r Range, ix *Index) (uint32, error) {
	if !r.tok.Matches(t.tok) {
		return 0, api.NewSpanError(api.CodeTokenMismatch, r.start, r.end, t.Len())
	}
	if !ix.tok.Matches(t.tok) {
		return 0, api.NewError(api.CodeTokenMismatch, ix.pos, t.Len())
	}
	if ix.pos < r.start || ix.pos > r.end {
		return 0, api.NewError(api.CodeOutOfBounds, ix.pos, t.Len())
	}
	if !t.boundary(ix.pos) {
		return 0, api.NewError(api.CodeNotBoundary, ix.pos, t.Len())
	}
	return ix.pos, nil
}

// ScanFrom sweeps forward from ix while pred holds on each decoded code
// point, and returns the swept byte range [ix, stop). The result is empty
// when pred rejects the very first character.
func (t *Text) ScanFrom(ix NonEmptyIndex, pred func(rune) bool) (Range, error) {
	if !ix.tok.Matches(t.tok) {
		return Range{}, api.NewError(api.CodeTokenMismatch, ix.pos, t.Len())
	}
	if !isLeading(lowlevel.Byte(t.s, ix.pos)) {
		return Range{}, api.NewError(api.CodeNotBoundary, ix.pos, t.Len())
	}
	pos := ix.pos
	for pos < t.Len() {
		r, size := utf8.DecodeRuneInString(lowlevel.SubString(t.s, pos, t.Len()))
		if !pred(r) {
			break
		}
		pos += uint32(size)
	}
	return rangeAt(ix.pos, pos, t.tok), nil
}
