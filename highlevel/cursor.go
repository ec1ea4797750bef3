// File: highlevel/cursor.go
// Author: momentics <momentics@gmail.com>
//
// Iterator adaptors over the trusted core. Cursors hold a vetted range
// and step through it with the core cursor primitives only; element reads
// go through the container's token-checked unchecked accessors.

package highlevel

import "github.com/momentics/windex/core/trusted"

// Cursor iterates the elements of a vetted range of a slice container in
// increasing position order.
type Cursor[T any] struct {
	c  *trusted.Container[T]
	r  trusted.Range
	ix trusted.Index
}

// NewCursor positions a cursor at the start of r.
func NewCursor[T any](c *trusted.Container[T], r trusted.Range) *Cursor[T] {
	return &Cursor[T]{c: c, r: r, ix: r.Start()}
}

// Next returns the element under the cursor and advances one position.
// ok is false at the end of the range or for a range vetted elsewhere.
func (cu *Cursor[T]) Next() (v T, ok bool) {
	elem, ok := cu.ix.InRange(cu.r)
	if !ok {
		return v, false
	}
	v, err := cu.c.At(elem)
	if err != nil {
		return v, false
	}
	cu.r.Forward(&cu.ix, 1)
	return v, true
}

// Index returns the cursor's current boundary position.
func (cu *Cursor[T]) Index() trusted.Index { return cu.ix }

// TextCursor iterates the code points of a vetted range of a text
// container.
type TextCursor struct {
	t  *trusted.Text
	r  trusted.Range
	ix trusted.Index
}

// NewTextCursor positions a cursor at the start of r.
func NewTextCursor(t *trusted.Text, r trusted.Range) *TextCursor {
	return &TextCursor{t: t, r: r, ix: r.Start()}
}

// Next returns the code point under the cursor and advances one whole
// character. ok is false at the end of the range or on a foreign range.
func (cu *TextCursor) Next() (r rune, ok bool) {
	elem, ok := cu.ix.InRange(cu.r)
	if !ok {
		return 0, false
	}
	r, err := cu.t.CharAt(elem)
	if err != nil {
		return 0, false
	}
	if moved, err := cu.t.Forward(cu.r, &cu.ix, 1); err != nil || !moved {
		// pin to the end so the next call reports exhaustion
		cu.r.Forward(&cu.ix, cu.r.End().Pos()-cu.ix.Pos())
	}
	return r, true
}

// Index returns the cursor's current boundary position.
func (cu *TextCursor) Index() trusted.Index { return cu.ix }
