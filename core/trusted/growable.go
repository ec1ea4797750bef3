// File: core/trusted/growable.go
// Author: momentics <momentics@gmail.com>
//
// Append-only growable container. Growth never reorders or removes
// elements and every vetting invariant is <=-based, so handles vetted
// before a push stay valid for the token's whole lifetime.

package trusted

import "github.com/momentics/windex/api"

// Growable is a Container whose sequence may grow by appending. It must
// never shrink while vetted handles are outstanding; no shrinking
// operation exists.
type Growable[T any] struct {
	Container[T]
}

// NewGrowable constructs a growable container around items, minting its
// token. The container takes ownership of the slice header; the caller
// must not append to items directly afterwards.
func NewGrowable[T any](items []T) *Growable[T] {
	return &Growable[T]{Container[T]{items: items, tok: newToken()}}
}

// Push appends v and returns the vetted index of the new last element.
// Previously vetted handles remain valid.
func (g *Growable[T]) Push(v T) NonEmptyIndex {
	g.items = append(g.items, v)
	return nonEmptyAt(uint32(len(g.items)-1), g.tok)
}

// Insert places v at a vetted boundary. Only the append position
// (ix == Len) is permitted: inserting before the end would shift every
// later element and invalidate outstanding handles at or after the
// insertion point, and no reindexing protocol exists for that. Interior
// positions fail with CodeNotSupported.
func (g *Growable[T]) Insert(ix Index, v T) (NonEmptyIndex, error) {
	if !ix.tok.Matches(g.tok) {
		return NonEmptyIndex{}, api.NewError(api.CodeTokenMismatch, ix.pos, g.Len())
	}
	if ix.pos != g.Len() {
		return NonEmptyIndex{}, api.NewError(api.CodeNotSupported, ix.pos, g.Len())
	}
	return g.Push(v), nil
}
