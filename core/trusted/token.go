// File: core/trusted/token.go
// Author: momentics <momentics@gmail.com>
//
// Capability token: the unforgeable identity tying vetted handles to
// exactly one container instance.

package trusted

import "github.com/google/uuid"

// Token identifies one container construction. Two tokens compare equal
// only if they came from the same construction; the zero Token matches no
// container. Tokens expose nothing beyond identity.
type Token struct {
	id uuid.UUID
}

// newToken mints a fresh identity. Called exactly once per container
// construction.
func newToken() Token {
	return Token{id: uuid.New()}
}

// Matches reports whether both tokens originate from the same container
// construction.
func (t Token) Matches(o Token) bool {
	return t.id == o.id && t.id != uuid.Nil
}

// Bound is the view of a container that pure handle operations may need:
// its current length and its token. All containers in this package
// implement it.
type Bound interface {
	Len() uint32
	Token() Token
}
