// Package owner provides ownership tokens that let a heap recognize handles
// it minted, including handles that arrived through a meld.
//
// Every heap holds a Token; every element records the Token current at its
// insertion. When heap A absorbs heap B, B's token is linked under A's and B
// receives a fresh token. Resolving an element's token with Root then yields
// A's token for elements of both heaps, and nothing else.
package owner

// Token identifies one heap. The zero value is not usable; call New.
type Token struct {
	up *Token // nil for a live heap's token
}

// New returns a fresh root token.
func New() *Token {
	return &Token{}
}

// Root follows links to the token of the heap that currently owns t.
// Path halving keeps chains short across repeated melds.
func (t *Token) Root() *Token {
	for t.up != nil {
		if t.up.up != nil {
			t.up = t.up.up
		}
		t = t.up
	}

	return t
}

// Link records that everything owned by t now belongs to into.
// Both must be root tokens; linking a token to itself is a no-op.
func (t *Token) Link(into *Token) {
	if t == into {
		return
	}
	t.up = into
}

// Owns reports whether an element stamped with elem belongs to the heap
// holding root token t.
func (t *Token) Owns(elem *Token) bool {
	return elem != nil && elem.Root() == t
}
