package merklize

import "math/big"

// Hasher reduces paths and values to field elements.
//
// Implementations must be deterministic and referentially transparent: the
// same inputs always yield the same output, across processes and across
// independent implementations. Hashers are passed explicitly; there is no
// package-level default.
type Hasher interface {
	// Hash maps an ordered sequence of field elements to one field element.
	Hash(inputs []*big.Int) (*big.Int, error)
	// HashBytes maps arbitrary bytes to one field element.
	HashBytes(b []byte) (*big.Int, error)
	// Prime is the field modulus.
	Prime() *big.Int
}
