// Package fieldhash provides merklize.Hasher implementations over the BN254
// scalar field.
//
// Poseidon is the default for verifiable-credential trees. Keccak trades
// circuit friendliness for speed and suits off-chain comparison and tests.
package fieldhash

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/constants"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"golang.org/x/crypto/sha3"

	"xdao.co/merklize/merklize"
)

var (
	_ merklize.Hasher = PoseidonHasher{}
	_ merklize.Hasher = KeccakHasher{}
)

// PoseidonHasher hashes with the circomlib-compatible Poseidon permutation.
type PoseidonHasher struct{}

func Poseidon() PoseidonHasher { return PoseidonHasher{} }

func (PoseidonHasher) Hash(inputs []*big.Int) (*big.Int, error) {
	return poseidon.Hash(inputs)
}

func (PoseidonHasher) HashBytes(b []byte) (*big.Int, error) {
	return poseidon.HashBytes(b)
}

func (PoseidonHasher) Prime() *big.Int { return new(big.Int).Set(constants.Q) }

// KeccakHasher reduces Keccak-256 digests modulo the BN254 scalar field.
//
// Hash concatenates the 32-byte big-endian encodings of its inputs.
type KeccakHasher struct{}

func Keccak() KeccakHasher { return KeccakHasher{} }

func (KeccakHasher) Hash(inputs []*big.Int) (*big.Int, error) {
	h := sha3.NewLegacyKeccak256()
	var buf [32]byte
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || in.Cmp(constants.Q) >= 0 {
			return nil, fmt.Errorf("fieldhash: input %d is not a field element", i)
		}
		in.FillBytes(buf[:])
		h.Write(buf[:])
	}
	return reduce(h.Sum(nil)), nil
}

func (KeccakHasher) HashBytes(b []byte) (*big.Int, error) {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return reduce(h.Sum(nil)), nil
}

func (KeccakHasher) Prime() *big.Int { return new(big.Int).Set(constants.Q) }

func reduce(digest []byte) *big.Int {
	n := new(big.Int).SetBytes(digest)
	return n.Mod(n, constants.Q)
}

// Names lists the hasher names accepted by ByName.
func Names() []string { return []string{"poseidon", "keccak"} }

// ByName returns the hasher configured as "poseidon" or "keccak".
func ByName(name string) (merklize.Hasher, error) {
	switch name {
	case "", "poseidon":
		return Poseidon(), nil
	case "keccak":
		return Keccak(), nil
	default:
		return nil, fmt.Errorf("fieldhash: unknown hasher %q (want poseidon or keccak)", name)
	}
}
