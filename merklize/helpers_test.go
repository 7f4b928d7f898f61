package merklize

import (
	"math/big"

	"xdao.co/merklize/rdf"
)

const (
	exS     = "https://ex.org/s"
	exP     = "https://ex.org/p"
	exQ     = "https://ex.org/q"
	exR     = "https://ex.org/r"
	exItems = "https://ex.org/items"
	exName  = "https://ex.org/name"
)

var testPrime = big.NewInt(1_000_003)

// sumHasher is a small deterministic stand-in for a field hasher.
type sumHasher struct{}

func (sumHasher) Hash(in []*big.Int) (*big.Int, error) {
	acc := big.NewInt(int64(len(in)))
	for i, x := range in {
		acc.Add(acc, new(big.Int).Mul(x, big.NewInt(int64(i+1))))
	}
	return acc.Mod(acc, testPrime), nil
}

func (sumHasher) HashBytes(b []byte) (*big.Int, error) {
	n := new(big.Int).SetBytes(b)
	return n.Mod(n, testPrime), nil
}

func (sumHasher) Prime() *big.Int { return new(big.Int).Set(testPrime) }

func quad(s, p, o rdf.Term) rdf.Quad {
	return rdf.Quad{Subject: s, Predicate: p, Object: o}
}

func at(pos int) rdf.Index { return rdf.Index{Graph: rdf.DefaultGraph, Pos: pos} }
