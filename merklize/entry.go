package merklize

import (
	"math/big"
)

// Entry is one Merkle tree leaf: a canonical path, a typed value and the
// hasher that reduces both to field elements. Entries are immutable.
type Entry struct {
	path   Path
	value  Value
	hasher Hasher
}

// NewEntry rejects empty paths, invalid value kinds and a nil hasher.
func NewEntry(path Path, value Value, h Hasher) (Entry, error) {
	if h == nil {
		return Entry{}, newError(KindInvalidArgument, ruleNilHasher, "nil hasher")
	}
	if path.Len() == 0 {
		return Entry{}, newError(KindInvalidArgument, ruleEmptyPath, "empty path")
	}
	if !value.IsValid() {
		return Entry{}, newError(KindInvalidArgument, ruleValueKind, "unsupported value kind "+value.Kind().String())
	}
	return Entry{path: path, value: value, hasher: h}, nil
}

func (e Entry) Path() Path   { return e.path }
func (e Entry) Value() Value { return e.value }

// KeyHash is the path reduced to a field element; it keys the leaf in the tree.
func (e Entry) KeyHash() (*big.Int, error) {
	return e.path.Hash(e.hasher)
}

// ValueHash is the value reduced to a field element.
func (e Entry) ValueHash() (*big.Int, error) {
	return e.value.Hash(e.hasher)
}

// KeyValueHashes returns both field elements.
func (e Entry) KeyValueHashes() (key, value *big.Int, err error) {
	key, err = e.KeyHash()
	if err != nil {
		return nil, nil, err
	}
	value, err = e.ValueHash()
	if err != nil {
		return nil, nil, err
	}
	return key, value, nil
}

// Equal compares path and value; hashers are not compared.
func (e Entry) Equal(o Entry) bool {
	return e.path.Equal(o.path) && e.value.Equal(o.value)
}
