package storage

import (
	"errors"
	"sort"

	"github.com/ipfs/go-cid"
)

// MultiCAS provides deterministic, ordered fallback across multiple CAS backends.
//
// Read order is the slice order in Adapters. Put writes only to the first adapter.
type MultiCAS struct {
	Adapters []CAS
}

func (m MultiCAS) Put(bytes []byte) (cid.Cid, error) {
	if len(m.Adapters) == 0 {
		return cid.Undef, errors.New("storage: MultiCAS has no adapters")
	}
	return m.Adapters[0].Put(bytes)
}

// Get returns the first hit. Errors other than ErrNotFound stop the search.
func (m MultiCAS) Get(id cid.Cid) ([]byte, error) {
	for _, cas := range m.Adapters {
		b, err := cas.Get(id)
		if err == nil {
			return b, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}
	return nil, ErrNotFound
}

func (m MultiCAS) Has(id cid.Cid) bool {
	for _, cas := range m.Adapters {
		if cas.Has(id) {
			return true
		}
	}
	return false
}

// List merges the listings of every adapter that implements Lister.
// CIDs held by more than one adapter appear once.
func (m MultiCAS) List() ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for _, cas := range m.Adapters {
		l, ok := cas.(Lister)
		if !ok {
			continue
		}
		ids, err := l.List()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}
