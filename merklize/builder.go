// Package merklize turns an RDF dataset into the ordered leaf entries of a
// Merkle tree.
//
// Document hierarchy is reconstructed from blank-node reference chains alone:
// blank-node labels never reach a path, so isomorphic datasets produce
// identical entries.
package merklize

import (
	"xdao.co/merklize/compliance"
	"xdao.co/merklize/rdf"
)

// Options controls dataset validation.
//
// Default behavior is Permissive when Options{} is used.
type Options struct {
	Mode compliance.ComplianceMode
}

// EntriesFromRDF runs EntriesFromRDFWithOptions in permissive mode.
func EntriesFromRDF(ds *rdf.Dataset, h Hasher) ([]Entry, error) {
	return EntriesFromRDFWithOptions(ds, h, Options{})
}

// EntriesFromRDFWithOptions walks every quad once, in graph order then quad
// order, and emits one entry per leaf statement.
//
// The walk is strictly sequential: the disambiguation counters of a quad depend
// on the quads before it in the same graph. Any error aborts the whole walk and
// no entries are returned.
func EntriesFromRDFWithOptions(ds *rdf.Dataset, h Hasher, opts Options) ([]Entry, error) {
	if h == nil {
		return nil, newError(KindInvalidArgument, ruleNilHasher, "nil hasher")
	}
	if ds == nil {
		return nil, newError(KindInvalidArgument, ruleNilDataset, "nil dataset")
	}
	if !ds.HasDefaultGraph() {
		return nil, wrapError(KindStructural, ruleDefaultGraph, "dataset has no default graph statements", rdf.ErrNoDefaultGraph)
	}
	if opts.Mode == compliance.Strict {
		if err := ds.Validate(); err != nil {
			return nil, wrapError(KindStructural, ruleInconsistent, "dataset consistency check failed", err)
		}
	}

	rel, err := NewRelationship(ds)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, g := range ds.GraphNames() {
		quads := ds.Graph(g)
		counts := siblingCounts(quads)
		counters := make(map[SiblingKey]int)

		for pos, q := range quads {
			idx := rdf.Index{Graph: g, Pos: pos}
			value, action, err := classifyObject(rel, idx, q.Object)
			if err != nil {
				return nil, err
			}
			if action == skipLeaf {
				continue
			}

			key := siblingKeyOf(q)
			var leading *int
			switch n := counts[key]; {
			case n == 0:
				return nil, newError(KindInvariant, ruleZeroCount, "sibling count is zero for "+idx.String())
			case n > 1:
				i := counters[key]
				counters[key] = i + 1
				leading = &i
			}

			path, err := rel.Path(ds, idx, leading)
			if err != nil {
				return nil, err
			}
			e, err := NewEntry(path, value, h)
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func siblingCounts(quads []rdf.Quad) map[SiblingKey]int {
	counts := make(map[SiblingKey]int, len(quads))
	for _, q := range quads {
		counts[siblingKeyOf(q)]++
	}
	return counts
}
