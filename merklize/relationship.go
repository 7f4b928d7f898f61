package merklize

import (
	"fmt"

	"xdao.co/merklize/rdf"
)

// RefTp identifies a subject reference (an IRI or a blank node).
type RefTp struct {
	Kind  rdf.TermKind
	Value string
}

func refOf(t rdf.Term) RefTp { return RefTp{Kind: t.Kind, Value: t.Value} }

// SiblingKey groups quads that occupy the same array slot: same graph, same
// subject, same predicate.
type SiblingKey struct {
	Graph     string
	Subject   RefTp
	Predicate rdf.Term
}

func siblingKeyOf(q rdf.Quad) SiblingKey {
	return SiblingKey{Graph: q.Graph, Subject: refOf(q.Subject), Predicate: q.Predicate}
}

// Relationship records the nesting edges of a dataset and the sibling index of
// every nested node under its parent slot. It is immutable after
// NewRelationship returns and safe for concurrent readers.
type Relationship struct {
	parents  map[rdf.Index]rdf.Index
	children map[SiblingKey]map[RefTp]int
	targets  map[rdf.Index]struct{}
	bound    int
}

// NewRelationship analyses the whole dataset once.
//
// Graphs are visited in the dataset's iteration order and quads in position
// order, so sibling indices are assigned in original quad order.
func NewRelationship(ds *rdf.Dataset) (*Relationship, error) {
	if ds == nil {
		return nil, newError(KindInvalidArgument, ruleNilDataset, "nil dataset")
	}
	r := &Relationship{
		parents:  make(map[rdf.Index]rdf.Index),
		children: make(map[SiblingKey]map[RefTp]int),
		targets:  make(map[rdf.Index]struct{}),
		bound:    ds.Len(),
	}
	var nested []rdf.Index
	for _, g := range ds.GraphNames() {
		quads := ds.Graph(g)
		for pos, q := range quads {
			idx := rdf.Index{Graph: g, Pos: pos}
			pIdx, ok, err := ds.FindParent(idx)
			if err != nil {
				return nil, wrapError(KindStructural, ruleParentLookup, "parent lookup for "+idx.String(), err)
			}
			if !ok {
				continue
			}
			parent, ok := ds.Quad(pIdx)
			if !ok {
				return nil, newError(KindInvariant, ruleMissingQuad, "parent quad "+pIdx.String()+" not found")
			}
			r.parents[idx] = pIdx
			nested = append(nested, idx)
			r.targets[pIdx] = struct{}{}

			key := siblingKeyOf(parent)
			siblings, ok := r.children[key]
			if !ok {
				siblings = make(map[RefTp]int)
				r.children[key] = siblings
			}
			ref := refOf(q.Subject)
			if _, seen := siblings[ref]; !seen {
				siblings[ref] = len(siblings)
			}
		}
	}
	if err := r.checkForest(nested); err != nil {
		return nil, err
	}
	return r, nil
}

// checkForest walks the parent chain of every nested quad. Chains must reach a
// root within bound steps; quads already known to reach one are not revisited.
func (r *Relationship) checkForest(nested []rdf.Index) error {
	rooted := make(map[rdf.Index]struct{}, len(nested))
	for _, start := range nested {
		var chain []rdf.Index
		for cur := start; ; {
			if _, ok := rooted[cur]; ok {
				break
			}
			p, ok := r.parents[cur]
			if !ok {
				break
			}
			if len(chain) >= r.bound {
				return newError(KindStructural, ruleCycle, "parent chain of "+start.String()+" does not terminate")
			}
			chain = append(chain, cur)
			cur = p
		}
		for _, idx := range chain {
			rooted[idx] = struct{}{}
		}
	}
	return nil
}

// IsParentTarget reports whether the quad at idx is the parent of another
// quad, i.e. its blank-node object is the subject of nested statements.
func (r *Relationship) IsParentTarget(idx rdf.Index) bool {
	_, ok := r.targets[idx]
	return ok
}

// Parent returns the recorded parent of idx.
func (r *Relationship) Parent(idx rdf.Index) (rdf.Index, bool) {
	p, ok := r.parents[idx]
	return p, ok
}

// Path builds the canonical root-to-leaf path of the quad at idx. A non-nil
// leading index disambiguates the quad among its own siblings and becomes the
// last segment.
//
// Above the leaf, each ancestor contributes its predicate, followed by the
// child's sibling index when the parent slot holds more than one child.
func (r *Relationship) Path(ds *rdf.Dataset, idx rdf.Index, leading *int) (Path, error) {
	var b pathBuilder
	if leading != nil {
		b.appendIndex(*leading)
	}

	q, ok := ds.Quad(idx)
	if !ok {
		return Path{}, newError(KindInvariant, ruleMissingQuad, "quad "+idx.String()+" not found")
	}
	if err := checkPredicate(idx, q.Predicate); err != nil {
		return Path{}, err
	}
	b.appendLabel(q.Predicate.Value)

	cur, node := idx, q
	for steps := 0; ; steps++ {
		pIdx, ok := r.parents[cur]
		if !ok {
			break
		}
		if steps >= r.bound {
			return Path{}, newError(KindStructural, ruleCycle, "parent chain of "+idx.String()+" does not terminate")
		}
		parent, ok := ds.Quad(pIdx)
		if !ok {
			return Path{}, newError(KindInvariant, ruleMissingQuad, "parent quad "+pIdx.String()+" not found")
		}
		siblings, ok := r.children[siblingKeyOf(parent)]
		if !ok {
			return Path{}, newError(KindInvariant, ruleNoChildren, "no children recorded for parent "+pIdx.String())
		}
		sibling, ok := siblings[refOf(node.Subject)]
		if !ok {
			return Path{}, newError(KindInvariant, ruleNoSibling, "no sibling index for "+cur.String()+" under "+pIdx.String())
		}
		if err := checkPredicate(pIdx, parent.Predicate); err != nil {
			return Path{}, err
		}
		if len(siblings) > 1 {
			b.appendIndex(sibling)
		}
		b.appendLabel(parent.Predicate.Value)
		cur, node = pIdx, parent
	}
	return b.build(), nil
}

// checkPredicate requires a non-empty IRI, the only predicate that can become a
// path label.
func checkPredicate(idx rdf.Index, p rdf.Term) error {
	if !p.IsIRI() {
		return newError(KindStructural, rulePredicate, fmt.Sprintf("predicate of %s is %s, want IRI", idx, p.Kind))
	}
	if p.Value == "" {
		return newError(KindStructural, rulePredicate, "predicate of "+idx.String()+" is an empty IRI")
	}
	return nil
}
