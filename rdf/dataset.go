package rdf

import (
	"fmt"
	"slices"
	"sort"
)

// DefaultGraph is the reserved name of the default graph.
const DefaultGraph = "@default"

// Quad is one statement plus the name of the graph that owns it.
type Quad struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     string
}

func (q Quad) String() string {
	s := q.Subject.String() + " " + q.Predicate.String() + " " + q.Object.String()
	if q.Graph != DefaultGraph {
		s += " <" + q.Graph + ">"
	}
	return s
}

// Index is a stable reference to a quad by graph name and position.
type Index struct {
	Graph string
	Pos   int
}

func (i Index) String() string { return fmt.Sprintf("%s#%d", i.Graph, i.Pos) }

// Dataset is an immutable ordered mapping of graph name to quads.
//
// Graph iteration order is the default graph first, then named graphs in
// ascending byte order of their names. Quad order inside a graph is the order
// the quads were supplied in.
type Dataset struct {
	graphs map[string][]Quad
	order  []string
	size   int

	// blank node label -> positions of quads whose object is that blank node, per graph
	blankObjects map[string]map[string][]int
}

// NewDataset groups quads by graph, preserving their relative order. A quad
// with an empty graph name belongs to the default graph.
func NewDataset(quads []Quad) *Dataset {
	ds := &Dataset{
		graphs:       make(map[string][]Quad),
		blankObjects: make(map[string]map[string][]int),
	}
	for _, q := range quads {
		if q.Graph == "" {
			q.Graph = DefaultGraph
		}
		g := q.Graph
		pos := len(ds.graphs[g])
		ds.graphs[g] = append(ds.graphs[g], q)
		if q.Object.Kind == KindBlankNode {
			idx, ok := ds.blankObjects[g]
			if !ok {
				idx = make(map[string][]int)
				ds.blankObjects[g] = idx
			}
			idx[q.Object.Value] = append(idx[q.Object.Value], pos)
		}
	}
	ds.size = len(quads)

	named := make([]string, 0, len(ds.graphs))
	for g := range ds.graphs {
		if g != DefaultGraph {
			named = append(named, g)
		}
	}
	sort.Strings(named)
	if _, ok := ds.graphs[DefaultGraph]; ok {
		ds.order = append(ds.order, DefaultGraph)
	}
	ds.order = append(ds.order, named...)
	return ds
}

// GraphNames returns graph names in deterministic iteration order.
func (d *Dataset) GraphNames() []string {
	return slices.Clone(d.order)
}

// Graph returns a copy of the quads of the named graph.
func (d *Dataset) Graph(name string) []Quad {
	return slices.Clone(d.graphs[name])
}

// Len is the total number of quads across all graphs.
func (d *Dataset) Len() int { return d.size }

// Quad looks up a quad by index.
func (d *Dataset) Quad(idx Index) (Quad, bool) {
	qs := d.graphs[idx.Graph]
	if idx.Pos < 0 || idx.Pos >= len(qs) {
		return Quad{}, false
	}
	return qs[idx.Pos], true
}

// HasDefaultGraph reports whether the default graph exists and is non-empty.
func (d *Dataset) HasDefaultGraph() bool {
	return len(d.graphs[DefaultGraph]) > 0
}

// FindParent returns the quad whose object is the blank node that is the
// subject of the quad at idx. Only quads of the same graph are considered and a
// quad never parents itself. Quads with a non-blank subject have no parent.
// More than one referencing quad is reported as ErrMultipleParents.
func (d *Dataset) FindParent(idx Index) (Index, bool, error) {
	q, ok := d.Quad(idx)
	if !ok {
		return Index{}, false, fmt.Errorf("%w: %s", ErrIndexOutOfRange, idx)
	}
	if q.Subject.Kind != KindBlankNode {
		return Index{}, false, nil
	}
	var (
		found  Index
		exists bool
	)
	for _, pos := range d.blankObjects[idx.Graph][q.Subject.Value] {
		if pos == idx.Pos {
			continue
		}
		if exists {
			return Index{}, false, fmt.Errorf("%w: _:%s in graph %s", ErrMultipleParents, q.Subject.Value, idx.Graph)
		}
		found, exists = Index{Graph: idx.Graph, Pos: pos}, true
	}
	return found, exists, nil
}

// Validate runs the dataset consistency check and returns the first violation
// in iteration order.
func (d *Dataset) Validate() error {
	if !d.HasDefaultGraph() {
		return ErrNoDefaultGraph
	}
	for _, g := range d.order {
		for pos, q := range d.graphs[g] {
			idx := Index{Graph: g, Pos: pos}
			if q.Graph != g {
				return fmt.Errorf("%w: %s declares graph %q", ErrGraphMismatch, idx, q.Graph)
			}
			switch q.Subject.Kind {
			case KindIRI, KindBlankNode:
			default:
				return fmt.Errorf("%w: %s has %s subject", ErrInvalidSubject, idx, q.Subject.Kind)
			}
			if q.Predicate.Kind != KindIRI {
				return fmt.Errorf("%w: %s has %s predicate", ErrInvalidPredicate, idx, q.Predicate.Kind)
			}
			for _, t := range []Term{q.Subject, q.Predicate, q.Object} {
				if t.Kind == KindIRI && t.Value == "" {
					return fmt.Errorf("%w: %s", ErrEmptyIRI, idx)
				}
			}
			if _, _, err := d.FindParent(idx); err != nil {
				return err
			}
		}
	}
	return nil
}
