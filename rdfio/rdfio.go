// Package rdfio loads N-Quads documents into rdf.Dataset values.
package rdfio

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"

	"xdao.co/merklize/rdf"
)

// ErrSyntax wraps every failure to read or convert a statement.
var ErrSyntax = errors.New("rdfio: syntax error")

// ReadNQuads reads every statement from r, preserving document order.
// Typed literals keep their lexical form; no native conversion is applied.
func ReadNQuads(r io.Reader) (*rdf.Dataset, error) {
	qr := nquads.NewReader(r, true)
	var quads []rdf.Quad
	for line := 1; ; line++ {
		q, err := qr.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: statement %d: %w", ErrSyntax, line, err)
		}
		rq, err := convertQuad(q)
		if err != nil {
			return nil, fmt.Errorf("%w: statement %d: %w", ErrSyntax, line, err)
		}
		quads = append(quads, rq)
	}
	return rdf.NewDataset(quads), nil
}

// ParseNQuads is ReadNQuads over a string.
func ParseNQuads(s string) (*rdf.Dataset, error) {
	return ReadNQuads(strings.NewReader(s))
}

func convertQuad(q quad.Quad) (rdf.Quad, error) {
	s, err := convertTerm(q.Subject)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("subject: %w", err)
	}
	p, err := convertTerm(q.Predicate)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("predicate: %w", err)
	}
	o, err := convertTerm(q.Object)
	if err != nil {
		return rdf.Quad{}, fmt.Errorf("object: %w", err)
	}
	out := rdf.Quad{Subject: s, Predicate: p, Object: o, Graph: rdf.DefaultGraph}
	if q.Label != nil {
		g, err := convertTerm(q.Label)
		if err != nil {
			return rdf.Quad{}, fmt.Errorf("graph: %w", err)
		}
		switch g.Kind {
		case rdf.KindIRI:
			out.Graph = g.Value
		case rdf.KindBlankNode:
			out.Graph = "_:" + g.Value
		default:
			return rdf.Quad{}, fmt.Errorf("graph label must be an IRI or blank node, got %s", g.Kind)
		}
	}
	return out, nil
}

func convertTerm(v quad.Value) (rdf.Term, error) {
	switch t := v.(type) {
	case quad.IRI:
		return rdf.IRI(string(t)), nil
	case quad.BNode:
		return rdf.BlankNode(string(t)), nil
	case quad.String:
		return rdf.Literal(string(t), rdf.XSDString), nil
	case quad.TypedString:
		return rdf.Literal(string(t.Value), string(t.Type)), nil
	case quad.LangString:
		return rdf.LangLiteral(string(t.Value), t.Lang), nil
	case nil:
		return rdf.Term{}, fmt.Errorf("missing term")
	default:
		return rdf.Term{}, fmt.Errorf("unsupported term %T", v)
	}
}
