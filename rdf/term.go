// Package rdf is the minimal in-memory RDF dataset model consumed by merklize.
//
// Terms are plain comparable values so they can be used directly as map keys.
package rdf

import "strings"

// TermKind is the closed set of term kinds.
type TermKind int

const (
	KindInvalid TermKind = iota
	KindIRI
	KindBlankNode
	KindLiteral
	KindVariable
)

func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "IRI"
	case KindBlankNode:
		return "BlankNode"
	case KindLiteral:
		return "Literal"
	case KindVariable:
		return "Variable"
	default:
		return "Invalid"
	}
}

// Term is an RDF term. Datatype and Language are only meaningful for literals.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Language string
}

func IRI(v string) Term { return Term{Kind: KindIRI, Value: v} }

// BlankNode returns a blank node term. A leading "_:" is stripped.
func BlankNode(id string) Term {
	return Term{Kind: KindBlankNode, Value: strings.TrimPrefix(id, "_:")}
}

// Literal returns a typed literal. An empty datatype defaults to xsd:string.
func Literal(lexical, datatype string) Term {
	if datatype == "" {
		datatype = XSDString
	}
	return Term{Kind: KindLiteral, Value: lexical, Datatype: datatype}
}

// LangLiteral returns a language-tagged string.
func LangLiteral(lexical, lang string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: RDFLangString, Language: lang}
}

func Variable(name string) Term {
	return Term{Kind: KindVariable, Value: strings.TrimPrefix(name, "?")}
}

func (t Term) IsIRI() bool       { return t.Kind == KindIRI }
func (t Term) IsBlankNode() bool { return t.Kind == KindBlankNode }
func (t Term) IsLiteral() bool   { return t.Kind == KindLiteral }

// String renders the term in N-Quads-like notation; it is for diagnostics only.
func (t Term) String() string {
	switch t.Kind {
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlankNode:
		return "_:" + t.Value
	case KindLiteral:
		if t.Language != "" {
			return `"` + t.Value + `"@` + t.Language
		}
		return `"` + t.Value + `"^^<` + t.Datatype + ">"
	case KindVariable:
		return "?" + t.Value
	default:
		return "<invalid>"
	}
}
