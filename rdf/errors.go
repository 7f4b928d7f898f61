package rdf

import "errors"

var (
	ErrNoDefaultGraph   = errors.New("rdf: default graph missing or empty")
	ErrIndexOutOfRange  = errors.New("rdf: quad index out of range")
	ErrMultipleParents  = errors.New("rdf: blank node referenced by more than one quad")
	ErrGraphMismatch    = errors.New("rdf: quad graph name does not match its graph")
	ErrInvalidSubject   = errors.New("rdf: subject must be an IRI or blank node")
	ErrInvalidPredicate = errors.New("rdf: predicate must be an IRI")
	ErrEmptyIRI         = errors.New("rdf: empty IRI")
)
