// Package engine implements the retrieval engine abstraction:
// each retrieval path converts an input string into an internal query
// shape, walks a read-only backend to produce (term, document) candidates,
// then projects documents into output entities via the Resource Store.
//
// Go has no tagged-union "one capability interface per engine" the way the
// original design does; a generic interface parameterized on the internal
// query type Q, the document type D, and the output type O models the same
// five-slot contract (Backend is whichever index type D is drawn from).
package engine

import "github.com/nihongokit/dictsearch/model"

// Candidate is one (term, document) pair yielded by RetrieveFor, keeping
// the term that produced the match alongside the document itself, since
// relevance scorers need both.
type Candidate[D any] struct {
	Term     any
	Document D
}

// Engine is the five-slot retrieval contract. GetIndex is folded into each
// concrete engine's construction (one engine instance per selected
// language-backend) rather than kept as a runtime method, since Go cannot
// express "return &Backend" generically without also naming Backend's type.
type Engine[Q any, D any, O any] interface {
	// MakeQuery converts raw input plus detected language into the engine's
	// internal query shape. The second return value is false when the
	// input yields no indexable terms.
	MakeQuery(raw string, lang model.Language) (Q, bool)

	// RetrieveFor walks the backend for q, yielding every matching
	// (term, document) pair.
	RetrieveFor(q Q, raw string, lang model.Language) []Candidate[D]

	// DocToOutput projects a document into zero or more output entities by
	// consulting the Resource Store. Resource-lookup misses are represented
	// by an empty slice, never an error.
	DocToOutput(d D) []O
}
