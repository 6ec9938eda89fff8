// Package producer implements the small objects that each wrap one
// retrieval engine and contribute candidates to a search: sequence lookup,
// kanji-reading, native words, foreign words (with English fallback),
// romaji-to-hiragana, regex, number parser, and sentence-reader.
package producer

import (
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// Producer is the three-operation protocol every search contributor
// implements: produce candidates, decide whether to run, and estimate a
// count for search-help.
type Producer interface {
	// Produce pushes candidates into sink until saturated or exhausted.
	Produce(sink *executor.Sink)

	// ShouldRun gates whether Produce runs at all, given how many results
	// the search has already accumulated from earlier producers.
	ShouldRun(alreadyFound int) bool

	// Estimate gives a fast, index-only count used by search-help when the
	// primary target returns nothing. The second return value is false
	// when the producer has no meaningful estimate to offer.
	Estimate() (searchhelp.Guess, bool)
}

// Run drives producers in declared order against sink, honoring each one's
// ShouldRun gate — producer order is significant: earlier producers have
// priority on equal-relevance candidates via the sink's insertion-order
// tiebreak.
func Run(sink *executor.Sink, producers []Producer) {
	for _, p := range producers {
		if !p.ShouldRun(sink.Len()) {
			continue
		}
		p.Produce(sink)
	}
}

// Query is re-exported for producer constructors that need the parsed
// query shape without importing the model package directly.
type Query = model.Query
