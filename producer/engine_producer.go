package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// EngineProducer adapts any engine.Engine into the Producer protocol: it
// builds the engine's query once, retrieves candidates, scores each output
// with Score, and pushes it into the sink under an identity derived from
// the document. This is the common shape behind the kanji-reading,
// native-word, kanji-meaning, name, sentence, and regex producers — only the
// engine, scorer, and gating differ between them.
type EngineProducer[Q any, D any, O any] struct {
	Engine engine.Engine[Q, D, O]
	Raw    string
	Lang   model.Language

	// Score computes a candidate's relevance from its projected output and
	// the matched term (e.g. ngram overlap count, cosine similarity).
	Score func(output O, term any) float32

	// Identity derives the sink de-duplication key from a document.
	Identity func(doc D) executor.Identity

	// Gate decides whether Produce runs at all; defaults to always-run when nil.
	Gate func(alreadyFound int) bool

	// EstimateFn backs Estimate; when nil, Estimate counts the engine's
	// retrieved candidates instead.
	EstimateFn func() (searchhelp.Guess, bool)
}

var _ Producer = (*EngineProducer[string, uint32, *model.Word])(nil)

func (p *EngineProducer[Q, D, O]) ShouldRun(alreadyFound int) bool {
	if p.Gate == nil {
		return true
	}
	return p.Gate(alreadyFound)
}

// Estimate defers to EstimateFn when set; otherwise it counts candidates
// from a fresh MakeQuery/RetrieveFor pass, which stays index-only and cheap
// since it skips DocToOutput/Score work entirely.
func (p *EngineProducer[Q, D, O]) Estimate() (searchhelp.Guess, bool) {
	if p.EstimateFn != nil {
		return p.EstimateFn()
	}
	q, ok := p.Engine.MakeQuery(p.Raw, p.Lang)
	if !ok {
		return searchhelp.Guess{}, false
	}
	n := len(p.Engine.RetrieveFor(q, p.Raw, p.Lang))
	return searchhelp.Guess{Value: uint32(n), Kind: searchhelp.Accurate}, true
}

func (p *EngineProducer[Q, D, O]) Produce(sink *executor.Sink) {
	q, ok := p.Engine.MakeQuery(p.Raw, p.Lang)
	if !ok {
		return
	}
	for _, c := range p.Engine.RetrieveFor(q, p.Raw, p.Lang) {
		for _, out := range p.Engine.DocToOutput(c.Document) {
			rel := p.Score(out, c.Term)
			if !sink.Push(p.Identity(c.Document), out, rel) {
				return
			}
		}
	}
}
