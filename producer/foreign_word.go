package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// ForeignWordProducer retrieves words by gloss similarity in one
// user-language's vector index. Unlike the other engine-backed producers it
// bypasses EngineProducer's generic wiring because its final
// score is a Dice coefficient over termsets (relevance.ForeignWord), not the
// cosine similarity the underlying ForeignWordEngine uses to rank candidates
// for retrieval — the engine's index still does the candidate narrowing, but
// scoring needs direct termset access the Engine interface doesn't expose.
type ForeignWordProducer struct {
	Index    *vector.ForeignIndex
	Engine   *engine.ForeignWordEngine
	Raw      string
	Lang     model.Language
	Language string // target language code this producer's index was built for
}

func (p *ForeignWordProducer) ShouldRun(alreadyFound int) bool {
	return p.Lang != model.LanguageJapanese
}

func (p *ForeignWordProducer) Produce(sink *executor.Sink) {
	q, ok := p.Engine.MakeQuery(p.Raw, p.Lang)
	if !ok {
		return
	}
	querySet := p.Index.QueryTermset(p.Raw)
	for _, c := range p.Engine.RetrieveFor(q, p.Raw, p.Lang) {
		for _, w := range p.Engine.DocToOutput(c.Document) {
			docSet, _ := p.Index.Termset(c.Document)
			var glosses []string
			docLang := p.Language
			for _, sense := range w.Senses {
				if sense.Language == p.Language || sense.Language == "" {
					glosses = append(glosses, sense.Glosses...)
				}
				if sense.Language != "" {
					docLang = sense.Language
				}
			}
			rel := relevance.ForeignWord(querySet, docSet, p.Raw, glosses, docLang, p.Language)
			if !sink.Push(w.SequenceID, w, rel) {
				return
			}
		}
	}
}

func (p *ForeignWordProducer) Estimate() (searchhelp.Guess, bool) {
	q, ok := p.Engine.MakeQuery(p.Raw, p.Lang)
	if !ok {
		return searchhelp.Guess{}, false
	}
	n := len(p.Engine.RetrieveFor(q, p.Raw, p.Lang))
	return searchhelp.Guess{Value: uint32(n), Kind: searchhelp.Accurate}, true
}
