package producer

import (
	"github.com/nihongokit/dictsearch/engine"
	"github.com/nihongokit/dictsearch/executor"
	"github.com/nihongokit/dictsearch/internal/romaji"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/relevance"
	"github.com/nihongokit/dictsearch/searchhelp"
)

// RomajiFallbackMaxAlreadyFound caps when the romaji producer bothers
// running: it only runs if fewer results than this have already been found.
const RomajiFallbackMaxAlreadyFound = 100

// RomajiFallbackProducer converts a foreign-language query that looks like
// romanized Japanese into hiragana and retries it against the native word
// engine.
type RomajiFallbackProducer struct {
	Engine *engine.NativeWordEngine
	Raw    string
	Lang   model.Language
}

func (p *RomajiFallbackProducer) ShouldRun(alreadyFound int) bool {
	if alreadyFound >= RomajiFallbackMaxAlreadyFound {
		return false
	}
	if p.Lang != model.LanguageForeign {
		return false
	}
	return romaji.Convertible(p.Raw)
}

func (p *RomajiFallbackProducer) Produce(sink *executor.Sink) {
	hira := romaji.Convert(p.Raw)
	q, ok := p.Engine.MakeQuery(hira, model.LanguageJapanese)
	if !ok {
		return
	}
	for _, c := range p.Engine.RetrieveFor(q, hira, model.LanguageJapanese) {
		for _, w := range p.Engine.DocToOutput(c.Document) {
			overlap, _ := c.Term.(int)
			rel := relevance.NativeWord(w, float32(overlap), relevance.MatchKanaNormalized)
			if !sink.Push(w.SequenceID, w, rel) {
				return
			}
		}
	}
}

func (p *RomajiFallbackProducer) Estimate() (searchhelp.Guess, bool) {
	return searchhelp.Guess{}, false
}
