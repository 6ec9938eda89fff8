package engine

import (
	"regexp"
	"sort"

	"github.com/nihongokit/dictsearch/index/regexidx"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// RegexEngine retrieves words whose readings match a compiled regex: it
// narrows candidates via the regex-index's literal character class, then
// runs the compiled pattern against each candidate's readings.
type RegexEngine struct {
	index *regexidx.Index
	store *resource.Store
}

func NewRegexEngine(index *regexidx.Index, store *resource.Store) *RegexEngine {
	return &RegexEngine{index: index, store: store}
}

var _ Engine[*regexp.Regexp, uint32, *model.Word] = (*RegexEngine)(nil)

func (e *RegexEngine) MakeQuery(raw string, lang model.Language) (*regexp.Regexp, bool) {
	re, err := regexp.Compile(raw)
	if err != nil {
		return nil, false
	}
	return re, true
}

// RetrieveFor narrows candidates via the regex-index's literal character
// class when one can be extracted, then filters by running re against each
// candidate's readings. When no literal class exists (e.g. `.*`), every word
// in the store is scanned instead, in sequence-id order.
func (e *RegexEngine) RetrieveFor(re *regexp.Regexp, raw string, lang model.Language) []Candidate[uint32] {
	var candidates []uint32
	if chars, ok := regexidx.LiteralClass(raw); ok {
		candidates = e.index.Candidates(chars)
	} else {
		for seq := range e.store.Words() {
			candidates = append(candidates, seq)
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	}

	out := make([]Candidate[uint32], 0, len(candidates))
	for _, seq := range candidates {
		w, ok := e.store.Word(seq)
		if !ok {
			continue
		}
		if matched, primary := matchReadings(re, w); matched {
			out = append(out, Candidate[uint32]{Term: primary, Document: seq})
		}
	}
	return out
}

// matchReadings runs re against a word's kana, kanji, and alternative
// readings, reporting whether any matched and whether the match was on the
// primary reading (the regex scorer boosts primary-reading matches).
func matchReadings(re *regexp.Regexp, w *model.Word) (matched bool, primary bool) {
	if re.MatchString(w.Reading.Kana) || (w.Reading.Kanji != "" && re.MatchString(w.Reading.Kanji)) {
		return true, true
	}
	for _, alt := range w.Reading.Alternatives {
		if re.MatchString(alt) {
			return true, false
		}
	}
	return false, false
}

func (e *RegexEngine) DocToOutput(seq uint32) []*model.Word {
	w, ok := e.store.Word(seq)
	if !ok {
		return nil
	}
	return []*model.Word{w}
}
