package search

import (
	"strings"

	"github.com/nihongokit/dictsearch/index/bktree"
	"github.com/nihongokit/dictsearch/index/kreading"
	"github.com/nihongokit/dictsearch/index/ngram"
	"github.com/nihongokit/dictsearch/index/regexidx"
	"github.com/nihongokit/dictsearch/index/vector"
	"github.com/nihongokit/dictsearch/internal/textnorm"
	"github.com/nihongokit/dictsearch/model"
	"github.com/nihongokit/dictsearch/resource"
)

// IndexSet bundles the process-wide read-only indexes built over a
// Resource Store's content: process-wide immutable singletons built once
// after initialization. Every index here is a pure function of
// already-loaded Store content, derived once at startup rather than
// per-request: runtime index construction is scoped to this one-time
// startup derivation, not per-query rebuilding.
type IndexSet struct {
	NativeWords        *ngram.Index
	Names              *ngram.Index
	NamesTranscription *ngram.Index
	SentencesJa        *ngram.Index
	KanjiMeanings      *ngram.Index

	KReading *kreading.Index
	Regex    *regexidx.Index
	Radicals *bktree.Tree
	Hashtags *ngram.Index

	// hashtagByID maps the synthetic id Hashtags is keyed under back to the
	// tag string, since ngram.Index postings are uint32-keyed.
	hashtagByID map[uint32]string

	// ForeignWords and SentenceTranslations are keyed by gloss/translation
	// language code (model.UserSettings.UserLanguage).
	ForeignWords         map[string]*vector.ForeignIndex
	SentenceTranslations map[string]*ngram.Index
}

// BuildIndexSet derives every index in one pass over store's content, for
// the given set of supported gloss/translation languages.
func BuildIndexSet(store *resource.Store, languages []string) *IndexSet {
	idx := &IndexSet{
		NativeWords:          ngram.New(),
		Names:                ngram.New(),
		NamesTranscription:   ngram.New(),
		SentencesJa:          ngram.New(),
		KanjiMeanings:        ngram.New(),
		KReading:             kreading.New(),
		Regex:                regexidx.New(),
		Radicals:             bktree.New(),
		Hashtags:             ngram.New(),
		hashtagByID:          make(map[uint32]string),
		ForeignWords:         make(map[string]*vector.ForeignIndex),
		SentenceTranslations: make(map[string]*ngram.Index),
	}
	for _, l := range languages {
		idx.ForeignWords[l] = vector.NewForeignIndex(l)
		idx.SentenceTranslations[l] = ngram.New()
	}

	for seq, w := range store.Words() {
		idx.NativeWords.Add(seq, textnorm.Kana(w.Reading.Kana))
		if w.Reading.Kanji != "" {
			idx.NativeWords.Add(seq, w.Reading.Kanji)
		}
		indexReadings(idx.Regex, w, seq)
		if literal, reading, ok := singleKanjiReading(w); ok {
			idx.KReading.Add(literal, reading, seq)
		}
		indexSenses(idx.ForeignWords, w, seq)
	}

	for seq, n := range store.Names() {
		idx.Names.Add(seq, n.PrimaryReading())
		if n.Kanji != "" && n.Kana != "" {
			idx.Names.Add(seq, n.Kana)
		}
		if n.Transcription != "" {
			idx.NamesTranscription.Add(seq, n.Transcription)
		}
	}

	for id, s := range store.Sentences() {
		idx.SentencesJa.Add(id, s.Japanese)
		for lang, text := range s.Translations {
			if si, ok := idx.SentenceTranslations[lang]; ok {
				si.Add(id, text)
			}
		}
	}

	for lit, r := range store.Radicals() {
		for _, meaning := range r.Translations {
			idx.Radicals.Insert(strings.ToLower(meaning), lit)
		}
	}

	for lit, k := range store.KanjiAll() {
		for _, meaning := range k.Meanings {
			idx.KanjiMeanings.Add(uint32(lit), strings.ToLower(meaning))
		}
	}

	var id uint32
	for tag := range store.Hashtags() {
		idx.Hashtags.Add(id, strings.ToLower(tag))
		idx.hashtagByID[id] = tag
		id++
	}

	return idx
}

// HashtagFor resolves a Hashtags posting id back to its tag string.
func (idx *IndexSet) HashtagFor(id uint32) (string, bool) {
	tag, ok := idx.hashtagByID[id]
	return tag, ok
}

func indexReadings(idx *regexidx.Index, w *model.Word, seq uint32) {
	idx.Add(w.Reading.Kana, seq)
	if w.Reading.Kanji != "" {
		idx.Add(w.Reading.Kanji, seq)
	}
	for _, alt := range w.Reading.Alternatives {
		idx.Add(alt, seq)
	}
}

func indexSenses(byLang map[string]*vector.ForeignIndex, w *model.Word, seq uint32) {
	for _, sense := range w.Senses {
		fi, ok := byLang[sense.Language]
		if !ok {
			continue
		}
		for _, gloss := range sense.Glosses {
			fi.AddDocument(seq, gloss, vector.PhraseWeight)
		}
	}
}

// singleKanjiReading reports the (literal, reading) pair for a word whose
// kanji spelling is exactly one character, the shape the k-reading index
// keys on (e.g. `"事 ジ"`).
func singleKanjiReading(w *model.Word) (rune, string, bool) {
	runes := []rune(w.Reading.Kanji)
	if len(runes) != 1 {
		return 0, "", false
	}
	return runes[0], w.Reading.Kana, true
}
