// Package resource holds the frozen, read-only, process-wide collections:
// words by sequence-id, kanji by literal, names by sequence-id, sentences
// by id, radicals by literal. A Store is built once by Load and is safe
// for unsynchronized concurrent reads thereafter — nothing in this package
// mutates a Store after construction.
package resource

import (
	"github.com/nihongokit/dictsearch/model"
)

// Store is the process-wide immutable singleton. Callers obtain one via
// Load at startup and hold a single shared reference for the process
// lifetime; the core never constructs a second one concurrently with
// requests in flight.
type Store struct {
	words     map[uint32]*model.Word
	kanji     map[rune]*model.Kanji
	names     map[uint32]*model.Name
	sentences map[uint32]*model.Sentence
	radicals  map[rune]*model.Radical
	hashtags  map[string]*model.Hashtag
}

func newEmptyStore() *Store {
	return &Store{
		words:     make(map[uint32]*model.Word),
		kanji:     make(map[rune]*model.Kanji),
		names:     make(map[uint32]*model.Name),
		sentences: make(map[uint32]*model.Sentence),
		radicals:  make(map[rune]*model.Radical),
		hashtags:  make(map[string]*model.Hashtag),
	}
}

func (s *Store) Word(seq uint32) (*model.Word, bool) {
	w, ok := s.words[seq]
	return w, ok
}

func (s *Store) Kanji(literal rune) (*model.Kanji, bool) {
	k, ok := s.kanji[literal]
	return k, ok
}

func (s *Store) Name(seq uint32) (*model.Name, bool) {
	n, ok := s.names[seq]
	return n, ok
}

func (s *Store) Sentence(id uint32) (*model.Sentence, bool) {
	se, ok := s.sentences[id]
	return se, ok
}

func (s *Store) Radical(literal rune) (*model.Radical, bool) {
	r, ok := s.radicals[literal]
	return r, ok
}

func (s *Store) Hashtag(tag string) (*model.Hashtag, bool) {
	h, ok := s.hashtags[tag]
	return h, ok
}

// Hashtags returns every free-form tag derived from the word collection's
// sense misc/field/dialect labels, for the hashtag suggestion index.
func (s *Store) Hashtags() map[string]*model.Hashtag { return s.hashtags }

// Words, Names, Sentences, Radicals, and KanjiAll expose the full
// collections for index construction at startup: callers must treat the
// returned maps as read-only, since a Store never mutates them after Load.
func (s *Store) Words() map[uint32]*model.Word         { return s.words }
func (s *Store) Names() map[uint32]*model.Name         { return s.names }
func (s *Store) Sentences() map[uint32]*model.Sentence { return s.sentences }
func (s *Store) Radicals() map[rune]*model.Radical     { return s.radicals }
func (s *Store) KanjiAll() map[rune]*model.Kanji       { return s.kanji }

func (s *Store) WordCount() int     { return len(s.words) }
func (s *Store) KanjiCount() int    { return len(s.kanji) }
func (s *Store) NameCount() int     { return len(s.names) }
func (s *Store) SentenceCount() int { return len(s.sentences) }

// WordsWithKanji returns every word whose kanji spelling contains literal,
// used to populate a Kanji response's on-compound slice.
func (s *Store) WordsWithKanji(literal rune) []*model.Word {
	var out []*model.Word
	for _, w := range s.words {
		if w.Reading.Kanji != "" && containsRune(w.Reading.Kanji, literal) {
			out = append(out, w)
		}
	}
	return out
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
