package resource

import "github.com/nihongokit/dictsearch/model"

// TestData seeds a Store directly, bypassing Load's gob decoding, for
// engine/relevance/producer tests that need a Store but not a resource
// file fixture.
type TestData struct {
	Words     map[uint32]*model.Word
	Kanji     map[rune]*model.Kanji
	Names     map[uint32]*model.Name
	Sentences map[uint32]*model.Sentence
	Radicals  map[rune]*model.Radical
}

// NewStoreForTest builds a Store from in-memory fixtures.
func NewStoreForTest(data TestData) *Store {
	s := newEmptyStore()
	for k, v := range data.Words {
		s.words[k] = v
	}
	for k, v := range data.Kanji {
		s.kanji[k] = v
	}
	for k, v := range data.Names {
		s.names[k] = v
	}
	for k, v := range data.Sentences {
		s.sentences[k] = v
	}
	for k, v := range data.Radicals {
		s.radicals[k] = v
	}
	deriveHashtags(s)
	return s
}
