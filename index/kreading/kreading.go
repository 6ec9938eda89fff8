// Package kreading implements the kanji-reading index: keys are full
// reading strings of the form "literal reading"; postings are word
// sequence-ids.
package kreading

import "sort"

func Key(literal rune, reading string) string {
	return string(literal) + " " + reading
}

type Index struct {
	postings map[string][]uint32
}

func New() *Index {
	return &Index{postings: make(map[string][]uint32)}
}

// Add indexes seq under the literal+reading key.
func (idx *Index) Add(literal rune, reading string, seq uint32) {
	key := Key(literal, reading)
	idx.postings[key] = append(idx.postings[key], seq)
}

// Lookup returns the word sequence-ids whose reading for literal includes
// reading (e.g. `"事 ジ"`).
func (idx *Index) Lookup(literal rune, reading string) []uint32 {
	out := append([]uint32(nil), idx.postings[Key(literal, reading)]...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
