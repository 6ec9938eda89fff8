// Package ngram implements the inverted trigram-postings index: N=3 over a
// character alphabet including Japanese script, with a companion
// term-frequency map the relevance scorer uses to downweight ubiquitous
// trigrams. The same shape backs the suggestion indexes for words, kanji
// meanings, hashtags and names.
package ngram

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// N is the ngram width used throughout the core.
const N = 3

// Grams splits s into overlapping N-rune windows. Strings shorter than N
// yield a single gram equal to the whole string, so short readings are still
// indexable.
func Grams(s string) []string {
	r := []rune(s)
	if len(r) == 0 {
		return nil
	}
	if len(r) < N {
		return []string{string(r)}
	}
	out := make([]string, 0, len(r)-N+1)
	for i := 0; i+N <= len(r); i++ {
		out = append(out, string(r[i:i+N]))
	}
	return out
}

// Index maps ngram terms to the set of document ids containing them, plus a
// term-frequency count the native-word relevance scorer uses to downweight
// ubiquitous trigrams.
type Index struct {
	postings map[string]mapset.Set[uint32]
	termFreq map[string]int
	docCount int
}

func New() *Index {
	return &Index{
		postings: make(map[string]mapset.Set[uint32]),
		termFreq: make(map[string]int),
	}
}

// Add indexes doc under every ngram of text at build time; the index is
// read-only after loading completes. A document may be added several times
// under different texts (e.g. once per reading or meaning).
func (idx *Index) Add(id uint32, text string) {
	idx.docCount++
	for _, g := range Grams(text) {
		if _, ok := idx.postings[g]; !ok {
			idx.postings[g] = mapset.NewThreadUnsafeSet[uint32]()
		}
		if idx.postings[g].Add(id) {
			idx.termFreq[g]++
		}
	}
}

// Postings returns the document ids indexed under term, and its document
// frequency (how many distinct documents contain it, used to downweight
// ubiquitous trigrams).
func (idx *Index) Postings(term string) ([]uint32, int) {
	set, ok := idx.postings[term]
	if !ok {
		return nil, 0
	}
	out := set.ToSlice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, idx.termFreq[term]
}

// DocFrequency returns how many documents a term appears in, without
// materializing the posting list. Used by the native-word relevance scorer
// to downweight ubiquitous trigrams.
func (idx *Index) DocFrequency(term string) int {
	return idx.termFreq[term]
}

// DocCount is the total number of Add calls, which exceeds the number of
// distinct documents when a document is added under several texts.
func (idx *Index) DocCount() int {
	return idx.docCount
}

// Candidates returns the union of document ids across every ngram of query,
// alongside per-document match counts (how many of the query's ngrams hit
// that document) — the shape the native word engine's retrieval consumes.
func (idx *Index) Candidates(query string) map[uint32]int {
	counts := make(map[uint32]int)
	for _, g := range Grams(query) {
		set, ok := idx.postings[g]
		if !ok {
			continue
		}
		set.Each(func(id uint32) bool {
			counts[id]++
			return false
		})
	}
	return counts
}

// Termset builds the set of distinct ngrams of s, for use by Dice-based
// relevance scorers (the name and foreign-word scorers) that compare
// termsets rather than posting lists directly.
func Termset(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, g := range Grams(s) {
		out[g] = struct{}{}
	}
	return out
}
