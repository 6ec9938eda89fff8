// Package bktree implements a Burkhard-Keller tree over radical meaning
// terms for fuzzy lookup, capped at MaxFuzzyMatches. The search core builds
// one over every radical translation at startup; no search entry point
// queries it.
package bktree

import mapset "github.com/deckarep/golang-set/v2"

// MaxFuzzyMatches caps how many fuzzy terms a single lookup returns.
const MaxFuzzyMatches = 3

// MaxEditDistance is the fuzzy lookup radius.
const MaxEditDistance = 2

type node struct {
	term     string
	payload  mapset.Set[uint32] // radical literals meaning this term
	children map[int]*node
}

// Tree is a BK-tree keyed by Levenshtein distance between terms.
type Tree struct {
	root *node
}

func New() *Tree {
	return &Tree{}
}

// Insert adds term (a radical meaning) associating it with radical literal
// r. A term encountered more than once (e.g. two radicals sharing a
// meaning word) accumulates into the same node's payload set rather than
// creating a duplicate entry.
func (t *Tree) Insert(term string, r rune) {
	if t.root == nil {
		t.root = &node{term: term, payload: mapset.NewThreadUnsafeSet(uint32(r)), children: make(map[int]*node)}
		return
	}
	cur := t.root
	for {
		if cur.term == term {
			cur.payload.Add(uint32(r))
			return
		}
		d := levenshtein(cur.term, term)
		child, ok := cur.children[d]
		if !ok {
			cur.children[d] = &node{term: term, payload: mapset.NewThreadUnsafeSet(uint32(r)), children: make(map[int]*node)}
			return
		}
		cur = child
	}
}

// Match is a fuzzy hit: the matched term, its distance from the query, and
// the radical literals it maps to.
type Match struct {
	Term     string
	Distance int
	Radicals []rune
}

// FuzzySearch returns up to MaxFuzzyMatches terms within MaxEditDistance of
// query, ordered by ascending distance then term (stable for ties).
func (t *Tree) FuzzySearch(query string) []Match {
	if t.root == nil {
		return nil
	}
	var matches []Match
	var visit func(n *node)
	visit = func(n *node) {
		d := levenshtein(n.term, query)
		if d <= MaxEditDistance {
			radicals := make([]rune, 0, n.payload.Cardinality())
			for _, v := range n.payload.ToSlice() {
				radicals = append(radicals, rune(v))
			}
			sortRunes(radicals)
			matches = append(matches, Match{Term: n.term, Distance: d, Radicals: radicals})
		}
		for dist, child := range n.children {
			if dist >= d-MaxEditDistance && dist <= d+MaxEditDistance {
				visit(child)
			}
		}
	}
	visit(t.root)

	sortMatches(matches)
	if len(matches) > MaxFuzzyMatches {
		matches = matches[:MaxFuzzyMatches]
	}
	return matches
}

func sortRunes(r []rune) {
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j-1] > r[j]; j-- {
			r[j-1], r[j] = r[j], r[j-1]
		}
	}
}

func sortMatches(m []Match) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0; j-- {
			a, b := m[j-1], m[j]
			less := a.Distance < b.Distance || (a.Distance == b.Distance && a.Term <= b.Term)
			if less {
				break
			}
			m[j-1], m[j] = m[j], m[j-1]
		}
	}
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
