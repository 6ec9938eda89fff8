package bktree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuzzySearch(t *testing.T) {
	tree := New()
	tree.Insert("water", '水')
	tree.Insert("fire", '火')
	tree.Insert("wateer", '氵')
	tree.Insert("tree", '木')

	matches := tree.FuzzySearch("water")
	assert.NotEmpty(t, matches)
	assert.Equal(t, "water", matches[0].Term)
	assert.Equal(t, 0, matches[0].Distance)

	matches = tree.FuzzySearch("watre")
	var terms []string
	for _, m := range matches {
		terms = append(terms, m.Term)
	}
	assert.Contains(t, terms, "water")
}

func TestFuzzySearch_Cap(t *testing.T) {
	tree := New()
	tree.Insert("aa", 'a')
	tree.Insert("ab", 'b')
	tree.Insert("ac", 'c')
	tree.Insert("ad", 'd')
	tree.Insert("ae", 'e')

	matches := tree.FuzzySearch("aa")
	assert.LessOrEqual(t, len(matches), MaxFuzzyMatches)
}
