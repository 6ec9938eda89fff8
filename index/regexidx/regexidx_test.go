package regexidx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralClass(t *testing.T) {
	runes, ok := LiteralClass("abc")
	require.True(t, ok)
	assert.ElementsMatch(t, []rune{'a', 'b', 'c'}, runes)

	runes, ok = LiteralClass("[ab]c")
	require.True(t, ok)
	assert.ElementsMatch(t, []rune{'a', 'b', 'c'}, runes)

	_, ok = LiteralClass(".*")
	assert.False(t, ok)
}

func TestCandidates_Intersection(t *testing.T) {
	idx := New()
	idx.Add("あいう", 1)
	idx.Add("あいえ", 2)
	idx.Add("かきく", 3)

	got := idx.Candidates([]rune{'あ', 'い'})
	assert.ElementsMatch(t, []uint32{1, 2}, got)

	got = idx.Candidates([]rune{'あ', 'う'})
	assert.ElementsMatch(t, []uint32{1}, got)

	got = idx.Candidates([]rune{'あ', 'か'})
	assert.Empty(t, got)
}
