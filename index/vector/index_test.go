package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForeignIndexScoreExactMatch(t *testing.T) {
	idx := NewForeignIndex("eng")
	idx.AddDocument(1, "to run quickly", 1.0)
	idx.AddDocument(2, "to eat slowly", 1.0)

	scoreRun := idx.Score("to run quickly", 1)
	scoreEat := idx.Score("to run quickly", 2)
	assert.Greater(t, scoreRun, scoreEat)
	assert.Greater(t, scoreRun, float32(0))
}

func TestForeignIndexScoreUnknownDocument(t *testing.T) {
	idx := NewForeignIndex("eng")
	idx.AddDocument(1, "hello world", 1.0)
	assert.Equal(t, float32(0), idx.Score("hello world", 999))
}

func TestForeignIndexQueryTermsetAndDice(t *testing.T) {
	idx := NewForeignIndex("eng")
	idx.AddDocument(1, "quick fox", 1.0)

	docSet, ok := idx.Termset(1)
	assert.True(t, ok)
	qSet := idx.QueryTermset("quick fox")
	assert.NotZero(t, Dice(qSet, docSet))
}

func TestCosineEmptyVectors(t *testing.T) {
	assert.Equal(t, float32(0), Cosine(Sparse{}, Sparse{1: 2}))
	assert.Equal(t, float32(0), Cosine(Sparse{1: 2}, Sparse{}))
}
