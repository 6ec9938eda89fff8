package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkDeduplicatesByIdentityKeepingMax(t *testing.T) {
	s := NewSink(10)
	assert.True(t, s.Push(1, "a-low", 1.0))
	assert.True(t, s.Push(1, "a-high", 5.0))
	assert.True(t, s.Push(1, "a-lower", 0.5))

	require.Equal(t, 1, s.Len())
	ordered := s.Ordered()
	assert.Equal(t, "a-high", ordered[0].Item)
	assert.Equal(t, float32(5.0), ordered[0].Relevance)
}

func TestSinkEvictsMinimumWhenFull(t *testing.T) {
	s := NewSink(2)
	s.Push(1, "one", 1.0)
	s.Push(2, "two", 2.0)

	assert.False(t, s.Push(3, "three", 0.5)) // below the current minimum, rejected
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Push(4, "four", 3.0)) // beats minimum (1.0), evicts it
	ids := map[any]bool{}
	for _, sc := range s.Ordered() {
		ids[sc.Item] = true
	}
	assert.True(t, ids["two"])
	assert.True(t, ids["four"])
	assert.False(t, ids["one"])
}

func TestSinkOrderedStableOnTies(t *testing.T) {
	s := NewSink(5)
	s.Push(1, "first", 1.0)
	s.Push(2, "second", 1.0)
	s.Push(3, "third", 1.0)

	ordered := s.Ordered()
	assert.Equal(t, "first", ordered[0].Item)
	assert.Equal(t, "second", ordered[1].Item)
	assert.Equal(t, "third", ordered[2].Item)
}

func TestSinkTotalPushedCountsAllAttempts(t *testing.T) {
	s := NewSink(1)
	s.Push(1, "a", 1.0)
	s.Push(2, "b", 0.5) // rejected, still counted
	s.Push(1, "a-again", 2.0)
	assert.Equal(t, 3, s.TotalPushed())
}
