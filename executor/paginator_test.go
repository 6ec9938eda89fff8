package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillSink(n int) *Sink {
	s := NewSink(n)
	for i := 0; i < n; i++ {
		s.Push(i, i, float32(n-i))
	}
	return s
}

func TestPageFromSinkSkipsAndLimits(t *testing.T) {
	s := fillSink(10)
	page := PageFromSink(s, 3, 2)
	assert.Len(t, page, 3)
	assert.Equal(t, 2, page[0].Item)
	assert.Equal(t, 4, page[2].Item)
}

func TestPageFromSinkOffsetBeyondItems(t *testing.T) {
	s := fillSink(3)
	page := PageFromSink(s, 5, 10)
	assert.Empty(t, page)
}

func TestTotalPagesClampedTo100(t *testing.T) {
	assert.Equal(t, 1, TotalPages(5, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 100, TotalPages(100000, 1))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-5))
	assert.Equal(t, 100, ClampPage(500))
	assert.Equal(t, 42, ClampPage(42))
}

func TestPageFromSinkWithMaxDistDropsWeakMatches(t *testing.T) {
	s := NewSink(5)
	s.Push(1, "best", 10.0)
	s.Push(2, "close", 9.0)
	s.Push(3, "far", 1.0)

	page := PageFromSinkWithMaxDist(s, 10, 0, 2.0)
	assert.Len(t, page, 2)
	for _, sc := range page {
		assert.NotEqual(t, "far", sc.Item)
	}
}
