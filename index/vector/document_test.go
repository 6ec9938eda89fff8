package vector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForeignDocumentRoundTrip(t *testing.T) {
	postings := []ForeignPosting{
		{SeqID: 1, Positions: []uint16{0, 5, 12}},
		{SeqID: 2, Positions: nil},
		{SeqID: 3, Positions: []uint16{7}},
	}
	encoded := EncodeForeignDocument(postings)
	got, err := DecodeForeignDocument(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, postings[0], got[0])
	assert.Empty(t, got[1].Positions)
	assert.Equal(t, postings[2], got[2])
}

func TestForeignDocumentTruncated(t *testing.T) {
	encoded := EncodeForeignDocument([]ForeignPosting{{SeqID: 1, Positions: []uint16{1, 2}}})
	_, err := DecodeForeignDocument(bytes.NewReader(encoded[:3]))
	assert.Error(t, err)
}

func TestNativeDocumentRoundTrip(t *testing.T) {
	postings := []NativePosting{
		{SeqID: 10, Position: 0},
		{SeqID: 11, Position: 44},
	}
	encoded := EncodeNativeDocument(postings)
	got, err := DecodeNativeDocument(bytes.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, postings, got)
}

func TestNativeDocumentTruncated(t *testing.T) {
	encoded := EncodeNativeDocument([]NativePosting{{SeqID: 10, Position: 1}})
	_, err := DecodeNativeDocument(bytes.NewReader(encoded[:5]))
	assert.Error(t, err)
}
