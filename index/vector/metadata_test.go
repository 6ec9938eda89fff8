package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	m := Metadata{Version: CurrentVersion, DocCount: 12345, LanguageID: -2}
	got, err := RoundTrip(m)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMetadataVersionMismatch(t *testing.T) {
	m := Metadata{Version: CurrentVersion + 1, DocCount: 1}
	_, err := RoundTrip(m)
	assert.Error(t, err)
}
