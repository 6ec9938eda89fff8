package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBasicNumerals(t *testing.T) {
	cases := map[string]int64{
		"五":    5,
		"十":    10,
		"五十三":  53,
		"二千十九": 2019,
		"百":    100,
	}
	for input, want := range cases {
		got, ok := Parse(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseRejectsNonNumeral(t *testing.T) {
	_, ok := Parse("こんにちは")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}
