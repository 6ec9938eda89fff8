package romaji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertBasicSyllables(t *testing.T) {
	assert.Equal(t, "あいうえお", Convert("aiueo"))
	assert.Equal(t, "こんにちは", Convert("konnichiha"))
}

func TestConvertibleRejectsNonRomaji(t *testing.T) {
	assert.True(t, Convertible("konnichiha"))
	assert.False(t, Convertible("hello!"))
	assert.False(t, Convertible(""))
}

func TestConvertGeminateConsonant(t *testing.T) {
	assert.Equal(t, "がっこう", Convert("gakkou"))
}
