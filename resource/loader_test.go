package resource

import (
	"bytes"
	"encoding/gob"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nihongokit/dictsearch/apperror"
	"github.com/nihongokit/dictsearch/model"
)

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

func openerFor[T any](items []T) Opener {
	return func() (io.ReadCloser, error) {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(items); err != nil {
			return nil, err
		}
		return nopCloser{&buf}, nil
	}
}

func TestLoad_AllSources(t *testing.T) {
	words := []model.Word{{SequenceID: 1, Reading: model.Reading{Kana: "おはよう", Kanji: "お早う"}}}
	kanji := []model.Kanji{{Literal: '漢', StrokeCount: 13}}
	names := []model.Name{{SequenceID: 2, Kana: "たろう"}}
	sentences := []model.Sentence{{ID: 3, Japanese: "おはよう。", Translations: map[string]string{"eng": "Good morning."}}}
	radicals := []model.Radical{{Literal: '水', StrokeCount: 4}}

	store, err := Load(t.Context(), Sources{
		Words:     openerFor(words),
		Kanji:     openerFor(kanji),
		Names:     openerFor(names),
		Sentences: openerFor(sentences),
		Radicals:  openerFor(radicals),
	})
	require.NoError(t, err)

	w, ok := store.Word(1)
	require.True(t, ok)
	require.Equal(t, "お早う", w.Reading.Kanji)

	k, ok := store.Kanji('漢')
	require.True(t, ok)
	require.EqualValues(t, 13, k.StrokeCount)

	require.Equal(t, 1, store.WordCount())
	require.Equal(t, 1, store.NameCount())
	require.Equal(t, 1, store.SentenceCount())
}

func TestLoad_MissingSource(t *testing.T) {
	_, err := Load(t.Context(), Sources{})
	require.Error(t, err)
	require.True(t, apperror.Is(err, apperror.Io))
}
