package resource

import (
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/nihongokit/dictsearch/apperror"
	"github.com/nihongokit/dictsearch/model"
)

// Opener returns a fresh, closable reader for one resource file. Callers
// typically back this with os.Open; tests back it with bytes.NewReader.
type Opener func() (io.ReadCloser, error)

// Sources names the five resource files loaded at startup, one per
// subsystem, each a single serialized blob. Go has no bincode decoder, and
// none of this module's dependencies provide one, so each blob is
// gob-encoded rather than hand-rolling a bincode-compatible reader; on-disk
// index construction and the importer pipeline that produces these blobs
// are out of scope for the core, so only the in-process decode shape
// matters here.
type Sources struct {
	Words     Opener
	Kanji     Opener
	Names     Opener
	Sentences Opener
	Radicals  Opener
}

// LoadOptions configures Load, following the Options/withDefaults idiom
// used elsewhere in this repo.
type LoadOptions struct {
	Sources Sources

	// Logger receives startup/load diagnostics; defaults to a logger
	// writing to os.Stderr via the standard library's log package when nil.
	Logger *log.Logger
}

func (o LoadOptions) withDefaults() LoadOptions {
	out := o
	if out.Logger == nil {
		out.Logger = log.New(os.Stderr, "resource: ", log.LstdFlags)
	}
	return out
}

// Load builds a Store by decoding all five resource files concurrently, one
// goroutine per file, joined before returning. Any file-open failure is
// apperror.Io; any decode failure is apperror.Decode. Both are meant to be
// treated as fatal by the caller: Load itself only returns the error,
// panicking at startup is the caller's responsibility.
func Load(ctx context.Context, src Sources) (*Store, error) {
	return LoadWithOptions(ctx, LoadOptions{Sources: src})
}

// LoadWithOptions is Load parameterized by a LoadOptions, logging the start
// and outcome of each resource file's decode.
func LoadWithOptions(ctx context.Context, opts LoadOptions) (*Store, error) {
	opts = opts.withDefaults()
	src := opts.Sources
	logger := opts.Logger
	store := newEmptyStore()
	logger.Printf("loading resources: words, kanji, names, sentences, radicals")
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := decodeSlice[model.Word](src.Words, "words")
		if err != nil {
			logger.Printf("words: load failed: %v", err)
			return err
		}
		for i := range items {
			w := items[i]
			store.words[w.SequenceID] = &w
		}
		logger.Printf("words: loaded %d entries", len(items))
		return nil
	})

	g.Go(func() error {
		items, err := decodeSlice[model.Kanji](src.Kanji, "kanji")
		if err != nil {
			logger.Printf("kanji: load failed: %v", err)
			return err
		}
		for i := range items {
			k := items[i]
			store.kanji[k.Literal] = &k
		}
		logger.Printf("kanji: loaded %d entries", len(items))
		return nil
	})

	g.Go(func() error {
		items, err := decodeSlice[model.Name](src.Names, "names")
		if err != nil {
			logger.Printf("names: load failed: %v", err)
			return err
		}
		for i := range items {
			n := items[i]
			store.names[n.SequenceID] = &n
		}
		logger.Printf("names: loaded %d entries", len(items))
		return nil
	})

	g.Go(func() error {
		items, err := decodeSlice[model.Sentence](src.Sentences, "sentences")
		if err != nil {
			logger.Printf("sentences: load failed: %v", err)
			return err
		}
		for i := range items {
			se := items[i]
			store.sentences[se.ID] = &se
		}
		logger.Printf("sentences: loaded %d entries", len(items))
		return nil
	})

	g.Go(func() error {
		items, err := decodeSlice[model.Radical](src.Radicals, "radicals")
		if err != nil {
			logger.Printf("radicals: load failed: %v", err)
			return err
		}
		for i := range items {
			r := items[i]
			store.radicals[r.Literal] = &r
		}
		logger.Printf("radicals: loaded %d entries", len(items))
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Printf("load aborted: %v", err)
		return nil, err
	}
	deriveHashtags(store)
	logger.Printf("load complete: %d words, %d kanji, %d names, %d sentences, %d radicals, %d hashtags",
		store.WordCount(), store.KanjiCount(), store.NameCount(), store.SentenceCount(), len(store.radicals), len(store.hashtags))
	return store, nil
}

// deriveHashtags builds the static hashtag collection from the
// misc/field/dialect labels already present on every word sense, rather
// than a sixth resource file — the source dictionary carries no separate
// hashtag blob, so the tag vocabulary is exactly the set of labels words
// are already tagged with. Frequency counts distinct words carrying the
// tag, used by the hashtag suggestion index to rank completions.
func deriveHashtags(store *Store) {
	for _, w := range store.words {
		seen := make(map[string]struct{})
		addTag := func(tag string) {
			if tag == "" {
				return
			}
			if _, dup := seen[tag]; dup {
				return
			}
			seen[tag] = struct{}{}
			h, ok := store.hashtags[tag]
			if !ok {
				h = &model.Hashtag{Tag: tag, Targets: []model.Target{model.TargetWords}}
				store.hashtags[tag] = h
			}
			h.Frequency++
		}
		for _, sense := range w.Senses {
			for _, m := range sense.Misc {
				addTag(m)
			}
			for _, f := range sense.Field {
				addTag(f)
			}
			for _, d := range sense.Dialect {
				addTag(d)
			}
		}
	}
}

func decodeSlice[T any](open Opener, name string) ([]T, error) {
	if open == nil {
		return nil, apperror.New(apperror.Io, fmt.Sprintf("%s: no source configured", name))
	}
	rc, err := open()
	if err != nil {
		return nil, apperror.Wrap(apperror.Io, fmt.Sprintf("open %s resource file", name), err)
	}
	defer rc.Close()

	var out []T
	if err := gob.NewDecoder(rc).Decode(&out); err != nil {
		if err == io.EOF {
			return nil, apperror.Wrap(apperror.Decode, fmt.Sprintf("%s resource file truncated", name), err)
		}
		return nil, apperror.Wrap(apperror.Decode, fmt.Sprintf("decode %s resource file", name), err)
	}
	return out, nil
}
