/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Lazy memoized model loader for the Akaylee Language Identifier.
Each (language, order) pair is decoded at most once behind a sync.Once and the
published Model is shared by every subsequent reader. Decode failures are
fatal for the pair and are returned to every caller.
*/

package model

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/kleascm/akaylee-langid/pkg/interfaces"
	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/ngram"
)

// loaderKey identifies one (language, order) model
type loaderKey struct {
	lang  language.Language
	order int
}

// loaderEntry guards the one-time decode of a single model
type loaderEntry struct {
	once  sync.Once
	model *Model
	err   error
}

// Loader resolves models from a store with once-per-pair decoding. The
// loader owns its cache for the lifetime of the detector; removed languages
// keep their cached models.
type Loader struct {
	store interfaces.ModelStore

	mu      sync.Mutex
	entries map[loaderKey]*loaderEntry
}

// NewLoader creates a loader reading from store
func NewLoader(store interfaces.ModelStore) *Loader {
	return &Loader{
		store:   store,
		entries: make(map[loaderKey]*loaderEntry),
	}
}

// Load returns the model for the given (language, order) pair, decoding it
// on first use. Concurrent callers for the same pair block until the single
// decode finishes and then observe the same published Model.
func (l *Loader) Load(lang language.Language, order int) (*Model, error) {
	if lang == language.Unknown {
		return nil, fmt.Errorf("model: no models exist for %s", lang)
	}

	key := loaderKey{lang: lang, order: order}

	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &loaderEntry{}
		l.entries[key] = entry
	}
	l.mu.Unlock()

	entry.once.Do(func() {
		entry.model, entry.err = l.decode(lang, order)
	})
	return entry.model, entry.err
}

// Preload eagerly decodes all five orders for every given language. The
// first failure aborts and is returned.
func (l *Loader) Preload(langs []language.Language) error {
	for _, lang := range langs {
		for order := 1; order <= ngram.MaxLength; order++ {
			if _, err := l.Load(lang, order); err != nil {
				return err
			}
		}
	}
	return nil
}

// decode fetches and decodes one model resource from the store
func (l *Loader) decode(lang language.Language, order int) (*Model, error) {
	orderName, err := ngram.OrderName(order)
	if err != nil {
		return nil, err
	}

	data, err := l.store.Read(lang.IsoCode(), orderName)
	if err != nil {
		return nil, fmt.Errorf("model: loading %s %s: %w", lang, orderName, err)
	}

	m, err := Decode(bytes.NewReader(data), lang, order)
	if err != nil {
		return nil, err
	}
	return m, nil
}
