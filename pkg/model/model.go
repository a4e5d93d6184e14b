/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Immutable language model for the Akaylee Language Identifier. Maps
n-grams of one order to relative frequencies in (0,1] and decodes the JSON
resource format served by model stores.
*/

package model

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/kleascm/akaylee-langid/pkg/ngram"
)

// Model is an immutable relative-frequency table for one (language, order)
// pair. Absent n-grams were unseen in training. A Model is read-only after
// decode and safe to share across concurrent detection calls.
type Model struct {
	lang  language.Language
	order int
	freqs map[ngram.Ngram]float64
}

// Language returns the language the model was trained for
func (m *Model) Language() language.Language {
	return m.lang
}

// Order returns the n-gram order of the model
func (m *Model) Order() int {
	return m.order
}

// Len returns the number of n-grams in the model
func (m *Model) Len() int {
	return len(m.freqs)
}

// Frequency returns the relative frequency of g and whether g was seen in
// training. Frequencies are always in (0, 1].
func (m *Model) Frequency(g ngram.Ngram) (float64, bool) {
	f, ok := m.freqs[g]
	return f, ok
}

// modelResource is the on-disk JSON shape of a model
type modelResource struct {
	Language string             `json:"language"`
	Ngrams   map[string]float64 `json:"ngrams"`
}

// Decode reads the JSON resource for the given (language, order) pair and
// builds an immutable Model. Every key must have exactly order runes and
// every frequency must lie in (0, 1]; violations are fatal decode errors.
func Decode(r io.Reader, lang language.Language, order int) (*Model, error) {
	if order < 1 || order > ngram.MaxLength {
		return nil, fmt.Errorf("model: order must be between 1 and %d, got %d", ngram.MaxLength, order)
	}

	var resource modelResource
	if err := json.NewDecoder(r).Decode(&resource); err != nil {
		return nil, fmt.Errorf("model: decoding %s order %d: %w", lang, order, err)
	}
	if resource.Language != "" && resource.Language != lang.IsoCode() {
		return nil, fmt.Errorf("model: resource is for %q, expected %q", resource.Language, lang.IsoCode())
	}

	freqs := make(map[ngram.Ngram]float64, len(resource.Ngrams))
	for text, freq := range resource.Ngrams {
		if utf8.RuneCountInString(text) != order {
			return nil, fmt.Errorf("model: n-gram %q does not have order %d", text, order)
		}
		g, err := ngram.New(text)
		if err != nil {
			return nil, fmt.Errorf("model: invalid n-gram %q: %w", text, err)
		}
		if freq <= 0 || freq > 1 {
			return nil, fmt.Errorf("model: frequency of %q must be in (0,1], got %g", text, freq)
		}
		freqs[g] = freq
	}

	return &Model{lang: lang, order: order, freqs: freqs}, nil
}
