/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ngram.go
Description: Character n-gram value type for the Akaylee Language Identifier.
An Ngram is a length-tagged sequence of 1 to 5 case-folded letter runes with a
deterministic back-off sequence used by the probabilistic scorer.
*/

package ngram

import (
	"fmt"
	"unicode/utf8"
)

// MaxLength is the highest n-gram order supported by the engine
const MaxLength = 5

// orderNames maps an n-gram order to the resource name used by model stores
var orderNames = [MaxLength + 1]string{
	1: "unigrams",
	2: "bigrams",
	3: "trigrams",
	4: "quadrigrams",
	5: "fivegrams",
}

// OrderName returns the model resource name for an n-gram order
// (unigrams, bigrams, trigrams, quadrigrams, fivegrams).
func OrderName(n int) (string, error) {
	if n < 1 || n > MaxLength {
		return "", fmt.Errorf("ngram: no order name for length %d", n)
	}
	return orderNames[n], nil
}

// Ngram is a contiguous sequence of 1 to 5 characters. Equality and map
// hashing are by (length, text); the length is the rune count, not the
// byte count.
type Ngram struct {
	text string
	n    int
}

// New constructs an Ngram from text. The rune count of text must be
// between 1 and MaxLength; anything else is a programmer error and is
// rejected immediately.
func New(text string) (Ngram, error) {
	n := utf8.RuneCountInString(text)
	if n < 1 || n > MaxLength {
		return Ngram{}, fmt.Errorf("ngram: length must be between 1 and %d, got %d (%q)", MaxLength, n, text)
	}
	return Ngram{text: text, n: n}, nil
}

// Text returns the characters of the n-gram
func (g Ngram) Text() string {
	return g.text
}

// Len returns the order of the n-gram (its rune count)
func (g Ngram) Len() int {
	return g.n
}

// String returns the textual form of the n-gram
func (g Ngram) String() string {
	return g.text
}

// Backoff returns the back-off sequence of the n-gram: the n-gram itself
// followed by progressively shorter n-grams obtained by dropping the final
// character, terminating at length 1. For "abcd" the sequence is
// "abcd", "abc", "ab", "a". The same fixed-end truncation is assumed on the
// training side.
func (g Ngram) Backoff() []Ngram {
	out := make([]Ngram, 0, g.n)
	runes := []rune(g.text)
	for k := g.n; k >= 1; k-- {
		out = append(out, Ngram{text: string(runes[:k]), n: k})
	}
	return out
}
