/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: normalize.go
Description: Input normalization for the Akaylee Language Identifier. Trims
surrounding whitespace, lowercases under full Unicode semantics, and splits
the input into the words used by rule-based classification.
*/

package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"
)

// normalize trims surrounding whitespace and lowercases text with Unicode
// case mapping. Line breaks inside the text are preserved for the extractor.
func normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	return cases.Lower(xlanguage.Und).String(trimmed)
}

// containsLetter reports whether s has at least one Unicode letter
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// countLetters returns the number of Unicode letter runes in s
func countLetters(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			count++
		}
	}
	return count
}

// splitWords produces the words used for rule-based classification. When the
// original pre-normalization text contains an ASCII space the normalized text
// is split on ASCII space; otherwise the whole normalized text is one word.
func splitWords(original, normalized string) []string {
	if !strings.Contains(original, " ") {
		return []string{normalized}
	}

	parts := strings.Split(normalized, " ")
	words := parts[:0]
	for _, part := range parts {
		if part != "" {
			words = append(words, part)
		}
	}
	return words
}
