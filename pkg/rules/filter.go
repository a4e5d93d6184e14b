/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: filter.go
Description: Rule-based classification for the Akaylee Language Identifier.
DetectByRules short-circuits detection on script or distinctive-character
evidence; FilterByRules narrows the call-local candidate set by the script of
the first classifiable word. Rule filtering is cheap triage, not consensus:
the first word that triggers a script branch decides.
*/

package rules

import (
	"strings"
	"unicode"

	"github.com/kleascm/akaylee-langid/pkg/language"
)

// DetectByRules inspects words in order and returns a language as soon as a
// word is decisive: a fully Greek-script word is Greek, and a fully
// Latin-script word carrying a distinctive character of exactly one language
// is that language. Unknown means no rule fired and scoring should proceed.
func DetectByRules(words []string) language.Language {
	for _, word := range words {
		if wordMatchesScript(word, unicode.Greek) {
			return language.Greek
		}
		if !wordMatchesScript(word, unicode.Latin) {
			continue
		}
		for _, rule := range singleLanguageRules {
			if strings.ContainsAny(word, rule.chars) {
				return rule.lang
			}
		}
	}
	return language.Unknown
}

// FilterByRules narrows candidates by the first word whose script is
// Cyrillic, Arabic, or Latin, checked in that priority. Later words never
// refine the result. For Latin words the umbrella Norwegian entry is dropped
// when both of its written forms remain, and the candidate set is intersected
// with the union of every multi-language character set present in the word.
func FilterByRules(words []string, candidates language.Set) language.Set {
	for _, word := range words {
		switch {
		case wordMatchesScript(word, unicode.Cyrillic):
			return candidates.Filter(language.Language.UsesCyrillicAlphabet)

		case wordMatchesScript(word, unicode.Arabic):
			return candidates.Filter(language.Language.UsesArabicAlphabet)

		case wordMatchesScript(word, unicode.Latin):
			filtered := candidates.Filter(language.Language.UsesLatinAlphabet)

			if filtered.Has(language.Bokmal) && filtered.Has(language.Nynorsk) {
				filtered = filtered.Remove(language.Norwegian)
			}

			var union language.Set
			for _, rule := range multiLanguageRules {
				if strings.ContainsAny(word, rule.chars) {
					union = union.Union(rule.langs)
				}
			}
			if !union.Empty() {
				filtered = filtered.Intersect(union)
			}
			return filtered
		}
	}
	return candidates
}

// wordMatchesScript reports whether every letter of the word belongs to the
// script and the word contains at least one letter. Non-letter code points
// (punctuation such as the Spanish ¿ and ¡) are neutral so that a word like
// "¿cómo" still counts as Latin.
func wordMatchesScript(word string, script *unicode.RangeTable) bool {
	sawLetter := false
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.Is(script, r) {
			return false
		}
		sawLetter = true
	}
	return sawLetter
}
