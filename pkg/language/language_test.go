/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: language_test.go
Description: Unit tests for the language enumeration. Covers ISO code mapping,
JSON encoding, alphabet predicates, and the call-local candidate bitset.
*/

package language_test

import (
	"encoding/json"
	"testing"

	"github.com/kleascm/akaylee-langid/pkg/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageString(t *testing.T) {
	assert.Equal(t, "Unknown", language.Unknown.String())
	assert.Equal(t, "German", language.German.String())
	assert.Equal(t, "Vietnamese", language.Vietnamese.String())
	assert.Equal(t, "Language(999)", language.Language(999).String())
}

func TestIsoCodes(t *testing.T) {
	assert.Equal(t, "", language.Unknown.IsoCode())
	assert.Equal(t, "de", language.German.IsoCode())
	assert.Equal(t, "nb", language.Bokmal.IsoCode())
	assert.Equal(t, "nn", language.Nynorsk.IsoCode())
	assert.Equal(t, "no", language.Norwegian.IsoCode())

	// Every supported language has a distinct two-letter code
	seen := make(map[string]language.Language)
	for _, lang := range language.All() {
		code := lang.IsoCode()
		require.Len(t, code, 2, "language %s", lang)
		_, dup := seen[code]
		require.False(t, dup, "duplicate ISO code %q", code)
		seen[code] = lang
	}
}

func TestFromIsoCode(t *testing.T) {
	for _, lang := range language.All() {
		assert.Equal(t, lang, language.FromIsoCode(lang.IsoCode()))
	}
	assert.Equal(t, language.Unknown, language.FromIsoCode("xx"))
	assert.Equal(t, language.Unknown, language.FromIsoCode(""))
}

func TestLanguageJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(language.Swedish)
	require.NoError(t, err)
	assert.Equal(t, `"Swedish"`, string(data))

	var decoded language.Language
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, language.Swedish, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"Klingon"`), &decoded))
}

func TestAlphabetPredicates(t *testing.T) {
	assert.True(t, language.English.UsesLatinAlphabet())
	assert.False(t, language.English.UsesCyrillicAlphabet())

	assert.True(t, language.Russian.UsesCyrillicAlphabet())
	assert.False(t, language.Russian.UsesLatinAlphabet())

	assert.True(t, language.Greek.UsesGreekAlphabet())
	assert.True(t, language.Arabic.UsesArabicAlphabet())
	assert.True(t, language.Persian.UsesArabicAlphabet())

	assert.False(t, language.Unknown.UsesLatinAlphabet())
	assert.False(t, language.Unknown.UsesCyrillicAlphabet())
}

func TestEveryLanguageHasAnAlphabet(t *testing.T) {
	for _, lang := range language.All() {
		assert.NotEmpty(t, lang.Alphabets(), "language %s", lang)
	}
}

func TestSetBasics(t *testing.T) {
	s := language.NewSet(language.English, language.German)

	assert.True(t, s.Has(language.English))
	assert.True(t, s.Has(language.German))
	assert.False(t, s.Has(language.French))
	assert.False(t, s.Has(language.Unknown))
	assert.Equal(t, 2, s.Len())

	s = s.Add(language.French)
	assert.True(t, s.Has(language.French))
	assert.Equal(t, 3, s.Len())

	s = s.Remove(language.German)
	assert.False(t, s.Has(language.German))
	assert.Equal(t, 2, s.Len())
}

func TestSetIgnoresUnknown(t *testing.T) {
	s := language.NewSet(language.Unknown, language.Czech)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Has(language.Unknown))
}

func TestSetIntersectAndUnion(t *testing.T) {
	a := language.NewSet(language.English, language.German, language.French)
	b := language.NewSet(language.German, language.French, language.Italian)

	assert.Equal(t, language.NewSet(language.German, language.French), a.Intersect(b))
	assert.Equal(t, 4, a.Union(b).Len())
}

func TestSetFilter(t *testing.T) {
	s := language.NewSet(language.English, language.Russian, language.Greek)
	cyrillic := s.Filter(language.Language.UsesCyrillicAlphabet)
	assert.Equal(t, language.NewSet(language.Russian), cyrillic)
}

func TestSetLanguagesOrdinalOrder(t *testing.T) {
	s := language.NewSet(language.Vietnamese, language.Albanian, language.German)
	assert.Equal(t, []language.Language{language.Albanian, language.German, language.Vietnamese}, s.Languages())
}

func TestSetValueSemantics(t *testing.T) {
	original := language.NewSet(language.English)
	modified := original.Add(language.German)

	// Add returns a new value; the original set is untouched
	assert.False(t, original.Has(language.German))
	assert.True(t, modified.Has(language.German))
}

func TestAllSet(t *testing.T) {
	all := language.AllSet()
	assert.Equal(t, len(language.All()), all.Len())
	assert.True(t, all.Has(language.Vietnamese))
	assert.False(t, all.Has(language.Unknown))
	assert.True(t, language.NewSet().Empty())
}
