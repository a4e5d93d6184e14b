/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: alphabet.go
Description: Static script metadata for each supported language. Provides the
alphabet capability predicates the rule filter uses to narrow candidate sets
by Unicode script.
*/

package language

// Alphabet identifies a writing system used by a supported language
type Alphabet int

const (
	AlphabetLatin Alphabet = iota
	AlphabetCyrillic
	AlphabetGreek
	AlphabetArabic
)

// alphabetNames maps Alphabet values to their names
var alphabetNames = [...]string{
	AlphabetLatin:    "Latin",
	AlphabetCyrillic: "Cyrillic",
	AlphabetGreek:    "Greek",
	AlphabetArabic:   "Arabic",
}

// String returns the name of the alphabet
func (a Alphabet) String() string {
	if int(a) >= 0 && int(a) < len(alphabetNames) {
		return alphabetNames[a]
	}
	return "Alphabet(?)"
}

// alphabets holds the scripts each language is written in. Every supported
// language uses exactly one script here; the table is an array of slices so
// additional scripts can be carried without changing the predicates.
var alphabets = [numLanguages][]Alphabet{
	Albanian:   {AlphabetLatin},
	Arabic:     {AlphabetArabic},
	Belarusian: {AlphabetCyrillic},
	Bokmal:     {AlphabetLatin},
	Bulgarian:  {AlphabetCyrillic},
	Catalan:    {AlphabetLatin},
	Croatian:   {AlphabetLatin},
	Czech:      {AlphabetLatin},
	Danish:     {AlphabetLatin},
	Dutch:      {AlphabetLatin},
	English:    {AlphabetLatin},
	Estonian:   {AlphabetLatin},
	Finnish:    {AlphabetLatin},
	French:     {AlphabetLatin},
	German:     {AlphabetLatin},
	Greek:      {AlphabetGreek},
	Hungarian:  {AlphabetLatin},
	Icelandic:  {AlphabetLatin},
	Irish:      {AlphabetLatin},
	Italian:    {AlphabetLatin},
	Latvian:    {AlphabetLatin},
	Lithuanian: {AlphabetLatin},
	Norwegian:  {AlphabetLatin},
	Nynorsk:    {AlphabetLatin},
	Persian:    {AlphabetArabic},
	Polish:     {AlphabetLatin},
	Portuguese: {AlphabetLatin},
	Romanian:   {AlphabetLatin},
	Russian:    {AlphabetCyrillic},
	Slovak:     {AlphabetLatin},
	Slovene:    {AlphabetLatin},
	Spanish:    {AlphabetLatin},
	Swedish:    {AlphabetLatin},
	Turkish:    {AlphabetLatin},
	Ukrainian:  {AlphabetCyrillic},
	Vietnamese: {AlphabetLatin},
}

// Alphabets returns the scripts the language is written in
func (l Language) Alphabets() []Alphabet {
	if l > Unknown && l < numLanguages {
		return alphabets[l]
	}
	return nil
}

// usesAlphabet reports whether the language is written in the given script
func (l Language) usesAlphabet(a Alphabet) bool {
	for _, alphabet := range l.Alphabets() {
		if alphabet == a {
			return true
		}
	}
	return false
}

// UsesLatinAlphabet reports whether the language is written in Latin script
func (l Language) UsesLatinAlphabet() bool {
	return l.usesAlphabet(AlphabetLatin)
}

// UsesCyrillicAlphabet reports whether the language is written in Cyrillic script
func (l Language) UsesCyrillicAlphabet() bool {
	return l.usesAlphabet(AlphabetCyrillic)
}

// UsesGreekAlphabet reports whether the language is written in Greek script
func (l Language) UsesGreekAlphabet() bool {
	return l.usesAlphabet(AlphabetGreek)
}

// UsesArabicAlphabet reports whether the language is written in Arabic script
func (l Language) UsesArabicAlphabet() bool {
	return l.usesAlphabet(AlphabetArabic)
}
