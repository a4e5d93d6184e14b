/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tables.go
Description: Distinctive-character tables for the Akaylee Language Identifier.
The single-language table is order-sensitive (first hit wins) and is therefore
an ordered slice of pairs, never a map. The multi-language table is a union
table and is order-independent.
*/

package rules

import (
	"github.com/kleascm/akaylee-langid/pkg/language"
)

// singleRule maps a set of characters that occur in exactly one supported
// language to that language.
type singleRule struct {
	chars string
	lang  language.Language
}

// vietnameseToneMarks is the tone-mark cluster for the vowels ă, â, ê, ô,
// ơ, ư, and y with all accents. These combinations occur only in Vietnamese.
const vietnameseToneMarks = "ẮắẰằẲẳẴẵẶặẤấẦầẨẩẪẫẬậẾếỀềỂểỄễỆệỐốỒồỔổỖỗỘộỚớỜờỞởỠỡỢợỨứỪừỬửỮữỰựỲỳỴỵỶỷỸỹ"

// singleLanguageRules is scanned in definition order; the first rule whose
// character set intersects the word decides the language.
var singleLanguageRules = []singleRule{
	{"Ëë", language.Albanian},
	{"Ïï", language.Catalan},
	{"ĚěŘřŮů", language.Czech},
	{"ß", language.German},
	{"ŐőŰű", language.Hungarian},
	{"ĀāĒēĢģĪīĶķĻļŅņ", language.Latvian},
	{"ĖėĮįŲų", language.Lithuanian},
	{"ŁłŃńŚśŹź", language.Polish},
	{"Țţ", language.Romanian},
	{"ĹĺĽľŔŕ", language.Slovak},
	{"¿¡", language.Spanish},
	{"İıĞğ", language.Turkish},
	{vietnameseToneMarks, language.Vietnamese},
}

// multiRule maps a set of characters to the union of languages whose
// orthography uses them.
type multiRule struct {
	chars string
	langs language.Set
}

// multiLanguageRules accumulates a union of languages for every character
// set present in the word; the candidate set is intersected with the union.
var multiLanguageRules = []multiRule{
	{"Ãã", language.NewSet(language.Portuguese, language.Vietnamese)},
	{"ĄąĘę", language.NewSet(language.Lithuanian, language.Polish)},
	{"Ăă", language.NewSet(language.Romanian, language.Vietnamese)},
	{"Åå", language.NewSet(language.Bokmal, language.Danish, language.Norwegian, language.Nynorsk, language.Swedish)},
	{"Ææ", language.NewSet(language.Bokmal, language.Danish, language.Icelandic, language.Norwegian, language.Nynorsk)},
	{"Øø", language.NewSet(language.Bokmal, language.Danish, language.Norwegian, language.Nynorsk)},
	{"Ää", language.NewSet(language.Estonian, language.Finnish, language.German, language.Slovak, language.Swedish)},
	{"Öö", language.NewSet(language.Estonian, language.Finnish, language.German, language.Hungarian, language.Icelandic, language.Swedish, language.Turkish)},
	{"Üü", language.NewSet(language.Catalan, language.Estonian, language.German, language.Hungarian, language.Spanish, language.Turkish)},
	{"Çç", language.NewSet(language.Albanian, language.Catalan, language.French, language.Portuguese, language.Turkish)},
	{"Éé", language.NewSet(language.Catalan, language.Czech, language.French, language.Hungarian, language.Icelandic, language.Irish, language.Italian, language.Portuguese, language.Slovak, language.Vietnamese)},
	{"Èè", language.NewSet(language.Catalan, language.French, language.Italian, language.Vietnamese)},
	{"Êê", language.NewSet(language.French, language.Portuguese, language.Vietnamese)},
	{"Ââ", language.NewSet(language.French, language.Portuguese, language.Romanian, language.Turkish, language.Vietnamese)},
	{"Àà", language.NewSet(language.Catalan, language.French, language.Italian, language.Portuguese, language.Vietnamese)},
	{"Áá", language.NewSet(language.Catalan, language.Czech, language.Hungarian, language.Icelandic, language.Irish, language.Portuguese, language.Slovak, language.Spanish, language.Vietnamese)},
	{"Íí", language.NewSet(language.Catalan, language.Czech, language.Hungarian, language.Icelandic, language.Irish, language.Portuguese, language.Slovak, language.Spanish, language.Vietnamese)},
	{"Óó", language.NewSet(language.Catalan, language.Czech, language.Hungarian, language.Icelandic, language.Irish, language.Polish, language.Portuguese, language.Slovak, language.Spanish, language.Vietnamese)},
	{"Úú", language.NewSet(language.Catalan, language.Czech, language.Hungarian, language.Icelandic, language.Irish, language.Portuguese, language.Slovak, language.Spanish, language.Vietnamese)},
	{"Ýý", language.NewSet(language.Czech, language.Icelandic, language.Slovak, language.Vietnamese)},
	{"Òò", language.NewSet(language.Catalan, language.Italian, language.Vietnamese)},
	{"Ùù", language.NewSet(language.French, language.Italian, language.Vietnamese)},
	{"Ìì", language.NewSet(language.Italian, language.Vietnamese)},
	{"Ôô", language.NewSet(language.French, language.Portuguese, language.Slovak, language.Vietnamese)},
	{"Õõ", language.NewSet(language.Estonian, language.Portuguese, language.Vietnamese)},
	{"Ûû", language.NewSet(language.French, language.Turkish)},
	{"Ññ", language.NewSet(language.Spanish)},
	{"ÐðÞþ", language.NewSet(language.Icelandic)},
	{"ŠšŽž", language.NewSet(language.Croatian, language.Czech, language.Estonian, language.Latvian, language.Lithuanian, language.Slovak, language.Slovene)},
	{"Čč", language.NewSet(language.Croatian, language.Czech, language.Latvian, language.Lithuanian, language.Slovak, language.Slovene)},
	{"Ćć", language.NewSet(language.Croatian, language.Polish)},
	{"Đđ", language.NewSet(language.Croatian, language.Vietnamese)},
	{"ŇňŤťĎď", language.NewSet(language.Czech, language.Slovak)},
	{"Şş", language.NewSet(language.Romanian, language.Turkish)},
	{"Żż", language.NewSet(language.Polish)},
	{"ЁёЫыЭэ", language.NewSet(language.Belarusian, language.Russian)},
	{"ЩщЪъ", language.NewSet(language.Bulgarian, language.Russian)},
	{"Іі", language.NewSet(language.Belarusian, language.Ukrainian)},
	{"Ўў", language.NewSet(language.Belarusian)},
	{"ҐґЄєЇї", language.NewSet(language.Ukrainian)},
	{"پچژگ", language.NewSet(language.Persian)},
}
