package concreteness

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenize lowercases text, splits it on Unicode word boundaries and keeps
// purely alphabetic words in order of appearance. Contractions and
// possessives are split Penn Treebank style, so "dog's" yields "dog" and
// "don't" yields "do"; the clitic itself is never alphabetic and is dropped.
// Unless includeStopwords is set, English stopwords are dropped. Duplicates
// are kept.
func Tokenize(text string, includeStopwords bool) []string {
	return tokenize(text, includeStopwords, englishStopwords)
}

func tokenize(text string, includeStopwords bool, stops StopwordSet) []string {
	if text == "" {
		return nil
	}

	// Casers carry state and must not be shared across goroutines.
	rest := cases.Lower(language.Und).String(norm.NFC.String(text))

	var tokens []string
	var word string
	state := -1
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		for _, part := range splitContraction(word) {
			if !isAlphabetic(part) {
				continue
			}
			if !includeStopwords && stops.Contains(part) {
				continue
			}
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// Whole words the Treebank tokenizer splits in two.
var fusedWords = map[string][2]string{
	"cannot": {"can", "not"},
	"gimme":  {"gim", "me"},
	"gonna":  {"gon", "na"},
	"gotta":  {"got", "ta"},
	"lemme":  {"lem", "me"},
	"wanna":  {"wan", "na"},
}

// Clitics split off the end of a word, longest first. Both the ASCII and the
// typographic apostrophe are recognised.
var clitics = []string{
	"n't", "n\u2019t",
	"'ll", "\u2019ll", "'re", "\u2019re", "'ve", "\u2019ve",
	"'s", "\u2019s", "'m", "\u2019m", "'d", "\u2019d",
}

// splitContraction separates a lowercase word into its stem and trailing
// clitic. Words without a recognised ending come back unchanged.
func splitContraction(word string) []string {
	if pair, ok := fusedWords[word]; ok {
		return pair[:]
	}
	for _, clitic := range clitics {
		stem, ok := strings.CutSuffix(word, clitic)
		if !ok || stem == "" || strings.HasSuffix(stem, "'") || strings.HasSuffix(stem, "\u2019") {
			continue
		}
		return []string{stem, clitic}
	}
	return []string{word}
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
