// Package keywords ranks the most frequent meaningful words of a text.
package keywords

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit is the number of keywords returned by Extract.
const DefaultLimit = 10

// minLength is the length a token must exceed to be counted.
const minLength = 3

var nonWord = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		the is at which on a an and or but in with
		to for of as by that this it from be are was
		were been being have has had do does did will
		would could should may might must shall can need
		dare ought used i you he she we they what who
		how when where why all each every both few more
		most other some such no nor not only own same
		so than too very just also now here there then`) {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the lower-cased word is excluded from ranking.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// Extract returns up to DefaultLimit keywords ordered by descending frequency.
func Extract(text string) []string {
	return ExtractN(text, DefaultLimit)
}

// ExtractN returns up to n keywords ordered by descending frequency. Words
// with equal counts keep the order in which they first appear in text.
func ExtractN(text string, n int) []string {
	counts := Frequencies(text)
	if len(counts) == 0 || n <= 0 {
		return []string{}
	}

	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.N - a.N
	})
	if len(counts) > n {
		counts = counts[:n]
	}

	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = capitalize(c.Word)
	}
	return out
}

// Count is a word together with its number of occurrences.
type Count struct {
	Word string
	N    int
}

// Frequencies counts the eligible tokens of text in first-occurrence order.
func Frequencies(text string) []Count {
	var counts []Count
	index := make(map[string]int)
	for _, tok := range Tokenize(text) {
		if i, ok := index[tok]; ok {
			counts[i].N++
			continue
		}
		index[tok] = len(counts)
		counts = append(counts, Count{Word: tok, N: 1})
	}
	return counts
}

// Tokenize lower-cases text, strips punctuation and drops short and stop words.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")
	var tokens []string
	for _, w := range strings.FieldsFunc(cleaned, unicode.IsSpace) {
		if utf8.RuneCountInString(w) <= minLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
