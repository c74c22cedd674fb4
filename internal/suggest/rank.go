package suggest

import (
	"strings"
	"unicode/utf8"
)

// Rank scores for each match class. Prefix, word-boundary and substring
// matches add a shortness bonus so shorter candidates outrank longer ones
// within the same class.
const (
	scoreExact     = 1000
	scorePrefix    = 500
	scoreWordStart = 300
	scoreContains  = 200
	scoreFuzzy     = 50

	shortnessBase = 100

	// fuzzyMinInput is the minimum query length before typo-tolerant
	// matching kicks in; shorter queries produce too many accidental hits.
	fuzzyMinInput = 3
	// fuzzyMaxDistance is the edit-distance ceiling for a fuzzy hit.
	fuzzyMaxDistance = 2
)

// wordSeparators split a candidate into words for boundary matching.
const wordSeparators = " \t\n-_/()"

// rank scores a candidate against a non-empty input. Zero means no match.
func rank(candidate, input string) int {
	cLower := strings.ToLower(candidate)
	iLower := strings.ToLower(input)

	if cLower == iLower {
		return scoreExact
	}

	shortness := shortnessBase - utf8.RuneCountInString(candidate)

	if strings.HasPrefix(cLower, iLower) {
		return scorePrefix + shortness
	}

	if wordStartsWith(cLower, iLower) {
		return scoreWordStart + shortness
	}

	if strings.Contains(cLower, iLower) {
		return scoreContains + shortness
	}

	if utf8.RuneCountInString(input) >= fuzzyMinInput && Distance(input, candidate) <= fuzzyMaxDistance {
		return scoreFuzzy
	}

	return 0
}

// wordStartsWith reports whether any word of the candidate starts with the
// input. Words are split on whitespace, hyphen, underscore, slash and
// parentheses.
func wordStartsWith(candidate, input string) bool {
	words := strings.FieldsFunc(candidate, func(r rune) bool {
		return strings.ContainsRune(wordSeparators, r)
	})
	for _, word := range words {
		if strings.HasPrefix(word, input) {
			return true
		}
	}
	return false
}
