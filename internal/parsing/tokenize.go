// Package parsing provides text tokenization, skill-name normalization, and
// HTML cleanup for the analysis engine.
package parsing

import "strings"

// Tokenize splits text into lower-cased, whitespace-delimited tokens.
// No stemming, stop-word removal, or punctuation stripping is applied;
// the scoring layers depend on this exact term definition.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TermFrequency computes per-term counts for a single document.
func TermFrequency(text string) map[string]int {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return map[string]int{}
	}
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return tf
}
