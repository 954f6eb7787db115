// Package tfidf implements an in-memory TF-IDF index over an accumulating
// document corpus.
//
// The analyzer follows a best-effort contract: invalid or empty input degrades
// to empty results and no method ever returns an error. Callers that need
// input validation must perform it themselves.
package tfidf

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// Analyzer holds the accumulated corpus, the vocabulary of every term ever
// seen, and the current IDF table. It is not safe for concurrent use; each
// logical caller owns its own instance.
type Analyzer struct {
	docs  []string
	vocab map[string]struct{}
	idf   map[string]float64
}

// NewAnalyzer returns an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vocab: make(map[string]struct{}),
		idf:   make(map[string]float64),
	}
}

// AddDocuments appends non-empty documents to the corpus, extends the
// vocabulary with every token seen, then recomputes the IDF table over the
// entire corpus. Empty entries are silently skipped; calling with an empty
// slice is a no-op. There is no incremental IDF update.
func (a *Analyzer) AddDocuments(docs []string) {
	added := false
	for _, doc := range docs {
		if doc == "" {
			continue
		}
		a.docs = append(a.docs, strings.ToLower(doc))
		for _, term := range parsing.Tokenize(doc) {
			a.vocab[term] = struct{}{}
		}
		added = true
	}
	if !added {
		return
	}
	a.recomputeIDF()
}

// Scores tokenizes the document, computes local term frequency, and multiplies
// elementwise by the current IDF table. Terms absent from the corpus vocabulary
// yield no entry. Empty input returns an empty map.
func (a *Analyzer) Scores(doc string) map[string]float64 {
	scores := make(map[string]float64)
	if doc == "" {
		return scores
	}
	for term, count := range parsing.TermFrequency(doc) {
		if weight, ok := a.idf[term]; ok {
			scores[term] = float64(count) * weight
		}
	}
	return scores
}

// CorpusSize reports the number of ingested documents.
func (a *Analyzer) CorpusSize() int {
	return len(a.docs)
}

// recomputeIDF rebuilds the IDF table as ln(N / (1 + docCount(term))) for
// every vocabulary term. docCount uses substring containment against the
// lower-cased document text, so short terms also match inside longer words
// ("a" matches "cat"). This imprecision is load-bearing: every downstream
// score depends on it, so it must not be changed to token-boundary matching
// without revisiting all consumers.
func (a *Analyzer) recomputeIDF() {
	n := float64(len(a.docs))
	idf := make(map[string]float64, len(a.vocab))
	for term := range a.vocab {
		count := 0
		for _, doc := range a.docs {
			if strings.Contains(doc, term) {
				count++
			}
		}
		idf[term] = math.Log(n / float64(1+count))
	}
	a.idf = idf
}
