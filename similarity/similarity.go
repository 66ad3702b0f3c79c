// Package similarity scores how close a located span is to the quote
// that produced it, using the sergi/go-diff library.
//
// Comparison happens over whitespace-stripped forms, so the drift the
// locator already tolerates does not depress scores. A score of 1 means
// the texts strip to the same characters; 0 means nothing aligns.
package similarity

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/storyproof/passage/normalize"
)

// Scorer computes similarity scores. It is safe for concurrent use.
type Scorer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	dmp := diffmatchpatch.New()
	// Quotes are short; favor accuracy over an early cutoff.
	dmp.DiffTimeout = 0
	return &Scorer{dmp: dmp}
}

// DefaultScorer is a shared Scorer for general use.
var DefaultScorer = NewScorer()

// Distance returns the Levenshtein distance between the stripped forms
// of a and b, counted in code points.
func (s *Scorer) Distance(a, b string) int {
	ca := normalize.Strip(a)
	cb := normalize.Strip(b)
	if ca == cb {
		return 0
	}

	diffs := s.dmp.DiffMain(ca, cb, false)
	return s.dmp.DiffLevenshtein(diffs)
}

// Score returns a similarity in [0, 1] between the stripped forms of a
// and b: 1 minus the Levenshtein distance normalized by the longer
// stripped length. Strings that strip to the same form score 1.
func (s *Scorer) Score(a, b string) float64 {
	ca := normalize.Strip(a)
	cb := normalize.Strip(b)
	if ca == cb {
		return 1
	}

	n := utf8.RuneCountInString(ca)
	if m := utf8.RuneCountInString(cb); m > n {
		n = m
	}

	diffs := s.dmp.DiffMain(ca, cb, false)
	dist := s.dmp.DiffLevenshtein(diffs)
	return 1 - float64(dist)/float64(n)
}

// Distance is a convenience function using the default Scorer.
func Distance(a, b string) int {
	return DefaultScorer.Distance(a, b)
}

// Score is a convenience function using the default Scorer.
func Score(a, b string) float64 {
	return DefaultScorer.Score(a, b)
}
