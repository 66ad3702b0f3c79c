// Package report resolves consistency-analysis reports against the
// scenes of a chapter.
//
// The analysis side of StoryProof reads a chapter and emits findings,
// each echoing the manuscript passage it refers to. Because that quote
// passed through a language model it rarely survives byte-for-byte.
// This package joins the findings back to their positions: a Resolver
// locates every issue's quote concurrently and grades each hit with a
// confidence, so a viewer can jump from a finding straight to the
// offending sentence.
package report

import (
	"fmt"

	"github.com/storyproof/passage"
)

// Severity classifies how serious a finding is.
type Severity int

const (
	// SeverityInfo marks an observation with no story impact.
	SeverityInfo Severity = iota
	// SeverityWarning marks a likely inconsistency worth reviewing.
	SeverityWarning
	// SeverityError marks a contradiction in the manuscript.
	SeverityError
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", text)
	}

	return nil
}

// Issue is a single finding from the consistency analysis. Quote is
// the passage the finding refers to, echoed by the analysis service
// and therefore subject to whitespace drift and paraphrase.
type Issue struct {
	ID       string   `json:"id,omitempty"`
	Kind     string   `json:"kind"`
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Quote    string   `json:"quote"`
	Note     string   `json:"note,omitempty"`
}

// Report is the raw output of a chapter analysis: findings whose
// quotes have not been located yet.
type Report struct {
	Chapter string  `json:"chapter,omitempty"`
	Issues  []Issue `json:"issues"`
}

// ResolvedIssue is an issue joined with the location of its quote.
//
// Confidence is in [0,1]: 1 for exact and normalized matches (the
// located span is a verified equality), a similarity score for prefix
// matches (only the head of the quote was verified), and 0 when the
// quote was not found.
type ResolvedIssue struct {
	Issue
	Match      passage.Match `json:"match"`
	Confidence float64       `json:"confidence"`
}

// Resolution is a fully resolved report. Issues preserves the order
// of the input report; Located counts the issues whose quote was
// found at any tier.
type Resolution struct {
	Chapter string          `json:"chapter,omitempty"`
	Issues  []ResolvedIssue `json:"issues"`
	Located int             `json:"located"`
}
