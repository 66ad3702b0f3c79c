package passage

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Segment is one scene of a chapter.
//
// The order of a []Segment is the scan order. Index is the caller's
// scene number and is carried through untouched; it does not have to
// match the position in the slice.
type Segment struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Tier identifies the matching strategy that produced a Match.
type Tier int

const (
	// TierNone marks a Match with Found == false.
	TierNone Tier = iota

	// TierExact is a byte-for-byte substring hit on the raw text.
	TierExact

	// TierNormalized is a hit after stripping whitespace and zero-width
	// characters, mapped back to raw offsets. The matched span strips to
	// exactly the stripped quote.
	TierNormalized

	// TierPrefix is a hit on the truncated normalized prefix of the
	// quote. Only the prefix is verified; the span is a fixed length.
	TierPrefix
)

// String returns the lowercase name of the tier.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierNormalized:
		return "normalized"
	case TierPrefix:
		return "prefix"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*t = TierNone
	case "exact":
		*t = TierExact
	case "normalized":
		*t = TierNormalized
	case "prefix":
		*t = TierPrefix
	default:
		return fmt.Errorf("unknown tier %q", text)
	}
	return nil
}

// Match reports where a quote was found.
//
// On a found match, Start and End are byte offsets into the raw text of
// the segment at SegmentIndex, so
//
//	segments[m.SegmentIndex].Text[m.Start:m.End]
//
// is always a valid slice. Not finding the quote is not an error; it is
// reported as the zero Match.
type Match struct {
	Found        bool `json:"found"`
	SegmentIndex int  `json:"segmentIndex"`
	Start        int  `json:"start"`
	End          int  `json:"end"`
	Tier         Tier `json:"tier"`
}

// Span returns the matched slice of segment text, or "" when the match
// is empty or does not address segments.
func (m Match) Span(segments []Segment) string {
	if !m.Found || m.SegmentIndex < 0 || m.SegmentIndex >= len(segments) {
		return ""
	}
	text := segments[m.SegmentIndex].Text
	if m.Start < 0 || m.End < m.Start || m.End > len(text) {
		return ""
	}
	return text[m.Start:m.End]
}

// Locator locates quotes inside scene segments, with optional structured
// logging and metrics around each call. It holds no match state and is
// safe for concurrent use.
type Locator struct {
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Locator.
func New(optFns ...Option) *Locator {
	opts := applyOptions(optFns)

	return &Locator{
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
}

// Locate scans segments in order for quote and returns the first hit at
// the strictest tier that produces one.
//
// A blank quote (empty or whitespace only) returns ErrEmptyQuote. An
// exhausted search is not an error: the result has Found == false.
//
// The search itself is a pure computation and never blocks; ctx is used
// for log propagation only.
func (l *Locator) Locate(ctx context.Context, segments []Segment, quote string) (Match, error) {
	start := time.Now()

	if strings.TrimSpace(quote) == "" {
		err := ErrEmptyQuote
		l.metrics.RecordLocate(TierNone, time.Since(start), err)
		l.logger.LogLocate(ctx, len(segments), Match{}, err)
		return Match{}, err
	}

	m := locate(segments, quote)
	l.metrics.RecordLocate(m.Tier, time.Since(start), nil)
	l.logger.LogLocate(ctx, len(segments), m, nil)
	return m, nil
}

// defaultLocator backs the package-level Locate. It logs nothing and
// records nothing.
var defaultLocator = New()

// Locate scans segments in order for quote using a silent default
// Locator. See Locator.Locate.
func Locate(segments []Segment, quote string) (Match, error) {
	return defaultLocator.Locate(context.Background(), segments, quote)
}
