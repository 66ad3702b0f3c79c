package passage

import (
	"strings"
	"unicode/utf8"

	"github.com/storyproof/passage/normalize"
)

// Tier thresholds, counted in Unicode code points over the stripped
// quote except for prefixSpanRunes, which counts raw code points of
// segment text. The values encode tuned tolerance for LLM paraphrasing
// noise; changing them changes which passages existing chapters resolve
// to, so tests pin the literals.
const (
	// prefixMinQuoteRunes is the stripped quote length a quote must
	// exceed before the prefix tier is attempted.
	prefixMinQuoteRunes = 5

	// prefixRunes is the length the stripped quote is truncated to for
	// the prefix tier.
	prefixRunes = 15

	// prefixMinRunes is the minimum truncated prefix length.
	prefixMinRunes = 6

	// prefixSpanRunes is the fixed highlight span of a prefix hit,
	// counted in raw code points from the match start.
	prefixSpanRunes = 30
)

// locate runs the matching tiers in order of strictness. Tier precedence
// is global: a tier scans every segment before the next, looser tier
// runs, so an exact hit in a late segment beats a normalized hit in an
// early one.
func locate(segments []Segment, quote string) Match {
	if m, ok := locateExact(segments, quote); ok {
		return m
	}

	clean := normalize.Strip(quote)
	if clean == "" {
		// Nothing left to search for. An empty needle would "match"
		// every segment at offset zero.
		return Match{}
	}

	if m, ok := locateNormalized(segments, clean); ok {
		return m
	}

	if m, ok := locatePrefix(segments, clean); ok {
		return m
	}

	return Match{}
}

// locateExact finds quote as a raw substring.
func locateExact(segments []Segment, quote string) (Match, bool) {
	for i, seg := range segments {
		idx := strings.Index(seg.Text, quote)
		if idx < 0 {
			continue
		}

		return Match{
			Found:        true,
			SegmentIndex: i,
			Start:        idx,
			End:          idx + len(quote),
			Tier:         TierExact,
		}, true
	}

	return Match{}, false
}

// locateNormalized finds the stripped quote inside the stripped form of
// a segment and maps the hit back to raw offsets. The returned span
// strips to exactly cleanQuote.
func locateNormalized(segments []Segment, cleanQuote string) (Match, bool) {
	seg, start, end, ok := scanStripped(segments, cleanQuote)
	if !ok {
		return Match{}, false
	}

	return Match{
		Found:        true,
		SegmentIndex: seg,
		Start:        start,
		End:          end,
		Tier:         TierNormalized,
	}, true
}

// locatePrefix retries the normalized search with a truncated prefix of
// the stripped quote. Quotes at or below prefixMinQuoteRunes never reach
// this tier, and a prefix shorter than prefixMinRunes is not searched.
func locatePrefix(segments []Segment, cleanQuote string) (Match, bool) {
	if utf8.RuneCountInString(cleanQuote) <= prefixMinQuoteRunes {
		return Match{}, false
	}

	prefix := truncateRunes(cleanQuote, prefixRunes)
	if utf8.RuneCountInString(prefix) < prefixMinRunes {
		return Match{}, false
	}

	seg, start, _, ok := scanStripped(segments, prefix)
	if !ok {
		return Match{}, false
	}

	// Only the prefix is verified, so the span is a fixed run of raw
	// text rather than a guess at where the quote ends.
	end := advanceRunes(segments[seg].Text, start, prefixSpanRunes)

	return Match{
		Found:        true,
		SegmentIndex: seg,
		Start:        start,
		End:          end,
		Tier:         TierPrefix,
	}, true
}

// scanStripped searches each segment's stripped text for needle and maps
// the first hit back to raw byte offsets.
func scanStripped(segments []Segment, needle string) (seg, start, end int, ok bool) {
	for i, s := range segments {
		ci := strings.Index(normalize.Strip(s.Text), needle)
		if ci < 0 {
			continue
		}

		start, end, mapped := normalize.MapRange(s.Text, ci, len(needle))
		if !mapped {
			continue
		}

		return i, start, end, true
	}

	return 0, 0, 0, false
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// advanceRunes returns the byte offset n runes past start, clamped to
// the end of s.
func advanceRunes(s string, start, n int) int {
	i := start
	for i < len(s) && n > 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n--
	}
	return i
}
