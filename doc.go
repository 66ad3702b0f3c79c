// Package passage locates quoted text inside ordered scene segments.
//
// Passage is the quote-location core of StoryProof. Consistency findings
// come back from an analysis service quoting the offending sentence, and
// the quoted text rarely matches the stored scene byte for byte: LLMs
// reflow whitespace, drop newlines, and smuggle in zero-width characters.
// Passage finds the quoted span anyway and reports exact byte offsets
// into the original text, so a caller can scroll to it and highlight it.
//
// # Matching Tiers
//
// Locate attempts three increasingly lenient strategies:
//
//   - Exact: plain substring search over the raw segment text.
//   - Normalized: substring search after stripping whitespace and
//     zero-width characters, with the hit mapped back to raw offsets.
//   - Prefix: for longer quotes, the first 15 normalized characters are
//     matched the same way and a fixed 30-character span is returned.
//
// A tier scans every segment before the next tier runs, so an exact hit
// in a late scene always beats a looser hit in an early one.
//
// # Quick Start
//
//	segments := chapter.FromTexts(sceneTexts)
//
//	match, err := passage.Locate(segments, issue.Quote)
//	if err != nil {
//	    // Blank quote: a caller contract violation, not a miss.
//	    return err
//	}
//	if match.Found {
//	    scene := segments[match.SegmentIndex]
//	    highlight(scene.Index, scene.Text[match.Start:match.End])
//	}
//
// # Observability
//
// The package-level Locate is silent. Construct a Locator to attach
// structured logging and metrics:
//
//	loc := passage.New(
//	    passage.WithLogger(passage.NewTextLogger(slog.LevelDebug)),
//	    passage.WithMetricsCollector(&passage.BasicMetricsCollector{}),
//	)
//	match, err := loc.Locate(ctx, segments, quote)
//
// Start and End are byte offsets, ready for slicing; tier thresholds
// count Unicode code points. Not finding the quote is a normal outcome,
// reported as Match.Found == false with a nil error.
package passage
