package chapter

import (
	"strings"

	"github.com/storyproof/passage"
)

// Split segments a plain manuscript into scenes.
//
// A scene ends at a scene-break line (three or more asterisks or
// hyphens on a line of their own, spaces allowed between asterisks) or
// at a run of two or more blank lines. A single blank line is an
// ordinary paragraph break and stays inside its scene. Scene text is
// otherwise preserved verbatim; the break lines themselves and blank
// lines adjacent to a break are consumed. Scenes are indexed in order
// from zero.
func Split(raw string) []passage.Segment {
	var segments []passage.Segment
	var cur []string
	var pendingBlanks []string

	flush := func() {
		if len(cur) > 0 {
			segments = append(segments, passage.Segment{
				Index: len(segments),
				Text:  strings.Join(cur, "\n"),
			})
			cur = nil
		}
		pendingBlanks = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case isBreakLine(line):
			flush()
		case strings.TrimSpace(line) == "":
			pendingBlanks = append(pendingBlanks, line)
		default:
			if len(pendingBlanks) >= 2 {
				flush()
			} else if len(pendingBlanks) == 1 && len(cur) > 0 {
				cur = append(cur, pendingBlanks[0])
			}
			pendingBlanks = nil
			cur = append(cur, line)
		}
	}
	flush()

	return segments
}

// isBreakLine reports whether the line is a scene-break marker once
// trimmed: three or more asterisks (optionally spaced) or three or
// more hyphens, and nothing else.
func isBreakLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}

	stars, dashes := 0, 0
	for _, r := range s {
		switch r {
		case '*':
			stars++
		case '-':
			dashes++
		case ' ', '\t':
		default:
			return false
		}
	}
	if stars > 0 && dashes > 0 {
		return false
	}
	return stars >= 3 || dashes >= 3
}
