package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsIgnored reports whether r is removed by Strip: any rune with the
// Unicode White_Space property, or one of the zero-width formatting
// characters U+200B (ZWSP), U+200C (ZWNJ), U+200D (ZWJ), U+FEFF (BOM).
func IsIgnored(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// Strip returns s with all ignored runes removed, preserving the order and
// bytes of every remaining rune. Invalid UTF-8 sequences are kept verbatim.
// Strip is deterministic and returns s itself when nothing is stripped.
func Strip(s string) string {
	// Fast path: scan to the first ignored rune; most scene text between
	// whitespace runs is returned without allocating.
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if IsIgnored(r) {
			break
		}
		i += size
	}
	if i == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !IsIgnored(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// MapRange maps a byte range of Strip(s) back to byte offsets in s.
//
// cleanStart and cleanLen address Strip(s): the returned [start, end)
// satisfies Strip(s[start:end]) == Strip(s)[cleanStart:cleanStart+cleanLen].
// start lands on the first surviving rune of the range and end directly
// after the last one, so the mapped span never begins or ends with an
// ignored rune.
//
// ok is false when the range is negative, extends past the stripped form
// of s, or addresses a position inside a multi-byte rune of the stripped
// form (possible only for byte offsets that did not come from a substring
// search over Strip(s)).
func MapRange(s string, cleanStart, cleanLen int) (start, end int, ok bool) {
	if cleanStart < 0 || cleanLen < 0 {
		return 0, 0, false
	}

	cleanPos := 0 // bytes of surviving runes walked so far
	start = -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !IsIgnored(r) {
			if start < 0 && cleanPos == cleanStart {
				start = i
				if cleanLen == 0 {
					return start, start, true
				}
			}
			cleanPos += size
			if start >= 0 && cleanPos == cleanStart+cleanLen {
				return start, i + size, true
			}
		}
		i += size
	}

	// An empty range addressing the very end of the stripped form.
	if cleanLen == 0 && cleanPos == cleanStart {
		return len(s), len(s), true
	}
	return 0, 0, false
}
