// Package normalize implements the whitespace/invisible-character
// normalization used for tolerant quote matching.
//
// Chapter text that round-trips through a web editor and an LLM analysis
// service drifts in ways that are invisible to readers: runs of spaces
// collapse or grow, newlines move, and zero-width characters (ZWSP, ZWNJ,
// ZWJ, BOM) leak in or out. Strip removes exactly that class of runes so
// two renditions of the same sentence compare equal, and MapRange converts
// offsets in the stripped form back to byte offsets in the original text
// so callers can highlight the original, not the normalized copy.
//
// The stripped class is fixed: every rune with the Unicode White_Space
// property plus U+200B, U+200C, U+200D and U+FEFF. It is part of the
// library's compatibility contract and is not configurable.
package normalize
