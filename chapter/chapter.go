// Package chapter builds passage segments from chapter documents.
//
// Scene lists arrive from the StoryProof web app as JSON, either as a
// bare array of scene texts or as an array of {index, text} objects.
// Decode accepts both; Encode always produces the object form. Split
// segments a plain manuscript on scene-break markers.
package chapter

import (
	"fmt"

	"github.com/storyproof/passage"
	"github.com/storyproof/passage/codec"
)

// ErrMalformedDocument indicates a scene document that matches neither
// accepted JSON shape.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedDocument struct {
	Codec string
	cause error
}

func (e *ErrMalformedDocument) Error() string {
	return fmt.Sprintf("malformed scene document (codec %s)", e.Codec)
}

func (e *ErrMalformedDocument) Unwrap() error { return e.cause }

// FromTexts wraps raw scene texts in segments, indexed by position.
func FromTexts(texts []string) []passage.Segment {
	segments := make([]passage.Segment, len(texts))
	for i, t := range texts {
		segments[i] = passage.Segment{Index: i, Text: t}
	}
	return segments
}

// Decode parses a scene document into segments. Both accepted shapes
// decode: an array of {index, text} objects, or a bare array of scene
// texts (indexed by position). If c is nil, codec.Default is used.
func Decode(data []byte, c codec.Codec) ([]passage.Segment, error) {
	if c == nil {
		c = codec.Default
	}

	var segments []passage.Segment
	objErr := c.Unmarshal(data, &segments)
	if objErr == nil {
		return segments, nil
	}

	var texts []string
	if err := c.Unmarshal(data, &texts); err == nil {
		return FromTexts(texts), nil
	}

	return nil, &ErrMalformedDocument{Codec: c.Name(), cause: objErr}
}

// Encode renders segments as a scene document in the object form.
// If c is nil, codec.Default is used.
func Encode(segments []passage.Segment, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(segments)
}
