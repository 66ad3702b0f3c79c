package chapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyproof/passage"
	"github.com/storyproof/passage/codec"
)

func TestFromTexts(t *testing.T) {
	segments := FromTexts([]string{"first scene", "second scene"})

	require.Len(t, segments, 2)
	assert.Equal(t, passage.Segment{Index: 0, Text: "first scene"}, segments[0])
	assert.Equal(t, passage.Segment{Index: 1, Text: "second scene"}, segments[1])

	assert.Empty(t, FromTexts(nil))
}

func TestDecode(t *testing.T) {
	t.Run("ObjectForm", func(t *testing.T) {
		data := []byte(`[{"index":2,"text":"앨리스는 토끼를 보았다."},{"index":5,"text":"토끼는 빠르게 뛰었다."}]`)

		segments, err := Decode(data, nil)
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, 2, segments[0].Index)
		assert.Equal(t, "토끼는 빠르게 뛰었다.", segments[1].Text)
	})

	t.Run("StringForm", func(t *testing.T) {
		data := []byte(`["first scene","second scene"]`)

		segments, err := Decode(data, codec.JSON{})
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, 0, segments[0].Index)
		assert.Equal(t, 1, segments[1].Index)
		assert.Equal(t, "second scene", segments[1].Text)
	})

	t.Run("EmptyList", func(t *testing.T) {
		segments, err := Decode([]byte(`[]`), nil)
		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, data := range []string{
			`{"scenes":[]}`,
			`[0,1,2]`,
			`[{"index":0,"text":"x"},"y"]`,
			`not json at all`,
		} {
			_, err := Decode([]byte(data), nil)
			require.Error(t, err, data)

			var malformed *ErrMalformedDocument
			require.ErrorAs(t, err, &malformed, data)
			assert.Equal(t, codec.Default.Name(), malformed.Codec, data)
			assert.Error(t, errors.Unwrap(err), data)
		}
	})
}

func TestEncode(t *testing.T) {
	segments := []passage.Segment{
		{Index: 0, Text: "A letter waited on the table."},
		{Index: 1, Text: "She burned it."},
	}

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		data, err := Encode(segments, c)
		require.NoError(t, err, c.Name())
		assert.Contains(t, string(data), `"index"`, c.Name())

		back, err := Decode(data, c)
		require.NoError(t, err, c.Name())
		assert.Equal(t, segments, back, c.Name())
	}
}
