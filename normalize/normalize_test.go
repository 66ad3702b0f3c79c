package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIgnored(t *testing.T) {
	ignored := []rune{' ', '\t', '\n', '\r', '\v', '\f', ' ', ' ', '　', '​', '‌', '‍', '\ufeff'}
	for _, r := range ignored {
		assert.True(t, IsIgnored(r), "expected %U to be ignored", r)
	}

	kept := []rune{'a', 'Z', '0', '.', ',', '토', '끼', 'é', '­'} // soft hyphen is not whitespace
	for _, r := range kept {
		assert.False(t, IsIgnored(r), "expected %U to be kept", r)
	}
}

func TestStrip(t *testing.T) {
	t.Run("NoOp", func(t *testing.T) {
		s := "nothing-to-strip"
		assert.Equal(t, s, Strip(s))
	})

	t.Run("Whitespace", func(t *testing.T) {
		assert.Equal(t, "thequickfox", Strip(" the\tquick \n fox "))
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		assert.Equal(t, "fox", Strip("f​o‌‍x\ufeff"))
	})

	t.Run("Korean", func(t *testing.T) {
		assert.Equal(t, "토끼는빠르게뛰었다.", Strip("토끼는   빠르게\n뛰었다."))
	})

	t.Run("AllIgnored", func(t *testing.T) {
		assert.Equal(t, "", Strip(" \t\n​\ufeff"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Strip(""))
	})

	t.Run("InvalidUTF8Kept", func(t *testing.T) {
		s := "a\xffb c"
		assert.Equal(t, "a\xffbc", Strip(s))
	})

	t.Run("Deterministic", func(t *testing.T) {
		s := "드래곤은 ​ 금화 위에서\t잠들었다"
		assert.Equal(t, Strip(s), Strip(s))
	})
}

func TestMapRange(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		s := "plain"
		start, end, ok := MapRange(s, 0, len(s))
		require.True(t, ok)
		assert.Equal(t, 0, start)
		assert.Equal(t, len(s), end)
	})

	t.Run("SkipsInteriorWhitespace", func(t *testing.T) {
		s := "the quick\tfox"
		clean := Strip(s) // "thequickfox"
		ci := strings.Index(clean, "quickfox")
		require.NotEqual(t, -1, ci)

		start, end, ok := MapRange(s, ci, len("quickfox"))
		require.True(t, ok)
		assert.Equal(t, "quick\tfox", s[start:end])
		assert.Equal(t, "quickfox", Strip(s[start:end]))
	})

	t.Run("TightBounds", func(t *testing.T) {
		// The mapped span must not start or end on an ignored rune.
		s := "  hello  world  "
		clean := Strip(s) // "helloworld"
		start, end, ok := MapRange(s, 0, len(clean))
		require.True(t, ok)
		assert.Equal(t, "hello  world", s[start:end])
	})

	t.Run("Korean", func(t *testing.T) {
		s := "토끼는 빠르게 뛰었다."
		clean := Strip(s)
		start, end, ok := MapRange(s, 0, len(clean))
		require.True(t, ok)
		assert.Equal(t, 0, start)
		assert.Equal(t, len(s), end)
		assert.Equal(t, clean, Strip(s[start:end]))
	})

	t.Run("MidString", func(t *testing.T) {
		s := "앨리스는 토끼를 보았다."
		clean := Strip(s)
		needle := Strip("토끼를 보았다.")
		ci := strings.Index(clean, needle)
		require.NotEqual(t, -1, ci)

		start, end, ok := MapRange(s, ci, len(needle))
		require.True(t, ok)
		assert.Equal(t, "토끼를 보았다.", s[start:end])
	})

	t.Run("ZeroLength", func(t *testing.T) {
		start, end, ok := MapRange("a b", 1, 0)
		require.True(t, ok)
		assert.Equal(t, start, end)
		assert.Equal(t, 2, start) // position of 'b'
	})

	t.Run("ZeroLengthAtEnd", func(t *testing.T) {
		start, end, ok := MapRange("ab", 2, 0)
		require.True(t, ok)
		assert.Equal(t, 2, start)
		assert.Equal(t, 2, end)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, _, ok := MapRange("short", 0, 100)
		assert.False(t, ok)

		_, _, ok = MapRange("short", 100, 1)
		assert.False(t, ok)
	})

	t.Run("NegativeArgs", func(t *testing.T) {
		_, _, ok := MapRange("x", -1, 1)
		assert.False(t, ok)

		_, _, ok = MapRange("x", 0, -1)
		assert.False(t, ok)
	})

	t.Run("MidRuneOffsetRejected", func(t *testing.T) {
		// 토 is 3 bytes in the clean form; byte offset 1 is inside it.
		_, _, ok := MapRange("토끼", 1, 3)
		assert.False(t, ok)
	})

	t.Run("Exactness", func(t *testing.T) {
		// For every rune-aligned clean range, the mapped original span
		// strips back to exactly that clean substring.
		s := "\ufeff바다 건너​ 용이 \t울었다\n"
		clean := Strip(s)

		bounds := []int{0}
		for i := range clean {
			if i > 0 {
				bounds = append(bounds, i)
			}
		}
		bounds = append(bounds, len(clean))

		for _, from := range bounds {
			for _, to := range bounds {
				if to <= from {
					continue
				}
				start, end, ok := MapRange(s, from, to-from)
				require.True(t, ok, "range [%d,%d)", from, to)
				assert.Equal(t, clean[from:to], Strip(s[start:end]), "range [%d,%d)", from, to)
			}
		}
	})
}
