package testutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyproof/passage/normalize"
)

func TestNoisy(t *testing.T) {
	rng := NewRNG(4711)

	quote := "토끼는 빠르게 뛰었다. The rabbit ran."
	noisy := rng.Noisy(quote)

	assert.Equal(t, normalize.Strip(quote), normalize.Strip(noisy))
	assert.GreaterOrEqual(t, len(noisy), len(quote))
}

func TestNoisyPreservesVisibleOrder(t *testing.T) {
	rng := NewRNG(42)

	quote := "abcdef"
	noisy := rng.Noisy(quote)

	stripped := normalize.Strip(noisy)
	assert.Equal(t, quote, stripped)
}

func TestScene(t *testing.T) {
	rng := NewRNG(4711)

	text := rng.Scene(200)

	require.NotEmpty(t, text)
	assert.True(t, strings.HasSuffix(text, "."))

	words := len(strings.Fields(text))
	assert.Equal(t, 200, words)
}

func TestExcerpt(t *testing.T) {
	rng := NewRNG(4711)

	text := rng.Scene(100)
	quote := rng.Excerpt(text, 40)

	assert.Equal(t, 40, utf8.RuneCountInString(quote))
	assert.Contains(t, text, quote)
}

func TestExcerptShortInput(t *testing.T) {
	rng := NewRNG(4711)

	assert.Equal(t, "short", rng.Excerpt("short", 40))
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	s1 := rng.Scene(50)

	rng.Reset()
	s2 := rng.Scene(50)

	assert.Equal(t, s1, s2)
}
