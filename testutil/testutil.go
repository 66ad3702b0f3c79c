package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// noiseRunes are the characters Noisy may inject: ordinary whitespace
// plus the zero-width characters an LLM round-trip is known to smuggle
// in. Spaces are repeated so injected noise stays mostly mundane.
var noiseRunes = []rune{
	' ', ' ', ' ', ' ',
	'\t', '\n',
	'\u200b', '\u200c', '\u200d', '\ufeff',
}

// sceneWords is a small pool of words for synthetic narrative text.
var sceneWords = []string{
	"the", "a", "her", "his", "their", "old", "young", "silent", "bright",
	"dragon", "river", "lantern", "tower", "letter", "garden", "winter",
	"stranger", "door", "shadow", "harbor", "candle", "mirror", "road",
	"waited", "turned", "whispered", "vanished", "burned", "remembered",
	"opened", "followed", "promised", "returned", "slept", "listened",
	"beneath", "beyond", "toward", "against", "without", "between",
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Noisy returns s with random runs of whitespace and zero-width
// characters inserted between code points. The visible characters and
// their order are untouched, so s and Noisy(s) strip to the same form.
func (r *RNG) Noisy(s string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	b.Grow(len(s) * 2)

	for _, ru := range s {
		if r.rand.Intn(3) == 0 {
			for n := 1 + r.rand.Intn(2); n > 0; n-- {
				b.WriteRune(noiseRunes[r.rand.Intn(len(noiseRunes))])
			}
		}
		b.WriteRune(ru)
	}
	if r.rand.Intn(3) == 0 {
		b.WriteRune(noiseRunes[r.rand.Intn(len(noiseRunes))])
	}

	return b.String()
}

// Scene generates a synthetic narrative scene of roughly the given word
// count, with sentences and an occasional paragraph break. Output is
// deterministic for a given seed and call sequence.
func (r *RNG) Scene(words int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	sentenceLen := 0

	for i := 0; i < words; i++ {
		if i > 0 {
			if sentenceLen == 0 && r.rand.Intn(6) == 0 {
				b.WriteString("\n\n")
			} else {
				b.WriteByte(' ')
			}
		}

		w := sceneWords[r.rand.Intn(len(sceneWords))]
		if sentenceLen == 0 {
			b.WriteString(strings.ToUpper(w[:1]))
			b.WriteString(w[1:])
		} else {
			b.WriteString(w)
		}

		sentenceLen++
		if sentenceLen >= 6+r.rand.Intn(8) || i == words-1 {
			b.WriteByte('.')
			sentenceLen = 0
		}
	}

	return b.String()
}

// Excerpt lifts a contiguous run of n code points from s, starting at a
// random rune boundary. If s has n or fewer code points, s itself is
// returned.
func (r *RNG) Excerpt(s string, n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))

	runes := len(bounds) - 1
	if runes <= n {
		return s
	}

	from := r.rand.Intn(runes - n + 1)
	return s[bounds[from]:bounds[from+n]]
}
