// Package testutil provides testing utilities for passage.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for injecting deterministic whitespace noise into
// quotes and for generating synthetic scene text.
//
// # Noise Injection
//
//	rng := testutil.NewRNG(4711)
//	noisy := rng.Noisy(quote) // same visible characters, drifted whitespace
//
// # Synthetic Scenes
//
//	text := rng.Scene(200)          // ~200 words of synthetic narrative
//	quote := rng.Excerpt(text, 40)  // 40 code points lifted from it
package testutil
