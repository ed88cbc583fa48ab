// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// config.go - internal configuration and deterministic defaults.
//
//   • idFn     = LetterIDFn ("a","b",...,"z","aa",...)
//   • rng      = nil (deterministic unless seeded)
//   • weightFn = constant defaultConstWeight

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
}

const defaultConstWeight = int64(1)

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     LetterIDFn,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
