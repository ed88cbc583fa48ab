// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; context is attached with %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSample indicates a sample selector that is not a number.
var ErrUnknownSample = errors.New("builder: unknown sample selector")
