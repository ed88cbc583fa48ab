// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// impl_random_sparse.go - RandomSparse(n, p): every ordered pair (i,j), i≠j,
// becomes an edge i→j with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order: i asc, then j asc. Fixed seed ⇒ identical edge list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onepass/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph.
// Vertices that draw no edge do not appear in the graph at all.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var (
			u, v string
			w    int64
			take bool
		)
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}

				switch {
				case p == probMax:
					take = true
				case p == probMin:
					take = false
				default:
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}

				v = cfg.idFn(j)
				w = cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
