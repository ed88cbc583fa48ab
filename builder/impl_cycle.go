// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// impl_cycle.go - Cycle(n): Path(n) plus the closing edge (n-1)→0.
// The closing edge points back at the source, so the relaxation pass takes
// its return-edge rule on the last vertex.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onepass/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds a directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		var (
			u, v string
			w    int64
		)
		for i := 0; i < n; i++ {
			u, v = cfg.idFn(i), cfg.idFn((i+1)%n)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCycle, u, v, w, err)
			}
		}

		return nil
	}
}
