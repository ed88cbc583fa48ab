// SPDX-License-Identifier: MIT
// Package: onepass/builder
//
// impl_path.go - Path(n): edges (i-1)→i for i=1..n-1, in increasing i.
// The first edge starts at idFn(0), which becomes the source.

package builder

import (
	"fmt"

	"github.com/katalvlaran/onepass/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var (
			u, v string
			w    int64
		)
		for i := 1; i < n; i++ {
			u, v = cfg.idFn(i-1), cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
