// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/onepass/core"
)

const methodEdges = "Edges"

// Edges returns a Constructor that adds the given edges in slice order.
// The batch is all-or-nothing (see core.Graph.AddEdges).
func Edges(edges ...core.Edge) Constructor {
	list := make([]core.Edge, len(edges))
	copy(list, edges)

	return func(g *core.Graph, _ builderConfig) error {
		if err := g.AddEdges(list...); err != nil {
			return fmt.Errorf("%s: %w", methodEdges, err)
		}

		return nil
	}
}
