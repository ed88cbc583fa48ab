// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge Store mutation and queries: AddEdge/AddEdges/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// AddEdge appends from→to with the given weight.
//
// Steps:
//  1. Validate keys (ErrEmptyVertexID) and weight (ErrNegativeWeight).
//  2. Append the edge to the Edge Store.
//  3. Append (to, weight) to the Vertex for from, creating it on first use.
//  4. Record both keys in first-seen order.
//
// A rejected edge leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	e := Edge{From: from, To: to, Weight: weight}
	if err := validateEdge(e); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.appendLocked(e)

	return nil
}

// AddEdges appends a batch of edges in slice order. The whole batch is
// validated first and every violation is reported in one aggregated error;
// if any edge is invalid nothing is added.
//
// Complexity: O(len(edges)).
func (g *Graph) AddEdges(edges ...Edge) error {
	var result error
	for i, e := range edges {
		if err := validateEdge(e); err != nil {
			result = multierror.Append(result, fmt.Errorf("edge %d: %w", i, err))
		}
	}
	if result != nil {
		return result
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range edges {
		g.appendLocked(e)
	}

	return nil
}

// Edges returns a copy of the Edge Store in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// validateEdge checks the boundary rules shared by AddEdge and AddEdges.
func validateEdge(e Edge) error {
	if e.From == "" || e.To == "" {
		return fmt.Errorf("%w: %q→%q", ErrEmptyVertexID, e.From, e.To)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	return nil
}

// appendLocked stores a validated edge. Caller holds mu for writing.
func (g *Graph) appendLocked(e Edge) {
	g.edges = append(g.edges, e)

	v, ok := g.index[e.From]
	if !ok {
		v = &Vertex{Key: e.From}
		g.index[e.From] = v
		g.order = append(g.order, e.From)
	}
	v.Out = append(v.Out, OutEdge{To: e.To, Weight: e.Weight})

	g.rememberLocked(e.From)
	g.rememberLocked(e.To)
}

func (g *Graph) rememberLocked(key string) {
	if _, ok := g.seen[key]; ok {
		return
	}
	g.seen[key] = struct{}{}
	g.keys = append(g.keys, key)
}
