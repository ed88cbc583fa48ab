// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Adjacency Index queries and source lookup.
// Determinism:
//   - Vertices() follows vertex-creation order; Out follows edge-append order.
//   - Keys() follows first-seen order over the Edge Store.

package core

// Vertices returns a deep copy of the Adjacency Index in vertex-creation order.
// Complexity: O(V + E).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, cloneVertex(g.index[key]))
	}

	return out
}

// Vertex returns a copy of the adjacency entry for key. The boolean is
// false for keys that never appeared as an edge start.
func (g *Graph) Vertex(key string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.index[key]
	if !ok {
		return Vertex{}, false
	}

	return cloneVertex(v), true
}

// OutEdges returns a copy of the out-edges of key, nil if key has no entry.
func (g *Graph) OutEdges(key string) []OutEdge {
	v, ok := g.Vertex(key)
	if !ok {
		return nil
	}

	return v.Out
}

// HasVertex reports whether key appeared as either endpoint of any edge.
func (g *Graph) HasVertex(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.seen[key]

	return ok
}

// Keys returns every endpoint key once, in first-seen order.
// Complexity: O(V).
func (g *Graph) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.keys))
	copy(out, g.keys)

	return out
}

// VertexCount returns the number of distinct endpoint keys.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.keys)
}

// Source returns the start endpoint of the first edge ever added,
// or ErrEmptyGraph.
func (g *Graph) Source() (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.edges) == 0 {
		return "", ErrEmptyGraph
	}

	return g.edges[0].From, nil
}

func cloneVertex(v *Vertex) Vertex {
	out := make([]OutEdge, len(v.Out))
	copy(out, v.Out)

	return Vertex{Key: v.Key, Out: out}
}
