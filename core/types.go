// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, OutEdge, Vertex and Graph declarations, sentinel errors and the
//       NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an edge endpoint key is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates that a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrEmptyGraph indicates that no edge has been added, so no source
	// vertex can be determined.
	ErrEmptyGraph = errors.New("core: graph has no edges")
)

// Edge is one raw input edge, start → end with a non-negative weight.
// It is a value type and never changes after construction.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// OutEdge is a single adjacency entry: the neighbor key and the weight of
// the edge leading to it.
type OutEdge struct {
	To     string
	Weight int64
}

// Vertex is an Adjacency Index entry. Out keeps edge-append order.
type Vertex struct {
	Key string
	Out []OutEdge
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithExpectedVertices pre-sizes the index for n distinct start keys.
// Values ≤ 0 are ignored.
func WithExpectedVertices(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.expected = n
		}
	}
}

// Graph is the Edge Store plus the Adjacency Index.
//
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	expected int // capacity hint for index and order

	edges []Edge             // Edge Store, insertion order
	index map[string]*Vertex // Adjacency Index, key → entry
	order []string           // vertex-creation order of index keys
	seen  map[string]struct{}
	keys  []string // every endpoint key, first-seen order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus the capacity hint.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	g.index = make(map[string]*Vertex, g.expected)
	g.order = make([]string, 0, g.expected)
	g.seen = make(map[string]struct{}, g.expected)
	g.keys = make([]string, 0, g.expected)

	return g
}
