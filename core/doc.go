// SPDX-License-Identifier: MIT

// Package core holds the input side of a onepass computation: the Edge Store
// and the Adjacency Index built from it.
//
// A Graph is filled with AddEdge (or AddEdges for an all-or-nothing batch).
// Every call appends the raw edge to the Edge Store and appends (to, weight)
// to the out-edge list of the Vertex keyed by from, creating that Vertex on
// first use. No Vertex is ever created for the end endpoint: a key that only
// appears as an edge end has no adjacency entry at all.
//
// Ordering is part of the contract:
//
//   - Edges() returns edges in insertion order.
//   - Vertices() returns adjacency entries in vertex-creation order, each with
//     its out-edges in append order.
//   - Keys() returns every endpoint key in first-seen order (start before end).
//   - Source() is the start endpoint of the first edge ever added.
//
// Errors:
//
//	ErrEmptyVertexID  - an endpoint key is the empty string.
//	ErrNegativeWeight - a negative weight was supplied; nothing is stored.
//	ErrEmptyGraph     - no edge has been added, so no source exists.
//
// Concurrency: a single sync.RWMutex guards the store and the index, so a
// Graph may be built from several goroutines. All query methods return
// copies; callers never observe the live slices.
package core
