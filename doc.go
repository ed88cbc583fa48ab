// SPDX-License-Identifier: MIT

// Package onepass reproduces a small console shortest-path tool: a directed,
// non-negatively weighted graph is relaxed in a single ordered pass using
// three hand-written rules, not Dijkstra and not Bellman-Ford.
//
// Packages, leaf first:
//
//	core/    Edge Store and Adjacency Index (thread-safe Graph)
//	table/   Distance Table and the sentinel-aware Distance type
//	relax/   the Relaxation Engine (rules, backward sweep, update hooks)
//	builder/ canned sample graphs and deterministic graph constructors
//	render/  the console text format
//	config/  ONEPASS_* environment configuration and the hclog root logger
//	server/  JSON HTTP API over the engine
//	cmd/onepass  console entry point: menu, run, check, serve
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdges(
//		core.Edge{From: "a", To: "b", Weight: 12},
//		core.Edge{From: "b", To: "c", Weight: 3},
//		core.Edge{From: "c", To: "a", Weight: 2},
//	)
//	res, err := relax.ShortestPaths(g)
//	if err != nil {
//		log.Fatal(err)
//	}
//	row, _ := res.Row("b") // b: 5 via c
//
// The result is only guaranteed to match the legacy console output; it is
// not a correct shortest-path solver for arbitrary topologies.
package onepass
