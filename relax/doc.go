// SPDX-License-Identifier: MIT

// Package relax implements the onepass Relaxation Engine: a single traversal
// of the Adjacency Index that lowers Distance Table rows in place.
//
// This is deliberately neither Dijkstra nor Bellman-Ford. There is no
// priority queue, no "finalize the closest vertex" loop and no iteration to a
// fixpoint. Vertices are visited once, in creation order; each out-edge is
// visited once, in append order, and exactly one rule fires for it:
//
//	RuleReturnEdge  current→source, current is not the source.
//	                If w beats current's distance, current becomes {source, w, w}
//	                and a one-level backward sweep follows (RuleSweep): every
//	                other vertex with an edge into current is re-checked once.
//	RuleFromSource  current is the source: neighbor becomes {source, w, w}
//	                when w beats its distance.
//	RuleForward     neither end is the source and neighbor.Previous != source:
//	                the usual current.FromStart + w relaxation.
//	RuleRedirect    neither end is the source and neighbor.Previous == source:
//	                re-derive via neighbor.FromPrevious, then, when current has
//	                a finite distance, repoint neighbor at current regardless of
//	                whether its distance improved.
//
// The pass is not a general shortest-path solver; on cyclic graphs its result
// differs from the true shortest paths, and RuleRedirect can leave a row whose
// Previous does not explain its FromStart. Both are the intended output.
//
// The source row is never written: it keeps Previous == "" and an Infinity
// distance. A self-loop on the source is ignored and the backward sweep skips
// the source entry, even when the source has an edge into the swept vertex.
// The legacy console tool wrote the source row in both places; with edges
// (a,c,5),(c,a,1) it reported a = 6 via c, while here a stays unset.
//
// Complexity:
//
//   - Time:  O(V + E) for the pass, plus O(E) per RuleReturnEdge trigger,
//     so O(E²) worst case.
//   - Space: O(V + E) for the adjacency snapshot.
//
// Errors (sentinel):
//
//	ErrNilGraph    - nil graph passed to Run or ShortestPaths.
//	ErrNilTable    - nil table passed to Run.
//	ErrEmptySource - empty source key passed to Run.
//
// core.ErrEmptyGraph and table.ErrUnknownVertex are propagated wrapped.
package relax
