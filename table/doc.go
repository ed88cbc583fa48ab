// SPDX-License-Identifier: MIT

// Package table implements the Distance Table: one mutable Row per vertex
// key, iterated in row-creation order.
//
// Distances are tagged values rather than magic numbers. The zero Distance is
// Infinity; Finite(v) wraps a known total. Arithmetic treats Infinity as
// absorbing (Infinity.Add(w) == Infinity) and every finite value compares as
// Less than Infinity. A finite sum past math.MaxInt64 saturates to Infinity
// instead of wrapping, so a total is never negative.
//
// Initialize walks the Edge Store once, inserting the start then the end key
// of each edge. Insert is idempotent: a row is created exactly once and is
// never reset by a later insert. The source row is not set to zero; it keeps
// Previous == "" and FromStart == Infinity, and callers recognise it by key.
//
// Errors (sentinel):
//
//	ErrUnknownVertex - a lookup named a key that has no row.
//	ErrNilSource     - Initialize was given a nil edge source.
//
// Initialize also propagates core.ErrEmptyGraph when the store holds no edges.
package table
