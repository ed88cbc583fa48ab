// SPDX-License-Identifier: MIT
// Package builder assembles core.Graph fixtures deterministically: explicit
// edge lists, simple topologies (Path, Cycle, RandomSparse) and the canned
// sample graphs served by the CLI and the HTTP API.
//
// One orchestrator, BuildGraph, creates the graph and runs constructors in
// order. Constructors validate their parameters first and return sentinel
// errors wrapped with method context; they never panic. Option constructors
// (WithX) panic on meaningless input such as a nil function.
//
// Same options, seed and constructor order always produce the same edge list
// in the same order, which matters here: the relaxation pass is sensitive to
// edge and vertex order.
package builder
