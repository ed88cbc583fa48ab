// SPDX-License-Identifier: MIT

// Package render prints edge lists and distance tables in the line format of
// the legacy console tool.
//
//	------------------------------------
//	Weighted edges for this execution:
//	------------------------------------
//	{a, b, 12}
//
//	Source Vertex: a
//	Source Vertex: x, Previous: Empty , Distance: Infinity
//	Source: b, Previous: c, Distance: 5
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/onepass/core"
	"github.com/katalvlaran/onepass/relax"
	"github.com/katalvlaran/onepass/table"
)

const rule = "------------------------------------"

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Banner writes a title framed by dashed rules.
func Banner(w io.Writer, title string) error {
	ew := &errWriter{w: w}
	banner(ew, title)

	return ew.err
}

func banner(ew *errWriter, title string) {
	ew.printf("%s\n%s\n%s\n", rule, title, rule)
}

// Edges writes one "{from, to, weight}" line per edge followed by a blank line.
func Edges(w io.Writer, edges []core.Edge) error {
	ew := &errWriter{w: w}
	writeEdges(ew, edges)

	return ew.err
}

func writeEdges(ew *errWriter, edges []core.Edge) {
	banner(ew, "Weighted edges for this execution: ")
	for _, e := range edges {
		ew.printf("{%s, %s, %d}\n", e.From, e.To, e.Weight)
	}
	ew.printf("\n")
}

// Table writes one line per row, in row order, followed by a blank line.
// The source row is recognised by key, not by distance.
func Table(w io.Writer, rows []table.Row, source string) error {
	ew := &errWriter{w: w}
	writeTable(ew, rows, source)

	return ew.err
}

func writeTable(ew *errWriter, rows []table.Row, source string) {
	for _, r := range rows {
		switch {
		case r.Key == source:
			ew.printf("Source Vertex: %s\n", r.Key)
		case r.Previous == "" && r.FromStart.IsInf():
			ew.printf("Source Vertex: %s, Previous: Empty , Distance: Infinity\n", r.Key)
		default:
			ew.printf("Source: %s, Previous: %s, Distance: %s\n", r.Key, r.Previous, r.FromStart)
		}
	}
	ew.printf("\n")
}

// Report prints the full run for g: the edge list, the freshly initialized
// table, then the table after one relaxation pass.
func Report(w io.Writer, g *core.Graph, opts ...relax.Option) error {
	if g == nil {
		return relax.ErrNilGraph
	}

	ew := &errWriter{w: w}
	writeEdges(ew, g.Edges())

	tbl, source, err := table.Initialize(g)
	if err != nil {
		return err
	}
	banner(ew, "DijkstraTable initialized:")
	writeTable(ew, tbl.Rows(), source)

	if err = relax.Run(g, tbl, source, opts...); err != nil {
		return err
	}
	banner(ew, "Dijkstra's Shortest Path:")
	writeTable(ew, tbl.Rows(), source)

	return ew.err
}
