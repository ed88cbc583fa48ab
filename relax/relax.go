// SPDX-License-Identifier: MIT

package relax

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/onepass/core"
	"github.com/katalvlaran/onepass/table"
)

// Result is the outcome of ShortestPaths: the source key and the final table.
type Result struct {
	Source string
	Table  *table.Table
}

// Row returns a copy of the final row for key.
func (r *Result) Row(key string) (table.Row, error) {
	return r.Table.Row(key)
}

// ShortestPaths initializes a fresh Distance Table from g's Edge Store and
// runs one relaxation pass over g's Adjacency Index.
//
// Every call builds a new table, so calling it twice on an unchanged graph
// yields identical results.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must hold at least one edge (core.ErrEmptyGraph).
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	tbl, source, err := table.Initialize(g)
	if err != nil {
		return nil, fmt.Errorf("relax: initialize: %w", err)
	}

	if err = Run(g, tbl, source, opts...); err != nil {
		return nil, err
	}

	return &Result{Source: source, Table: tbl}, nil
}

// Run performs the single relaxation pass, mutating t in place.
//
// t must already hold a row for every key of g (see table.Initialize); a
// missing row is reported as table.ErrUnknownVertex and the pass stops with
// t in whatever state it reached.
func Run(g Adjacency, t *table.Table, source string, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return ErrNilGraph
	}
	if t == nil {
		return ErrNilTable
	}
	if source == "" {
		return ErrEmptySource
	}

	r := &runner{
		adj:    g.Vertices(),
		tbl:    t,
		source: source,
		log:    cfg.Logger,
		hook:   cfg.OnUpdate,
	}

	r.log.Debug("relaxation pass starting", "source", source, "vertices", len(r.adj))
	if err := r.process(); err != nil {
		r.log.Error("relaxation pass failed", "error", err)
		return err
	}
	r.log.Debug("relaxation pass finished", "updates", r.updates)

	return nil
}

// runner holds the state of one pass.
type runner struct {
	adj     []core.Vertex // adjacency snapshot, creation order
	tbl     *table.Table  // rows mutated in place
	source  string
	log     hclog.Logger
	hook    func(Update)
	updates int
}

// process is the single outer traversal.
func (r *runner) process() error {
	var (
		cur      *core.Vertex
		curRow   *table.Row
		nbRow    *table.Row
		isSource bool
		err      error
	)
	for i := range r.adj {
		cur = &r.adj[i]
		if len(cur.Out) == 0 {
			continue
		}

		if curRow, err = r.lookup(cur.Key); err != nil {
			return err
		}
		isSource = cur.Key == r.source

		for _, oe := range cur.Out {
			if nbRow, err = r.lookup(oe.To); err != nil {
				return err
			}

			switch {
			case !isSource && oe.To == r.source:
				err = r.returnEdge(cur.Key, curRow, oe.Weight)
			case isSource && oe.To == r.source:
				// self-loop on the source; the source row is never written
			case isSource:
				r.fromSource(cur.Key, nbRow, oe.Weight)
			case nbRow.Previous != r.source:
				r.forward(cur.Key, curRow, nbRow, oe.Weight)
			default:
				r.redirect(cur.Key, curRow, nbRow, oe.Weight)
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// returnEdge handles current→source. On improvement it rewrites current and
// runs the one-level backward sweep.
func (r *runner) returnEdge(curKey string, curRow *table.Row, w int64) error {
	d := table.Finite(w)
	if !d.Less(curRow.FromStart) {
		return nil
	}

	curRow.Previous = r.source
	curRow.FromStart = d
	curRow.FromPrevious = d
	r.emit(RuleReturnEdge, curKey, curRow)

	return r.sweep(curKey, curRow)
}

// sweep re-checks every other adjacency entry with an edge into curKey.
// It does not recurse.
func (r *runner) sweep(curKey string, curRow *table.Row) error {
	var (
		x    *core.Vertex
		xRow *table.Row
		err  error
	)
	for i := range r.adj {
		x = &r.adj[i]
		if x.Key == curKey || x.Key == r.source {
			continue
		}

		for _, oe := range x.Out {
			if oe.To != curKey {
				continue
			}

			if xRow, err = r.lookup(x.Key); err != nil {
				return err
			}

			candidate := curRow.FromStart.Add(oe.Weight)
			if candidate.Less(xRow.FromStart) {
				xRow.Previous = curKey
				xRow.FromPrevious = table.Finite(oe.Weight)
				xRow.FromStart = candidate
				r.emit(RuleSweep, curKey, xRow)
			}
		}
	}

	return nil
}

// fromSource relaxes a direct out-edge of the source.
func (r *runner) fromSource(curKey string, nbRow *table.Row, w int64) {
	d := table.Finite(w)
	if !d.Less(nbRow.FromStart) {
		return
	}

	nbRow.Previous = curKey
	nbRow.FromStart = d
	nbRow.FromPrevious = d
	r.emit(RuleFromSource, curKey, nbRow)
}

// forward is the plain relaxation between two non-source vertices.
func (r *runner) forward(curKey string, curRow, nbRow *table.Row, w int64) {
	candidate := curRow.FromStart.Add(w)
	if !candidate.Less(nbRow.FromStart) {
		return
	}

	nbRow.FromStart = candidate
	nbRow.Previous = curKey
	nbRow.FromPrevious = table.Finite(w)
	r.emit(RuleForward, curKey, nbRow)
}

// redirect handles a neighbor already pointing at the source. The final
// repoint of Previous/FromPrevious happens even when FromStart does not
// improve.
func (r *runner) redirect(curKey string, curRow, nbRow *table.Row, w int64) {
	before := *nbRow

	viaPrevHop := curRow.FromStart.Plus(nbRow.FromPrevious)
	if nbRow.FromStart.IsInf() || viaPrevHop.Less(nbRow.FromStart) {
		nbRow.FromStart = viaPrevHop
		nbRow.Previous = curKey
	}

	if !curRow.FromStart.IsInf() {
		nbRow.Previous = curKey
		nbRow.FromPrevious = table.Finite(w)

		total := curRow.FromStart.Add(w)
		if total.Less(nbRow.FromStart) {
			nbRow.FromStart = total
		}
	}

	if *nbRow != before {
		r.emit(RuleRedirect, curKey, nbRow)
	}
}

func (r *runner) lookup(key string) (*table.Row, error) {
	row, err := r.tbl.Lookup(key)
	if err != nil {
		return nil, fmt.Errorf("relax: %w", err)
	}

	return row, nil
}

func (r *runner) emit(rule Rule, via string, row *table.Row) {
	r.updates++
	r.log.Trace("row updated",
		"rule", rule.String(),
		"via", via,
		"vertex", row.Key,
		"previous", row.Previous,
		"distance", row.FromStart.String(),
	)
	r.hook(Update{Rule: rule, Via: via, Row: *row})
}
