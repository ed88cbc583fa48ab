// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/onepass/core"
)

// Table maps vertex keys to rows and remembers row-creation order.
// It is not safe for concurrent use; one computation owns one Table.
type Table struct {
	rows  map[string]*Row
	order []string
}

// New returns an empty Table sized for capacity rows.
func New(capacity int) *Table {
	if capacity < 0 {
		capacity = 0
	}

	return &Table{
		rows:  make(map[string]*Row, capacity),
		order: make([]string, 0, capacity),
	}
}

// Initialize builds a fresh Table from the Edge Store and returns it with the
// source key (start of the first edge).
//
// For every edge, in order, a sentinel row is ensured for the start key and
// then for the end key.
// Complexity: O(E).
func Initialize(src EdgeSource) (*Table, string, error) {
	if src == nil {
		return nil, "", ErrNilSource
	}

	edges := src.Edges()
	if len(edges) == 0 {
		return nil, "", core.ErrEmptyGraph
	}

	t := New(len(edges) + 1)
	for _, e := range edges {
		t.Insert(e.From)
		t.Insert(e.To)
	}

	return t, edges[0].From, nil
}

// Insert adds a sentinel row for key and reports whether it was created.
// An existing row is left untouched.
func (t *Table) Insert(key string) bool {
	if _, ok := t.rows[key]; ok {
		return false
	}
	t.rows[key] = &Row{Key: key}
	t.order = append(t.order, key)

	return true
}

// Lookup returns the live row for key. Mutations through the pointer are
// visible to every later reader of the table.
func (t *Table) Lookup(key string) (*Row, error) {
	r, ok := t.rows[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, key)
	}

	return r, nil
}

// Row returns a copy of the row for key.
func (t *Table) Row(key string) (Row, error) {
	r, err := t.Lookup(key)
	if err != nil {
		return Row{}, err
	}

	return *r, nil
}

// Has reports whether key has a row.
func (t *Table) Has(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// Rows returns copies of all rows in creation order.
func (t *Table) Rows() []Row {
	out := make([]Row, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, *t.rows[k])
	}

	return out
}

// Keys returns the row keys in creation order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.order) }
