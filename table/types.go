// SPDX-License-Identifier: MIT

package table

import (
	"errors"

	"github.com/katalvlaran/onepass/core"
)

// Sentinel errors returned by the table package.
var (
	// ErrUnknownVertex indicates a lookup for a key that was never registered.
	ErrUnknownVertex = errors.New("table: unknown vertex")

	// ErrNilSource indicates that Initialize received a nil EdgeSource.
	ErrNilSource = errors.New("table: edge source is nil")
)

// Row is the running shortest-path record of one vertex.
//
// Previous is the neighbor currently believed to be the next hop toward the
// source ("" when unset). FromPrevious is the weight of the edge last used to
// set FromStart.
type Row struct {
	Key          string   `json:"key"`
	Previous     string   `json:"previous,omitempty"`
	FromStart    Distance `json:"distance"`
	FromPrevious Distance `json:"fromPrevious"`
}

// EdgeSource is the read side of an Edge Store.
type EdgeSource interface {
	Edges() []core.Edge
}
