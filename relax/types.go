// SPDX-License-Identifier: MIT

package relax

import (
	"errors"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/onepass/core"
	"github.com/katalvlaran/onepass/table"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil graph was supplied.
	ErrNilGraph = errors.New("relax: graph is nil")

	// ErrNilTable indicates that a nil distance table was supplied.
	ErrNilTable = errors.New("relax: table is nil")

	// ErrEmptySource indicates that the source key is empty.
	ErrEmptySource = errors.New("relax: source vertex ID is empty")
)

// Rule names the update rule that changed a row.
type Rule int

const (
	// RuleFromSource is a direct relaxation out of the source.
	RuleFromSource Rule = iota

	// RuleReturnEdge is a cheaper direct edge from a vertex back to the source.
	RuleReturnEdge

	// RuleSweep is a backward-sweep update triggered by RuleReturnEdge.
	RuleSweep

	// RuleForward is a plain relaxation between two non-source vertices.
	RuleForward

	// RuleRedirect is the update of a neighbor that already points at the source.
	RuleRedirect
)

// String returns the rule name used in logs.
func (r Rule) String() string {
	switch r {
	case RuleFromSource:
		return "from-source"
	case RuleReturnEdge:
		return "return-edge"
	case RuleSweep:
		return "sweep"
	case RuleForward:
		return "forward"
	case RuleRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Update describes one row mutation. Row is a copy taken right after the change.
type Update struct {
	Rule Rule
	Via  string // vertex whose edge caused the change
	Row  table.Row
}

// Adjacency is the read side of the Adjacency Index.
type Adjacency interface {
	Vertices() []core.Vertex
}

// Options configures a relaxation pass.
//
//   - Logger: receives a Trace line for every row update and Debug lines at
//     pass boundaries. Defaults to a null logger.
//   - OnUpdate: called after every row update, in mutation order.
type Options struct {
	Logger   hclog.Logger
	OnUpdate func(Update)
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns Options with a null logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:   hclog.NewNullLogger(),
		OnUpdate: func(Update) {},
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnUpdate registers a hook called after each row update.
func WithOnUpdate(fn func(Update)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnUpdate = fn
		}
	}
}
