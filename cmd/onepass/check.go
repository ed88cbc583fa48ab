// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/onepass/builder"
	"github.com/katalvlaran/onepass/relax"
	"github.com/katalvlaran/onepass/render"
	"github.com/katalvlaran/onepass/table"
)

// selfCheck is one built-in check against the loop sample.
type selfCheck struct {
	title string
	fn    func() (bool, error)
}

// check prints pass/fail for each self check and fails if any did.
func check(stdout io.Writer, log hclog.Logger) int {
	g, err := builder.Sample(builder.SampleLoop)
	if err != nil {
		log.Error("building loop sample", "error", err)
		return exitFail
	}

	checks := []selfCheck{
		{
			title: "It should create a List of weighted edges from provided input",
			fn: func() (bool, error) {
				return g.EdgeCount() == 5, nil
			},
		},
		{
			title: "It should create an empty Dijkstra table on initialization\nAnd return the source vertex key",
			fn: func() (bool, error) {
				tbl, src, err := table.Initialize(g)
				if err != nil {
					return false, err
				}
				return src == "a" && tbl.Len() == 4 && tbl.Keys()[0] == src, nil
			},
		},
		{
			title: "It calculate the shortest distances between vertexes\nregardless of original edges (i.e. find shorter paths)",
			fn: func() (bool, error) {
				res, err := relax.ShortestPaths(g, relax.WithLogger(log.Named("relax")))
				if err != nil {
					return false, err
				}
				b, err := res.Row("b")
				if err != nil {
					return false, err
				}
				return b.FromStart == table.Finite(5) && g.Edges()[0].Weight == 12, nil
			},
		},
	}

	failed := 0
	for _, c := range checks {
		if err := render.Banner(stdout, c.title); err != nil {
			log.Error("writing output", "error", err)
			return exitFail
		}

		ok, err := c.fn()
		if err != nil {
			log.Error("check errored", "check", c.title, "error", err)
		}
		if ok {
			fmt.Fprintln(stdout, "pass")
		} else {
			failed++
			fmt.Fprintln(stdout, "fail")
		}
	}

	if failed > 0 {
		return exitFail
	}

	return exitOK
}
