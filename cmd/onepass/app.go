// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/onepass/builder"
	"github.com/katalvlaran/onepass/config"
	"github.com/katalvlaran/onepass/relax"
	"github.com/katalvlaran/onepass/render"
	"github.com/katalvlaran/onepass/server"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: onepass [run [N] | check | serve]`

// run is main without the process globals.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := cfg.Logger(stderr)

	if len(args) == 0 {
		return prompt(stdin, stdout, log)
	}

	switch args[0] {
	case "run":
		selector := fmt.Sprint(cfg.Sample)
		if len(args) > 1 {
			selector = args[1]
		}
		return report(selector, stdout, log)
	case "check":
		return check(stdout, log)
	case "serve":
		s := server.New(server.WithLogger(log.Named("http")))
		if err := s.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
			log.Error("server stopped", "error", err)
			return exitFail
		}
		return exitOK
	case "-h", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return exitOK
	default:
		fmt.Fprintln(stderr, usage)
		return exitUsage
	}
}

// prompt reads one selector line: a sample number or "test".
func prompt(stdin io.Reader, stdout io.Writer, log hclog.Logger) int {
	fmt.Fprintln(stdout, "Enter a number 1,2, or 3 for different Dykstra calculations")
	fmt.Fprintln(stdout, "Or 'test' to run tests")

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Error("reading selector", "error", err)
		return exitFail
	}

	if strings.TrimSpace(line) == "test" {
		return check(stdout, log)
	}

	return report(line, stdout, log)
}

func report(selector string, stdout io.Writer, log hclog.Logger) int {
	id, err := builder.ParseSample(selector)
	if err != nil {
		log.Error("bad selector", "error", err)
		return exitUsage
	}

	g, err := builder.Sample(id)
	if err != nil {
		log.Error("building sample", "sample", int(id), "error", err)
		return exitFail
	}

	log.Debug("running sample", "sample", int(id), "edges", g.EdgeCount())
	if err = render.Report(stdout, g, relax.WithLogger(log.Named("relax"))); err != nil {
		log.Error("report failed", "error", err)
		return exitFail
	}

	return exitOK
}
