// SPDX-License-Identifier: MIT

// Command onepass runs the single-pass relaxation on canned graphs or serves
// it over HTTP.
//
//	onepass              prompt for a selector on stdin
//	onepass run [N]      print the run for sample N (default ONEPASS_SAMPLE)
//	onepass check        run the built-in self checks
//	onepass serve        start the HTTP API on ONEPASS_SERVER_ADDR
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
