// SPDX-License-Identifier: MIT

// sgrams inspects the S-Gram catalog: structure tables, single transitions,
// traces, analyses, cross-structure comparison, routes and exports. The
// serve command exposes the same queries as MCP tools over stdio.
//
// Usage:
//
//	sgrams summary
//	sgrams show <index>
//	sgrams transition <index> <state>
//	sgrams trace <index> <state> [--steps n] [--pattern p/q] [--reverse]
//	sgrams analyze <index>
//	sgrams compare [index...]
//	sgrams route <index> <from> <to>
//	sgrams export [--format markdown|yaml] [-o file]
//	sgrams serve
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
