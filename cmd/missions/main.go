// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// missions browses a dataset of space missions.
//
// With no subcommand it opens the interactive explorer: a filter
// sidebar, a sortable result list, and a detail view with prev/next
// navigation. The list, options, and favorites subcommands expose the
// same filtering engine and favorites store to scripts.
//
// The dataset path, favorites backend, and UI defaults come from a
// YAML config file (--config or $MISSIONS_CONFIG) with command-line
// overrides. Without a config file the built-in defaults apply and
// --dataset is required.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Commands that print their own result (favorites check)
		// return an ExitError; no extra line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	return root(stdout, stderr).Execute(args)
}
