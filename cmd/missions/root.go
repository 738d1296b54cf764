// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/version"
)

// root assembles the command tree. Results go to stdout; help and
// logs go to stderr.
func root(stdout, stderr io.Writer) *cli.Command {
	browse := browseCommand()
	return &cli.Command{
		Name:    "missions",
		Summary: "Browse a dataset of space missions",
		Description: `Browse a dataset of space missions.

Without a subcommand, opens the interactive explorer. Search by name,
narrow by agency, mission type, status, launch year, and cost, sort the
results, and mark favorites. Favorites persist in the configured store.`,
		Usage:  "missions [command] [flags]",
		Output: stderr,
		Flags:  browse.Flags,
		Run:    browse.Run,
		Examples: []cli.Example{
			{Description: "Open the explorer on a dataset", Command: "missions --dataset missions.json"},
			{Description: "Reload the explorer when the file changes", Command: "missions browse --dataset missions.yaml --watch"},
			{Description: "Print crewed NASA missions as JSON", Command: "missions list -d missions.json --agency NASA --type Crewed --json"},
		},
		Subcommands: []*cli.Command{
			browse,
			listCommand(stdout),
			optionsCommand(stdout),
			favoritesCommand(stdout),
			versionCommand(stdout),
		},
	}
}

func versionCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			fmt.Fprintf(stdout, "missions %s\n", version.Full())
			return nil
		},
	}
}
