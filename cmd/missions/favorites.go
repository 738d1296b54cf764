// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/explorer"
)

type favoritesParams struct {
	Environment
	cli.JSONOutput
}

// favoriteEntry is the JSON shape of one favorites list row. Name is
// empty for ids the dataset no longer contains.
type favoriteEntry struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Year int    `json:"year,omitempty"`
}

// toggleResult is the JSON shape of favorites toggle.
type toggleResult struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
	Message  string `json:"message"`
}

func favoritesCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Summary: "Inspect and change favorite missions",
		Description: `Inspect and change favorite missions.

Favorites are stored under storage.favorites_key in the configured
backend, the same set the explorer reads and writes.`,
		Subcommands: []*cli.Command{
			favoritesListCommand(stdout),
			favoritesToggleCommand(stdout),
			favoritesCheckCommand(stdout),
		},
	}
}

func favoritesListCommand(stdout io.Writer) *cli.Command {
	var params favoritesParams
	return &cli.Command{
		Name:    "list",
		Summary: "Print the favorite missions",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			ws, err := params.Open(context.Background(), cli.NewCommandLogger())
			if err != nil {
				return err
			}
			defer ws.Close()

			ids := ws.favorites.IDs()
			entries := make([]favoriteEntry, len(ids))
			for index, id := range ids {
				entries[index] = favoriteEntry{ID: id}
				if entry, ok := ws.dataset.Get(id); ok {
					entries[index].Name = entry.Name
					entries[index].Year = entry.Year
				}
			}

			if done, err := params.EmitJSON(stdout, entries); done {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(stdout, "No favorites.")
				return nil
			}

			table := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
			fmt.Fprintln(table, "ID\tYEAR\tNAME")
			for _, entry := range entries {
				if entry.Name == "" {
					fmt.Fprintf(table, "%s\t\t(not in dataset)\n", entry.ID)
					continue
				}
				fmt.Fprintf(table, "%s\t%d\t%s\n", entry.ID, entry.Year, entry.Name)
			}
			return table.Flush()
		},
	}
}

func favoritesToggleCommand(stdout io.Writer) *cli.Command {
	var params favoritesParams
	return &cli.Command{
		Name:    "toggle",
		Summary: "Add a mission to favorites, or remove it",
		Usage:   "missions favorites toggle <mission-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("toggle", &params)
		},
		Examples: []cli.Example{
			{Command: "missions favorites toggle apollo-11 -d missions.json"},
		},
		Run: func(args []string) error {
			id, err := missionArgument(args)
			if err != nil {
				return err
			}

			ctx := context.Background()
			ws, err := params.Open(ctx, cli.NewCommandLogger())
			if err != nil {
				return err
			}
			defer ws.Close()

			if _, ok := ws.dataset.Get(id); !ok && !ws.favorites.IsFavorite(id) {
				return cli.NotFound("no mission %q in %s", id, ws.config.Dataset.Path).
					WithHint("Run 'missions list' to see mission ids.")
			}

			outcome := ws.favorites.Toggle(ctx, id)
			result := toggleResult{
				ID:       id,
				Favorite: outcome == explorer.Added,
				Message:  outcome.Message(),
			}
			if done, err := params.EmitJSON(stdout, result); done {
				return err
			}
			fmt.Fprintf(stdout, "%s: %s\n", id, result.Message)
			return nil
		},
	}
}

func favoritesCheckCommand(stdout io.Writer) *cli.Command {
	var params favoritesParams
	return &cli.Command{
		Name:        "check",
		Summary:     "Exit 0 if a mission is a favorite, 1 if not",
		Description: "Report whether a mission is a favorite. The exit status is 0 for a favorite and 1 otherwise, for use in scripts.",
		Usage:       "missions favorites check <mission-id> [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
		Run: func(args []string) error {
			id, err := missionArgument(args)
			if err != nil {
				return err
			}

			ws, err := params.Open(context.Background(), cli.NewCommandLogger())
			if err != nil {
				return err
			}
			defer ws.Close()

			favorite := ws.favorites.IsFavorite(id)
			if done, err := params.EmitJSON(stdout, map[string]any{"id": id, "favorite": favorite}); done {
				if err != nil || favorite {
					return err
				}
				return &cli.ExitError{Code: 1}
			}
			if favorite {
				fmt.Fprintf(stdout, "%s is a favorite\n", id)
				return nil
			}
			fmt.Fprintf(stdout, "%s is not a favorite\n", id)
			return &cli.ExitError{Code: 1}
		},
	}
}

func missionArgument(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", cli.Validation("missing mission id").WithHint("Run 'missions list' to see mission ids.")
	case 1:
		return args[0], nil
	default:
		return "", cli.Validation("expected one mission id, got %d arguments", len(args))
	}
}
