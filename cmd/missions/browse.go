// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/explorerui"
	"github.com/orbitdeck/missions/lib/mission"
)

type browseParams struct {
	Environment
	Watch     bool   `flag:"watch,w" desc:"reload the dataset when the file changes (also dataset.watch)"`
	LogOutput string `flag:"log-output" desc:"write JSON log records to this file as well as the status line"`
}

func browseCommand() *cli.Command {
	var params browseParams
	return &cli.Command{
		Name:    "browse",
		Summary: "Open the interactive explorer (default)",
		Description: `Open the interactive explorer.

The sidebar holds the filters: agency and sort dropdowns, mission type
and status chips, launch year and cost bounds, and a favorites-only
switch. Enter opens a mission's details; left and right step through
the current results. The help line lists the keys for the focused pane.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("browse", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runBrowse(&params)
		},
	}
}

// runBrowse runs the TUI. Logging goes to the status line through a
// TUILogHandler, since anything written to stderr would tear the
// alt-screen frame; --log-output adds a JSON file alongside it.
func runBrowse(params *browseParams) error {
	tuiHandler := explorerui.NewTUILogHandler(slog.LevelWarn)
	logger := slog.New(tuiHandler)
	if params.LogOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(params.LogOutput)
		if err != nil {
			return cli.Validation("cannot open log file %s: %w", params.LogOutput, err)
		}
		defer closeFile()
		logger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ws, err := params.Open(ctx, logger)
	if err != nil {
		return err
	}
	defer ws.Close()

	var reloads chan *mission.Dataset
	if params.Watch || ws.config.Dataset.Watch {
		reloads = make(chan *mission.Dataset, 1)
		stop, err := mission.Watch(ws.config.Dataset.Path, ws.dataset, logger, func(dataset *mission.Dataset) {
			select {
			case reloads <- dataset:
			case <-ctx.Done():
			}
		})
		if err != nil {
			return cli.Internal("watching %s: %w", ws.config.Dataset.Path, err)
		}
		defer stop()
	}

	model := explorerui.NewModel(ws.Session(), explorerui.Options{
		Reloads: reloads,
		Logger:  logger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	_, err = program.Run()
	cancel()
	return err
}
