// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/explorer"
)

type optionsParams struct {
	Environment
	cli.JSONOutput
}

// optionsResult is the JSON shape of the options command.
type optionsResult struct {
	Missions     int      `json:"missions"`
	Agencies     []string `json:"agencies"`
	MissionTypes []string `json:"missionTypes"`
	Statuses     []string `json:"statuses"`
	CostMin      float64  `json:"costMin"`
	CostMax      float64  `json:"costMax"`
	CostStep     float64  `json:"costStep"`
	SortKeys     []string `json:"sortKeys"`
}

func optionsCommand(stdout io.Writer) *cli.Command {
	var params optionsParams
	return &cli.Command{
		Name:    "options",
		Summary: "Print the filter values the dataset offers",
		Description: `Print the filter values the dataset offers: the distinct agencies,
mission types, and statuses, the known cost range and its step, and the
sort orders. These are the values list accepts.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("options", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runOptions(context.Background(), &params, stdout)
		},
	}
}

func runOptions(ctx context.Context, params *optionsParams, stdout io.Writer) error {
	ws, err := params.Open(ctx, cli.NewCommandLogger())
	if err != nil {
		return err
	}
	defer ws.Close()

	options := explorer.ComputeOptions(ws.dataset.Missions)
	result := optionsResult{
		Missions:     ws.dataset.Len(),
		Agencies:     options.Agencies,
		MissionTypes: options.MissionTypes,
		Statuses:     options.Statuses,
		CostMin:      options.CostMin,
		CostMax:      options.CostMax,
		CostStep:     options.CostStep,
		SortKeys:     strings.Split(sortKeyNames(), ", "),
	}

	if done, err := params.EmitJSON(stdout, result); done {
		return err
	}

	fmt.Fprintf(stdout, "Missions:  %d\n", result.Missions)
	fmt.Fprintf(stdout, "Agencies:  %s\n", strings.Join(result.Agencies, ", "))
	fmt.Fprintf(stdout, "Types:     %s\n", strings.Join(result.MissionTypes, ", "))
	fmt.Fprintf(stdout, "Statuses:  %s\n", strings.Join(result.Statuses, ", "))
	fmt.Fprintf(stdout, "Cost:      %s to %s (step %s)\n",
		formatNumber(result.CostMin), formatNumber(result.CostMax), formatNumber(result.CostStep))
	fmt.Fprintf(stdout, "Sort:      %s\n", strings.Join(result.SortKeys, ", "))
	return nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
