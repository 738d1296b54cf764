// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/explorer"
	"github.com/orbitdeck/missions/lib/mission"
)

type listParams struct {
	Environment
	cli.JSONOutput
	Query         string   `flag:"query,q" desc:"case-insensitive substring of the mission name"`
	Agencies      []string `flag:"agency" desc:"restrict to these agencies (repeatable, comma-separated)"`
	MissionTypes  []string `flag:"type" desc:"restrict to these mission types"`
	Statuses      []string `flag:"status" desc:"restrict to these statuses"`
	From          string   `flag:"from" desc:"earliest launch year, inclusive"`
	To            string   `flag:"to" desc:"latest launch year, inclusive"`
	CostMin       string   `flag:"cost-min" desc:"lowest cost, clamped to the dataset range"`
	CostMax       string   `flag:"cost-max" desc:"highest cost, clamped to the dataset range"`
	FavoritesOnly bool     `flag:"favorites-only,f" desc:"only favorite missions"`
	Sort          string   `flag:"sort" desc:"name_asc, year_asc, or year_desc (default ui.default_sort)"`
}

// listedMission is the JSON shape of one list row.
type listedMission struct {
	mission.Mission
	Favorite bool `json:"favorite"`
}

func listCommand(stdout io.Writer) *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "Print the missions matching a set of filters",
		Description: `Print the missions matching a set of filters.

Filters combine with AND across dimensions and OR within one: two
--agency values match either agency. Missions without a recorded cost
are never excluded by --cost-min or --cost-max.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Examples: []cli.Example{
			{Description: "Apollo missions, newest first", Command: "missions list -d missions.json -q apollo --sort year_desc"},
			{Description: "Launched in the 1960s by NASA or Roscosmos", Command: "missions list -d missions.json --agency NASA,Roscosmos --from 1960 --to 1969"},
			{Description: "Favorites as JSON", Command: "missions list -d missions.json --favorites-only --json"},
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0]).
					WithHint("Use --query to search by name.")
			}
			return runList(context.Background(), &params, stdout)
		},
	}
}

func runList(ctx context.Context, params *listParams, stdout io.Writer) error {
	ws, err := params.Open(ctx, cli.NewCommandLogger())
	if err != nil {
		return err
	}
	defer ws.Close()

	session := ws.Session()
	if err := applyListFilters(session, params); err != nil {
		return err
	}

	visible := session.Visible()
	rows := make([]listedMission, len(visible))
	for index, entry := range visible {
		rows[index] = listedMission{Mission: entry, Favorite: session.IsFavorite(entry.ID)}
	}

	if done, err := params.EmitJSON(stdout, rows); done {
		return err
	}

	table := tabwriter.NewWriter(stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintln(table, "\tID\tYEAR\tNAME\tAGENCY\tTYPE\tSTATUS\tCOST")
	for _, row := range rows {
		star := ""
		if row.Favorite {
			star = "★"
		}
		fmt.Fprintf(table, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			star, row.ID, row.Year, row.Name, row.Agency, row.MissionType, row.Status, row.CostLabel())
	}
	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nShowing %d of %d missions (%s)\n",
		len(rows), session.Total(), strings.ToLower(explorer.FilterCountLabel(session.ActiveFilterCount())))
	return nil
}

// applyListFilters drives the session with the filter flags, in the
// same order a user would set them in the explorer.
func applyListFilters(session *explorer.Session, params *listParams) error {
	if params.Sort != "" {
		key := explorer.SortKey(params.Sort)
		if !key.Valid() {
			return cli.Validation("unknown sort %q", params.Sort).
				WithHint("Use one of: " + sortKeyNames() + ".")
		}
		session.SetSortKey(key)
	}

	session.SetTextQuery(params.Query)
	session.SetAgencies(params.Agencies)
	session.SetMissionTypes(params.MissionTypes)
	session.SetStatuses(params.Statuses)

	if err := session.SetYearFromInput(params.From); err != nil {
		return cli.Validation("--from %q: %w", params.From, err).WithHint(explorer.YearInputHint + ", e.g. --from 1969.")
	}
	if err := session.SetYearToInput(params.To); err != nil {
		return cli.Validation("--to %q: %w", params.To, err).WithHint(explorer.YearInputHint + ", e.g. --to 1972.")
	}

	// Blank bounds keep the dataset range.
	if err := session.SetCostMinInput(params.CostMin); err != nil {
		return cli.Validation("--cost-min %q is not a number", params.CostMin).WithHint(explorer.CostInputHint + ", e.g. --cost-min 500.")
	}
	if err := session.SetCostMaxInput(params.CostMax); err != nil {
		return cli.Validation("--cost-max %q is not a number", params.CostMax).WithHint(explorer.CostInputHint + ", e.g. --cost-max 2000.")
	}

	session.SetFavoritesOnly(params.FavoritesOnly)
	return nil
}

func sortKeyNames() string {
	names := make([]string, len(explorer.SortKeys))
	for index, key := range explorer.SortKeys {
		names[index] = string(key)
	}
	return strings.Join(names, ", ")
}
