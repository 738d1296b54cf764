// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommandDispatchesToSubcommand(t *testing.T) {
	var called string
	root := &Command{
		Name: "missions",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { called = "list"; return nil }},
			{Name: "options", Run: func([]string) error { called = "options"; return nil }},
		},
	}

	if err := root.Execute([]string{"options"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if called != "options" {
		t.Errorf("dispatched to %q, want options", called)
	}
}

func TestCommandNestedSubcommandReceivesArgs(t *testing.T) {
	var received []string
	root := &Command{
		Name: "missions",
		Subcommands: []*Command{{
			Name: "favorites",
			Subcommands: []*Command{{
				Name: "toggle",
				Run:  func(args []string) error { received = args; return nil },
			}},
		}},
	}

	if err := root.Execute([]string{"favorites", "toggle", "apollo-11"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(received) != 1 || received[0] != "apollo-11" {
		t.Errorf("args = %v, want [apollo-11]", received)
	}
}

func TestCommandRootRunWithSubcommands(t *testing.T) {
	var ran bool
	var dataset string
	root := &Command{
		Name: "missions",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("missions", pflag.ContinueOnError)
			flagSet.StringVar(&dataset, "dataset", "", "dataset path")
			return flagSet
		},
		Subcommands: []*Command{{Name: "list", Run: func([]string) error { return nil }}},
		Run:         func([]string) error { ran = true; return nil },
	}

	if err := root.Execute([]string{"--dataset", "missions.json"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran || dataset != "missions.json" {
		t.Errorf("ran = %v, dataset = %q", ran, dataset)
	}

	ran = false
	if err := root.Execute(nil); err != nil || !ran {
		t.Errorf("Execute(nil) = %v, ran = %v", err, ran)
	}
}

func TestCommandUnknownSubcommandSuggests(t *testing.T) {
	root := &Command{
		Name: "missions",
		Subcommands: []*Command{
			{Name: "list", Run: func([]string) error { return nil }},
			{Name: "favorites", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"favorits"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryValidation {
		t.Fatalf("error = %#v, want a validation ToolError", err)
	}
	if !strings.Contains(err.Error(), `did you mean "favorites"?`) {
		t.Errorf("error %q lacks the suggestion", err)
	}
	if !strings.Contains(err.Error(), "missions --help") {
		t.Errorf("error %q lacks the help hint", err)
	}

	err = root.Execute([]string{"zzzzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("distant typo error = %v, want no suggestion", err)
	}
}

func TestCommandUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("favorites-only", false, "favorites only")
			flagSet.String("agency", "", "agency")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}

	err := command.Execute([]string{"--agncy", "NASA"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "did you mean --agency?") {
		t.Errorf("error %q lacks the suggestion", err)
	}
}

func TestCommandSubcommandRequired(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "favorites",
		Output:      &help,
		Subcommands: []*Command{{Name: "list", Summary: "List favorites", Run: func([]string) error { return nil }}},
	}

	err := root.Execute(nil)
	if err == nil || !strings.Contains(err.Error(), "subcommand required") {
		t.Errorf("error = %v, want subcommand required", err)
	}
	if !strings.Contains(help.String(), "List favorites") {
		t.Errorf("help output missing subcommand listing:\n%s", help.String())
	}
}

func TestCommandHelp(t *testing.T) {
	var help bytes.Buffer
	ran := false
	root := &Command{
		Name:   "missions",
		Output: &help,
		Subcommands: []*Command{{
			Name:        "list",
			Summary:     "Print matching missions",
			Description: "Apply filters and print the matching missions.",
			Examples: []Example{{
				Description: "Crewed NASA missions",
				Command:     "missions list --agency NASA --type Crewed",
			}},
			Flags: func() *pflag.FlagSet {
				flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
				flagSet.String("agency", "", "restrict to an agency")
				return flagSet
			},
			Run: func([]string) error { ran = true; return nil },
		}},
	}

	for _, args := range [][]string{{"list", "--help"}, {"list", "-h"}, {"list", "help"}} {
		help.Reset()
		if err := root.Execute(args); err != nil {
			t.Fatalf("Execute(%v): %v", args, err)
		}
		output := help.String()
		for _, want := range []string{
			"Apply filters and print the matching missions.",
			"Usage:\n  missions list [flags]",
			"--agency",
			"# Crewed NASA missions",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("help for %v missing %q:\n%s", args, want, output)
			}
		}
	}
	if ran {
		t.Error("help should not run the command")
	}
}

func TestCommandNoAction(t *testing.T) {
	command := &Command{Name: "empty", Output: &bytes.Buffer{}}
	err := command.Execute(nil)
	var toolErr *ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != CategoryInternal {
		t.Errorf("error = %v, want an internal ToolError", err)
	}
}
