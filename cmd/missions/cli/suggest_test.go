// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"favorites", "favorits", 1},
		{"options", "optoins", 2},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := levenshtein(test.b, test.a); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d (reversed)", test.b, test.a, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "list"}, {Name: "options"}, {Name: "favorites"}, {Name: "version"}}

	tests := []struct {
		input string
		want  string
	}{
		{"lst", "list"},
		{"optons", "options"},
		{"favourites", "favorites"},
		{"verison", "version"},
		{"completely-different", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
		flagSet.StringP("query", "q", "", "")
		flagSet.String("cost-min", "", "")
		flagSet.Bool("json", false, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--qurey", "apollo"}, "--query"},
		{[]string{"-q", "apollo", "--cost-mni=5"}, "--cost-min"},
		{[]string{"--json", "--jsn"}, "--json"},
		{[]string{"--json"}, ""},
		{[]string{"--", "--qurey"}, ""},
		{[]string{"--nothing-like-it"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, newFlagSet()); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
