// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"slices"
	"testing"

	"github.com/orbitdeck/missions/lib/mission"
)

func TestSortExampleYearDesc(t *testing.T) {
	sorted := Sort(exampleMissions(), SortYearDesc)
	if !equalIDs(sorted, "b", "a") {
		t.Errorf("year_desc = %v, expected [b a]", ids(sorted))
	}
}

func TestSortOrders(t *testing.T) {
	missions := catalogMissions()
	collator := newCollator()

	tests := []struct {
		key     SortKey
		inOrder func(a, b mission.Mission) bool
	}{
		{SortNameAsc, func(a, b mission.Mission) bool { return collator.CompareString(a.Name, b.Name) <= 0 }},
		{SortYearAsc, func(a, b mission.Mission) bool { return a.Year <= b.Year }},
		{SortYearDesc, func(a, b mission.Mission) bool { return a.Year >= b.Year }},
	}

	for _, test := range tests {
		sorted := Sort(missions, test.key)
		if len(sorted) != len(missions) {
			t.Fatalf("%s: sorted %d of %d missions", test.key, len(sorted), len(missions))
		}
		for i := 1; i < len(sorted); i++ {
			if !test.inOrder(sorted[i-1], sorted[i]) {
				t.Errorf("%s: %s before %s is out of order", test.key, sorted[i-1].ID, sorted[i].ID)
			}
		}

		again := Sort(sorted, test.key)
		if !slices.Equal(ids(again), ids(sorted)) {
			t.Errorf("%s: sorting is not idempotent: %v then %v", test.key, ids(sorted), ids(again))
		}
	}
}

func TestSortIsStable(t *testing.T) {
	missions := []mission.Mission{
		{ID: "first", Name: "Same", Year: 1970},
		{ID: "second", Name: "Same", Year: 1970},
		{ID: "third", Name: "Earlier", Year: 1960},
		{ID: "fourth", Name: "Same", Year: 1970},
	}

	if got := Sort(missions, SortYearAsc); !equalIDs(got, "third", "first", "second", "fourth") {
		t.Errorf("year_asc = %v", ids(got))
	}
	if got := Sort(missions, SortYearDesc); !equalIDs(got, "first", "second", "fourth", "third") {
		t.Errorf("year_desc = %v", ids(got))
	}
	if got := Sort(missions, SortNameAsc); !equalIDs(got, "third", "first", "second", "fourth") {
		t.Errorf("name_asc = %v", ids(got))
	}
}

func TestSortNameIsLocaleAware(t *testing.T) {
	missions := []mission.Mission{
		{ID: "z", Name: "Zond 5"},
		{ID: "m", Name: "mercury-Atlas 6"},
		{ID: "a", Name: "Apollo 11"},
	}
	if got := Sort(missions, SortNameAsc); !equalIDs(got, "a", "m", "z") {
		t.Errorf("name_asc = %v, expected [a m z]", ids(got))
	}
}

func TestSortDoesNotModifyInput(t *testing.T) {
	missions := exampleMissions()
	Sort(missions, SortYearDesc)
	if !equalIDs(missions, "a", "b") {
		t.Errorf("input reordered to %v", ids(missions))
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"name_asc":  SortNameAsc,
		"year_asc":  SortYearAsc,
		"year_desc": SortYearDesc,
		"":          SortYearAsc,
		"cost_asc":  SortYearAsc,
		"YEAR_DESC": SortYearAsc,
	}
	for input, want := range tests {
		if got := ParseSortKey(input); got != want {
			t.Errorf("ParseSortKey(%q) = %q, expected %q", input, got, want)
		}
	}
}

func TestSortUnknownKeyFallsBackToYearAsc(t *testing.T) {
	got := Sort(catalogMissions(), SortKey("bogus"))
	want := Sort(catalogMissions(), SortYearAsc)
	if !slices.Equal(ids(got), ids(want)) {
		t.Errorf("unknown key = %v, expected year_asc %v", ids(got), ids(want))
	}
}
