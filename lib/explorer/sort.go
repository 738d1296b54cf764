// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"cmp"
	"slices"

	"github.com/orbitdeck/missions/lib/mission"
)

// SortKey selects the order of the visible missions.
type SortKey string

const (
	SortNameAsc  SortKey = "name_asc"
	SortYearAsc  SortKey = "year_asc"
	SortYearDesc SortKey = "year_desc"
)

// DefaultSortKey is the order a new session starts with.
const DefaultSortKey = SortYearAsc

// SortKeys lists the keys in the order the sort selector offers them.
var SortKeys = []SortKey{SortNameAsc, SortYearAsc, SortYearDesc}

// ParseSortKey maps a key name to a SortKey. Unknown names fall back
// to DefaultSortKey.
func ParseSortKey(name string) SortKey {
	key := SortKey(name)
	if key.Valid() {
		return key
	}
	return DefaultSortKey
}

// Valid reports whether k is one of SortKeys.
func (k SortKey) Valid() bool {
	return slices.Contains(SortKeys, k)
}

// Label is the human-readable name of the order.
func (k SortKey) Label() string {
	switch k {
	case SortNameAsc:
		return "Name (A–Z)"
	case SortYearDesc:
		return "Year (Desc)"
	default:
		return "Year (Asc)"
	}
}

// Sort returns a sorted copy of missions. Every order is stable: ties
// keep their relative input order. Unknown keys sort as year_asc.
func Sort(missions []mission.Mission, key SortKey) []mission.Mission {
	sorted := slices.Clone(missions)

	switch key {
	case SortNameAsc:
		collator := newCollator()
		slices.SortStableFunc(sorted, func(a, b mission.Mission) int {
			return collator.CompareString(a.Name, b.Name)
		})
	case SortYearDesc:
		slices.SortStableFunc(sorted, func(a, b mission.Mission) int {
			return cmp.Compare(b.Year, a.Year)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b mission.Mission) int {
			return cmp.Compare(a.Year, b.Year)
		})
	}
	return sorted
}
