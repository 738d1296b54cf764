// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/orbitdeck/missions/lib/mission"
)

// Options are the facet values and cost bounds derived from a dataset.
type Options struct {
	Agencies     []string
	MissionTypes []string
	Statuses     []string

	// CostMin and CostMax bound the finite costs in the dataset. Both
	// are zero when no mission has a known cost.
	CostMin float64
	CostMax float64

	// CostStep is the increment the cost controls move by.
	CostStep float64
}

// FullCostRange is the unrestricted cost range for these options.
func (o Options) FullCostRange() CostRange {
	return CostRange{Min: o.CostMin, Max: o.CostMax}
}

// ComputeOptions derives facet values and cost bounds from missions.
func ComputeOptions(missions []mission.Mission) Options {
	agencies := make([]string, 0, len(missions))
	missionTypes := make([]string, 0, len(missions))
	statuses := make([]string, 0, len(missions))

	var costMin, costMax float64
	costSeen := false

	for _, entry := range missions {
		agencies = append(agencies, entry.Agency)
		missionTypes = append(missionTypes, entry.MissionType)
		statuses = append(statuses, entry.Status)

		cost, ok := entry.CostValue()
		if !ok {
			continue
		}
		if !costSeen {
			costMin, costMax = cost, cost
			costSeen = true
			continue
		}
		costMin = min(costMin, cost)
		costMax = max(costMax, cost)
	}

	return Options{
		Agencies:     uniqueSorted(agencies),
		MissionTypes: uniqueSorted(missionTypes),
		Statuses:     uniqueSorted(statuses),
		CostMin:      costMin,
		CostMax:      costMax,
		CostStep:     CostStep(costMin, costMax),
	}
}

// CostStep picks the control increment for a cost span: 1 up to 10,
// 5 up to 50, 10 up to 200, and 25 beyond.
func CostStep(costMin, costMax float64) float64 {
	span := costMax - costMin
	switch {
	case span <= 10:
		return 1
	case span <= 50:
		return 5
	case span <= 200:
		return 10
	default:
		return 25
	}
}

// uniqueSorted deduplicates values and orders them with English
// collation, so "apollo" sorts next to "Apollo" rather than after "Z".
func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	collator := newCollator()
	slices.SortStableFunc(unique, collator.CompareString)
	return unique
}

// newCollator returns a fresh English collator. Collators carry
// scratch buffers and are not safe to share between goroutines.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}
