// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"math"
	"slices"
	"testing"

	"github.com/orbitdeck/missions/lib/mission"
)

func TestComputeOptionsFacets(t *testing.T) {
	options := ComputeOptions(catalogMissions())

	if want := []string{"ISRO", "NASA", "Soviet Union"}; !slices.Equal(options.Agencies, want) {
		t.Errorf("Agencies = %v, expected %v", options.Agencies, want)
	}
	if want := []string{"Crewed", "Lander", "Probe", "Rover", "Satellite"}; !slices.Equal(options.MissionTypes, want) {
		t.Errorf("MissionTypes = %v, expected %v", options.MissionTypes, want)
	}
	if want := []string{"Failed", "Ongoing", "Planned", "Success"}; !slices.Equal(options.Statuses, want) {
		t.Errorf("Statuses = %v, expected %v", options.Statuses, want)
	}
}

func TestComputeOptionsCostBoundsSkipUnknown(t *testing.T) {
	missions := append(catalogMissions(),
		mission.Mission{ID: "nan", Cost: mission.Cost(math.NaN())},
		mission.Mission{ID: "inf", Cost: mission.Cost(math.Inf(1))},
	)
	options := ComputeOptions(missions)

	if options.CostMin != 30 || options.CostMax != 25000 {
		t.Errorf("cost bounds = [%v, %v], expected [30, 25000]", options.CostMin, options.CostMax)
	}
	if options.CostStep != 25 {
		t.Errorf("CostStep = %v, expected 25", options.CostStep)
	}
}

func TestComputeOptionsNoCosts(t *testing.T) {
	options := ComputeOptions([]mission.Mission{{ID: "x"}, {ID: "y"}})
	if options.CostMin != 0 || options.CostMax != 0 {
		t.Errorf("cost bounds = [%v, %v], expected [0, 0]", options.CostMin, options.CostMax)
	}
	if options.CostStep != 1 {
		t.Errorf("CostStep = %v, expected 1", options.CostStep)
	}
}

func TestComputeOptionsCollation(t *testing.T) {
	options := ComputeOptions([]mission.Mission{
		{ID: "1", Agency: "esa"},
		{ID: "2", Agency: "NASA"},
		{ID: "3", Agency: "CNSA"},
		{ID: "4", Agency: "NASA"},
	})
	// Byte order would put "esa" after "NASA".
	if want := []string{"CNSA", "esa", "NASA"}; !slices.Equal(options.Agencies, want) {
		t.Errorf("Agencies = %v, expected %v", options.Agencies, want)
	}
}

func TestCostStep(t *testing.T) {
	tests := []struct {
		low, high float64
		want      float64
	}{
		{0, 0, 1},
		{0, 10, 1},
		{0, 10.5, 5},
		{100, 150, 5},
		{0, 51, 10},
		{0, 200, 10},
		{0, 201, 25},
		{1700, 25000, 25},
	}
	for _, test := range tests {
		if got := CostStep(test.low, test.high); got != test.want {
			t.Errorf("CostStep(%v, %v) = %v, expected %v", test.low, test.high, got, test.want)
		}
	}
}
