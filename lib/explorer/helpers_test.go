// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"testing"

	"github.com/orbitdeck/missions/lib/mission"
)

// exampleMissions is the two-mission dataset used by the worked
// examples: Apollo 11 (1969, 25000) and STS-1 (1981, 1700).
func exampleMissions() []mission.Mission {
	return []mission.Mission{
		{ID: "a", Name: "Apollo 11", Year: 1969, Agency: "NASA", Status: "Success", MissionType: "Crewed", Cost: mission.Cost(25000)},
		{ID: "b", Name: "STS-1", Year: 1981, Agency: "NASA", Status: "Success", MissionType: "Shuttle", Cost: mission.Cost(1700)},
	}
}

// catalogMissions is a broader dataset with facet variety, year ties,
// and missions without a known cost.
func catalogMissions() []mission.Mission {
	return []mission.Mission{
		{ID: "sputnik", Name: "Sputnik 1", Year: 1957, Agency: "Soviet Union", Status: "Success", MissionType: "Satellite", Cost: mission.Cost(30)},
		{ID: "vostok", Name: "Vostok 1", Year: 1961, Agency: "Soviet Union", Status: "Success", MissionType: "Crewed"},
		{ID: "mercury", Name: "mercury-Atlas 6", Year: 1962, Agency: "NASA", Status: "Success", MissionType: "Crewed", Cost: mission.Cost(400)},
		{ID: "apollo11", Name: "Apollo 11", Year: 1969, Agency: "NASA", Status: "Success", MissionType: "Crewed", Cost: mission.Cost(25000)},
		{ID: "apollo13", Name: "Apollo 13", Year: 1970, Agency: "NASA", Status: "Failed", MissionType: "Crewed", Cost: mission.Cost(24000)},
		{ID: "luna17", Name: "Luna 17", Year: 1970, Agency: "Soviet Union", Status: "Success", MissionType: "Rover"},
		{ID: "voyager", Name: "Voyager 1", Year: 1977, Agency: "NASA", Status: "Ongoing", MissionType: "Probe", Cost: mission.Cost(865)},
		{ID: "chandrayaan", Name: "Chandrayaan-3", Year: 2023, Agency: "ISRO", Status: "Success", MissionType: "Lander", Cost: mission.Cost(75)},
		{ID: "artemis3", Name: "Artemis III", Year: 2026, Agency: "NASA", Status: "Planned", MissionType: "Crewed", Cost: mission.Cost(4100)},
	}
}

func newDataset(t *testing.T, missions []mission.Mission) *mission.Dataset {
	t.Helper()
	dataset, err := mission.NewDataset(missions)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return dataset
}

func ids(missions []mission.Mission) []string {
	result := make([]string, len(missions))
	for i, entry := range missions {
		result[i] = entry.ID
	}
	return result
}

func equalIDs(got []mission.Mission, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, entry := range got {
		if entry.ID != want[i] {
			return false
		}
	}
	return true
}

func intPointer(value int) *int {
	return &value
}

// favoriteIDs is a FavoriteSet over a fixed list.
type favoriteIDs []string

func (f favoriteIDs) IsFavorite(id string) bool {
	for _, favorite := range f {
		if favorite == id {
			return true
		}
	}
	return false
}
