// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package mission

import (
	"math"
	"strconv"
	"strings"
)

// Mission is one record in the dataset. Missions are loaded once and
// never mutated afterwards; every consumer treats them as values.
type Mission struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Year        int      `json:"year" yaml:"year"`
	Agency      string   `json:"agency" yaml:"agency"`
	Status      string   `json:"status" yaml:"status"`
	MissionType string   `json:"missionType" yaml:"missionType"`
	Crew        []string `json:"crew" yaml:"crew"`
	Description string   `json:"description" yaml:"description"`

	// LaunchDate is a calendar date in YYYY-MM-DD form.
	LaunchDate string `json:"launchDate" yaml:"launchDate"`

	// Cost is nil when the dataset does not record a cost. The loader
	// also maps non-finite values (NaN, ±Inf from YAML or CBOR) to nil.
	Cost *float64 `json:"cost" yaml:"cost"`
}

// HasCost reports whether the mission has a known, finite cost.
// Missions without one are exempt from cost filtering and excluded
// from the dataset cost range.
func (m Mission) HasCost() bool {
	return m.Cost != nil && !math.IsNaN(*m.Cost) && !math.IsInf(*m.Cost, 0)
}

// CostValue returns the cost and whether it is known.
func (m Mission) CostValue() (float64, bool) {
	if !m.HasCost() {
		return 0, false
	}
	return *m.Cost, true
}

// CostLabel formats the cost for display, or "—" when unknown.
func (m Mission) CostLabel() string {
	cost, ok := m.CostValue()
	if !ok {
		return "—"
	}
	return strconv.FormatFloat(cost, 'f', -1, 64)
}

// CrewLabel joins the crew names with commas, or "—" when the mission
// was uncrewed.
func (m Mission) CrewLabel() string {
	if len(m.Crew) == 0 {
		return "—"
	}
	return strings.Join(m.Crew, ", ")
}

// LaunchLabel is the launch date in MM/DD/YYYY form, or "—" when the
// dataset has no date for the mission.
func (m Mission) LaunchLabel() string {
	if m.LaunchDate == "" {
		return "—"
	}
	return FormatLaunchDate(m.LaunchDate)
}

// FormatLaunchDate converts "YYYY-MM-DD" to "MM/DD/YYYY". Input that
// does not split into three non-empty dash-separated parts is returned
// unchanged.
func FormatLaunchDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return iso
	}
	return parts[1] + "/" + parts[2] + "/" + parts[0]
}

// Cost returns a pointer to value, for building missions in code.
func Cost(value float64) *float64 {
	return &value
}
