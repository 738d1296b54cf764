// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/orbitdeck/missions/lib/mission"
)

// Set is a set of facet values. An empty or nil Set places no
// restriction on its facet.
type Set map[string]struct{}

// NewSet returns a Set holding values.
func NewSet(values ...string) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// Has reports membership.
func (s Set) Has(value string) bool {
	_, exists := s[value]
	return exists
}

// Values returns the members in byte order.
func (s Set) Values() []string {
	values := make([]string, 0, len(s))
	for value := range s {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for value := range s {
		clone[value] = struct{}{}
	}
	return clone
}

// toggle adds value if absent and removes it if present.
func (s Set) toggle(value string) {
	if s.Has(value) {
		delete(s, value)
		return
	}
	s[value] = struct{}{}
}

// allows is the facet predicate: an empty set allows everything.
func (s Set) allows(value string) bool {
	return len(s) == 0 || s.Has(value)
}

// YearRange bounds launch years inclusively. A nil bound is open.
type YearRange struct {
	From *int
	To   *int
}

// IsSet reports whether either bound is set.
func (r YearRange) IsSet() bool {
	return r.From != nil || r.To != nil
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	if r.From != nil && year < *r.From {
		return false
	}
	if r.To != nil && year > *r.To {
		return false
	}
	return true
}

// CostRange bounds known costs inclusively.
type CostRange struct {
	Min float64
	Max float64
}

// Contains reports whether cost lies within the range.
func (r CostRange) Contains(cost float64) bool {
	return cost >= r.Min && cost <= r.Max
}

// FilterState is the conjunction of predicates that selects the
// visible missions.
type FilterState struct {
	TextQuery     string
	Agencies      Set
	MissionTypes  Set
	Statuses      Set
	Years         YearRange
	Cost          CostRange
	FavoritesOnly bool
}

// DefaultFilterState is the unrestricted state for a dataset with the
// given options.
func DefaultFilterState(options Options) FilterState {
	return FilterState{
		Agencies:     Set{},
		MissionTypes: Set{},
		Statuses:     Set{},
		Cost:         options.FullCostRange(),
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s FilterState) Clone() FilterState {
	clone := s
	clone.Agencies = s.Agencies.Clone()
	clone.MissionTypes = s.MissionTypes.Clone()
	clone.Statuses = s.Statuses.Clone()
	clone.Years = YearRange{From: copyInt(s.Years.From), To: copyInt(s.Years.To)}
	return clone
}

// normalizedQuery is the trimmed, lowercased text query.
func (s FilterState) normalizedQuery() string {
	return strings.ToLower(strings.TrimSpace(s.TextQuery))
}

// FavoriteSet answers favorite membership for the favorites-only
// predicate.
type FavoriteSet interface {
	IsFavorite(id string) bool
}

// Matches reports whether entry satisfies every predicate in state.
// favorites may be nil when state.FavoritesOnly is false.
func Matches(entry mission.Mission, state FilterState, favorites FavoriteSet) bool {
	return matches(entry, state, state.normalizedQuery(), favorites)
}

func matches(entry mission.Mission, state FilterState, query string, favorites FavoriteSet) bool {
	if query != "" && !strings.Contains(strings.ToLower(entry.Name), query) {
		return false
	}
	if !state.Agencies.allows(entry.Agency) {
		return false
	}
	if !state.MissionTypes.allows(entry.MissionType) {
		return false
	}
	if !state.Statuses.allows(entry.Status) {
		return false
	}
	if !state.Years.Contains(entry.Year) {
		return false
	}
	if cost, ok := entry.CostValue(); ok && !state.Cost.Contains(cost) {
		return false
	}
	if state.FavoritesOnly && (favorites == nil || !favorites.IsFavorite(entry.ID)) {
		return false
	}
	return true
}

// Filter returns the missions matching state, in their original
// order. The input slice is not modified.
func Filter(missions []mission.Mission, state FilterState, favorites FavoriteSet) []mission.Mission {
	query := state.normalizedQuery()
	result := make([]mission.Mission, 0, len(missions))
	for _, entry := range missions {
		if matches(entry, state, query, favorites) {
			result = append(result, entry)
		}
	}
	return result
}

// ActiveFilterCount counts the filter dimensions currently narrowing
// the view: a non-blank query, each non-empty facet, a year bound, a
// cost range narrower than the dataset's, and favorites-only.
func ActiveFilterCount(state FilterState, options Options) int {
	count := 0
	if state.normalizedQuery() != "" {
		count++
	}
	if len(state.Agencies) > 0 {
		count++
	}
	if len(state.MissionTypes) > 0 {
		count++
	}
	if len(state.Statuses) > 0 {
		count++
	}
	if state.Years.IsSet() {
		count++
	}
	if state.Cost != options.FullCostRange() {
		count++
	}
	if state.FavoritesOnly {
		count++
	}
	return count
}

// FilterCountLabel renders an active filter count for display.
func FilterCountLabel(count int) string {
	switch count {
	case 0:
		return "No filters active"
	case 1:
		return "1 filter active"
	default:
		return fmt.Sprintf("%d filters active", count)
	}
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
