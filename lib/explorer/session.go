// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"context"
	"log/slog"
	"time"

	"github.com/orbitdeck/missions/lib/mission"
)

// SessionConfig configures a Session. The zero value is usable:
// in-memory favorites, year_asc, a 2s notice, and wall-clock time.
type SessionConfig struct {
	// Favorites is the loaded favorites set. Nil starts an empty,
	// unpersisted set.
	Favorites *Favorites

	// SortKey is the initial order. Invalid keys use DefaultSortKey.
	SortKey SortKey

	// NoticeDuration is how long notices stay visible.
	NoticeDuration time.Duration

	// Clock returns the current time. Nil uses time.Now.
	Clock func() time.Time

	Logger *slog.Logger
}

// Session owns one browsing session's state: the dataset and its
// derived options, the filter state, sort key, favorites, detail
// cursor, and the current notice. The visible view is recomputed by
// every mutator before it returns.
type Session struct {
	dataset   *mission.Dataset
	options   Options
	filter    FilterState
	sortKey   SortKey
	favorites *Favorites
	cursor    Cursor
	yearError string
	costError string

	notice         Notice
	noticeDuration time.Duration
	clock          func() time.Time
	logger         *slog.Logger

	visible []mission.Mission
}

// NewSession starts a session over dataset with default filters.
func NewSession(dataset *mission.Dataset, cfg SessionConfig) *Session {
	if dataset == nil {
		dataset, _ = mission.NewDataset(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	favorites := cfg.Favorites
	if favorites == nil {
		favorites = LoadFavorites(context.Background(), nil, "", logger)
	}
	noticeDuration := cfg.NoticeDuration
	if noticeDuration <= 0 {
		noticeDuration = DefaultNoticeDuration
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	sortKey := cfg.SortKey
	if !sortKey.Valid() {
		sortKey = DefaultSortKey
	}

	options := ComputeOptions(dataset.Missions)
	session := &Session{
		dataset:        dataset,
		options:        options,
		filter:         DefaultFilterState(options),
		sortKey:        sortKey,
		favorites:      favorites,
		noticeDuration: noticeDuration,
		clock:          clock,
		logger:         logger,
	}
	session.refresh()
	return session
}

// refresh recomputes the visible view and reconciles the cursor.
func (s *Session) refresh() {
	s.visible = Sort(Filter(s.dataset.Missions, s.filter, s.favorites), s.sortKey)
	s.cursor = s.cursor.Reconcile(s.visible)
}

// --- Accessors ---

// Visible returns the filtered, sorted missions. The slice must not be
// modified.
func (s *Session) Visible() []mission.Mission { return s.visible }

// Total is the number of missions in the dataset.
func (s *Session) Total() int { return s.dataset.Len() }

// Dataset returns the current dataset.
func (s *Session) Dataset() *mission.Dataset { return s.dataset }

// Options returns the derived facet options.
func (s *Session) Options() Options { return s.options }

// Filter returns a copy of the filter state.
func (s *Session) Filter() FilterState { return s.filter.Clone() }

// SortKey returns the current order.
func (s *Session) SortKey() SortKey { return s.sortKey }

// Favorites returns the favorites set.
func (s *Session) Favorites() *Favorites { return s.favorites }

// IsFavorite reports whether id is a favorite.
func (s *Session) IsFavorite(id string) bool { return s.favorites.IsFavorite(id) }

// ActiveFilterCount counts the filter dimensions narrowing the view.
func (s *Session) ActiveFilterCount() int { return ActiveFilterCount(s.filter, s.options) }

// YearError is the year field's error text, empty when the last year
// input was accepted.
func (s *Session) YearError() string { return s.yearError }

// CostError is the cost fields' error text, empty when the last cost
// input was accepted.
func (s *Session) CostError() string { return s.costError }

// Cursor returns the detail cursor.
func (s *Session) Cursor() Cursor { return s.cursor }

// Selected returns the mission open in the detail view.
func (s *Session) Selected() (mission.Mission, bool) { return s.cursor.Selected(s.visible) }

// SelectedIndex is the open mission's position in Visible, or -1.
func (s *Session) SelectedIndex() int { return s.cursor.Index(s.visible) }

// HasPrev reports whether Prev would move.
func (s *Session) HasPrev() bool { return s.cursor.HasPrev(s.visible) }

// HasNext reports whether Next would move.
func (s *Session) HasNext() bool { return s.cursor.HasNext(s.visible) }

// Notice returns the current notice and whether it is still visible.
func (s *Session) Notice() (Notice, bool) {
	return s.notice, s.notice.Visible(s.clock())
}

// NoticeDuration is how long notices stay visible.
func (s *Session) NoticeDuration() time.Duration { return s.noticeDuration }

// --- Filter mutators ---

// SetTextQuery sets the name search text. Surrounding whitespace is
// kept in the state and ignored by matching.
func (s *Session) SetTextQuery(query string) {
	s.filter.TextQuery = query
	s.refresh()
}

// ToggleAgency adds or removes one agency from the selection.
func (s *Session) ToggleAgency(agency string) {
	s.filter.Agencies.toggle(agency)
	s.refresh()
}

// SetAgencies replaces the agency selection.
func (s *Session) SetAgencies(agencies []string) {
	s.filter.Agencies = NewSet(agencies...)
	s.refresh()
}

// ToggleMissionType adds or removes one mission type.
func (s *Session) ToggleMissionType(missionType string) {
	s.filter.MissionTypes.toggle(missionType)
	s.refresh()
}

// SetMissionTypes replaces the mission type selection.
func (s *Session) SetMissionTypes(missionTypes []string) {
	s.filter.MissionTypes = NewSet(missionTypes...)
	s.refresh()
}

// ToggleStatus adds or removes one status.
func (s *Session) ToggleStatus(status string) {
	s.filter.Statuses.toggle(status)
	s.refresh()
}

// SetStatuses replaces the status selection.
func (s *Session) SetStatuses(statuses []string) {
	s.filter.Statuses = NewSet(statuses...)
	s.refresh()
}

// SetYearRange sets both year bounds. Nil bounds are open.
func (s *Session) SetYearRange(from, to *int) {
	s.filter.Years = YearRange{From: copyInt(from), To: copyInt(to)}
	s.yearError = ""
	s.refresh()
}

// SetYearFromInput applies text typed into the "from" year field.
// Rejected input leaves the range unchanged and sets YearError.
func (s *Session) SetYearFromInput(text string) error {
	year, err := ParseYearInput(text)
	if err != nil {
		s.yearError = YearInputHint
		return err
	}
	s.yearError = ""
	s.filter.Years.From = year
	s.refresh()
	return nil
}

// SetYearToInput applies text typed into the "to" year field.
func (s *Session) SetYearToInput(text string) error {
	year, err := ParseYearInput(text)
	if err != nil {
		s.yearError = YearInputHint
		return err
	}
	s.yearError = ""
	s.filter.Years.To = year
	s.refresh()
	return nil
}

// SetCostRange sets the cost range, clamped to the dataset bounds and
// ordered so Min never exceeds Max.
func (s *Session) SetCostRange(low, high float64) {
	s.filter.Cost = CostRange{Min: low, Max: high}.Clamp(s.options.FullCostRange())
	s.costError = ""
	s.refresh()
}

// SetCostMinInput applies text typed into the minimum cost field.
// Blank input resets the bound to the dataset minimum. Rejected input
// leaves the range unchanged and sets CostError.
func (s *Session) SetCostMinInput(text string) error {
	value, err := ParseCostInput(text, s.options.CostMin)
	if err != nil {
		s.costError = CostInputHint
		return err
	}
	s.costError = ""
	s.filter.Cost = s.filter.Cost.WithMin(value, s.options.FullCostRange())
	s.refresh()
	return nil
}

// SetCostMaxInput applies text typed into the maximum cost field.
// Blank input resets the bound to the dataset maximum.
func (s *Session) SetCostMaxInput(text string) error {
	value, err := ParseCostInput(text, s.options.CostMax)
	if err != nil {
		s.costError = CostInputHint
		return err
	}
	s.costError = ""
	s.filter.Cost = s.filter.Cost.WithMax(value, s.options.FullCostRange())
	s.refresh()
	return nil
}

// NudgeCostMin moves the lower cost bound by steps increments of the
// derived cost step.
func (s *Session) NudgeCostMin(steps int) {
	value := s.filter.Cost.Min + float64(steps)*s.options.CostStep
	s.filter.Cost = s.filter.Cost.WithMin(value, s.options.FullCostRange())
	s.costError = ""
	s.refresh()
}

// NudgeCostMax moves the upper cost bound by steps increments of the
// derived cost step.
func (s *Session) NudgeCostMax(steps int) {
	value := s.filter.Cost.Max + float64(steps)*s.options.CostStep
	s.filter.Cost = s.filter.Cost.WithMax(value, s.options.FullCostRange())
	s.costError = ""
	s.refresh()
}

// SetFavoritesOnly restricts the view to favorites.
func (s *Session) SetFavoritesOnly(enabled bool) {
	s.filter.FavoritesOnly = enabled
	s.refresh()
}

// SetSortKey changes the order. Invalid keys use DefaultSortKey.
func (s *Session) SetSortKey(key SortKey) {
	if !key.Valid() {
		key = DefaultSortKey
	}
	s.sortKey = key
	s.refresh()
}

// ClearAll resets every filter to its default and the cost range to
// the dataset's full range. The sort key and favorites are kept.
func (s *Session) ClearAll() {
	s.filter = DefaultFilterState(s.options)
	s.yearError = ""
	s.costError = ""
	s.refresh()
}

// --- Favorites ---

// ToggleFavorite flips id's membership, persists the set, and posts a
// notice describing the change.
func (s *Session) ToggleFavorite(ctx context.Context, id string) ToggleResult {
	result := s.favorites.Toggle(ctx, id)
	s.postNotice(result.Message())
	// Removing a favorite can hide it under favorites-only.
	s.refresh()
	return result
}

// --- Notices ---

func (s *Session) postNotice(message string) {
	s.notice = Notice{
		Message: message,
		Until:   s.clock().Add(s.noticeDuration),
		Seq:     s.notice.Seq + 1,
	}
}

// DismissNotice hides the notice with the given sequence number. A
// stale seq (a newer notice has since been posted) is ignored.
func (s *Session) DismissNotice(seq uint64) {
	if s.notice.Seq == seq {
		s.notice.Message = ""
	}
}

// --- Detail cursor ---

// Open opens the detail view on id. If id is not in the current view
// the cursor closes again immediately.
func (s *Session) Open(id string) {
	s.cursor = OpenCursor(id).Reconcile(s.visible)
}

// Close closes the detail view.
func (s *Session) Close() {
	s.cursor = s.cursor.Close()
}

// Prev moves the detail view to the previous visible mission and
// reports whether it moved.
func (s *Session) Prev() bool {
	var moved bool
	s.cursor, moved = s.cursor.Prev(s.visible)
	return moved
}

// Next moves the detail view to the next visible mission and reports
// whether it moved.
func (s *Session) Next() bool {
	var moved bool
	s.cursor, moved = s.cursor.Next(s.visible)
	return moved
}

// --- Dataset ---

// ReplaceDataset swaps in a reloaded dataset. Options are recomputed;
// a cost range that covered the old dataset's full range widens to
// the new one, and a narrowed range is clamped into the new bounds.
// Facet selections are kept even if a value no longer occurs.
func (s *Session) ReplaceDataset(dataset *mission.Dataset) {
	if dataset == nil {
		return
	}
	wasFull := s.filter.Cost == s.options.FullCostRange()

	s.dataset = dataset
	s.options = ComputeOptions(dataset.Missions)

	if wasFull {
		s.filter.Cost = s.options.FullCostRange()
	} else {
		s.filter.Cost = s.filter.Cost.Clamp(s.options.FullCostRange())
	}

	s.logger.Debug("dataset replaced",
		"missions", dataset.Len(),
		"cost_min", s.options.CostMin,
		"cost_max", s.options.CostMax,
	)
	s.refresh()
}
