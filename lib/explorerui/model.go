// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/orbitdeck/missions/lib/explorer"
	"github.com/orbitdeck/missions/lib/mission"
	"github.com/orbitdeck/missions/lib/tui"
)

// FocusRegion identifies which part of the screen receives keys.
type FocusRegion int

const (
	// FocusList routes keys to the result list.
	FocusList FocusRegion = iota

	// FocusSidebar routes keys to the filter controls.
	FocusSidebar

	// FocusDetail routes keys to the open detail view.
	FocusDetail

	// FocusSearch routes keys to the search bar.
	FocusSearch

	// FocusDropdown routes keys to the agency or sort dropdown.
	FocusDropdown

	// FocusField routes keys to the year or cost input modal.
	FocusField
)

// Field identifiers carried by the input modal.
const (
	fieldYearFrom = "year_from"
	fieldYearTo   = "year_to"
	fieldCostMin  = "cost_min"
	fieldCostMax  = "cost_max"
)

// contentStartY is the first screen row below the header and the
// search bar.
const contentStartY = 2

// datasetReloadedMsg delivers a dataset from the reload channel.
type datasetReloadedMsg struct {
	dataset *mission.Dataset
}

// noticeExpiredMsg hides the notice with the given sequence number.
type noticeExpiredMsg struct {
	seq uint64
}

// heatTickMsg drives the fade of recently changed rows.
type heatTickMsg struct{}

// Options configures a Model. The zero value is usable.
type Options struct {
	// Reloads delivers replacement datasets, typically from a file
	// watcher. Nil disables live reload.
	Reloads <-chan *mission.Dataset

	// Theme overrides DefaultTheme when non-zero.
	Theme tui.Theme

	Logger *slog.Logger
}

// Model is the bubbletea model of the mission explorer. All filter,
// sort, favorite, and cursor state lives in the session; the model
// holds only presentation state (focus, scroll, overlays).
type Model struct {
	session *explorer.Session
	theme   tui.Theme
	keys    KeyMap
	logger  *slog.Logger

	width  int
	height int
	ready  bool

	focusRegion FocusRegion
	// priorFocus is restored when the search bar, a dropdown, or the
	// field modal closes.
	priorFocus FocusRegion

	search SearchBar

	// List selection. selectedID keeps the cursor on the same mission
	// across filter and sort changes.
	cursor       int
	scrollOffset int
	selectedID   string

	sidebarCursor int

	detailPane DetailPane

	activeDropdown *tui.DropdownOverlay
	fieldModal     *tui.FieldModal

	slab *util.Slab

	heatTracker *tui.HeatTracker
	tickRunning bool

	reloads <-chan *mission.Dataset

	logMessage *logRecordMsg
	logSeq     uint64
}

// NewModel creates a model over session.
func NewModel(session *explorer.Session, options Options) Model {
	theme := options.Theme
	if theme == (tui.Theme{}) {
		theme = tui.DefaultTheme
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	model := Model{
		session:     session,
		theme:       theme,
		keys:        DefaultKeyMap,
		logger:      logger,
		focusRegion: FocusList,
		detailPane:  NewDetailPane(theme),
		slab:        tui.NewMatchSlab(),
		heatTracker: tui.NewHeatTracker(),
		reloads:     options.Reloads,
		search:      SearchBar{Input: session.Filter().TextQuery},
	}
	model.restoreSelection()
	return model
}

// Session returns the session the model drives.
func (model Model) Session() *explorer.Session {
	return model.session
}

// Focus returns the focused region.
func (model Model) Focus() FocusRegion {
	return model.focusRegion
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	if model.reloads == nil {
		return nil
	}
	return listenForDatasets(model.reloads)
}

// listenForDatasets returns a tea.Cmd that blocks until a dataset
// arrives on the reload channel.
func listenForDatasets(channel <-chan *mission.Dataset) tea.Cmd {
	return func() tea.Msg {
		dataset, ok := <-channel
		if !ok {
			return nil
		}
		return datasetReloadedMsg{dataset: dataset}
	}
}

// Update implements tea.Model. Keys are routed by focus region: the
// modal regions (search, dropdown, field) take every key; otherwise
// the global bindings are checked before the focused pane's.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focusRegion {
		case FocusSearch:
			return model.handleSearchKeys(message)
		case FocusDropdown:
			return model.handleDropdownKeys(message)
		case FocusField:
			return model.handleFieldKeys(message)
		}

		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.FocusToggle):
			if model.focusRegion == FocusSidebar {
				model.focusRegion = FocusList
				if model.session.Cursor().IsOpen() {
					model.focusRegion = FocusDetail
				}
			} else {
				model.focusRegion = FocusSidebar
			}

		case key.Matches(message, model.keys.Search):
			model.priorFocus = model.focusRegion
			model.focusRegion = FocusSearch
			model.search.Active = true

		case key.Matches(message, model.keys.AgencyDropdown):
			model.openAgencyDropdown()

		case key.Matches(message, model.keys.SortDropdown):
			model.openSortDropdown()

		case key.Matches(message, model.keys.FavoritesOnly):
			model.session.SetFavoritesOnly(!model.session.Filter().FavoritesOnly)
			model.refreshView()

		case key.Matches(message, model.keys.ClearAll):
			model.clearAll()

		case key.Matches(message, model.keys.ToggleFavorite):
			return model.toggleFavorite()

		default:
			switch model.focusRegion {
			case FocusSidebar:
				model.handleSidebarKeys(message)
			case FocusDetail:
				model.handleDetailKeys(message)
			default:
				model.handleListKeys(message)
			}
		}

	case tea.MouseMsg:
		model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		model.ensureCursorVisible()
		model.syncDetailPane()

	case datasetReloadedMsg:
		return model.handleReload(message)

	case noticeExpiredMsg:
		model.session.DismissNotice(message.seq)

	case heatTickMsg:
		return model.handleHeatTick()

	case logRecordMsg:
		model.logSeq++
		model.logMessage = &message
		seq := model.logSeq
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{seq: seq}
		})

	case logRecordFadeMsg:
		if message.seq == model.logSeq {
			model.logMessage = nil
		}
	}
	return model, nil
}

// refreshView brings the presentation state in line with the session
// after any mutation: the list cursor follows the selected mission,
// the detail pane follows the session's cursor, and the sidebar
// cursor stays on a control.
func (model *Model) refreshView() {
	model.restoreSelection()
	model.ensureCursorVisible()
	model.syncDetailPane()
	model.clampSidebarCursor()
}

// restoreSelection puts the list cursor back on selectedID when it is
// still visible, and otherwise clamps the cursor into the new list.
func (model *Model) restoreSelection() {
	visible := model.session.Visible()
	if len(visible) == 0 {
		model.cursor = 0
		model.selectedID = ""
		return
	}
	for index, entry := range visible {
		if entry.ID == model.selectedID {
			model.cursor = index
			return
		}
	}
	model.cursor = min(max(model.cursor, 0), len(visible)-1)
	model.selectedID = visible[model.cursor].ID
}

func (model *Model) clampSidebarCursor() {
	count := len(sidebarControls(model.session))
	model.sidebarCursor = min(max(model.sidebarCursor, 0), count-1)
}

// syncDetailPane shows the session's selected mission, or clears the
// pane when the cursor is closed. The list cursor tracks the detail
// cursor so closing the view leaves the list where the user was.
func (model *Model) syncDetailPane() {
	selected, ok := model.session.Selected()
	if !ok {
		if model.detailPane.MissionID() != "" {
			model.detailPane.Clear()
		}
		if model.focusRegion == FocusDetail {
			model.focusRegion = FocusList
		}
		if model.priorFocus == FocusDetail {
			model.priorFocus = FocusList
		}
		return
	}

	model.selectedID = selected.ID
	model.cursor = model.session.SelectedIndex()
	model.ensureCursorVisible()
	model.detailPane.SetContent(selected, DetailContext{
		Favorite: model.session.IsFavorite(selected.ID),
		Position: model.session.SelectedIndex() + 1,
		Count:    len(model.session.Visible()),
		HasPrev:  model.session.HasPrev(),
		HasNext:  model.session.HasNext(),
	})
}

// --- List ---

func (model *Model) handleListKeys(message tea.KeyMsg) {
	count := len(model.session.Visible())

	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.cursor < count-1 {
			model.cursor++
		}

	case key.Matches(message, model.keys.PageUp):
		model.cursor = max(model.cursor-model.listRows(), 0)

	case key.Matches(message, model.keys.PageDown):
		model.cursor = max(min(model.cursor+model.listRows(), count-1), 0)

	case key.Matches(message, model.keys.Home):
		model.cursor = 0

	case key.Matches(message, model.keys.End):
		model.cursor = max(count-1, 0)

	case key.Matches(message, model.keys.Open):
		model.openDetail()
		return

	case key.Matches(message, model.keys.Close):
		if model.search.Input != "" {
			model.search.Clear()
			model.session.SetTextQuery("")
			model.refreshView()
		}
		return
	}

	if count > 0 {
		model.selectedID = model.session.Visible()[model.cursor].ID
	}
	model.ensureCursorVisible()
}

// openDetail opens the detail view on the list selection.
func (model *Model) openDetail() {
	if model.selectedID == "" {
		return
	}
	model.session.Open(model.selectedID)
	if model.session.Cursor().IsOpen() {
		model.focusRegion = FocusDetail
	}
	model.syncDetailPane()
}

// listRows is the number of result rows below the column header.
func (model Model) listRows() int {
	return max(model.visibleHeight()-1, 0)
}

// visibleHeight is the height of the content area: everything
// between the search bar and the bottom separator and help bar.
func (model Model) visibleHeight() int {
	return model.height - contentStartY - 2
}

// ensureCursorVisible adjusts scrollOffset so the cursor is within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.listRows()
	if visible <= 0 {
		return
	}
	maxOffset := max(len(model.session.Visible())-visible, 0)
	model.scrollOffset = min(model.scrollOffset, maxOffset)
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
}

// --- Detail ---

func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Close):
		model.session.Close()
		model.focusRegion = FocusList
		model.syncDetailPane()

	case key.Matches(message, model.keys.Left):
		if model.session.Prev() {
			model.syncDetailPane()
		}

	case key.Matches(message, model.keys.Right):
		if model.session.Next() {
			model.syncDetailPane()
		}

	case key.Matches(message, model.keys.Up):
		model.detailPane.viewport.LineUp(1)

	case key.Matches(message, model.keys.Down):
		model.detailPane.viewport.LineDown(1)

	case key.Matches(message, model.keys.PageUp):
		model.detailPane.ScrollUp()

	case key.Matches(message, model.keys.PageDown):
		model.detailPane.ScrollDown()

	case key.Matches(message, model.keys.Home):
		model.detailPane.viewport.GotoTop()

	case key.Matches(message, model.keys.End):
		model.detailPane.viewport.GotoBottom()
	}
}

// --- Sidebar ---

func (model *Model) handleSidebarKeys(message tea.KeyMsg) {
	controls := sidebarControls(model.session)
	if len(controls) == 0 {
		return
	}
	model.sidebarCursor = min(max(model.sidebarCursor, 0), len(controls)-1)
	control := controls[model.sidebarCursor]

	switch {
	case key.Matches(message, model.keys.Up):
		if model.sidebarCursor > 0 {
			model.sidebarCursor--
		}

	case key.Matches(message, model.keys.Down):
		if model.sidebarCursor < len(controls)-1 {
			model.sidebarCursor++
		}

	case key.Matches(message, model.keys.Home):
		model.sidebarCursor = 0

	case key.Matches(message, model.keys.End):
		model.sidebarCursor = len(controls) - 1

	case key.Matches(message, model.keys.Left):
		model.nudgeCost(control, -1)

	case key.Matches(message, model.keys.Right):
		model.nudgeCost(control, 1)

	case key.Matches(message, model.keys.Open), key.Matches(message, model.keys.Toggle):
		model.activateControl(control)

	case key.Matches(message, model.keys.Close):
		model.focusRegion = FocusList
		if model.session.Cursor().IsOpen() {
			model.focusRegion = FocusDetail
		}
	}
}

func (model *Model) nudgeCost(control sidebarControl, steps int) {
	switch control.kind {
	case controlCostMin:
		model.session.NudgeCostMin(steps)
	case controlCostMax:
		model.session.NudgeCostMax(steps)
	default:
		return
	}
	model.refreshView()
}

// activateControl performs the sidebar control's action: chips and
// checkboxes toggle, inputs open the field modal, selectors open
// their dropdown.
func (model *Model) activateControl(control sidebarControl) {
	switch control.kind {
	case controlAgency:
		model.openAgencyDropdown()
		return
	case controlSort:
		model.openSortDropdown()
		return
	case controlMissionType:
		model.session.ToggleMissionType(control.value)
	case controlStatus:
		model.session.ToggleStatus(control.value)
	case controlYearFrom:
		model.openField("Launch year from", fieldYearFrom, yearInitial(model.session.Filter().Years.From))
		return
	case controlYearTo:
		model.openField("Launch year to", fieldYearTo, yearInitial(model.session.Filter().Years.To))
		return
	case controlCostMin:
		model.openField("Minimum cost", fieldCostMin, formatCost(model.session.Filter().Cost.Min))
		return
	case controlCostMax:
		model.openField("Maximum cost", fieldCostMax, formatCost(model.session.Filter().Cost.Max))
		return
	case controlFavoritesOnly:
		model.session.SetFavoritesOnly(!model.session.Filter().FavoritesOnly)
	case controlClearAll:
		model.clearAll()
		return
	}
	model.refreshView()
}

func yearInitial(year *int) string {
	if year == nil {
		return ""
	}
	return formatYear(year)
}

// clearAll resets every filter, including the search text.
func (model *Model) clearAll() {
	model.session.ClearAll()
	model.search.Clear()
	model.refreshView()
	model.logger.Debug("filters cleared", "visible", len(model.session.Visible()))
}

// --- Search ---

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEsc:
		model.search.Clear()
		model.session.SetTextQuery("")
		model.focusRegion = model.priorFocus

	case tea.KeyEnter:
		model.search.Active = false
		model.focusRegion = model.priorFocus

	case tea.KeyBackspace:
		if !model.search.HandleBackspace() {
			return model, nil
		}
		model.session.SetTextQuery(model.search.Input)

	case tea.KeySpace:
		model.search.HandleRune(' ')
		model.session.SetTextQuery(model.search.Input)

	case tea.KeyRunes:
		for _, character := range message.Runes {
			model.search.HandleRune(character)
		}
		model.session.SetTextQuery(model.search.Input)

	default:
		return model, nil
	}

	model.refreshView()
	return model, nil
}

// --- Dropdowns ---

// sidebarRowOf returns the sidebar row index showing the first
// control of kind.
func (model Model) sidebarRowOf(kind controlKind) int {
	controls := sidebarControls(model.session)
	for index, row := range sidebarRows(model.session, controls, model.theme) {
		if row.control >= 0 && controls[row.control].kind == kind {
			return index
		}
	}
	return 0
}

func (model *Model) openAgencyDropdown() {
	selected := model.session.Filter().Agencies
	agencies := model.session.Options().Agencies
	options := make([]tui.DropdownOption, len(agencies))
	for index, agency := range agencies {
		options[index] = tui.DropdownOption{Label: agency, Value: agency, Checked: selected.Has(agency)}
	}
	model.openDropdown(&tui.DropdownOverlay{
		Options: options,
		AnchorX: 2,
		AnchorY: contentStartY + model.sidebarRowOf(controlAgency) + 1,
		Field:   "agency",
		Multi:   true,
	})
}

func (model *Model) openSortDropdown() {
	current := model.session.SortKey()
	dropdown := &tui.DropdownOverlay{
		AnchorX: 2,
		AnchorY: contentStartY + model.sidebarRowOf(controlSort) + 1,
		Field:   "sort",
	}
	for index, sortKey := range explorer.SortKeys {
		dropdown.Options = append(dropdown.Options, tui.DropdownOption{
			Label: sortKey.Label(),
			Value: string(sortKey),
		})
		if sortKey == current {
			dropdown.Cursor = index
		}
	}
	model.openDropdown(dropdown)
}

func (model *Model) openDropdown(dropdown *tui.DropdownOverlay) {
	if model.focusRegion != FocusDropdown {
		model.priorFocus = model.focusRegion
	}
	model.activeDropdown = dropdown
	model.focusRegion = FocusDropdown
}

func (model *Model) dismissDropdown() {
	model.activeDropdown = nil
	model.focusRegion = model.priorFocus
}

func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	dropdown := model.activeDropdown
	if dropdown == nil {
		model.focusRegion = model.priorFocus
		return model, nil
	}

	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		dropdown.MoveUp()

	case key.Matches(message, model.keys.Down):
		dropdown.MoveDown()

	case key.Matches(message, model.keys.Toggle):
		if !dropdown.Multi {
			return model.chooseDropdownOption()
		}
		if value, ok := dropdown.Toggle(); ok {
			model.session.ToggleAgency(value)
			model.refreshView()
		}

	case key.Matches(message, model.keys.Open):
		return model.chooseDropdownOption()

	case key.Matches(message, model.keys.Close), key.Matches(message, model.keys.Quit):
		model.dismissDropdown()
	}
	return model, nil
}

// chooseDropdownOption applies a single-select choice and closes the
// dropdown. Multi-select dropdowns apply as they toggle, so Enter only
// closes them.
func (model Model) chooseDropdownOption() (tea.Model, tea.Cmd) {
	dropdown := model.activeDropdown
	if !dropdown.Multi {
		if option, ok := dropdown.Selected(); ok {
			model.session.SetSortKey(explorer.ParseSortKey(option.Value))
		}
	}
	model.dismissDropdown()
	model.refreshView()
	return model, nil
}

// --- Field modal ---

func (model *Model) openField(title, field, initial string) {
	modal := tui.NewFieldModal(title, field, initial, model.theme)
	model.fieldModal = &modal
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusField
}

func (model *Model) dismissField() {
	model.fieldModal = nil
	model.focusRegion = model.priorFocus
}

func (model Model) handleFieldKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.fieldModal == nil {
		model.focusRegion = model.priorFocus
		return model, nil
	}

	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit
	case tea.KeyEsc:
		model.dismissField()
	case tea.KeyEnter:
		model.submitField()
	default:
		modal := *model.fieldModal
		modal.Update(message)
		model.fieldModal = &modal
	}
	return model, nil
}

// submitField applies the modal's value to the session. A rejected
// year keeps the modal open with the error shown under the input.
func (model *Model) submitField() {
	modal := *model.fieldModal
	value := modal.Value()

	var err error
	switch modal.Field {
	case fieldYearFrom:
		err = model.session.SetYearFromInput(value)
	case fieldYearTo:
		err = model.session.SetYearToInput(value)
	case fieldCostMin:
		err = model.session.SetCostMinInput(value)
	case fieldCostMax:
		err = model.session.SetCostMaxInput(value)
	}

	if err != nil {
		modal.Error = model.session.YearError()
		if modal.Field == fieldCostMin || modal.Field == fieldCostMax {
			modal.Error = model.session.CostError()
		}
		model.fieldModal = &modal
		return
	}
	model.dismissField()
	model.refreshView()
}

// --- Favorites ---

// favoriteTarget is the mission a favorite toggle applies to: the
// open detail mission, otherwise the list selection.
func (model Model) favoriteTarget() string {
	if selected, ok := model.session.Selected(); ok {
		return selected.ID
	}
	return model.selectedID
}

func (model Model) toggleFavorite() (tea.Model, tea.Cmd) {
	id := model.favoriteTarget()
	if id == "" {
		return model, nil
	}

	result := model.session.ToggleFavorite(context.Background(), id)
	kind := tui.HeatPut
	if result == explorer.Removed {
		kind = tui.HeatRemove
	}
	model.heatTracker.Ignite(id, kind, time.Now())
	model.refreshView()

	notice, _ := model.session.Notice()
	commands := []tea.Cmd{
		tea.Tick(model.session.NoticeDuration(), func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: notice.Seq}
		}),
	}
	if !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}
	return model, tea.Batch(commands...)
}

// --- Live reload ---

func (model Model) handleReload(message datasetReloadedMsg) (tea.Model, tea.Cmd) {
	previous := model.session.Dataset()
	model.session.ReplaceDataset(message.dataset)

	now := time.Now()
	changed := 0
	for _, entry := range message.dataset.Missions {
		old, existed := previous.Get(entry.ID)
		if existed && sameMission(old, entry) {
			continue
		}
		model.heatTracker.Ignite(entry.ID, tui.HeatPut, now)
		changed++
	}

	model.refreshView()
	model.logger.Info("dataset reloaded",
		"missions", message.dataset.Len(),
		"changed", changed,
	)

	commands := []tea.Cmd{listenForDatasets(model.reloads)}
	if changed > 0 && !model.tickRunning {
		model.tickRunning = true
		commands = append(commands, scheduleHeatTick())
	}
	return model, tea.Batch(commands...)
}

// sameMission reports whether two versions of a mission render
// identically.
func sameMission(a, b mission.Mission) bool {
	costA, knownA := a.CostValue()
	costB, knownB := b.CostValue()
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Year == b.Year &&
		a.Agency == b.Agency &&
		a.Status == b.Status &&
		a.MissionType == b.MissionType &&
		a.Description == b.Description &&
		a.LaunchDate == b.LaunchDate &&
		knownA == knownB && costA == costB &&
		slices.Equal(a.Crew, b.Crew)
}

// handleHeatTick keeps ticking while any row is still hot.
func (model Model) handleHeatTick() (tea.Model, tea.Cmd) {
	if model.heatTracker.HasHot(time.Now()) {
		return model, scheduleHeatTick()
	}
	model.tickRunning = false
	return model, nil
}

func scheduleHeatTick() tea.Cmd {
	return tea.Tick(tui.HeatTickInterval, func(time.Time) tea.Msg {
		return heatTickMsg{}
	})
}

// --- Mouse ---

// handleMouse scrolls the pane under the pointer and selects list
// rows on click. Any click dismisses an open overlay.
func (model *Model) handleMouse(message tea.MouseMsg) {
	if message.Action == tea.MouseActionMotion {
		return
	}
	if model.activeDropdown != nil || model.fieldModal != nil {
		if message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonLeft {
			model.activeDropdown = nil
			model.fieldModal = nil
			model.focusRegion = model.priorFocus
		}
		return
	}

	inContent := message.Y >= contentStartY && message.Y < contentStartY+model.visibleHeight()
	inMain := message.X > sidebarWidth
	if !inContent || !inMain {
		return
	}
	detailOpen := model.session.Cursor().IsOpen()

	switch message.Button {
	case tea.MouseButtonWheelUp:
		if detailOpen {
			model.detailPane.viewport.LineUp(3)
			return
		}
		model.scrollOffset = max(model.scrollOffset-1, 0)
		model.cursor = min(model.cursor, model.scrollOffset+model.listRows()-1)
		model.followCursor()

	case tea.MouseButtonWheelDown:
		if detailOpen {
			model.detailPane.viewport.LineDown(3)
			return
		}
		maxOffset := max(len(model.session.Visible())-model.listRows(), 0)
		model.scrollOffset = min(model.scrollOffset+1, maxOffset)
		model.cursor = max(model.cursor, model.scrollOffset)
		model.followCursor()

	case tea.MouseButtonLeft:
		if detailOpen || message.Action != tea.MouseActionPress {
			return
		}
		// The first content row is the column header.
		row := message.Y - contentStartY - 1
		index := model.scrollOffset + row
		if row < 0 || index >= len(model.session.Visible()) {
			return
		}
		model.focusRegion = FocusList
		model.cursor = index
		model.followCursor()
	}
}

// followCursor updates selectedID from the list cursor.
func (model *Model) followCursor() {
	visible := model.session.Visible()
	if len(visible) == 0 {
		return
	}
	model.cursor = min(max(model.cursor, 0), len(visible)-1)
	model.selectedID = visible[model.cursor].ID
}

// --- Layout ---

// mainWidth is the width of the list or detail area right of the
// sidebar and its divider.
func (model Model) mainWidth() int {
	return max(model.width-sidebarWidth-1, 20)
}

func (model *Model) updatePaneSizes() {
	model.detailPane.SetSize(model.mainWidth(), max(model.visibleHeight(), 1))
}

// View implements tea.Model.
//
//	header: title, "Showing N of M missions", active filter count
//	search bar
//	sidebar │ list (or detail)
//	separator
//	help bar
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	contentHeight := max(model.visibleHeight(), 0)

	controls := sidebarControls(model.session)
	sidebar := renderSidebar(
		sidebarRows(model.session, controls, model.theme),
		model.sidebarCursor, model.focusRegion == FocusSidebar,
		model.theme, contentHeight)

	var main string
	if model.session.Cursor().IsOpen() {
		main = model.detailPane.View(model.focusRegion == FocusDetail)
	} else {
		main = model.renderListPane()
	}

	sections := []string{
		model.renderHeader(),
		model.search.View(model.theme, model.width),
		lipgloss.JoinHorizontal(lipgloss.Top, sidebar, model.renderDivider(), main),
		lipgloss.NewStyle().
			Foreground(model.theme.BorderColor).
			Render(strings.Repeat("─", model.width)),
		model.renderHelp(),
	}
	output := strings.Join(sections, "\n")

	if model.activeDropdown != nil {
		output = tui.SpliceOverlay(output, model.activeDropdown.Render(model.theme),
			model.activeDropdown.AnchorX, model.activeDropdown.AnchorY)
	}
	if model.fieldModal != nil {
		lines, anchorX, anchorY := model.fieldModal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

func (model Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground).Render("Missions")
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	showing := fmt.Sprintf("Showing %d of %d missions", len(model.session.Visible()), model.session.Total())
	left := " " + title + "  " + faint.Render(showing)

	count := model.session.ActiveFilterCount()
	countStyle := faint
	if count > 0 {
		countStyle = lipgloss.NewStyle().Foreground(model.theme.Accent)
	}
	right := countStyle.Render(explorer.FilterCountLabel(count)) + " "

	gap := max(model.width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return ansi.Truncate(left+strings.Repeat(" ", gap)+right, model.width, "")
}

func (model Model) renderDivider() string {
	visible := max(model.visibleHeight(), 0)
	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Width(1).
		Height(visible).
		Render(strings.Join(lines, "\n"))
}

// renderListPane draws the column header, the visible rows, and the
// list scrollbar.
func (model Model) renderListPane() string {
	width := model.mainWidth()
	rowWidth := width - 1
	contentHeight := max(model.visibleHeight(), 0)
	visible := model.listRows()
	missions := model.session.Visible()

	if len(missions) == 0 {
		return model.renderEmpty(width, contentHeight)
	}

	renderer := NewListRenderer(model.theme, rowWidth)
	query := model.session.Filter().TextQuery
	now := time.Now()

	rows := []string{renderer.RenderColumnHeader()}
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(missions); index++ {
		entry := missions[index]
		selected := index == model.cursor
		row := renderer.RenderRow(entry, RowState{
			Selected:       selected,
			Favorite:       model.session.IsFavorite(entry.ID),
			MatchPositions: tui.MatchPositions(entry.Name, query, model.slab),
		})
		if !selected {
			if heat := model.heatTracker.Heat(entry.ID, now); heat > 0 {
				accent := model.theme.HotAccentPut
				if model.heatTracker.Kind(entry.ID) == tui.HeatRemove {
					accent = model.theme.HotAccentRemove
				}
				row = lipgloss.NewStyle().
					Background(accent).
					Width(rowWidth).
					MaxWidth(rowWidth).
					Render(row)
			}
		}
		rows = append(rows, row)
	}

	scrollbar := tui.RenderScrollbar(model.theme, visible,
		len(missions), visible, model.scrollOffset,
		model.focusRegion == FocusList)

	content := lipgloss.NewStyle().
		Width(rowWidth).
		Height(contentHeight).
		Render(strings.Join(rows, "\n"))
	// One blank cell beside the column header keeps the scrollbar
	// aligned with the rows.
	return lipgloss.JoinHorizontal(lipgloss.Top, content, " \n"+scrollbar)
}

// renderEmpty fills the list area when no mission is visible.
func (model Model) renderEmpty(width, height int) string {
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	text := "No missions loaded."
	if model.session.Total() > 0 {
		text = "No missions match the current filters.\n" +
			lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("Press c to clear all filters.")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, faint.Render(text))
}

func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	if model.logMessage != nil {
		logStyle := style
		if model.logMessage.Level >= slog.LevelWarn {
			logStyle = lipgloss.NewStyle().Foreground(model.theme.ErrorText).Bold(true)
		}
		return ansi.Truncate(logStyle.Render(" "+model.logMessage.Summary), model.width, "…")
	}

	focusIndicator := "LIST"
	keys := "q quit  ↑↓ navigate  Enter details  f favorite  / search  a agency  s sort  F favorites only  c clear all  Tab filters"
	switch model.focusRegion {
	case FocusSidebar:
		focusIndicator = "FILTERS"
		keys = "q quit  ↑↓ move  Space toggle  Enter edit  ←→ adjust cost  c clear all  Tab list"
	case FocusDetail:
		focusIndicator = "DETAIL"
		keys = "q quit  ←→ prev/next  ↑↓ scroll  f favorite  Esc close  Tab filters"
	case FocusSearch:
		focusIndicator = "SEARCH"
		keys = "type to filter by name  Enter done  Esc clear"
	case FocusDropdown:
		focusIndicator = "SELECT"
		keys = "↑↓ move  Enter choose  Esc close"
		if model.activeDropdown != nil && model.activeDropdown.Multi {
			keys = "↑↓ move  Space toggle  Enter done  Esc close"
		}
	case FocusField:
		focusIndicator = "EDIT"
		keys = "Enter apply  Esc cancel"
	}

	help := fmt.Sprintf(" [%s] ", focusIndicator)
	if notice, visible := model.session.Notice(); visible {
		help += lipgloss.NewStyle().Foreground(model.theme.Favorite).Bold(true).Render(notice.Message) + "  "
	}
	help += style.Render(keys)

	if count := len(model.session.Visible()); count > 0 && !model.session.Cursor().IsOpen() {
		help += style.Render(fmt.Sprintf("  %d/%d", model.cursor+1, count))
	}
	return ansi.Truncate(style.Render(help), model.width, "…")
}
