// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"github.com/orbitdeck/missions/lib/mission"
)

// Cursor is the detail view's position: either closed or open on one
// mission id. The zero value is closed. Cursor is a value; transitions
// return a new Cursor.
type Cursor struct {
	id   string
	open bool
}

// ClosedCursor returns the closed cursor.
func ClosedCursor() Cursor {
	return Cursor{}
}

// OpenCursor returns a cursor open on id. Whether id is visible is
// not checked here; Reconcile closes it if not.
func OpenCursor(id string) Cursor {
	return Cursor{id: id, open: true}
}

// IsOpen reports whether the cursor tracks a mission.
func (c Cursor) IsOpen() bool {
	return c.open
}

// ID returns the tracked id and whether the cursor is open.
func (c Cursor) ID() (string, bool) {
	return c.id, c.open
}

// Close returns the closed cursor. Closing a closed cursor is a no-op.
func (c Cursor) Close() Cursor {
	return ClosedCursor()
}

// Index is the tracked mission's position in view, or -1 when closed
// or absent.
func (c Cursor) Index(view []mission.Mission) int {
	if !c.open {
		return -1
	}
	for index, entry := range view {
		if entry.ID == c.id {
			return index
		}
	}
	return -1
}

// Selected returns the tracked mission from view.
func (c Cursor) Selected(view []mission.Mission) (mission.Mission, bool) {
	index := c.Index(view)
	if index < 0 {
		return mission.Mission{}, false
	}
	return view[index], true
}

// Reconcile closes the cursor when its mission is not in view and
// otherwise leaves it unchanged.
func (c Cursor) Reconcile(view []mission.Mission) Cursor {
	if c.open && c.Index(view) < 0 {
		return ClosedCursor()
	}
	return c
}

// HasPrev reports whether a mission precedes the tracked one in view.
func (c Cursor) HasPrev(view []mission.Mission) bool {
	return c.Index(view) > 0
}

// HasNext reports whether a mission follows the tracked one in view.
func (c Cursor) HasNext(view []mission.Mission) bool {
	index := c.Index(view)
	return index >= 0 && index < len(view)-1
}

// Prev moves to the preceding mission in view. At the first mission,
// or when closed, it returns c unchanged and false.
func (c Cursor) Prev(view []mission.Mission) (Cursor, bool) {
	if !c.HasPrev(view) {
		return c, false
	}
	return OpenCursor(view[c.Index(view)-1].ID), true
}

// Next moves to the following mission in view. At the last mission,
// or when closed, it returns c unchanged and false.
func (c Cursor) Next(view []mission.Mission) (Cursor, bool) {
	if !c.HasNext(view) {
		return c, false
	}
	return OpenCursor(view[c.Index(view)+1].ID), true
}
