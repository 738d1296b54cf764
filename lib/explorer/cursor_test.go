// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"testing"
)

func TestCursorZeroValueIsClosed(t *testing.T) {
	var cursor Cursor
	if cursor.IsOpen() {
		t.Error("zero cursor should be closed")
	}
	if _, open := cursor.ID(); open {
		t.Error("zero cursor should report no id")
	}
	if cursor.Index(catalogMissions()) != -1 {
		t.Error("closed cursor index should be -1")
	}
}

func TestCursorCloseIsIdempotent(t *testing.T) {
	cursor := OpenCursor("a").Close()
	if cursor.IsOpen() {
		t.Error("Close should close")
	}
	if cursor.Close() != ClosedCursor() {
		t.Error("closing a closed cursor should stay closed")
	}
}

func TestCursorReconcile(t *testing.T) {
	view := catalogMissions()

	open := OpenCursor("voyager")
	if reconciled := open.Reconcile(view); reconciled != open {
		t.Error("cursor on a visible mission should stay open on it")
	}
	if reconciled := open.Reconcile(view[:3]); reconciled.IsOpen() {
		t.Error("cursor on a filtered-out mission should close")
	}
	if reconciled := ClosedCursor().Reconcile(view); reconciled.IsOpen() {
		t.Error("reconcile should not open a closed cursor")
	}
}

func TestCursorNavigationBoundaries(t *testing.T) {
	view := exampleMissions()

	atFirst := OpenCursor("a")
	if atFirst.HasPrev(view) {
		t.Error("first mission should have no prev")
	}
	if !atFirst.HasNext(view) {
		t.Error("first of two should have next")
	}
	if moved, ok := atFirst.Prev(view); ok || moved != atFirst {
		t.Error("Prev at first should be a no-op")
	}

	atLast, ok := atFirst.Next(view)
	if !ok {
		t.Fatal("Next from first should move")
	}
	if id, _ := atLast.ID(); id != "b" {
		t.Errorf("after Next id = %q, expected b", id)
	}
	if atLast.HasNext(view) {
		t.Error("last mission should have no next")
	}
	if moved, ok := atLast.Next(view); ok || moved != atLast {
		t.Error("Next at last should be a no-op")
	}

	back, ok := atLast.Prev(view)
	if !ok {
		t.Fatal("Prev from last should move")
	}
	if id, _ := back.ID(); id != "a" {
		t.Errorf("after Prev id = %q, expected a", id)
	}
}

func TestCursorNavigationWhenClosedOrAbsent(t *testing.T) {
	view := exampleMissions()

	for _, cursor := range []Cursor{ClosedCursor(), OpenCursor("missing")} {
		if cursor.HasPrev(view) || cursor.HasNext(view) {
			t.Errorf("%+v: expected no navigation", cursor)
		}
		if _, ok := cursor.Next(view); ok {
			t.Errorf("%+v: Next should not move", cursor)
		}
		if _, ok := cursor.Prev(view); ok {
			t.Errorf("%+v: Prev should not move", cursor)
		}
		if _, ok := cursor.Selected(view); ok {
			t.Errorf("%+v: Selected should report nothing", cursor)
		}
	}
}

func TestCursorSingleElementView(t *testing.T) {
	view := exampleMissions()[:1]
	cursor := OpenCursor("a")
	if cursor.HasPrev(view) || cursor.HasNext(view) {
		t.Error("sole mission should have neither prev nor next")
	}
	selected, ok := cursor.Selected(view)
	if !ok || selected.Name != "Apollo 11" {
		t.Errorf("Selected = (%+v, %v)", selected, ok)
	}
}
