// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package explorerui is the interactive terminal browser for a mission
// dataset. It is a bubbletea program that drives an [explorer.Session]:
// every keystroke that changes a filter, the sort order, a favorite, or
// the detail cursor calls the corresponding Session mutator, and View
// renders whatever the session reports afterwards. The package never
// filters or sorts on its own.
//
// # Layout
//
//	─── Missions ─────────────── Showing 4 of 9 missions ─ 2 filters active ─
//	 / apollo▎
//	 Agency  NASA         │ ★ 1969  Apollo 11        NASA   Success       ┃
//	 Sort    Year (Asc)   │   1970  Apollo 13        NASA   Failed        ┃
//	 Type    [Crewed] ... │                                               │
//	 ...                  │                                               │
//	────────────────────────────────────────────────────────────────────────
//	 [LIST] q quit  / search  a agency  s sort  f favorite  enter details
//
// The left sidebar holds every filter control. The right area is the
// result list, or the detail view of one mission while the detail
// cursor is open. Dropdowns (agency, sort) and the numeric field editor
// (year and cost bounds) are spliced over the frame with
// [tui.SpliceOverlay]. Favorite notices show in the help line until
// they expire.
//
// # Live reload
//
// When the model is given a reload channel, each dataset arriving on it
// replaces the session's dataset. Filter selections survive the reload;
// the detail view closes if its mission disappeared. Changed rows glow
// briefly using [tui.HeatTracker].
//
// # Logging
//
// While the program owns the terminal, [TUILogHandler] routes warnings
// into the status line instead of writing over the frame.
package explorerui
