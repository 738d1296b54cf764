// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package explorer is the browsing engine behind the mission explorer:
// derived facet options, the filter and sort stages, the persisted
// favorites set, the detail cursor, and the [Session] that owns them.
//
// Everything here is independent of any terminal or rendering layer.
// The TUI in lib/explorerui and the headless "missions list" command
// drive the same Session, so both observe identical filtering and
// ordering.
//
// # Derived state
//
// A Session never caches a view across a mutation. Every mutator
// re-runs filter then sort over the dataset and reconciles the detail
// cursor before returning, so an accessor called after any mutator
// observes state consistent with it. The dataset holds at most a few
// thousand missions; the full recompute is linear plus one stable sort.
//
// # Failure model
//
// Nothing in this package is fatal. Corrupt or unreadable favorites
// storage yields an empty set; write failures are logged and the
// in-memory set stays authoritative. Invalid year input is rejected
// with a field error; out-of-range cost input is clamped. A detail
// cursor whose mission is filtered out closes silently.
//
// A Session is not safe for concurrent use. The TUI owns it from the
// bubbletea event loop and hands dataset reloads to it through
// messages.
package explorer
