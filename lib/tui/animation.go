// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row glows after it changes. Heat
// starts at 1.0 and falls linearly to 0.0 over this duration.
const HeatDecayDuration = 3 * time.Second

// HeatTickInterval is the redraw interval while anything is hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind selects the glow color.
type HeatKind int

const (
	// HeatPut marks a record that was added or changed.
	HeatPut HeatKind = iota
	// HeatRemove marks a record that lost something, e.g. a favorite.
	HeatRemove
)

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker records when rows last changed so the list can tint
// them while the change fades.
type HeatTracker struct {
	entries map[string]heatEntry
}

// NewHeatTracker returns an empty tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{entries: make(map[string]heatEntry)}
}

// Ignite marks itemID as changed at now, restarting its decay.
func (tracker *HeatTracker) Ignite(itemID string, kind HeatKind, now time.Time) {
	tracker.entries[itemID] = heatEntry{ignition: now, kind: kind}
}

// Heat returns itemID's intensity at now, in [0, 1].
func (tracker *HeatTracker) Heat(itemID string, now time.Time) float64 {
	entry, exists := tracker.entries[itemID]
	if !exists {
		return 0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed < 0 || elapsed >= HeatDecayDuration {
		return 0
	}
	return 1 - float64(elapsed)/float64(HeatDecayDuration)
}

// Kind returns the kind of itemID's last ignition, HeatPut if none.
func (tracker *HeatTracker) Kind(itemID string) HeatKind {
	return tracker.entries[itemID].kind
}

// HasHot reports whether any row is still glowing at now. Fully
// decayed entries are dropped as a side effect.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for itemID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, itemID)
	}
	return hot
}
