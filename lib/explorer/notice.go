// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import "time"

// DefaultNoticeDuration is how long a notice stays up unless
// dismissed.
const DefaultNoticeDuration = 2 * time.Second

// Notice is a transient message such as "Added to favorites". Seq
// increases with every notice a session posts, so a delayed dismissal
// aimed at an older notice does not clear a newer one.
type Notice struct {
	Message string
	Until   time.Time
	Seq     uint64
}

// Visible reports whether the notice should still be shown at now.
func (n Notice) Visible(now time.Time) bool {
	return n.Message != "" && now.Before(n.Until)
}
