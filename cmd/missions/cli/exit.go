// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError ends the process with Code and no extra error line. A
// command returns it after writing its own output, for outcomes such
// as "favorites check" on a mission that is not a favorite.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode is the status main passes to os.Exit.
func (e *ExitError) ExitCode() int {
	return e.Code
}
