// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"io/fs"
	"testing"
)

func TestToolErrorConstructors(t *testing.T) {
	tests := []struct {
		err  *ToolError
		want ErrorCategory
	}{
		{Validation("bad year %q", "19x9"), CategoryValidation},
		{NotFound("mission %q", "apollo-99"), CategoryNotFound},
		{Internal("store: %v", "disk full"), CategoryInternal},
	}
	for _, test := range tests {
		if test.err.Category != test.want {
			t.Errorf("%v: category = %q, want %q", test.err, test.err.Category, test.want)
		}
	}
	if got := Validation("bad year %q", "19x9").Error(); got != `bad year "19x9"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestToolErrorWrapping(t *testing.T) {
	err := NotFound("loading dataset: %w", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see through ToolError")
	}

	var wrapped error = err
	var toolErr *ToolError
	if !errors.As(wrapped, &toolErr) || toolErr.Category != CategoryNotFound {
		t.Errorf("errors.As = %+v", toolErr)
	}
}

func TestToolErrorHint(t *testing.T) {
	err := Validation("no dataset configured").WithHint("Pass --dataset or set dataset.path in the config file.")
	want := "no dataset configured\n\nPass --dataset or set dataset.path in the config file."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestExitError(t *testing.T) {
	var err error = &ExitError{Code: 1}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 1 {
		t.Errorf("ExitError does not report its code")
	}
	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q", err.Error())
	}
}
