// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"
	"slices"
)

// openFileLogHandler creates or truncates path and returns a JSON
// handler writing every record at debug and above to it, plus the
// function that closes the file.
func openFileLogHandler(path string) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler delivers each record to every member enabled for its
// level. The status line handler only wants warnings while the log
// file takes everything.
type fanoutHandler []slog.Handler

func (fanout fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(fanout, func(member slog.Handler) bool {
		return member.Enabled(ctx, level)
	})
}

func (fanout fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var first error
	for _, member := range fanout {
		if !member.Enabled(ctx, record.Level) {
			continue
		}
		if err := member.Handle(ctx, record.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (fanout fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return fanout.derive(func(member slog.Handler) slog.Handler { return member.WithAttrs(attrs) })
}

func (fanout fanoutHandler) WithGroup(name string) slog.Handler {
	return fanout.derive(func(member slog.Handler) slog.Handler { return member.WithGroup(name) })
}

func (fanout fanoutHandler) derive(transform func(slog.Handler) slog.Handler) fanoutHandler {
	derived := make(fanoutHandler, len(fanout))
	for index, member := range fanout {
		derived[index] = transform(member)
	}
	return derived
}
