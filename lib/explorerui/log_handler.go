// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorerui

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg carries a log record into the model for the status line.
type logRecordMsg struct {
	// Summary is "message (key=value, ...)".
	Summary string

	// Structured is the record as one JSON object.
	Structured string

	Level slog.Level
}

// logRecordFadeMsg clears the status line log message.
type logRecordFadeMsg struct {
	seq uint64
}

// logRecordFadeDelay is how long a log message stays in the status line.
const logRecordFadeDelay = 5 * time.Second

// TUILogHandler is a slog.Handler that delivers records to a running
// bubbletea program instead of writing them to the terminal the
// program is drawing on. Records below the handler's level are
// dropped, as are records that arrive before SetProgram.
//
// Handlers derived with WithAttrs and WithGroup share the program
// pointer, so one SetProgram call reaches all of them.
type TUILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewTUILogHandler creates a handler for records at or above level.
func NewTUILogHandler(level slog.Level) *TUILogHandler {
	return &TUILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram starts delivery to program. Safe from any goroutine.
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled implements slog.Handler.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle implements slog.Handler.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	program.Send(handler.format(record))
	return nil
}

// format builds the status line message for record.
func (handler *TUILogHandler) format(record slog.Record) logRecordMsg {
	prefix := strings.Join(handler.groups, ".")
	if prefix != "" {
		prefix += "."
	}

	var parts []string
	fields := map[string]any{
		"time":  record.Time.Format(time.RFC3339),
		"level": record.Level.String(),
		"msg":   record.Message,
	}
	add := func(attr slog.Attr, keyPrefix string) {
		name := keyPrefix + attr.Key
		parts = append(parts, fmt.Sprintf("%s=%s", name, attr.Value))
		fields[name] = attr.Value.String()
	}
	for _, attr := range handler.attrs {
		add(attr, "")
	}
	record.Attrs(func(attr slog.Attr) bool {
		add(attr, prefix)
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	structured, err := json.Marshal(fields)
	if err != nil {
		structured = fmt.Appendf(nil, `{"msg":%q,"error":"marshal failed"}`, record.Message)
	}

	return logRecordMsg{
		Summary:    summary,
		Structured: string(structured),
		Level:      record.Level,
	}
}

// WithAttrs implements slog.Handler. Attributes added after a group
// carry the group prefix.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(handler.groups, ".")
	derived := slices.Clone(handler.attrs)
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		derived = append(derived, attr)
	}
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   derived,
		groups:  slices.Clone(handler.groups),
	}
}

// WithGroup implements slog.Handler.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		groups:  append(slices.Clone(handler.groups), name),
	}
}
