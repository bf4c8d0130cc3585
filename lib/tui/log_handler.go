// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LogRecordMsg delivers a log record to the bubbletea model for the
// status line. Only records at or above the handler's level are sent.
type LogRecordMsg struct {
	// Summary is "message (key=value, ...)" on one line.
	Summary string
	Level   slog.Level
}

// LogRecordFadeMsg clears a status line message. Models schedule it
// with tea.Tick(LogRecordFadeDelay, ...) when a LogRecordMsg arrives.
type LogRecordFadeMsg struct{}

// LogRecordFadeDelay is how long a log message stays on the status
// line.
const LogRecordFadeDelay = 5 * time.Second

// StatusLogHandler is a slog.Handler that routes records into a
// bubbletea program as LogRecordMsg. Writing to the terminal while the
// program owns the alternate screen would corrupt the frame, so
// warnings from overlays and config resolution surface this way.
//
// Records arriving before SetProgram or SetSender are dropped. Handlers
// derived with WithAttrs and WithGroup share the sender, so one call
// on the root handler reaches all of them.
type StatusLogHandler struct {
	level  slog.Level
	send   *atomic.Pointer[func(tea.Msg)]
	attrs  []slog.Attr
	groups []string
}

// NewStatusLogHandler creates a handler for records at or above level.
func NewStatusLogHandler(level slog.Level) *StatusLogHandler {
	return &StatusLogHandler{
		level: level,
		send:  &atomic.Pointer[func(tea.Msg)]{},
	}
}

// SetProgram delivers records through program.Send. Records logged
// from inside the program's Update would block on Send, so each one is
// sent from its own goroutine. Safe to call from any goroutine.
func (handler *StatusLogHandler) SetProgram(program *tea.Program) {
	handler.SetSender(func(message tea.Msg) { go program.Send(message) })
}

// SetSender delivers records through send.
func (handler *StatusLogHandler) SetSender(send func(tea.Msg)) {
	handler.send.Store(&send)
}

// Enabled reports whether level reaches the handler's threshold.
func (handler *StatusLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats record and sends it.
func (handler *StatusLogHandler) Handle(_ context.Context, record slog.Record) error {
	send := handler.send.Load()
	if send == nil {
		return nil
	}

	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, attr.Key+"="+attr.Value.String())
	}
	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, prefix+attr.Key+"="+attr.Value.String())
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}
	(*send)(LogRecordMsg{Summary: summary, Level: record.Level})
	return nil
}

// WithAttrs returns a handler with attrs appended.
func (handler *StatusLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StatusLogHandler{
		level:  handler.level,
		send:   handler.send,
		attrs:  append(slices.Clone(handler.attrs), attrs...),
		groups: slices.Clone(handler.groups),
	}
}

// WithGroup returns a handler that qualifies later record attributes
// with name.
func (handler *StatusLogHandler) WithGroup(name string) slog.Handler {
	return &StatusLogHandler{
		level:  handler.level,
		send:   handler.send,
		attrs:  slices.Clone(handler.attrs),
		groups: append(slices.Clone(handler.groups), name),
	}
}

// FanoutHandler sends each record to every handler enabled for its
// level. It pairs the status line with a log file.
type FanoutHandler []slog.Handler

func (handlers FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers FanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
