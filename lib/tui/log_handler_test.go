// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/bureau-foundation/overlay/lib/testutil"
)

func TestStatusLogHandler_DropsBeforeSender(t *testing.T) {
	handler := NewStatusLogHandler(slog.LevelWarn)
	logger := slog.New(handler)
	logger.Warn("nobody listening")

	var inbox testutil.Mailbox
	handler.SetSender(inbox.Send)
	logger.Info("below threshold")
	logger.Warn("unknown placement", "value", "diagonal")

	record := testutil.RequireMessage[LogRecordMsg](t, &inbox)
	if record.Summary != "unknown placement (value=diagonal)" || record.Level != slog.LevelWarn {
		t.Errorf("record = %+v", record)
	}
}

func TestStatusLogHandler_DerivedShareSender(t *testing.T) {
	handler := NewStatusLogHandler(slog.LevelWarn)
	derived := slog.New(handler).With("overlay", "abc").WithGroup("viewport")

	var inbox testutil.Mailbox
	handler.SetSender(inbox.Send)
	derived.Error("listener lost", "kind", "scroll")

	want := "listener lost (overlay=abc, viewport.kind=scroll)"
	if got := testutil.RequireMessage[LogRecordMsg](t, &inbox).Summary; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestFanoutHandler(t *testing.T) {
	var file bytes.Buffer
	status := NewStatusLogHandler(slog.LevelWarn)
	var inbox testutil.Mailbox
	status.SetSender(inbox.Send)

	logger := slog.New(FanoutHandler{
		status,
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
	logger.Debug("layer created")
	logger.Warn("overlay not shown")

	if inbox.Len() != 1 {
		t.Errorf("status line got %d records, want only the warning", inbox.Len())
	}
	lines := strings.Split(strings.TrimSpace(file.String()), "\n")
	if len(lines) != 2 {
		t.Errorf("file got %d records, want 2: %q", len(lines), file.String())
	}
}
