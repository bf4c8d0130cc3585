// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/bureau-foundation/overlay/lib/tui"
)

// logs holds the two loggers the demo uses: startup writes to stderr
// before the program takes the terminal, runtime feeds the status line
// afterwards. Both also write to the optional log output.
type logs struct {
	startup *slog.Logger
	runtime *slog.Logger
	status  *tui.StatusLogHandler
	closer  io.Closer
}

// openLogs builds the loggers. format is auto, text, or json; auto
// picks colored text when output is a terminal and JSON otherwise.
func openLogs(output, format string, level slog.Level) (*logs, error) {
	result := &logs{status: tui.NewStatusLogHandler(slog.LevelWarn)}

	startup := tui.FanoutHandler{textHandler(os.Stderr, max(level, slog.LevelWarn))}
	runtime := tui.FanoutHandler{result.status}

	if output != "" {
		file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log output: %w", err)
		}
		result.closer = file

		var handler slog.Handler
		switch format {
		case "auto":
			if term.IsTerminal(int(file.Fd())) {
				handler = textHandler(file, level)
			} else {
				handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
			}
		case "text":
			handler = textHandler(file, level)
		case "json":
			handler = slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
		default:
			file.Close()
			return nil, fmt.Errorf("unknown log format %q (want auto, text, or json)", format)
		}
		startup = append(startup, handler)
		runtime = append(runtime, handler)
	}

	result.startup = slog.New(startup)
	result.runtime = slog.New(runtime)
	return result, nil
}

// textHandler is a charm logger used as an slog handler. Its levels
// share slog's numeric values.
func textHandler(writer io.Writer, level slog.Level) slog.Handler {
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.Level(level),
	})
}

// Close closes the log output, if any.
func (l *logs) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
