// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSplice_Middle(t *testing.T) {
	frame := []string{"aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc"}
	Splice(frame, []string{"XX", "YY"}, 3, 1, 10)

	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	for index := range frame {
		if got := ansi.Strip(frame[index]); got != want[index] {
			t.Errorf("row %d = %q, want %q", index, got, want[index])
		}
	}
}

func TestSplice_ClipsAtEdges(t *testing.T) {
	frame := []string{"..........", ".........."}
	Splice(frame, []string{"LEFT", "TAIL"}, -2, 0, 10)
	Splice(frame, []string{"RIGHT"}, 7, 1, 10)

	if got := ansi.Strip(frame[0]); got != "FT........" {
		t.Errorf("left clip = %q", got)
	}
	if got := ansi.Strip(frame[1]); got != "IL.....RIG" {
		t.Errorf("right clip = %q", got)
	}
}

func TestSplice_RowsOutsideFrameSkipped(t *testing.T) {
	frame := []string{"0123456789"}
	Splice(frame, []string{"above", "here!", "below"}, 0, -1, 10)

	if got := ansi.Strip(frame[0]); got != "here!56789" {
		t.Errorf("row = %q", got)
	}
}

func TestSplice_PreservesStyledSuffix(t *testing.T) {
	styled := "\x1b[31mredredred\x1b[0m"
	frame := []string{styled}
	Splice(frame, []string{"--"}, 2, 0, 9)

	if got := ansi.Strip(frame[0]); got != "re--edred" {
		t.Errorf("row = %q", got)
	}
	if !strings.Contains(frame[0], "\x1b[31m") {
		t.Error("prefix lost its color")
	}
}

func TestSplice_ShortFrameLinePadded(t *testing.T) {
	frame := []string{"ab"}
	Splice(frame, []string{"Z"}, 5, 0, 10)

	if got := ansi.Strip(frame[0]); got != "ab   Z" {
		t.Errorf("row = %q", got)
	}
}

func TestFitLine(t *testing.T) {
	if got := FitLine("abc", 5); got != "abc  " {
		t.Errorf("pad = %q", got)
	}
	if got := ansi.Strip(FitLine("abcdef", 4)); got != "abcd" {
		t.Errorf("truncate = %q", got)
	}
}

func TestEmbolden(t *testing.T) {
	frame := []string{"hello world"}
	Embolden(frame, 0, 6, 11)

	if got := ansi.Strip(frame[0]); got != "hello world" {
		t.Fatalf("text changed: %q", got)
	}
	if !strings.Contains(frame[0], "\x1b[1mworld") {
		t.Errorf("bold not applied to range: %q", frame[0])
	}
	if strings.Contains(frame[0], "\x1b[1mhello") {
		t.Errorf("bold leaked before the range: %q", frame[0])
	}
}

func TestEmbolden_OutOfRangeIsNoOp(t *testing.T) {
	frame := []string{"short"}
	Embolden(frame, 3, 0, 2)
	Embolden(frame, 0, 10, 12)
	if frame[0] != "short" {
		t.Errorf("frame changed: %q", frame[0])
	}
}
