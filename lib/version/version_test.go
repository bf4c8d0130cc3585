// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestFprint(t *testing.T) {
	var buffer bytes.Buffer
	Fprint(&buffer, "overlay-demo")

	output := buffer.String()
	if !strings.HasPrefix(output, "overlay-demo "+Info()+"\n") {
		t.Errorf("first line = %q, want binary name and Info", strings.SplitN(output, "\n", 2)[0])
	}
	if !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("output missing platform: %q", output)
	}
}

func TestInfoDefaults(t *testing.T) {
	if got, want := Info(), "0.1.0-dev (unknown, unknown)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
